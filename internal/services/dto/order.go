package dto

type CreateOrderRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	ServiceName  string `json:"service_name" validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// OrderCounts backs the dashboard status widgets and the notification poll.
type OrderCounts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}
