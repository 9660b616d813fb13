package models

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a service request submitted through the agency site.
type Order struct {
	BaseModel
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"not null" json:"email"`
	Phone        string      `json:"phone"`
	ServiceName  string      `gorm:"not null" json:"service_name"`
	Requirements string      `gorm:"not null" json:"requirements"`
	Status       OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
