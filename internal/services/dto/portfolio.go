package dto

// CreatePortfolioRequest carries the multipart form fields of a portfolio
// add; the image arrives as a separate file part.
type CreatePortfolioRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"required"`
}

// UpdatePortfolioRequest is the same shape; the file part is optional and an
// absent file keeps the item's current image.
type UpdatePortfolioRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"required"`
}
