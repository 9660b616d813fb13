package models

// PortfolioItem is a showcase entry. At most one item exists per normalized
// category; writes enforce this by evicting same-category siblings together
// with their image files.
type PortfolioItem struct {
	BaseModel
	Title         string `gorm:"not null" json:"title"`
	Description   string `gorm:"not null" json:"description"`
	Category      string `gorm:"not null;index" json:"category"`
	ImageFilename string `gorm:"not null" json:"image_filename"`
}
