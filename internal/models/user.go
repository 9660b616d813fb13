package models

// User is a staff account for the admin panel. Password holds a bcrypt hash.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
}
