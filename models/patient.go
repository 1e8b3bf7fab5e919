package models

type Patient struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}
