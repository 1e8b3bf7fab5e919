package models

type Provider struct {
	ID             string               `gorm:"primaryKey" json:"id"`
	Name           string               `json:"name" validate:"required"`
	Specialty      string               `json:"specialty" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Availabilities []WeeklyAvailability `gorm:"foreignKey:ProviderID" json:"weekly_availability"`
}
