package models

// PrescriptionEntry is one medicine line on an appointment's prescription.
// The six dosage flags cover before/after each of the three meals.
type PrescriptionEntry struct {
	ID              string `gorm:"primaryKey" json:"id"`
	AppointmentID   string `gorm:"index" json:"appointment_id"`
	MedicineName    string `json:"medicine_name" validate:"required"`
	BeforeBreakfast bool   `json:"before_breakfast"`
	AfterBreakfast  bool   `json:"after_breakfast"`
	BeforeLunch     bool   `json:"before_lunch"`
	AfterLunch      bool   `json:"after_lunch"`
	BeforeDinner    bool   `json:"before_dinner"`
	AfterDinner     bool   `json:"after_dinner"`
	Duration        string `json:"duration" validate:"required"`
}
