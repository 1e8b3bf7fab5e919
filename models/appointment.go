package models

// Appointment booking statuses. Records written before the status column became
// mandatory carry an empty string; NormalizeStatus maps those to StatusOpen.
const (
	StatusOpen    = "Open"
	StatusUpdated = "Updated"
	StatusClosed  = "Closed"
	StatusDeleted = "deleted"
)

type Appointment struct {
	ID         string              `gorm:"primaryKey" json:"id"`
	PatientID  string              `json:"patient_id"`
	ProviderID string              `json:"provider_id"`
	Specialty  string              `json:"specialty"`
	Date       string              `json:"date"`
	Time       string              `json:"time"`
	Symptoms   string              `json:"symptoms"`
	Status     string              `json:"status"`
	IsNotified bool                `json:"is_notified"`
	Entries    []PrescriptionEntry `gorm:"foreignKey:AppointmentID" json:"prescription_entries"`
}

// NormalizeStatus maps legacy blank statuses to the explicit initial state.
func NormalizeStatus(status string) string {
	if status == "" {
		return StatusOpen
	}
	return status
}

// IsDeleted reports whether the appointment has been soft deleted.
func (a *Appointment) IsDeleted() bool {
	return a.Status == StatusDeleted
}
