package models

import "encoding/json"

// Resource is the pre-visit questionnaire attached to an appointment. At most
// one exists per appointment and it is never updated after submission.
type Resource struct {
	ID            string `gorm:"primaryKey" json:"id"`
	AppointmentID string `gorm:"index" json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	Quiz          string `gorm:"type:text" json:"-"`
}

type QuizItem struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required,oneof=yes no"`
}

func (r *Resource) QuizItems() []QuizItem {
	if r.Quiz == "" {
		return nil
	}
	var items []QuizItem
	if err := json.Unmarshal([]byte(r.Quiz), &items); err != nil {
		return nil
	}
	return items
}

func (r *Resource) SetQuizItems(items []QuizItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.Quiz = string(data)
	return nil
}
