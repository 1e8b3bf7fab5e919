package scheduler

import (
	"time"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"

	"gorm.io/gorm"
)

// AppointmentSource is the persistence surface the reminder loop needs.
type AppointmentSource interface {
	// ListPending returns appointments not yet notified and not deleted.
	ListPending() ([]models.Appointment, error)
	// MarkNotified flags an appointment so later scans skip it.
	MarkNotified(appointmentID string) error
	// PatientEmail resolves the notification address for a patient.
	PatientEmail(patientID string) (string, error)
}

// Mailer dispatches one reminder message.
type Mailer interface {
	Send(to, subject, body string) error
}

// Lease is the per-appointment in-flight guard. Acquire claims an appointment
// for one dispatch attempt; Release frees it so a failed send can be retried.
type Lease interface {
	Acquire(appointmentID string, ttl time.Duration) (bool, error)
	Release(appointmentID string) error
}

// GormSource reads and writes appointments through the shared gorm handle.
type GormSource struct {
	DB *gorm.DB
}

func (s *GormSource) ListPending() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.Where("is_notified = ? AND status <> ?", false, models.StatusDeleted).
		Find(&appointments).Error
	return appointments, err
}

func (s *GormSource) MarkNotified(appointmentID string) error {
	return s.DB.Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("is_notified", true).Error
}

func (s *GormSource) PatientEmail(patientID string) (string, error) {
	var patient models.Patient
	if err := s.DB.Where("id = ?", patientID).First(&patient).Error; err != nil {
		return "", err
	}
	return patient.Email, nil
}

// RedisLease claims appointments through redis SETNX keys so a slow dispatch
// is never picked up again by an overlapping scan.
type RedisLease struct{}

func (RedisLease) Acquire(appointmentID string, ttl time.Duration) (bool, error) {
	return configuration.SetNXRedis("reminder:lease:"+appointmentID, "1", ttl)
}

func (RedisLease) Release(appointmentID string) error {
	return configuration.DelRedis("reminder:lease:" + appointmentID)
}
