package controllers

import (
	"errors"
	"net/http"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// HasConflict reports whether any existing non-deleted appointment occupies the
// same provider, date and time slot as the candidate.
func HasConflict(existing []models.Appointment, providerID, date, timeSlot string) bool {
	for _, appt := range existing {
		if appt.Status == models.StatusDeleted {
			continue
		}
		if appt.ProviderID == providerID && appt.Date == date && appt.Time == timeSlot {
			return true
		}
	}
	return false
}

// CreateAppointment books a new appointment for a patient
func CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.BindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// identity from the auth middleware wins over the submitted body
	if patientID, ok := c.Get("patient_id"); ok {
		appt.PatientID = patientID.(string)
	}

	if appt.Symptoms == "" || appt.Date == "" || appt.Time == "" || appt.Specialty == "" {
		c.JSON(http.StatusOK, gin.H{
			"missingFields": true,
			"error":         "Please fill all the fields",
		})
		return
	}

	appt.ID = uuid.NewString()
	appt.Status = models.StatusOpen
	appt.IsNotified = false

	// The slot check and the insert run in one transaction so two racing
	// submissions cannot both commit the same slot.
	err := configuration.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Appointment
		if err := tx.Where("patient_id = ? AND provider_id = ? AND date = ? AND time = ? AND status <> ?",
			appt.PatientID, appt.ProviderID, appt.Date, appt.Time, models.StatusDeleted).
			Find(&existing).Error; err != nil {
			return err
		}
		if HasConflict(existing, appt.ProviderID, appt.Date, appt.Time) {
			return ErrSlotTaken
		}
		return tx.Create(&appt).Error
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Another appointment has been already booked for the same date and time slot with the provider"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"Status":  "Success",
		"Message": "Appointment created successfully",
		"data":    appt,
	})
}

// ErrSlotTaken marks a duplicate booking detected inside the create transaction.
var ErrSlotTaken = errors.New("slot already booked")

// ListAppointments lists appointments for a patient or a provider. Patients see
// their deleted appointments; providers do not.
func ListAppointments(c *gin.Context) {
	patientID := c.Query("patientId")
	providerID := c.Query("providerId")

	var appointments []models.Appointment
	switch {
	case patientID != "":
		if err := configuration.DB.Preload("Entries").Where("patient_id = ?", patientID).Find(&appointments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
			return
		}
	case providerID != "":
		if err := configuration.DB.Preload("Entries").Where("provider_id = ? AND status <> ?", providerID, models.StatusDeleted).Find(&appointments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing patientId or providerId"})
		return
	}

	for i := range appointments {
		appointments[i].Status = models.NormalizeStatus(appointments[i].Status)
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentByID fetches a single appointment
func GetAppointmentByID(c *gin.Context) {
	id := c.Param("id")

	var appt models.Appointment
	if err := configuration.DB.Preload("Entries").Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	appt.Status = models.NormalizeStatus(appt.Status)
	c.JSON(http.StatusOK, appt)
}

// updatable appointment fields; anything else in the payload is ignored
type appointmentUpdate struct {
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	ProviderID *string `json:"provider_id"`
	Specialty  *string `json:"specialty"`
	Symptoms   *string `json:"symptoms"`
	Status     *string `json:"status"`
}

// UpdateAppointment merges the supplied subset of fields into an appointment
func UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var appt models.Appointment
	if err := configuration.DB.Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	var update appointmentUpdate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if update.Time != nil {
		fields["time"] = *update.Time
	}
	if update.ProviderID != nil {
		fields["provider_id"] = *update.ProviderID
	}
	if update.Specialty != nil {
		fields["specialty"] = *update.Specialty
	}
	if update.Symptoms != nil {
		fields["symptoms"] = *update.Symptoms
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}

	if len(fields) > 0 {
		if err := configuration.DB.Model(&appt).Updates(fields).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
			return
		}
		if err := configuration.DB.Preload("Entries").Where("id = ?", id).First(&appt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
			return
		}
	}

	appt.Status = models.NormalizeStatus(appt.Status)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment updated successfully",
		"data":    appt,
	})
}

// SoftDeleteAppointment flags an appointment deleted; the record is retained.
// Deleting twice is treated as an ordinary update and still reports success.
func SoftDeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	var appt models.Appointment
	if err := configuration.DB.Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	if err := configuration.DB.Model(&appt).Update("status", models.StatusDeleted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
