package controllers

import (
	"errors"
	"net/http"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resourceRequest struct {
	PatientID     string            `json:"patient_id" validate:"required"`
	AppointmentID string            `json:"appointment_id" validate:"required"`
	Quiz          []models.QuizItem `json:"quiz" validate:"required,min=1,dive"`
}

// CreateResource stores the pre-visit questionnaire for an appointment. Only
// one questionnaire may exist per appointment and it cannot be changed later.
func CreateResource(c *gin.Context) {
	var req resourceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please answer all the questions with yes or no"})
		return
	}

	var appt models.Appointment
	if err := configuration.DB.Where("id = ?", req.AppointmentID).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	var existing models.Resource
	if err := configuration.DB.Where("appointment_id = ?", req.AppointmentID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Questionnaire already submitted for this appointment"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check questionnaire"})
		return
	}

	resource := models.Resource{
		ID:            uuid.NewString(),
		AppointmentID: req.AppointmentID,
		PatientID:     req.PatientID,
	}
	if err := resource.SetQuizItems(req.Quiz); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode questionnaire"})
		return
	}

	if err := configuration.DB.Create(&resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save questionnaire"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// GetResourceByAppointment returns the questionnaire submitted for an
// appointment; the client uses it to gate the submission form.
func GetResourceByAppointment(c *gin.Context) {
	appointmentID := c.Param("appointmentId")

	var resource models.Resource
	if err := configuration.DB.Where("appointment_id = ?", appointmentID).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questionnaire"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             resource.ID,
		"appointment_id": resource.AppointmentID,
		"patient_id":     resource.PatientID,
		"quiz":           resource.QuizItems(),
	})
}
