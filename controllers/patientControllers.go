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

// CreatePatient registers a patient profile. Reminder emails go to the address
// recorded here.
func CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	patient.ID = uuid.NewString()
	if err := configuration.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"Status":  "Success",
		"Message": "Patient created successfully",
		"data":    patient,
	})
}

// GetPatient fetches a patient profile
func GetPatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := configuration.DB.Where("id = ?", id).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patient"})
		return
	}

	c.JSON(http.StatusOK, patient)
}
