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

// CreateProvider registers a provider profile. The weekly availability starts
// out with all seven days empty until the provider sets a schedule.
func CreateProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.BindJSON(&provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	provider.ID = uuid.NewString()
	provider.Availabilities = make([]models.WeeklyAvailability, 0, 7)
	for day := 0; day < 7; day++ {
		row := models.WeeklyAvailability{
			ID:         uuid.NewString(),
			ProviderID: provider.ID,
			Day:        day,
		}
		if err := row.SetSlots(nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode slots"})
			return
		}
		provider.Availabilities = append(provider.Availabilities, row)
	}

	if err := configuration.DB.Create(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create provider"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"Status":  "Success",
		"Message": "Provider created successfully",
		"data":    availabilityResponse(provider),
	})
}

// GetProvider fetches one provider profile with its weekly availability
func GetProvider(c *gin.Context) {
	id := c.Param("id")

	var provider models.Provider
	if err := configuration.DB.Preload("Availabilities").Where("id = ?", id).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provider"})
		return
	}

	c.JSON(http.StatusOK, availabilityResponse(provider))
}

// GetProvidersBySpecialty lists providers offering a specialty
func GetProvidersBySpecialty(c *gin.Context) {
	specialty := c.Param("specialty")

	var providers []models.Provider
	if err := configuration.DB.Where("specialty = ?", specialty).Find(&providers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get provider details",
			"details": err.Error(),
		})
		return
	}
	if len(providers) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No providers found with the specified specialty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Providers list fetched successfully",
		"data":    providers,
	})
}
