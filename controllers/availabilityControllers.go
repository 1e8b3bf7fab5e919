package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveSlots returns the slot labels configured for the weekday of the given
// instant. The weekday is always evaluated in the reference zone, not in UTC or
// the caller's zone, so booking and reminder paths agree on which day it is.
func ResolveSlots(entries []models.WeeklyAvailability, at time.Time) []string {
	weekday := int(at.In(models.ReferenceZone).Weekday())
	for _, entry := range entries {
		if entry.Day == weekday {
			return entry.SlotList()
		}
	}
	return nil
}

// GetAvailability returns a provider's weekly availability
func GetAvailability(c *gin.Context) {
	providerID := c.Param("id")

	var provider models.Provider
	if err := configuration.DB.Preload("Availabilities").Where("id = ?", providerID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provider"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   availabilityResponse(provider),
	})
}

type weekdayEntry struct {
	Day   int      `json:"day"`
	Slots []string `json:"slots"`
}

type availabilityRequest struct {
	WeeklyAvailability []weekdayEntry `json:"weekly_availability"`
}

// SaveAvailability replaces a provider's weekly schedule wholesale. Days missing
// from the request are stored with an empty slot list.
func SaveAvailability(c *gin.Context) {
	providerID := c.Param("id")

	var provider models.Provider
	if err := configuration.DB.Where("id = ?", providerID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provider"})
		return
	}

	var req availabilityRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slotsByDay := map[int][]string{}
	for _, entry := range req.WeeklyAvailability {
		if entry.Day < 0 || entry.Day > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Day must be between 0 (Sunday) and 6 (Saturday)"})
			return
		}
		if _, exists := slotsByDay[entry.Day]; exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate entry for the same weekday"})
			return
		}
		slotsByDay[entry.Day] = entry.Slots
	}

	rows := make([]models.WeeklyAvailability, 0, 7)
	for day := 0; day < 7; day++ {
		row := models.WeeklyAvailability{
			ID:         uuid.NewString(),
			ProviderID: providerID,
			Day:        day,
		}
		if err := row.SetSlots(slotsByDay[day]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode slots"})
			return
		}
		rows = append(rows, row)
	}

	err := configuration.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).Delete(&models.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability"})
		return
	}

	provider.Availabilities = rows
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Availability saved successfully",
		"data":    availabilityResponse(provider),
	})
}

// GetAvailableTimeSlots resolves the bookable slots of a provider on a date,
// filtering out slots already taken by a non-deleted appointment.
func GetAvailableTimeSlots(c *gin.Context) {
	providerID := c.Param("id")
	dateStr := c.Query("date")

	date, err := time.ParseInLocation("2006-01-02", dateStr, models.ReferenceZone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	var entries []models.WeeklyAvailability
	if err := configuration.DB.Where("provider_id = ?", providerID).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	slots := ResolveSlots(entries, date)

	var bookings []models.Appointment
	if err := configuration.DB.Where("provider_id = ? AND date = ? AND status <> ?",
		providerID, dateStr, models.StatusDeleted).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	bookedTimeSlots := make(map[string]bool)
	for _, booking := range bookings {
		bookedTimeSlots[booking.Time] = true
	}

	adjustedTimeSlots := make([]string, 0)
	for _, slot := range slots {
		if !bookedTimeSlots[slot] {
			adjustedTimeSlots = append(adjustedTimeSlots, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Time slots fetched successfully",
		"date":                 dateStr,
		"available_time_slots": adjustedTimeSlots,
	})
}

func availabilityResponse(provider models.Provider) gin.H {
	entries := make([]weekdayEntry, 0, len(provider.Availabilities))
	for _, row := range provider.Availabilities {
		slots := row.SlotList()
		if slots == nil {
			slots = []string{}
		}
		entries = append(entries, weekdayEntry{Day: row.Day, Slots: slots})
	}
	return gin.H{
		"id":                  provider.ID,
		"name":                provider.Name,
		"specialty":           provider.Specialty,
		"email":               provider.Email,
		"weekly_availability": entries,
	}
}
