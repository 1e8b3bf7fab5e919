package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/harish-chowdari/hospital-management/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekEntries(t *testing.T) []models.WeeklyAvailability {
	t.Helper()

	entries := make([]models.WeeklyAvailability, 0, 7)
	for day := 0; day < 7; day++ {
		entry := models.WeeklyAvailability{ProviderID: "provider-1", Day: day}
		require.NoError(t, entry.SetSlots([]string{fmt.Sprintf("day%d-slot", day)}))
		entries = append(entries, entry)
	}
	return entries
}

func TestResolveSlotsAcrossFullWeek(t *testing.T) {
	entries := weekEntries(t)

	// 2025-06-01 is a Sunday; walk the whole week at midnight reference time
	for offset := 0; offset < 7; offset++ {
		date := time.Date(2025, time.June, 1+offset, 0, 0, 0, 0, models.ReferenceZone)
		weekday := int(date.Weekday())
		slots := ResolveSlots(entries, date)
		assert.Equal(t, []string{fmt.Sprintf("day%d-slot", weekday)}, slots)
	}
}

func TestResolveSlotsUsesReferenceZoneWeekday(t *testing.T) {
	entries := weekEntries(t)

	// 20:00 UTC on Sunday June 1st is already 01:30 Monday in the reference zone
	at := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, at.Weekday())

	slots := ResolveSlots(entries, at)
	assert.Equal(t, []string{"day1-slot"}, slots, "weekday must come from the reference zone, not UTC")
}

func TestResolveSlotsMissingAvailability(t *testing.T) {
	at := time.Date(2025, time.June, 1, 0, 0, 0, 0, models.ReferenceZone)

	assert.Empty(t, ResolveSlots(nil, at))

	// an entry exists but holds no slots for that day
	var empty models.WeeklyAvailability
	empty.Day = int(time.Sunday)
	require.NoError(t, empty.SetSlots(nil))
	assert.Empty(t, ResolveSlots([]models.WeeklyAvailability{empty}, at))

	// no entry for the requested weekday
	other := models.WeeklyAvailability{Day: int(time.Monday)}
	require.NoError(t, other.SetSlots([]string{"9:00 AM"}))
	assert.Empty(t, ResolveSlots([]models.WeeklyAvailability{other}, at))
}

func createTestProvider(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/providers", map[string]any{
		"name":      "Dr. Rao",
		"specialty": "Cardiology",
		"email":     "rao@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	return data["id"].(string)
}

func TestProviderStartsWithAllEmptyWeek(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	id := createTestProvider(t, r)

	w := performRequest(t, r, http.MethodGet, "/providers/"+id+"/availability", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	entries := data["weekly_availability"].([]any)
	require.Len(t, entries, 7)
	for _, raw := range entries {
		entry := raw.(map[string]any)
		assert.Empty(t, entry["slots"])
	}
}

func TestSaveAvailabilityReplacesWholesale(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	id := createTestProvider(t, r)

	first := performRequest(t, r, http.MethodPost, "/providers/"+id+"/availability", map[string]any{
		"weekly_availability": []map[string]any{
			{"day": 1, "slots": []string{"9:00 AM", "10:00 AM"}},
			{"day": 3, "slots": []string{"2:00 PM"}},
		},
	})
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())

	// the second save drops Monday entirely; no incremental patching
	second := performRequest(t, r, http.MethodPost, "/providers/"+id+"/availability", map[string]any{
		"weekly_availability": []map[string]any{
			{"day": 3, "slots": []string{"5:00 PM"}},
		},
	})
	require.Equal(t, http.StatusOK, second.Code)

	body := decodeBody(t, second)
	data := body["data"].(map[string]any)
	entries := data["weekly_availability"].([]any)
	require.Len(t, entries, 7)

	slotsByDay := map[float64][]any{}
	for _, raw := range entries {
		entry := raw.(map[string]any)
		slotsByDay[entry["day"].(float64)] = entry["slots"].([]any)
	}
	assert.Empty(t, slotsByDay[1])
	assert.Equal(t, []any{"5:00 PM"}, slotsByDay[3])
}

func TestSaveAvailabilityRejectsDuplicateWeekday(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	id := createTestProvider(t, r)

	w := performRequest(t, r, http.MethodPost, "/providers/"+id+"/availability", map[string]any{
		"weekly_availability": []map[string]any{
			{"day": 1, "slots": []string{"9:00 AM"}},
			{"day": 1, "slots": []string{"10:00 AM"}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableTimeSlotsFiltersBooked(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	id := createTestProvider(t, r)

	// 2025-06-02 is a Monday
	w := performRequest(t, r, http.MethodPost, "/providers/"+id+"/availability", map[string]any{
		"weekly_availability": []map[string]any{
			{"day": 1, "slots": []string{"9:00 AM", "10:00 AM", "11:00 AM"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	createTestAppointment(t, r, "patient-1", id, "2025-06-02", "10:00 AM")

	slots := performRequest(t, r, http.MethodGet, "/providers/"+id+"/slots?date=2025-06-02", nil)
	require.Equal(t, http.StatusOK, slots.Code)

	body := decodeBody(t, slots)
	assert.Equal(t, []any{"9:00 AM", "11:00 AM"}, body["available_time_slots"].([]any))
}
