package models

import (
	"encoding/json"
	"time"
)

// ReferenceZone anchors every weekday and due-time computation. Slot labels carry
// no offset of their own, so booking and reminder paths must agree on one zone.
var ReferenceZone = time.FixedZone("IST", 5*3600+30*60)

// WeeklyAvailability holds one weekday's slot labels for a provider. A provider
// has at most one row per weekday; an empty slot list means unavailable that day.
type WeeklyAvailability struct {
	ID         string `gorm:"primaryKey" json:"id"`
	ProviderID string `gorm:"index" json:"provider_id"`
	Day        int    `json:"day"`
	Slots      string `gorm:"type:text" json:"-"`
}

// SlotList decodes the stored slot labels. A malformed or empty column reads as
// no slots rather than an error.
func (w *WeeklyAvailability) SlotList() []string {
	if w.Slots == "" {
		return nil
	}
	var slots []string
	if err := json.Unmarshal([]byte(w.Slots), &slots); err != nil {
		return nil
	}
	return slots
}

// SetSlots encodes the slot labels for storage.
func (w *WeeklyAvailability) SetSlots(slots []string) error {
	if slots == nil {
		slots = []string{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	w.Slots = string(data)
	return nil
}
