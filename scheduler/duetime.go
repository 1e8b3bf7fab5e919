package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/harish-chowdari/hospital-management/models"
)

// DueInstant composes an appointment's stored date and time-slot strings into
// an absolute instant in the reference zone. Slot labels may use 12-hour form
// ("2:00 PM", "12:00 AM") or 24-hour form ("14:00"). For range-style labels
// like "10:00-10:30" the start of the range is the due time.
func DueInstant(date, timeLabel string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), models.ReferenceZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", date, err)
	}

	label := strings.ToUpper(strings.TrimSpace(timeLabel))
	if i := strings.Index(label, "-"); i > 0 {
		label = strings.TrimSpace(label[:i])
	}

	var clock time.Time
	switch {
	case strings.HasSuffix(label, "AM"), strings.HasSuffix(label, "PM"):
		// tolerate a missing space before the meridiem
		suffix := label[len(label)-2:]
		hhmm := strings.TrimSpace(strings.TrimSuffix(label, suffix))
		clock, err = time.Parse("3:04 PM", hhmm+" "+suffix)
	default:
		clock, err = time.Parse("15:04", label)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment time %q: %w", timeLabel, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, models.ReferenceZone), nil
}
