package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"
)

// Scheduler periodically scans pending appointments and emails a reminder when
// an appointment's due instant falls within the lookahead window. Dispatch is
// at-least-once: a failed send leaves the appointment pending so the next scan
// retries it. The lease keeps overlapping scans from double-sending while a
// slow dispatch is still in flight.
type Scheduler struct {
	Source    AppointmentSource
	Mailer    Mailer
	Lease     Lease
	Interval  time.Duration
	Lookahead time.Duration

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time

	inflight sync.WaitGroup
}

// Run drives the scan loop until the context is cancelled, then waits for any
// in-flight dispatches to finish.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.inflight.Wait()
			return
		case <-ticker.C:
			s.scan()
		}
	}
}

func (s *Scheduler) scan() {
	now := s.now()

	appointments, err := s.Source.ListPending()
	if err != nil {
		log.Println("Reminder scan failed to list appointments:", err)
		return
	}

	for _, appt := range appointments {
		due, err := DueInstant(appt.Date, appt.Time)
		if err != nil {
			log.Printf("Skipping appointment %s: %v", appt.ID, err)
			continue
		}

		remaining := due.Sub(now)
		if remaining <= 0 || remaining > s.Lookahead {
			continue
		}

		claimed, err := s.Lease.Acquire(appt.ID, s.Lookahead)
		if err != nil {
			log.Printf("Failed to acquire reminder lease for %s: %v", appt.ID, err)
			continue
		}
		if !claimed {
			continue
		}

		// dispatch without holding up the rest of the scan
		s.inflight.Add(1)
		go func(appt models.Appointment) {
			defer s.inflight.Done()
			s.dispatch(appt)
		}(appt)
	}
}

func (s *Scheduler) dispatch(appt models.Appointment) {
	email, err := s.Source.PatientEmail(appt.PatientID)
	if err != nil {
		log.Printf("No reminder address for appointment %s: %v", appt.ID, err)
		s.release(appt.ID)
		return
	}

	subject := "Appointment Reminder"
	body := fmt.Sprintf("You have an appointment on %s at %s. Please be available on time.",
		appt.Date, appt.Time)
	if appt.Specialty != "" {
		body = fmt.Sprintf("You have a %s appointment on %s at %s. Please be available on time.",
			appt.Specialty, appt.Date, appt.Time)
	}
	body += fmt.Sprintf("\n\nView your appointment: %s/appointments/%s",
		configuration.APIOrigin(), appt.ID)

	if err := s.Mailer.Send(email, subject, body); err != nil {
		log.Printf("Failed to send reminder for appointment %s: %v", appt.ID, err)
		s.release(appt.ID)
		return
	}

	if err := s.Source.MarkNotified(appt.ID); err != nil {
		// the email went out; keep the lease so the scan does not resend
		// before it expires, and let the next successful mark settle it
		log.Printf("Failed to mark appointment %s notified: %v", appt.ID, err)
		return
	}
}

func (s *Scheduler) release(appointmentID string) {
	if err := s.Lease.Release(appointmentID); err != nil {
		log.Printf("Failed to release reminder lease for %s: %v", appointmentID, err)
	}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
