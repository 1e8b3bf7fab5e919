package configuration

import (
	"log"
	"os"
	"time"

	"github.com/harish-chowdari/hospital-management/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// ConfigDB loads the .env file and initializes the database connection.
func ConfigDB() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := os.Getenv("DB")
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	Migrate(DB)
}

// Migrate creates the schema for all persisted collections.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Appointment{},
		&models.PrescriptionEntry{},
		&models.Provider{},
		&models.WeeklyAvailability{},
		&models.Patient{},
		&models.Resource{},
	)
}

// APIOrigin returns the base origin this deployment serves, development by default.
func APIOrigin() string {
	if origin := os.Getenv("API_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:8080"
}

// SenderEmail and SenderPassword are the outbound SMTP credentials.
func SenderEmail() string    { return os.Getenv("EMAIL") }
func SenderPassword() string { return os.Getenv("PASSWORD") }

// ReminderInterval is the reminder scan cadence.
func ReminderInterval() time.Duration {
	return durationEnv("REMINDER_INTERVAL", 15*time.Second)
}

// ReminderLookahead is the window before an appointment's due time in which a
// reminder fires.
func ReminderLookahead() time.Duration {
	return durationEnv("REMINDER_LOOKAHEAD", 2*time.Hour)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", key, raw, fallback)
		return fallback
	}
	return d
}
