package main

import (
	"context"
	"os"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/routes"
	"github.com/harish-chowdari/hospital-management/scheduler"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
}

func main() {
	// Perform application initialization
	Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminders := &scheduler.Scheduler{
		Source:    &scheduler.GormSource{DB: configuration.DB},
		Mailer:    scheduler.GomailMailer{},
		Lease:     scheduler.RedisLease{},
		Interval:  configuration.ReminderInterval(),
		Lookahead: configuration.ReminderLookahead(),
	}
	go reminders.Run(ctx)

	r := routes.SetupRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		panic(err)
	}
}
