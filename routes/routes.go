package routes

import (
	"github.com/harish-chowdari/hospital-management/authentication"
	"github.com/harish-chowdari/hospital-management/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// creates a new Gin engine instance with default configurations
	r := gin.Default()

	// patient and provider profiles
	r.POST("/patients", controllers.CreatePatient)
	r.GET("/patients/:id", controllers.GetPatient)
	r.POST("/providers", controllers.CreateProvider)
	r.GET("/providers/:id", controllers.GetProvider)
	r.GET("/specialties/:specialty/providers", controllers.GetProvidersBySpecialty)

	// availability and slot resolution
	r.GET("/providers/:id/availability", controllers.GetAvailability)
	r.POST("/providers/:id/availability", authentication.ProviderAuthMiddleware(), controllers.SaveAvailability)
	r.GET("/providers/:id/slots", controllers.GetAvailableTimeSlots)

	// appointment lifecycle
	appointments := r.Group("/appointments")
	{
		appointments.POST("", authentication.PatientAuthMiddleware(), controllers.CreateAppointment)
		appointments.GET("", controllers.ListAppointments)
		appointments.GET("/:id", controllers.GetAppointmentByID)
		appointments.PUT("/:id", controllers.UpdateAppointment)
		appointments.DELETE("/:id", controllers.SoftDeleteAppointment)
		appointments.POST("/:id/prescription", authentication.ProviderAuthMiddleware(), controllers.AddPrescription)
	}

	// pre-visit questionnaire
	r.POST("/resources", authentication.PatientAuthMiddleware(), controllers.CreateResource)
	r.GET("/resources/:appointmentId", controllers.GetResourceByAppointment)

	return r
}
