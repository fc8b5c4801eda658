package Routes

import (
	"DentaDesk/Controllers"
	"DentaDesk/Middleware"
	"DentaDesk/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/register/ClinicGroup", Controllers.RegisterClinicGroup)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetClinicGroup())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)

		// Patient-related routes
		authorized.GET("/FetchPatients", Controllers.FetchPatients)
		authorized.POST("/CreatePatient", Controllers.CreatePatient)
		authorized.POST("/UpdatePatient", Controllers.UpdatePatient)
		authorized.POST("/DeletePatient", Controllers.DeletePatient)

		// Practitioner-related routes
		authorized.GET("/GetPractitioners", Controllers.GetPractitioners)

		// Appointment-related routes
		authorized.POST("/CreateAppointment", Controllers.CreateAppointment)
		authorized.POST("/FetchAppointmentsByPatientID", Controllers.FetchAppointmentsByPatientID)
		authorized.POST("/MarkAppointmentAsCompleted", Controllers.MarkAppointmentAsCompleted)
		authorized.POST("/DeleteAppointment", Controllers.DeleteAppointment)

		// Tooth chart routes
		authorized.POST("/FetchToothChart", Controllers.FetchToothChart)
		authorized.POST("/AddToothRecord", Controllers.AddToothRecord)
		authorized.POST("/EditToothRecord", Controllers.EditToothRecord)
		authorized.POST("/DeleteToothRecord", Controllers.DeleteToothRecord)

		// Treatment plan routes
		authorized.POST("/CreateTreatmentPlan", Controllers.CreateTreatmentPlan)
		authorized.POST("/FetchPatientTreatmentPlans", Controllers.FetchPatientTreatmentPlans)
		authorized.POST("/SetTreatmentPlanStatus", Controllers.SetTreatmentPlanStatus)
		authorized.POST("/AddTreatment", Controllers.AddTreatment)
		authorized.POST("/EditTreatment", Controllers.EditTreatment)
		authorized.POST("/MarkTreatmentAsCompleted", Controllers.MarkTreatmentAsCompleted)

		// Quote routes
		authorized.POST("/CreateQuote", Controllers.CreateQuote)
		authorized.POST("/UpdateQuotePaymentStatus", Controllers.UpdateQuotePaymentStatus)
		authorized.POST("/AcceptQuote", Controllers.AcceptQuote)
		authorized.GET("/FetchQuotes", Controllers.FetchQuotes)
		authorized.POST("/FetchPatientQuotes", Controllers.FetchPatientQuotes)

		// Compensation routes
		authorized.POST("/FetchCompensationEntries", Controllers.FetchCompensationEntries)
		authorized.POST("/MarkCompensationAsPaid", Controllers.MarkCompensationAsPaid)

		// Price list routes
		authorized.GET("/FetchPriceList", Controllers.FetchPriceList)
		authorized.POST("/AddPriceListEntry", Controllers.AddPriceListEntry)
		authorized.POST("/EditPriceListEntry", Controllers.EditPriceListEntry)
		authorized.POST("/DeletePriceListEntry", Controllers.DeletePriceListEntry)

		// Inventory routes
		authorized.GET("/FetchInventory", Controllers.FetchInventory)
		authorized.POST("/AddInventoryItem", Controllers.AddInventoryItem)
		authorized.POST("/EditInventoryItem", Controllers.EditInventoryItem)
		authorized.POST("/AdjustInventoryStock", Controllers.AdjustInventoryStock)
		authorized.POST("/DeleteInventoryItem", Controllers.DeleteInventoryItem)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.POST("/ExportCompensationTable", Controllers.ExportCompensationTable)
		authorized.POST("/ExportQuotesTable", Controllers.ExportQuotesTable)
	}

	// Admin-only routes
	admin := router.Group("/api/protected")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.SetClinicGroup())
	admin.Use(Middleware.PermissionCheckAdmin())
	{
		admin.POST("/RegisterPractitioner", Controllers.RegisterPractitioner)
		admin.POST("/DeletePractitioner", Controllers.DeletePractitioner)
	}
}
