package main

import (
	"DentaDesk/CronJobs"
	"DentaDesk/Models"
	"DentaDesk/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://dentadesk.app", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	reminderService := CronJobs.NewUnpaidQuoteReminder(Models.DB)
	scheduler := reminderService.StartReminderCron()
	_ = scheduler
	router.Run(":3005")
}
