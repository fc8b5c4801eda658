package CronJobs

import (
	"DentaDesk/Models"
	"DentaDesk/SSE"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// UnpaidQuoteReminder flags quotes still unpaid past the grace window so the
// front desk can chase them.
type UnpaidQuoteReminder struct {
	DB          *gorm.DB
	GraceWindow time.Duration
}

func NewUnpaidQuoteReminder(db *gorm.DB) *UnpaidQuoteReminder {
	return &UnpaidQuoteReminder{
		DB:          db,
		GraceWindow: 14 * 24 * time.Hour,
	}
}

// StartReminderCron starts the daily overdue-quote check.
func (qr *UnpaidQuoteReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("08:00").Do(func() {
		log.Println("Running unpaid quote check...")
		if err := qr.FlagOverdueQuotes(); err != nil {
			log.Printf("Error checking unpaid quotes: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Unpaid quote reminder cron job started")

	return scheduler
}

func (qr *UnpaidQuoteReminder) FlagOverdueQuotes() error {
	cutoff := time.Now().Add(-qr.GraceWindow)

	var quotes []Models.Quote
	result := qr.DB.Model(&Models.Quote{}).
		Where("payment_status = ? AND created_at < ?", Models.PaymentStatusUnpaid, cutoff).
		Find(&quotes)

	if result.Error != nil {
		return fmt.Errorf("failed to query unpaid quotes: %w", result.Error)
	}

	for _, quote := range quotes {
		var patient Models.Patient
		if err := qr.DB.First(&patient, quote.PatientID).Error; err != nil {
			log.Printf("Failed to find patient for quote %s: %v", quote.Number, err)
			continue
		}
		log.Printf("Quote %s for %s unpaid since %s", quote.Number, patient.Name, quote.CreatedAt.Format("2006-01-02"))
	}

	if len(quotes) > 0 {
		SSE.Broadcaster.Broadcast("refresh")
	}

	return nil
}
