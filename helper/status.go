package helper

import (
	"log"
	"time"

	"cinema_scheduler/database"
	"cinema_scheduler/model"

	"github.com/robfig/cron/v3"
)

var showtimeScheduler *cron.Cron

func StartShowtimeStatusScheduler() {
	showtimeScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := showtimeScheduler.AddFunc("*/5 * * * *", stopFinishedShowtimes)
	if err != nil {
		log.Printf("cannot start showtime status scheduler: %v", err)
		return
	}

	showtimeScheduler.Start()
	log.Println("showtime status scheduler started (every 5 minutes)")
}

// stopFinishedShowtimes flips SELLING showtimes whose end time has passed to
// STOPPED so they drop out of the selling views.
func stopFinishedShowtimes() {
	now := time.Now()
	result := database.DB.Model(&model.Showtime{}).
		Where("status = ? AND end_time < ?", model.ShowtimeSelling, now).
		Update("status", model.ShowtimeStopped)

	if result.Error != nil {
		log.Printf("cannot update finished showtimes: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("stopped %d finished showtimes", result.RowsAffected)
	}
}

func StopShowtimeStatusScheduler() {
	if showtimeScheduler != nil {
		showtimeScheduler.Stop()
		log.Println("showtime status scheduler stopped")
	}
}
