package helper

import (
	"log"
	"time"

	"cinema_scheduler/config"
	"cinema_scheduler/database"
	"cinema_scheduler/model"

	"github.com/go-co-op/gocron/v2"
)

var releaseScheduler gocron.Scheduler

// RollReleaseStatuses advances every movie release along
// UPCOMING -> ACTIVE -> ENDED based on today's date.
func RollReleaseStatuses() {
	log.Println("[CRON] RollReleaseStatuses triggered")

	db := database.DB
	loc, err := time.LoadLocation(config.DefaultTimezone())
	if err != nil {
		loc = time.FixedZone("ICT", 7*3600)
	}
	today := time.Now().In(loc)
	todayKey := today.Format("2006-01-02")

	var releases []model.MovieRelease
	if err := db.Where("status != ?", model.ReleaseEnded).Find(&releases).Error; err != nil {
		log.Printf("cannot scan releases: %v", err)
		return
	}

	for _, release := range releases {
		startKey := release.StartDate.Format("2006-01-02")
		endKey := release.EndDate.Format("2006-01-02")
		updated := false

		if release.Status == model.ReleaseUpcoming && todayKey >= startKey {
			release.Status = model.ReleaseActive
			updated = true
		}
		if release.Status == model.ReleaseActive && todayKey > endKey {
			release.Status = model.ReleaseEnded
			updated = true
		}

		if updated {
			if err := db.Model(&model.MovieRelease{}).
				Where("id = ?", release.ID).
				Update("status", release.Status).Error; err != nil {
				log.Printf("cannot update release %d: %v", release.ID, err)
			}
		}
	}
}

func StartReleaseStatusScheduler() {
	loc, err := time.LoadLocation(config.DefaultTimezone())
	if err != nil {
		loc = time.FixedZone("ICT", 7*3600)
	}
	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
	)
	if err != nil {
		log.Fatal(err)
	}

	releaseScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(RollReleaseStatuses),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("release status scheduler started (00:05 daily)")
}

func StopReleaseStatusScheduler() {
	if releaseScheduler != nil {
		_ = releaseScheduler.Shutdown()
	}
}
