package database

import (
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"log"
	"time"

	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	cinemas := []model.Cinema{
		{
			Slug:     "galaxy-nguyen-du",
			Name:     "Galaxy Nguyễn Du",
			Address:  "116 Nguyễn Du",
			City:     "Hồ Chí Minh",
			District: "Quận 1",
			Phone:    "19002224",
			Email:    "nguyendu@galaxy.vn",
			Timezone: "Asia/Ho_Chi_Minh",
			Status:   model.CinemaActive,
		},
		{
			Slug:     "galaxy-da-nang",
			Name:     "Galaxy Đà Nẵng",
			Address:  "478 Điện Biên Phủ",
			City:     "Đà Nẵng",
			District: "Thanh Khê",
			Phone:    "19002224",
			Email:    "danang@galaxy.vn",
			Timezone: "Asia/Ho_Chi_Minh",
			Status:   model.CinemaActive,
		},
	}
	for i := range cinemas {
		if err := db.Where(model.Cinema{Slug: cinemas[i].Slug}).FirstOrCreate(&cinemas[i]).Error; err != nil {
			log.Println("failed to seed cinema:", cinemas[i].Name, "error:", err)
		}
	}

	halls := []model.Hall{
		{Name: "Hall 1", Type: model.HallStandard, Capacity: 120, Rows: 10, ScreenType: "2D", SoundSystem: "Dolby 7.1", Status: model.HallActive, CinemaId: cinemas[0].ID},
		{Name: "Hall 2", Type: model.HallPremium, Capacity: 80, Rows: 8, ScreenType: "2D", SoundSystem: "Dolby Atmos", Status: model.HallActive, CinemaId: cinemas[0].ID},
		{Name: "Hall IMAX", Type: model.HallIMAX, Capacity: 250, Rows: 15, ScreenType: "IMAX", SoundSystem: "IMAX 12.0", Status: model.HallActive, CinemaId: cinemas[1].ID},
	}
	for i := range halls {
		if err := db.Where(model.Hall{Name: halls[i].Name, CinemaId: halls[i].CinemaId}).FirstOrCreate(&halls[i]).Error; err != nil {
			log.Println("failed to seed hall:", halls[i].Name, "error:", err)
		}
	}

	movies := []model.Movie{
		{
			Title:       "Mai",
			Slug:        "mai",
			Genre:       "Drama",
			Runtime:     131,
			Language:    "Tiếng Việt",
			Country:     "Việt Nam",
			Director:    "Trấn Thành",
			AgeRating:   "T18",
			DateRelease: utils.CustomDate{Time: parseDate("2025-02-10")},
			StatusMovie: "NOW_SHOWING",
		},
		{
			Title:       "Dune: Part Two",
			Slug:        "dune-part-two",
			Genre:       "Sci-Fi",
			Runtime:     166,
			Language:    "English",
			Country:     "USA",
			Director:    "Denis Villeneuve",
			AgeRating:   "T13",
			DateRelease: utils.CustomDate{Time: parseDate("2025-03-01")},
			StatusMovie: "NOW_SHOWING",
		},
	}
	for i := range movies {
		if err := db.Where(model.Movie{Slug: movies[i].Slug}).FirstOrCreate(&movies[i]).Error; err != nil {
			log.Println("failed to seed movie:", movies[i].Title, "error:", err)
		}
	}

	releases := []model.MovieRelease{
		{MovieId: movies[0].ID, StartDate: utils.CustomDate{Time: parseDate("2025-02-10")}, EndDate: utils.CustomDate{Time: parseDate("2025-04-10")}, Status: model.ReleaseActive},
		{MovieId: movies[1].ID, StartDate: utils.CustomDate{Time: parseDate("2025-03-01")}, EndDate: utils.CustomDate{Time: parseDate("2025-05-01")}, Status: model.ReleaseActive},
	}
	for i := range releases {
		if err := db.Where(model.MovieRelease{MovieId: releases[i].MovieId, StartDate: releases[i].StartDate}).FirstOrCreate(&releases[i]).Error; err != nil {
			log.Println("failed to seed release for movie id:", releases[i].MovieId, "error:", err)
		}
	}

	holidays := []model.Holiday{
		{Name: "Tết Dương Lịch", Date: parseDate("2025-01-01"), IsRecurring: true},
		{Name: "Giỗ Tổ Hùng Vương", Date: parseDate("2025-04-07"), IsRecurring: false},
		{Name: "Ngày Giải Phóng", Date: parseDate("2025-04-30"), IsRecurring: true},
		{Name: "Quốc Tế Lao Động", Date: parseDate("2025-05-01"), IsRecurring: true},
		{Name: "Quốc Khánh", Date: parseDate("2025-09-02"), IsRecurring: true},
	}
	for i := range holidays {
		if err := db.Where(model.Holiday{Name: holidays[i].Name, Date: holidays[i].Date}).FirstOrCreate(&holidays[i]).Error; err != nil {
			log.Println("failed to seed holiday:", holidays[i].Name, "error:", err)
		}
	}
}
