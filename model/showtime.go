package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type ShowtimeStatus string

const (
	ShowtimeSelling   ShowtimeStatus = "SELLING"
	ShowtimeStopped   ShowtimeStatus = "STOPPED"
	ShowtimeCancelled ShowtimeStatus = "CANCELLED"
)

type DayType string

const (
	DayTypeWeekday DayType = "WEEKDAY"
	DayTypeWeekend DayType = "WEEKEND"
	DayTypeHoliday DayType = "HOLIDAY"
)

// SubtitleList stores subtitle language codes as a comma-joined column.
type SubtitleList []string

func (s SubtitleList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}
	return strings.Join(s, ","), nil
}

func (s *SubtitleList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported scan type for SubtitleList: %T", value)
	}
	if raw == "" {
		*s = nil
		return nil
	}
	*s = strings.Split(raw, ",")
	return nil
}

type Showtime struct {
	DTO
	PublicCode     string         `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime      time.Time      `gorm:"not null;index" validate:"required" json:"startTime"`
	EndTime        time.Time      `gorm:"not null" validate:"required" json:"endTime"`
	DayType        DayType        `gorm:"size:10" json:"dayType"`
	Format         string         `gorm:"size:10" json:"format"` // 2D, 3D, IMAX, 4DX
	Language       string         `gorm:"size:10" json:"language"`
	Subtitles      SubtitleList   `gorm:"size:100" json:"subtitles"`
	Status         ShowtimeStatus `gorm:"size:20;default:SELLING" json:"status"`
	MovieId        uint           `gorm:"index" json:"movieId"`
	MovieReleaseId uint           `json:"movieReleaseId"`
	CinemaId       uint           `gorm:"index" json:"cinemaId"`
	HallId         uint           `gorm:"index" json:"hallId"`
	Movie          Movie          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"movie"`
	Release        MovieRelease   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieReleaseId" json:"release"`
	Cinema         Cinema         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:CinemaId" json:"cinema"`
	Hall           Hall           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:HallId" json:"hall"`
}

type FilterShowtimeInput struct {
	Pagination
	MovieId  uint   `query:"movieId"`
	CinemaId uint   `query:"cinemaId"`
	HallId   uint   `query:"hallId"`
	Date     string `query:"date"`
	Status   string `query:"status" validate:"omitempty,oneof=SELLING STOPPED CANCELLED"`
	Search   string `query:"search"` // movie title substring
}

type UpdateShowtimeInput struct {
	StartTime *time.Time `json:"startTime"`
	HallId    *uint      `json:"hallId"`
	Format    *string    `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	Language  *string    `json:"language"`
	Subtitles *[]string  `json:"subtitles"`
}

type UpdateShowtimeStatusInput struct {
	Status ShowtimeStatus `json:"status" validate:"required,oneof=SELLING STOPPED CANCELLED"`
}
