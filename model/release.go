package model

import "cinema_scheduler/utils"

type ReleaseStatus string

const (
	ReleaseUpcoming ReleaseStatus = "UPCOMING"
	ReleaseActive   ReleaseStatus = "ACTIVE"
	ReleaseEnded    ReleaseStatus = "ENDED"
)

// MovieRelease is the window during which a movie edition may be scheduled.
type MovieRelease struct {
	DTO
	MovieId   uint             `gorm:"not null;index" json:"movieId"`
	StartDate utils.CustomDate `gorm:"type:date;not null" validate:"required" json:"startDate"`
	EndDate   utils.CustomDate `gorm:"type:date;not null" validate:"required" json:"endDate"`
	Status    ReleaseStatus    `gorm:"size:20;default:UPCOMING" json:"status"`
	Note      string           `json:"note"`
	Movie     Movie            `gorm:"foreignKey:MovieId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"movie"`
}

type CreateReleaseInput struct {
	MovieId   uint   `json:"movieId" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Note      string `json:"note"`
}

type UpdateReleaseInput struct {
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Note      *string `json:"note"`
}
