package model

import "cinema_scheduler/utils"

type Movie struct {
	DTO
	Title          string           `gorm:"not null;index" validate:"required" json:"title"`
	OriginalTitle  string           `json:"originalTitle"`
	Slug           string           `gorm:"uniqueIndex" json:"slug"`
	Genre          string           `gorm:"index" json:"genre"`
	Runtime        int              `gorm:"not null" validate:"required,min=1" json:"runtime"` // minutes
	Overview       string           `gorm:"type:text" json:"overview"`
	Language       string           `gorm:"size:10" json:"language"`
	Country        string           `json:"country"`
	Director       string           `json:"director"`
	AgeRating      string           `gorm:"size:5" validate:"required,oneof=P K T13 T16 T18 C" json:"ageRating"`
	PosterUrl      string           `json:"posterUrl"`
	TrailerUrl     string           `json:"trailerUrl"`
	DateRelease    utils.CustomDate `gorm:"type:date;not null" validate:"required" json:"dateRelease"`
	StatusMovie    string           `gorm:"not null;default:COMING_SOON" validate:"required,oneof=COMING_SOON NOW_SHOWING ENDED" json:"statusMovie"`
	Releases       []MovieRelease   `gorm:"foreignKey:MovieId" json:"releases"`
}

type Movies []Movie

type CreateMovieInput struct {
	Title         string  `json:"title" validate:"required"`
	OriginalTitle string  `json:"originalTitle"`
	Genre         string  `json:"genre" validate:"required"`
	Runtime       int     `json:"runtime" validate:"required,min=1"`
	Overview      string  `json:"overview"`
	Language      string  `json:"language" validate:"required"`
	Country       string  `json:"country"`
	Director      string  `json:"director"`
	AgeRating     string  `json:"ageRating" validate:"required,oneof=P K T13 T16 T18 C"`
	PosterUrl     string  `json:"posterUrl" validate:"omitempty,url"`
	TrailerUrl    string  `json:"trailerUrl" validate:"omitempty,url"`
	DateRelease   string  `json:"dateRelease" validate:"required,datetime=2006-01-02"`
}

type EditMovieInput struct {
	Title         *string `json:"title"`
	OriginalTitle *string `json:"originalTitle"`
	Genre         *string `json:"genre"`
	Runtime       *int    `json:"runtime" validate:"omitempty,min=1"`
	Overview      *string `json:"overview"`
	Language      *string `json:"language"`
	Country       *string `json:"country"`
	Director      *string `json:"director"`
	AgeRating     *string `json:"ageRating" validate:"omitempty,oneof=P K T13 T16 T18 C"`
	PosterUrl     *string `json:"posterUrl" validate:"omitempty,url"`
	TrailerUrl    *string `json:"trailerUrl" validate:"omitempty,url"`
	DateRelease   *string `json:"dateRelease" validate:"omitempty,datetime=2006-01-02"`
	StatusMovie   *string `json:"statusMovie" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
}

type FilterMovie struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Status    string `query:"status"`
	Genre     string `query:"genre"`
}
