package model

type HallType string

const (
	HallStandard HallType = "STANDARD"
	HallPremium  HallType = "PREMIUM"
	HallIMAX     HallType = "IMAX"
	Hall4DX      HallType = "4DX"
)

type HallStatus string

const (
	HallActive      HallStatus = "ACTIVE"
	HallMaintenance HallStatus = "MAINTENANCE"
	HallClosed      HallStatus = "CLOSED"
)

type Hall struct {
	DTO
	Name        string     `gorm:"not null" validate:"required" json:"name"`
	Type        HallType   `gorm:"size:20;default:STANDARD" json:"type"`
	Capacity    int        `json:"capacity"`
	Rows        int        `json:"rows"`
	ScreenType  string     `json:"screenType"`
	SoundSystem string     `json:"soundSystem"`
	Status      HallStatus `gorm:"size:20;default:ACTIVE" json:"status"`
	CinemaId    uint       `gorm:"not null;index" json:"cinemaId"`
	Cinema      Cinema     `gorm:"foreignKey:CinemaId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"cinema"`
}

type CreateHallInput struct {
	CinemaId    uint     `json:"cinemaId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Type        HallType `json:"type" validate:"omitempty,oneof=STANDARD PREMIUM IMAX 4DX"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Rows        int      `json:"rows" validate:"omitempty,min=1"`
	ScreenType  string   `json:"screenType"`
	SoundSystem string   `json:"soundSystem"`
}

type EditHallInput struct {
	Name        *string   `json:"name"`
	Type        *HallType `json:"type" validate:"omitempty,oneof=STANDARD PREMIUM IMAX 4DX"`
	Capacity    *int      `json:"capacity" validate:"omitempty,min=1"`
	Rows        *int      `json:"rows" validate:"omitempty,min=1"`
	ScreenType  *string   `json:"screenType"`
	SoundSystem *string   `json:"soundSystem"`
}

type FilterHall struct {
	Pagination
	CinemaId uint   `query:"cinemaId"`
	Status   string `query:"status"`
}
