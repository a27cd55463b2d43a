package model

type CinemaStatus string

const (
	CinemaActive      CinemaStatus = "ACTIVE"
	CinemaMaintenance CinemaStatus = "MAINTENANCE"
	CinemaClosed      CinemaStatus = "CLOSED"
)

type Cinema struct {
	DTO
	Slug        string       `gorm:"uniqueIndex" json:"slug"`
	Name        string       `gorm:"not null" validate:"required" json:"name"`
	Address     string       `gorm:"not null" validate:"required" json:"address"`
	City        string       `gorm:"index" json:"city"`
	District    string       `json:"district"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Description *string      `json:"description"`
	Timezone    string       `gorm:"size:40" json:"timezone"` // IANA name, e.g. Asia/Ho_Chi_Minh
	Status      CinemaStatus `gorm:"size:20;default:ACTIVE" json:"status"`
	Halls       []Hall       `gorm:"foreignKey:CinemaId" json:"halls"`
	HallCount   int64        `gorm:"-" json:"hallCount"`
}

type CreateCinemaInput struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	City        string  `json:"city" validate:"required"`
	District    string  `json:"district"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Description *string `json:"description"`
	Timezone    string  `json:"timezone" validate:"omitempty,timezone"`
}

type EditCinemaInput struct {
	Name        *string       `json:"name"`
	Address     *string       `json:"address"`
	City        *string       `json:"city"`
	District    *string       `json:"district"`
	Phone       *string       `json:"phone"`
	Email       *string       `json:"email" validate:"omitempty,email"`
	Description *string       `json:"description"`
	Timezone    *string       `json:"timezone" validate:"omitempty,timezone"`
	Status      *CinemaStatus `json:"status" validate:"omitempty,oneof=ACTIVE MAINTENANCE CLOSED"`
}

type FilterCinema struct {
	Pagination
	SearchKey string `query:"searchKey"`
	City      string `query:"city"`
	Status    string `query:"status"`
}
