// File: /models/motorcycle.go
package models

import (
	"time"
)

// Motorcycle is a catalog entry keyed by its NIV (vehicle identification
// number). Every record doubles as a redirect target: ShortURL is a generated
// 3-character code and Visits counts resolved redirects.
type Motorcycle struct {
	NIV              string  `json:"niv" gorm:"primaryKey;size:17"`
	Brand            string  `json:"brand" gorm:"not null;size:50"`
	Model            string  `json:"model" gorm:"not null;size:50"`
	Year             int     `json:"year" gorm:"not null"`
	Category         string  `json:"category" gorm:"not null;size:50"`
	Rating           float64 `json:"rating" gorm:"not null"`
	Displacement     int     `json:"displacement" gorm:"not null"`
	Power            float64 `json:"power" gorm:"not null"`
	Torque           int     `json:"torque" gorm:"not null"`
	EngineCylinders  string  `json:"engine_cylinders" gorm:"not null;size:20"`
	EngineStroke     string  `json:"engine_stroke" gorm:"not null;size:20"`
	Gearbox          string  `json:"gearbox" gorm:"not null;size:50"`
	Bore             int     `json:"bore" gorm:"not null"`
	Stroke           float64 `json:"stroke" gorm:"not null"`
	TransmissionType string  `json:"transmission_type" gorm:"not null;size:50"`
	FrontBrakes      string  `json:"front_brakes" gorm:"not null;size:50"`
	RearBrakes       string  `json:"rear_brakes" gorm:"not null;size:50"`
	FrontSuspension  string  `json:"front_suspension" gorm:"not null;size:50"`
	RearSuspension   string  `json:"rear_suspension" gorm:"not null;size:50"`
	FrontTire        string  `json:"front_tire" gorm:"not null;size:50"`
	RearTire         string  `json:"rear_tire" gorm:"not null;size:50"`
	DryWeight        int     `json:"dry_weight" gorm:"not null"`
	Wheelbase        int     `json:"wheelbase" gorm:"not null"`
	FuelCapacity     int     `json:"fuel_capacity" gorm:"not null"`
	FuelSystem       string  `json:"fuel_system" gorm:"not null;size:50"`
	FuelControl      string  `json:"fuel_control" gorm:"not null;size:50"`
	SeatHeight       float64 `json:"seat_height" gorm:"not null"`
	CoolingSystem    string  `json:"cooling_system" gorm:"not null;size:200"`
	ColorOptions     string  `json:"color_options" gorm:"not null;size:200"`

	URL      string `json:"url" gorm:"uniqueIndex;not null;size:500"`
	ShortURL string `json:"short_url" gorm:"uniqueIndex;not null;size:3"`
	Visits   int    `json:"visit_count" gorm:"not null;default:0"`
	UserID   uint   `json:"user_id" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
