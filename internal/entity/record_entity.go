package entity

import "time"

type Record struct {
	Id       string    `json:"id"`
	UserId   string    `json:"userId"`
	Title    string    `json:"title"`
	Duration int       `json:"duration"`
	Volume   float64   `json:"volume"`
	Bpm      int       `json:"bpm"`
	Image    *string   `json:"image"`
	Date     time.Time `json:"date"`
}

// RecordStats is a derived projection, never persisted.
type RecordStats struct {
	Workouts    int     `json:"workouts"`
	TotalVolume float64 `json:"totalVolume"`
	AvgTime     int     `json:"avgTime"`
	ActiveDays  int     `json:"activeDays"`
}
