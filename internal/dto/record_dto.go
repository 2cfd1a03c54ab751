package dto

import "onemore-backend/internal/entity"

type CreateRecordRequest struct {
	Title    string  `json:"title" validate:"required"`
	Duration int     `json:"duration" validate:"required"`
	Volume   float64 `json:"volume" validate:"required"`
	Bpm      int     `json:"bpm"`
	Image    *string `json:"image"`
}

// UpdateRecordRequest is field-wise partial; nil means "leave as is".
type UpdateRecordRequest struct {
	Title    *string  `json:"title"`
	Duration *int     `json:"duration"`
	Volume   *float64 `json:"volume"`
	Bpm      *int     `json:"bpm"`
}

type RecordResponse struct {
	Record entity.Record `json:"record"`
}

type ListRecordsResponse struct {
	Records []entity.Record    `json:"records"`
	Stats   entity.RecordStats `json:"stats"`
}

type DeleteRecordResponse struct {
	Deleted bool `json:"deleted"`
}
