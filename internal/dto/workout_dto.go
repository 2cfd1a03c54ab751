package dto

import "onemore-backend/internal/entity"

type CreateWorkoutLogRequest struct {
	Title     string                  `json:"title" validate:"required"`
	Duration  int                     `json:"duration"`
	Volume    float64                 `json:"volume"`
	Calories  float64                 `json:"calories"`
	Exercises []entity.LoggedExercise `json:"exercises"`
}

type WorkoutLogResponse struct {
	Log entity.WorkoutLog `json:"log"`
}

type ListWorkoutLogsResponse struct {
	Logs []entity.WorkoutLog `json:"logs"`
}
