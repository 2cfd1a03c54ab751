package dto

import "onemore-backend/internal/entity"

type ExerciseQuery struct {
	Q           string
	MuscleGroup string
	Equipment   string
}

type ListExercisesResponse struct {
	Exercises []entity.Exercise `json:"exercises"`
}

type ListFoodsResponse struct {
	Foods []entity.Food `json:"foods"`
}
