package dto

import "onemore-backend/internal/entity"

type UpsertDailyNutritionRequest struct {
	Date   string                  `json:"date"`
	Meals  []entity.Meal           `json:"meals"`
	Totals *entity.NutritionTotals `json:"totals"`
}

type DailyNutritionResponse struct {
	Log entity.DailyNutritionLog `json:"log"`
}
