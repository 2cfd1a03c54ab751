package entity

import "time"

type Meal struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyNutritionLog is upserted by (userId, date); Date uses the
// YYYY-MM-DD form so a day is a stable key across timezones.
type DailyNutritionLog struct {
	Id        string          `json:"id"`
	UserId    string          `json:"userId"`
	Date      string          `json:"date"`
	Meals     []Meal          `json:"meals"`
	Totals    NutritionTotals `json:"totals"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
