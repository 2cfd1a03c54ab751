package entity

import "time"

type LoggedExercise struct {
	Id     string  `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type WorkoutLog struct {
	Id          string           `json:"id"`
	UserId      string           `json:"userId"`
	Title       string           `json:"title"`
	Duration    int              `json:"duration"`
	Volume      float64          `json:"volume"`
	Calories    float64          `json:"calories"`
	Exercises   []LoggedExercise `json:"exercises"`
	CompletedAt time.Time        `json:"completedAt"`
}
