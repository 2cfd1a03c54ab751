package repository

import (
	"time"

	"onemore-backend/internal/entity"

	"github.com/google/uuid"
)

// First-read seeding: the catalogs and the community feed start with a
// small fixed set so a fresh install is not an empty app. Each helper
// reports whether it changed the document.

func EnsureSeedExercises(doc *entity.Document) bool {
	if len(doc.Exercises) > 0 {
		return false
	}
	doc.Exercises = []entity.Exercise{
		{Id: uuid.NewString(), Name: "Incline Barbell Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{Id: uuid.NewString(), Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Equipment: "Dumbbell"},
		{Id: uuid.NewString(), Name: "Flat Barbell Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{Id: uuid.NewString(), Name: "Cable Crossover", MuscleGroup: "Chest", Equipment: "Cable"},
		{Id: uuid.NewString(), Name: "Parallel Bar Dips", MuscleGroup: "Triceps", Equipment: "Bodyweight"},
		{Id: uuid.NewString(), Name: "Flat Dumbbell Fly", MuscleGroup: "Chest", Equipment: "Dumbbell"},
	}
	return true
}

func EnsureSeedFoods(doc *entity.Document) bool {
	if len(doc.Foods) > 0 {
		return false
	}
	doc.Foods = []entity.Food{
		{Id: uuid.NewString(), Name: "Whey Protein Powder", CaloriesPer100g: 302, ProteinPer100g: 75, CarbsPer100g: 0, FatPer100g: 0},
		{Id: uuid.NewString(), Name: "Banana", CaloriesPer100g: 95, ProteinPer100g: 1, CarbsPer100g: 22, FatPer100g: 0},
		{Id: uuid.NewString(), Name: "Fresh Kale", CaloriesPer100g: 46, ProteinPer100g: 5, CarbsPer100g: 5, FatPer100g: 0},
		{Id: uuid.NewString(), Name: "Greek Yogurt (Non-fat)", CaloriesPer100g: 75, ProteinPer100g: 10, CarbsPer100g: 4, FatPer100g: 1},
		{Id: uuid.NewString(), Name: "Steamed Broccoli", CaloriesPer100g: 30, ProteinPer100g: 2, CarbsPer100g: 2, FatPer100g: 1},
		{Id: uuid.NewString(), Name: "Cooked White Rice", CaloriesPer100g: 116, ProteinPer100g: 2, CarbsPer100g: 25, FatPer100g: 0},
	}
	return true
}

func EnsureSeedPosts(doc *entity.Document) bool {
	if len(doc.Posts) > 0 {
		return false
	}
	now := time.Now()
	image := "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800&q=80"
	doc.Posts = []entity.Post{
		{
			Id:           uuid.NewString(),
			UserId:       "seed-marcus",
			AuthorName:   "Marcus Chen",
			AuthorAvatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=300&q=80",
			Content:      "Hit a strong push session today. 3,240kg total volume. OneMore plan is dialed in.",
			Image:        &image,
			Likes:        []string{"seed-a", "seed-b", "seed-c"},
			Comments: []entity.Comment{
				{
					Id:         uuid.NewString(),
					UserId:     "seed-a",
					AuthorName: "Coach_K",
					Text:       "Great consistency. Keep progressive overload.",
					CreatedAt:  now.Add(-24 * time.Minute),
				},
			},
			CreatedAt: now.Add(-30 * time.Minute),
		},
	}
	return true
}
