package service

import (
	"context"
	"strings"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/repository"
)

type ICatalogService interface {
	ListExercises(ctx context.Context, query dto.ExerciseQuery) (*dto.ListExercisesResponse, error)
	ListFoods(ctx context.Context, q string) (*dto.ListFoodsResponse, error)
}

type catalogService struct {
	store *repository.DocumentStore
}

func NewCatalogService(store *repository.DocumentStore) ICatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) ListExercises(ctx context.Context, query dto.ExerciseQuery) (*dto.ListExercisesResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query.Q))
	muscle := strings.ToLower(strings.TrimSpace(query.MuscleGroup))
	equipment := strings.ToLower(strings.TrimSpace(query.Equipment))

	exercises := []entity.Exercise{}
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		changed := repository.EnsureSeedExercises(doc)
		for _, x := range doc.Exercises {
			if q != "" && !strings.Contains(strings.ToLower(x.Name), q) {
				continue
			}
			if muscle != "" && strings.ToLower(x.MuscleGroup) != muscle {
				continue
			}
			if equipment != "" && strings.ToLower(x.Equipment) != equipment {
				continue
			}
			exercises = append(exercises, x)
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListExercisesResponse{Exercises: exercises}, nil
}

func (s *catalogService) ListFoods(ctx context.Context, q string) (*dto.ListFoodsResponse, error) {
	q = strings.ToLower(strings.TrimSpace(q))

	foods := []entity.Food{}
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		changed := repository.EnsureSeedFoods(doc)
		for _, f := range doc.Foods {
			if q != "" && !strings.Contains(strings.ToLower(f.Name), q) {
				continue
			}
			foods = append(foods, f)
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListFoodsResponse{Foods: foods}, nil
}
