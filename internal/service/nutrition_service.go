package service

import (
	"context"
	"strings"
	"time"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/repository"

	"github.com/google/uuid"
)

type INutritionService interface {
	GetDailyLog(ctx context.Context, user entity.User, date string) (*dto.DailyNutritionResponse, error)
	UpsertDailyLog(ctx context.Context, user entity.User, req *dto.UpsertDailyNutritionRequest) (*dto.DailyNutritionResponse, error)
}

type nutritionService struct {
	store *repository.DocumentStore
}

func NewNutritionService(store *repository.DocumentStore) INutritionService {
	return &nutritionService{store: store}
}

func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}

// GetDailyLog returns the log for the given day, creating an empty one
// on first access so the client always has something to render.
func (s *nutritionService) GetDailyLog(ctx context.Context, user entity.User, date string) (*dto.DailyNutritionResponse, error) {
	date = normalizeDate(date)

	var log entity.DailyNutritionLog
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		for _, l := range doc.DailyNutritionLogs {
			if l.UserId == user.Id && l.Date == date {
				log = l
				return false, nil
			}
		}

		log = entity.DailyNutritionLog{
			Id:        uuid.NewString(),
			UserId:    user.Id,
			Date:      date,
			Meals:     []entity.Meal{},
			Totals:    entity.NutritionTotals{},
			UpdatedAt: time.Now(),
		}
		doc.DailyNutritionLogs = append(doc.DailyNutritionLogs, log)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DailyNutritionResponse{Log: log}, nil
}

func (s *nutritionService) UpsertDailyLog(ctx context.Context, user entity.User, req *dto.UpsertDailyNutritionRequest) (*dto.DailyNutritionResponse, error) {
	date := normalizeDate(req.Date)

	meals := req.Meals
	if meals == nil {
		meals = []entity.Meal{}
	}
	totals := entity.NutritionTotals{}
	if req.Totals != nil {
		totals = *req.Totals
	}

	var log entity.DailyNutritionLog
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		idx := -1
		for i := range doc.DailyNutritionLogs {
			if doc.DailyNutritionLogs[i].UserId == user.Id && doc.DailyNutritionLogs[i].Date == date {
				idx = i
				break
			}
		}

		log = entity.DailyNutritionLog{
			Id:        uuid.NewString(),
			UserId:    user.Id,
			Date:      date,
			Meals:     meals,
			Totals:    totals,
			UpdatedAt: time.Now(),
		}
		if idx >= 0 {
			log.Id = doc.DailyNutritionLogs[idx].Id
			doc.DailyNutritionLogs[idx] = log
		} else {
			doc.DailyNutritionLogs = append(doc.DailyNutritionLogs, log)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DailyNutritionResponse{Log: log}, nil
}
