package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/repository"

	"github.com/google/uuid"
)

type IWorkoutService interface {
	ListLogs(ctx context.Context, user entity.User, dateFilter string) (*dto.ListWorkoutLogsResponse, error)
	CreateLog(ctx context.Context, user entity.User, req *dto.CreateWorkoutLogRequest) (*dto.WorkoutLogResponse, error)
}

type workoutService struct {
	store *repository.DocumentStore
}

func NewWorkoutService(store *repository.DocumentStore) IWorkoutService {
	return &workoutService{store: store}
}

func (s *workoutService) ListLogs(ctx context.Context, user entity.User, dateFilter string) (*dto.ListWorkoutLogsResponse, error) {
	logs := []entity.WorkoutLog{}
	s.store.View(func(doc *entity.Document) {
		for _, l := range doc.WorkoutLogs {
			if l.UserId != user.Id {
				continue
			}
			if dateFilter != "" && !strings.HasPrefix(l.CompletedAt.Format(time.RFC3339), dateFilter) {
				continue
			}
			logs = append(logs, l)
		}
	})

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CompletedAt.After(logs[j].CompletedAt)
	})

	return &dto.ListWorkoutLogsResponse{Logs: logs}, nil
}

func (s *workoutService) CreateLog(ctx context.Context, user entity.User, req *dto.CreateWorkoutLogRequest) (*dto.WorkoutLogResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.Validation("Workout title is required.")
	}

	exercises := req.Exercises
	if exercises == nil {
		exercises = []entity.LoggedExercise{}
	}

	log := entity.WorkoutLog{
		Id:          uuid.NewString(),
		UserId:      user.Id,
		Title:       title,
		Duration:    req.Duration,
		Volume:      req.Volume,
		Calories:    req.Calories,
		Exercises:   exercises,
		CompletedAt: time.Now(),
	}

	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		doc.WorkoutLogs = append(doc.WorkoutLogs, log)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.WorkoutLogResponse{Log: log}, nil
}
