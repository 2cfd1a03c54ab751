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

type IRecordService interface {
	ListRecords(ctx context.Context, user entity.User, dateFilter string) (*dto.ListRecordsResponse, error)
	CreateRecord(ctx context.Context, user entity.User, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
	UpdateRecord(ctx context.Context, user entity.User, recordId string, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error)
	DeleteRecord(ctx context.Context, user entity.User, recordId string) (*dto.DeleteRecordResponse, error)
}

type recordService struct {
	store *repository.DocumentStore
}

func NewRecordService(store *repository.DocumentStore) IRecordService {
	return &recordService{store: store}
}

func buildRecordStats(records []entity.Record) entity.RecordStats {
	stats := entity.RecordStats{Workouts: len(records)}

	totalDuration := 0
	days := map[string]struct{}{}
	for _, r := range records {
		stats.TotalVolume += r.Volume
		totalDuration += r.Duration
		days[r.Date.Format("2006-01-02")] = struct{}{}
	}
	if stats.Workouts > 0 {
		stats.AvgTime = (totalDuration + stats.Workouts/2) / stats.Workouts
	}
	stats.ActiveDays = len(days)
	return stats
}

func (s *recordService) ListRecords(ctx context.Context, user entity.User, dateFilter string) (*dto.ListRecordsResponse, error) {
	records := []entity.Record{}
	s.store.View(func(doc *entity.Document) {
		for _, r := range doc.Records {
			if r.UserId != user.Id {
				continue
			}
			if dateFilter != "" && !strings.HasPrefix(r.Date.Format(time.RFC3339), dateFilter) {
				continue
			}
			records = append(records, r)
		}
	})

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return &dto.ListRecordsResponse{Records: records, Stats: buildRecordStats(records)}, nil
}

func (s *recordService) CreateRecord(ctx context.Context, user entity.User, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.Duration == 0 || req.Volume == 0 {
		return nil, apperror.Validation("Title, duration, and volume are required.")
	}

	record := entity.Record{
		Id:       uuid.NewString(),
		UserId:   user.Id,
		Title:    title,
		Duration: req.Duration,
		Volume:   req.Volume,
		Bpm:      req.Bpm,
		Image:    req.Image,
		Date:     time.Now(),
	}

	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		doc.Records = append(doc.Records, record)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordResponse{Record: record}, nil
}

func (s *recordService) UpdateRecord(ctx context.Context, user entity.User, recordId string, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	var updated entity.Record
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		var record *entity.Record
		for i := range doc.Records {
			if doc.Records[i].Id == recordId && doc.Records[i].UserId == user.Id {
				record = &doc.Records[i]
				break
			}
		}
		if record == nil {
			return false, apperror.NotFound("Record not found.")
		}

		if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
			record.Title = strings.TrimSpace(*req.Title)
		}
		if req.Duration != nil && *req.Duration != 0 {
			record.Duration = *req.Duration
		}
		if req.Volume != nil && *req.Volume != 0 {
			record.Volume = *req.Volume
		}
		if req.Bpm != nil {
			record.Bpm = *req.Bpm
		}

		updated = *record
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordResponse{Record: updated}, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, user entity.User, recordId string) (*dto.DeleteRecordResponse, error) {
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		for i := range doc.Records {
			if doc.Records[i].Id == recordId && doc.Records[i].UserId == user.Id {
				doc.Records = append(doc.Records[:i], doc.Records[i+1:]...)
				return true, nil
			}
		}
		return false, apperror.NotFound("Record not found.")
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteRecordResponse{Deleted: true}, nil
}
