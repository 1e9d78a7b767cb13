package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salonix/models"
	"salonix/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cachedSlots is the redis representation of a computed slot list. The
// service-mismatch warning is request-specific and never cached.
type cachedSlots struct {
	DayOfWeek string   `json:"dayOfWeek"`
	Slots     []string `json:"slots"`
	Note      string   `json:"note,omitempty"`
}

func slotCacheKey(workerID string, day time.Time) string {
	return utils.SlotCachePrefix + workerID + ":" + day.Format("2006-01-02")
}

// AvailableSlots resolves the worker's opening window for the date, subtracts
// occupied slots and attaches an advisory service-mismatch warning. The
// warning never removes slots or rejects the request.
func (s *DefaultSlotService) AvailableSlots(ctx context.Context, workerID string, date time.Time, service string) (*models.SlotAvailability, error) {
	day := utils.Midnight(date)

	worker, err := s.WorkerRepo.GetByID(ctx, workerID)
	if err != nil {
		if isRepoNotFound(err) {
			return nil, NewNotFoundError("worker", "Worker not found")
		}
		return nil, err
	}

	result := &models.SlotAvailability{
		Worker:  worker.Summary(),
		Date:    day,
		Warning: serviceWarning(worker.Services, service),
	}

	if cached := s.cacheGet(ctx, workerID, day); cached != nil {
		result.DayOfWeek = cached.DayOfWeek
		result.AvailableSlots = cached.Slots
		result.Note = cached.Note
		return result, nil
	}

	var salon *models.Salon
	if worker.SalonID != "" {
		salon, err = s.SalonRepo.GetByID(ctx, worker.SalonID)
		if err != nil && !isRepoNotFound(err) {
			return nil, err
		}
	}

	window := ResolveDayWindow(worker, salon, day)
	slots, err := window.Slots()
	if err != nil {
		return nil, err
	}

	occupied, err := s.occupiedSlots(ctx, worker, day)
	if err != nil {
		return nil, err
	}

	// Generation is already in ascending hour order; filtering preserves it.
	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := occupied[slot]; !taken {
			available = append(available, slot)
		}
	}

	result.DayOfWeek = window.DayOfWeek
	result.AvailableSlots = available
	result.Note = window.Note

	s.cacheSet(ctx, workerID, day, cachedSlots{
		DayOfWeek: window.DayOfWeek,
		Slots:     available,
		Note:      window.Note,
	})

	return result, nil
}

// serviceWarning returns the advisory mismatch warning, or "" when the
// requested service matches the catalog or is a generic placeholder.
func serviceWarning(services []models.ServiceEntry, requested string) string {
	if models.IsGenericService(requested) {
		return ""
	}
	if models.HasService(services, requested) {
		return ""
	}
	return fmt.Sprintf("Worker may not officially provide the %s service", requested)
}

func (s *DefaultSlotService) cacheGet(ctx context.Context, workerID string, day time.Time) *cachedSlots {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, slotCacheKey(workerID, day)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("slot cache read failed", zap.Error(err))
		}
		return nil
	}
	var cached cachedSlots
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *DefaultSlotService) cacheSet(ctx context.Context, workerID string, day time.Time, entry cachedSlots) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, slotCacheKey(workerID, day), data, utils.SlotCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("slot cache write failed", zap.Error(err))
	}
}
