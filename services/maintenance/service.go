package maintenance

import (
	"context"
	"fmt"

	bookingRepo "salonix/database/repository/booking"
	salonRepo "salonix/database/repository/salon"
	workerRepo "salonix/database/repository/worker"
	"salonix/models"
	"salonix/utils"

	"go.uber.org/zap"
)

// ReconcileReport summarizes a worker-cache reconciliation run.
type ReconcileReport struct {
	WorkersScanned int `json:"workersScanned"`
	WorkersUpdated int `json:"workersUpdated"`
	CacheEntries   int `json:"cacheEntries"`
}

// MigrationReport summarizes a legacy-service migration run.
type MigrationReport struct {
	WorkersUpdated int `json:"workersUpdated"`
	SalonsUpdated  int `json:"salonsUpdated"`
}

// MaintenanceService rebuilds denormalized state from the authoritative
// collections. Both operations are idempotent; running them twice in a row
// leaves the second run with nothing to change.
type MaintenanceService struct {
	WorkerRepo  workerRepo.WorkerRepository
	SalonRepo   salonRepo.SalonRepository
	BookingRepo bookingRepo.BookingRepository
}

// ReconcileWorkerCaches rewrites every worker's booking cache from the active
// bookings in the authoritative collection, dropping stale entries for
// cancelled bookings and restoring entries lost to failed cache writes.
func (s *MaintenanceService) ReconcileWorkerCaches(ctx context.Context) (*ReconcileReport, error) {
	workers, err := s.WorkerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}

	report := &ReconcileReport{WorkersScanned: len(workers)}
	for _, worker := range workers {
		active, err := s.BookingRepo.FindActiveByWorker(ctx, worker.ID)
		if err != nil {
			return report, fmt.Errorf("failed to load bookings for worker %s: %w", worker.ID, err)
		}

		entries := make([]models.WorkerBooking, 0, len(active))
		for _, b := range active {
			entries = append(entries, models.WorkerBooking{
				Date:      b.Date,
				TimeSlot:  b.TimeSlot,
				CreatedAt: b.CreatedAt,
			})
		}
		if cacheMatches(worker.Bookings, entries) {
			report.CacheEntries += len(entries)
			continue
		}
		if err := s.WorkerRepo.ReplaceBookings(ctx, worker.ID, entries); err != nil {
			return report, fmt.Errorf("failed to rewrite cache for worker %s: %w", worker.ID, err)
		}
		report.WorkersUpdated++
		report.CacheEntries += len(entries)
	}

	utils.GetLogger().Info("worker caches reconciled",
		zap.Int("scanned", report.WorkersScanned),
		zap.Int("updated", report.WorkersUpdated))
	return report, nil
}

// MigrateLegacyServices rewrites every worker and salon service list in the
// canonical shape. Legacy shapes are already normalized at decode time, so a
// plain write-back persists the canonical form.
func (s *MaintenanceService) MigrateLegacyServices(ctx context.Context) (*MigrationReport, error) {
	report := &MigrationReport{}

	workers, err := s.WorkerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	for _, worker := range workers {
		if len(worker.Services) == 0 {
			continue
		}
		if err := s.WorkerRepo.ReplaceServices(ctx, worker.ID, worker.Services); err != nil {
			return report, fmt.Errorf("failed to migrate services for worker %s: %w", worker.ID, err)
		}
		report.WorkersUpdated++
	}

	salons, err := s.SalonRepo.GetAll(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to load salons: %w", err)
	}
	for _, salon := range salons {
		if len(salon.Services) == 0 {
			continue
		}
		if err := s.SalonRepo.ReplaceServices(ctx, salon.ID, salon.Services); err != nil {
			return report, fmt.Errorf("failed to migrate services for salon %s: %w", salon.ID, err)
		}
		report.SalonsUpdated++
	}

	utils.GetLogger().Info("legacy services migrated",
		zap.Int("workers", report.WorkersUpdated),
		zap.Int("salons", report.SalonsUpdated))
	return report, nil
}

func cacheMatches(current, want []models.WorkerBooking) bool {
	if len(current) != len(want) {
		return false
	}
	seen := make(map[string]int, len(current))
	for _, e := range current {
		seen[cacheKey(e)]++
	}
	for _, e := range want {
		key := cacheKey(e)
		if seen[key] == 0 {
			return false
		}
		seen[key]--
	}
	return true
}

func cacheKey(e models.WorkerBooking) string {
	return utils.Midnight(e.Date).Format("2006-01-02") + "|" + e.TimeSlot
}
