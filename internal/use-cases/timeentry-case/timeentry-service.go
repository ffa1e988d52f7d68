package timeentry_case

import (
	"context"
	"time"

	timeentry_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/timeentry-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	allocation_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/allocation-repo"
	resource_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/resource-repo"
	timeentry_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/timeentry-repo"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type TimeEntryService struct {
	repo           timeentry_repo.TimeEntryRepoContract
	allocationRepo allocation_repo.AllocationRepoContract
	resourceRepo   resource_repo.ResourceRepoContract
}

func NewTimeEntryService(db *pgxpool.Pool) TimeEntryServiceContract {
	return &TimeEntryService{
		repo:           timeentry_repo.NewTimeEntryRepo(db),
		allocationRepo: allocation_repo.NewAllocationRepo(db),
		resourceRepo:   resource_repo.NewResourceRepo(db),
	}
}

// UpsertTimeEntry setzt die Tagesstunden einer Allokations-Woche. Existiert
// bereits ein Eintrag für (allocation, week), wird er vollständig ersetzt.
func (s *TimeEntryService) UpsertTimeEntry(ctx context.Context, allocationID, isoWeek string, req *timeentry_dto.UpsertTimeEntryRequest) (*timeentry_dto.TimeEntryResponse, *app_errors.AppError) {
	allocation, err := s.allocationRepo.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	if allocation.Status != entity.AllocationActive {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "allocation.not_active", nil)
	}

	weekStart, weekErr := utils.WeekStart(isoWeek)
	if weekErr != nil {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "week", Reason: "invalid_week_key", MessageKey: "validation.invalid_iso_week"},
		})
	}
	if !utils.OverlapsWeek(allocation.StartDate, allocation.EndDate, isoWeek) {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "time_entry.week_outside_allocation", nil)
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	model := &entity.TimeEntryEntity{
		ID:           id.String(),
		AllocationID: allocationID,
		WeekStart:    weekStart,
		Monday:       req.Monday,
		Tuesday:      req.Tuesday,
		Wednesday:    req.Wednesday,
		Thursday:     req.Thursday,
		Friday:       req.Friday,
		Saturday:     req.Saturday,
		Sunday:       req.Sunday,
	}

	saved, err := s.repo.UpsertTimeEntry(ctx, model)
	if err != nil {
		return nil, err
	}

	return toTimeEntryResponse(saved), nil
}

func (s *TimeEntryService) ListByAllocation(ctx context.Context, allocationID string) ([]timeentry_dto.TimeEntryResponse, *app_errors.AppError) {
	if _, err := s.allocationRepo.GetAllocationByID(ctx, allocationID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByAllocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	return toTimeEntryResponses(entries), nil
}

func (s *TimeEntryService) ListByResourceRange(ctx context.Context, resourceID string, from, to time.Time) ([]timeentry_dto.TimeEntryResponse, *app_errors.AppError) {
	if to.Before(from) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "to", Reason: "before_from", MessageKey: "validation.range_inverted"},
		})
	}

	if _, err := s.resourceRepo.GetResourceByID(ctx, resourceID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByResourceRange(ctx, resourceID, from, to)
	if err != nil {
		return nil, err
	}
	return toTimeEntryResponses(entries), nil
}

func toTimeEntryResponse(e *entity.TimeEntryEntity) *timeentry_dto.TimeEntryResponse {
	return &timeentry_dto.TimeEntryResponse{
		ID:           e.ID,
		AllocationID: e.AllocationID,
		WeekStart:    e.WeekStart,
		Week:         utils.ISOWeekString(e.WeekStart),
		Monday:       e.Monday,
		Tuesday:      e.Tuesday,
		Wednesday:    e.Wednesday,
		Thursday:     e.Thursday,
		Friday:       e.Friday,
		Saturday:     e.Saturday,
		Sunday:       e.Sunday,
		TotalHours:   e.TotalHours(),
	}
}

func toTimeEntryResponses(entries []entity.TimeEntryEntity) []timeentry_dto.TimeEntryResponse {
	out := make([]timeentry_dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toTimeEntryResponse(&entries[i]))
	}
	return out
}
