package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Manav933/Feedback/internal/domain"
	"github.com/Manav933/Feedback/internal/events"
	"github.com/Manav933/Feedback/internal/export"
	"github.com/Manav933/Feedback/internal/repository"
	"github.com/Manav933/Feedback/internal/stats"
	"github.com/Manav933/Feedback/internal/validation"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

// ListParams are the raw request-level query parameters for listing,
// exporting and counting feedback.
type ListParams struct {
	Search string
	Rating *int
	Sort   string
}

// filterFromParams translates the full parameter set into a single store
// filter in one step, with no intermediate mutable query state.
func filterFromParams(params ListParams) repository.FeedbackFilter {
	filter := repository.FeedbackFilter{
		Rating: params.Rating,
		Sort:   domain.ParseFeedbackSort(params.Sort),
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		filter.Search = &search
	}
	return filter
}

// FeedbackService coordinates validation, persistence and aggregation for
// feedback records.
type FeedbackService struct {
	repo       repository.FeedbackRepository
	dispatcher events.Dispatcher
}

// NewFeedbackService builds the service.
func NewFeedbackService(repo repository.FeedbackRepository, dispatcher events.Dispatcher) *FeedbackService {
	return &FeedbackService{repo: repo, dispatcher: dispatcher}
}

// Submit validates and persists a new feedback record. Validation failures
// carry the full field→reasons mapping and nothing is written.
func (s *FeedbackService) Submit(ctx context.Context, input validation.FeedbackInput) (*domain.Feedback, error) {
	normalized, fieldErrs := validation.ValidateFeedback(input)
	if fieldErrs != nil {
		return nil, apperrors.NewFieldValidationError(fieldErrs)
	}

	feedback := &domain.Feedback{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Message: normalized.Message,
		Rating:  normalized.Rating,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventFeedbackCreated,
			FeedbackID: feedback.ID,
			Timestamp:  time.Now(),
			Payload: events.FeedbackCreatedPayload{
				Name:   feedback.Name,
				Rating: feedback.Rating,
			},
		})
	}
	return feedback, nil
}

// Get loads a single record by id.
func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	feedback, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("feedback", nil)
		}
		return nil, err
	}
	return feedback, nil
}

// Update re-validates the full payload and replaces the mutable fields.
// created_at is immutable, so persisted records always satisfy the current
// validation rules without post-hoc repair.
func (s *FeedbackService) Update(ctx context.Context, id string, input validation.FeedbackInput) (*domain.Feedback, error) {
	normalized, fieldErrs := validation.ValidateFeedback(input)
	if fieldErrs != nil {
		return nil, apperrors.NewFieldValidationError(fieldErrs)
	}

	feedback, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback.Name = normalized.Name
	feedback.Email = normalized.Email
	feedback.Message = normalized.Message
	feedback.Rating = normalized.Rating
	if err := s.repo.Update(ctx, feedback); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("feedback", nil)
		}
		return nil, err
	}
	return feedback, nil
}

// Delete removes a record permanently.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("feedback", nil)
		}
		return err
	}
	return nil
}

// List returns the full filtered and sorted record set.
func (s *FeedbackService) List(ctx context.Context, params ListParams) ([]domain.Feedback, error) {
	return s.repo.ListWithFilter(ctx, filterFromParams(params))
}

// Stats aggregates over the unfiltered table.
func (s *FeedbackService) Stats(ctx context.Context) (stats.Summary, error) {
	records, err := s.repo.ListWithFilter(ctx, repository.FeedbackFilter{})
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Compute(records), nil
}

// ExportCSV renders the filtered set as CSV bytes.
func (s *FeedbackService) ExportCSV(ctx context.Context, params ListParams) ([]byte, error) {
	records, err := s.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return export.CSV(records)
}

// ExportExcel renders the filtered set as a workbook.
func (s *FeedbackService) ExportExcel(ctx context.Context, params ListParams) ([]byte, error) {
	records, err := s.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return export.Excel(records)
}
