package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manav933/Feedback/internal/domain"
	"github.com/Manav933/Feedback/internal/events"
	"github.com/Manav933/Feedback/internal/repository"
	"github.com/Manav933/Feedback/internal/validation"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

type fakeFeedbackRepo struct {
	records    map[string]domain.Feedback
	nextID     int
	lastFilter *repository.FeedbackFilter
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{records: map[string]domain.Feedback{}}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	f.nextID++
	feedback.ID = "f" + strconv.Itoa(f.nextID)
	feedback.CreatedAt = time.Now()
	f.records[feedback.ID] = *feedback
	return nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, feedback *domain.Feedback) error {
	if _, ok := f.records[feedback.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.records[feedback.ID] = *feedback
	return nil
}

func (f *fakeFeedbackRepo) GetByID(_ context.Context, id string) (*domain.Feedback, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &record, nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.records, id)
	return nil
}

func (f *fakeFeedbackRepo) ListWithFilter(_ context.Context, filter repository.FeedbackFilter) ([]domain.Feedback, error) {
	f.lastFilter = &filter
	result := make([]domain.Feedback, 0, len(f.records))
	for _, record := range f.records {
		result = append(result, record)
	}
	return result, nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func validSubmission() validation.FeedbackInput {
	return validation.FeedbackInput{
		Name:    "  Alice  ",
		Email:   "Alice@Example.COM",
		Message: "Really enjoyed the checkout flow.",
		Rating:  4,
	}
}

func TestSubmitPersistsNormalizedRecord(t *testing.T) {
	repo := newFakeFeedbackRepo()
	dispatcher := &capturingDispatcher{}
	svc := NewFeedbackService(repo, dispatcher)

	feedback, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "Alice", feedback.Name)
	assert.Equal(t, "alice@example.com", feedback.Email)
	assert.NotEmpty(t, feedback.ID)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventFeedbackCreated, dispatcher.published[0].Type)
	assert.Equal(t, feedback.ID, dispatcher.published[0].FeedbackID)
}

func TestSubmitRejectsInvalidPayloadWithoutWriting(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, nil)

	_, err := svc.Submit(context.Background(), validation.FeedbackInput{Name: "A", Message: "short", Rating: 0})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "message")
	assert.Contains(t, domainErr.Details, "rating")
	assert.Empty(t, repo.records)
}

func TestUpdateRevalidatesAndKeepsCreatedAt(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, nil)

	created, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validation.FeedbackInput{
		Name:    "Bob",
		Message: "Changed my mind after a week.",
		Rating:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(context.Background(), created.ID, validation.FeedbackInput{Name: "X", Message: "nope", Rating: 7})
	require.Error(t, err)
	assert.Equal(t, "Bob", repo.records[created.ID].Name)
}

func TestUpdateMissingRecordIsNotFound(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo(), nil)

	_, err := svc.Update(context.Background(), "missing", validSubmission())
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestListTranslatesParamsIntoOneFilter(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, nil)
	rating := 5

	_, err := svc.List(context.Background(), ListParams{Search: "  bob  ", Rating: &rating, Sort: "highest_rating"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.Search)
	assert.Equal(t, "bob", *repo.lastFilter.Search)
	assert.Equal(t, 5, *repo.lastFilter.Rating)
	assert.Equal(t, domain.SortHighestRating, repo.lastFilter.Sort)

	// Blank search and unknown sort collapse to the unfiltered default.
	_, err = svc.List(context.Background(), ListParams{Search: "   ", Sort: "bogus"})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.Search)
	assert.Equal(t, domain.SortLatest, repo.lastFilter.Sort)
}

func TestStatsAggregatesOverUnfilteredSet(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, nil)

	for _, rating := range []int{1, 2, 3, 4, 5, 4, 5} {
		input := validSubmission()
		input.Rating = rating
		_, err := svc.Submit(context.Background(), input)
		require.NoError(t, err)
	}

	summary, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 3.43, summary.AverageRating)
	assert.Nil(t, repo.lastFilter.Search)
	assert.Nil(t, repo.lastFilter.Rating)
}

func TestExportCSVUsesFilteredSet(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, nil)

	_, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	rating := 4
	data, err := svc.ExportCSV(context.Background(), ListParams{Rating: &rating})
	require.NoError(t, err)
	assert.Contains(t, string(data), "alice@example.com")
	assert.Equal(t, 4, *repo.lastFilter.Rating)
}
