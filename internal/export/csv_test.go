package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manav933/Feedback/internal/domain"
)

func sampleRecords() []domain.Feedback {
	createdAt := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)
	return []domain.Feedback{
		{
			ID:        "f1",
			Name:      "Alice",
			Email:     "alice@example.com",
			Message:   "Smooth onboarding, would recommend.",
			Rating:    5,
			CreatedAt: createdAt,
		},
		{
			ID:        "f2",
			Name:      "Bob",
			Email:     "",
			Message:   "Search results, oddly, contain commas.",
			Rating:    2,
			CreatedAt: createdAt.Add(time.Hour),
		},
	}
}

func TestCSVRendersHeaderAndRows(t *testing.T) {
	data, err := CSV(sampleRecords())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Name", "Email", "Message", "Rating", "Created At"}, rows[0])
	assert.Equal(t, []string{"f1", "Alice", "alice@example.com", "Smooth onboarding, would recommend.", "5", "2024-03-15 09:30:05"}, rows[1])
	assert.Equal(t, "2024-03-15 10:30:05", rows[2][5])
}

func TestCSVEmptySetStillHasHeader(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
