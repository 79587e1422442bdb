package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mobil-koeln/flights-cli/internal/logger"
	"github.com/mobil-koeln/flights-cli/internal/models"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggingSearcher_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSearcher(ctrl)

	q := models.SearchQuery{Origin: "JFK", Destination: "LAX", DepartDate: "2025-06-01", Passengers: 1}
	mock.EXPECT().Search(gomock.Any(), q).Return(DefaultOffers(), nil)

	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "info", Format: "json"}, &buf)

	offers, err := WithLogging(mock, log).Search(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, offers, 3)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	assert.Equal(t, "search completed", entry["message"])
	assert.Equal(t, "JFK", entry["origin"])
	assert.Equal(t, "LAX", entry["destination"])
	assert.Equal(t, float64(3), entry["count"])
	assert.NotEmpty(t, entry["search_id"])
	assert.Contains(t, entry, "duration_ms")
}

func TestLoggingSearcher_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSearcher(ctrl)

	boom := errors.New("boom")
	mock.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, boom)

	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "info"}, &buf)

	offers, err := WithLogging(mock, log).Search(context.Background(), models.NewSearchQuery())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, offers)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "search failed", lines[0]["message"])
	assert.Equal(t, "boom", lines[0]["error"])
}

func TestLoggingSearcher_DistinctIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSearcher(ctrl)
	mock.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.FlightOffer{}, nil).Times(2)

	var buf bytes.Buffer
	s := WithLogging(mock, logger.NewWithOutput(logger.Config{Level: "info"}, &buf))

	_, _ = s.Search(context.Background(), models.NewSearchQuery())
	_, _ = s.Search(context.Background(), models.NewSearchQuery())

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0]["search_id"], lines[1]["search_id"])
}

func TestWithLogging_NilLogger(t *testing.T) {
	s := WithLogging(NewCatalogSearcher(WithDelay(0)), nil)

	offers, err := s.Search(context.Background(), models.NewSearchQuery())
	require.NoError(t, err)
	assert.Len(t, offers, 3)
}
