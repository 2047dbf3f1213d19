package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dg4329-hash/menumap/internal/model"
)

// MockSearcher is a mock implementation of match.Searcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, prompt string, limit int, date string) ([]model.MatchResult, error) {
	args := m.Called(ctx, prompt, limit, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MatchResult), args.Error(1)
}

func TestSearchHandler_Search(t *testing.T) {
	logger := zerolog.Nop()

	testResults := []model.MatchResult{
		{Name: "Grilled Chicken Bowl", Location: "Downstein", Period: "Lunch", Score: 50},
		{Name: "Penne Pasta", Location: "Downstein", Period: "Lunch", Score: 20},
	}

	tests := []struct {
		name           string
		method         string
		body           string
		mockReturn     []model.MatchResult
		mockError      error
		expectedStatus int
		expectService  bool
		prompt         string
		limit          int
	}{
		{
			name:           "Success with explicit limit",
			method:         http.MethodPost,
			body:           `{"query": "high protein lunch", "limit": 5}`,
			mockReturn:     testResults,
			expectedStatus: http.StatusOK,
			expectService:  true,
			prompt:         "high protein lunch",
			limit:          5,
		},
		{
			name:           "Missing limit falls back to default",
			method:         http.MethodPost,
			body:           `{"query": "pizza"}`,
			mockReturn:     testResults,
			expectedStatus: http.StatusOK,
			expectService:  true,
			prompt:         "pizza",
			limit:          defaultSearchLimit,
		},
		{
			name:           "Oversized limit is clamped",
			method:         http.MethodPost,
			body:           `{"query": "pizza", "limit": 100}`,
			mockReturn:     testResults,
			expectedStatus: http.StatusOK,
			expectService:  true,
			prompt:         "pizza",
			limit:          maxSearchLimit,
		},
		{
			name:           "Empty query",
			method:         http.MethodPost,
			body:           `{"query": ""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Whitespace query",
			method:         http.MethodPost,
			body:           `{"query": "   "}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			body:           `{"query": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Search failure",
			method:         http.MethodPost,
			body:           `{"query": "pizza"}`,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
			prompt:         "pizza",
			limit:          defaultSearchLimit,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSearcher := new(MockSearcher)
			h := NewSearchHandler(mockSearcher, logger)

			if tt.expectService {
				mockSearcher.On("Search", mock.Anything, tt.prompt, tt.limit, "").
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/search", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Search(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockSearcher.AssertExpectations(t)
			}
		})
	}
}

func TestSearchHandler_Search_ResponseShape(t *testing.T) {
	mockSearcher := new(MockSearcher)
	mockSearcher.On("Search", mock.Anything, "vegan pizza", 8, "").Return([]model.MatchResult{
		{
			Name:        "Vegan Pizza",
			Location:    "Downstein",
			Period:      "Lunch",
			Category:    "500 Degrees Pizza",
			DietaryTags: []string{"Vegan"},
			Score:       50,
			Reasons:     []string{"matches 'pizza'", "Vegan"},
		},
	}, nil)

	h := NewSearchHandler(mockSearcher, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query": "vegan pizza"}`))
	w := httptest.NewRecorder()

	h.Search(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "vegan pizza", resp.Query)
	assert.Equal(t, 1, resp.TotalFound)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Vegan Pizza", resp.Results[0].Name)
	assert.Equal(t, []string{"matches 'pizza'", "Vegan"}, resp.Results[0].Reasons)
}

func TestSearchHandler_Search_EmptyQueryPayload(t *testing.T) {
	mockSearcher := new(MockSearcher)
	h := NewSearchHandler(mockSearcher, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query": ""}`))
	w := httptest.NewRecorder()

	h.Search(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Query cannot be empty", resp.Error)
	assert.Equal(t, model.ErrCodeEmptyQuery, resp.Code)
	mockSearcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
