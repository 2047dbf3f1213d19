package match

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

type MockMenuReader struct {
	mock.Mock
}

func (m *MockMenuReader) LatestDate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMenuReader) ItemsForDate(ctx context.Context, date, period string) ([]model.MenuItem, error) {
	args := m.Called(ctx, date, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuReader) SearchItems(ctx context.Context, filter repository.ItemFilter) ([]model.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuReader) LocationNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMenuReader) Stats(ctx context.Context, date string) (*model.MenuStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuStats), args.Error(1)
}

func newTestEngine(repo repository.MenuReader) *Engine {
	return NewEngine(repo, nil, zerolog.Nop())
}

func pizzaItems(n int) []model.MenuItem {
	items := make([]model.MenuItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.MenuItem{
			Name:     fmt.Sprintf("Pizza Slice %d", i+1),
			Location: "Downstein",
			Period:   "Lunch",
			Category: "Pizza",
		})
	}
	return items
}

func TestEngine_Search_HighProteinLunch(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	lunch := []model.MenuItem{
		{
			Name:     "Grilled Chicken Breast",
			Location: "Downstein",
			Period:   "Lunch",
			Category: "Grill",
			Calories: iptr(330),
			Protein:  fptr(25),
		},
		{
			Name:     "Penne Pasta",
			Location: "Downstein",
			Period:   "Lunch",
			Category: "Pasta",
			Calories: iptr(400),
			Protein:  fptr(3),
		},
	}

	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "Lunch").Return(lunch, nil)

	results, err := engine.Search(context.Background(), "high protein lunch", 10, "")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Grilled Chicken Breast", results[0].Name)
	assert.Equal(t, 30, results[0].Score)
	assert.Equal(t, []string{"Lunch item", "protein: 25"}, results[0].Reasons)
	assert.Equal(t, "Penne Pasta", results[1].Name)
	assert.Equal(t, 10, results[1].Score)
	mockRepo.AssertExpectations(t)
}

func TestEngine_Search_ExplicitDateSkipsLatestLookup(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-01", "").Return(pizzaItems(1), nil)

	results, err := engine.Search(context.Background(), "pizza", 5, "2026-03-01")

	require.NoError(t, err)
	assert.Len(t, results, 1)
	mockRepo.AssertNotCalled(t, "LatestDate", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestEngine_Search_EmptyStore(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	mockRepo.On("LatestDate", mock.Anything).Return("", nil)

	results, err := engine.Search(context.Background(), "pizza", 10, "")

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	mockRepo.AssertNotCalled(t, "ItemsForDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Search_DropsZeroScores(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	items := []model.MenuItem{
		{Name: "Cheese Pizza", Period: "Lunch"},
		{Name: "Beef Stew", Period: "Lunch"},
	}
	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(items, nil)

	results, err := engine.Search(context.Background(), "pizza", 10, "")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cheese Pizza", results[0].Name)
}

func TestEngine_Search_UnrecognizedPromptMatchesNothing(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(pizzaItems(2), nil)

	results, err := engine.Search(context.Background(), "zzz qqq", 10, "")

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestEngine_Search_RanksByScoreDescending(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	items := []model.MenuItem{
		{Name: "Cheese Pizza", Period: "Lunch"},
		{Name: "Vegan Pizza", Period: "Lunch", DietaryTags: "Vegan"},
	}
	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(items, nil)

	results, err := engine.Search(context.Background(), "vegan pizza", 10, "")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Vegan Pizza", results[0].Name)
	assert.Equal(t, 50, results[0].Score)
	assert.Equal(t, "Cheese Pizza", results[1].Name)
	assert.Equal(t, 20, results[1].Score)
}

func TestEngine_Search_TiesKeepFetchOrder(t *testing.T) {
	mockRepo := new(MockMenuReader)
	engine := newTestEngine(mockRepo)

	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(pizzaItems(3), nil)

	first, err := engine.Search(context.Background(), "pizza", 10, "")
	require.NoError(t, err)
	second, err := engine.Search(context.Background(), "pizza", 10, "")
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, "Pizza Slice 1", first[0].Name)
	assert.Equal(t, "Pizza Slice 2", first[1].Name)
	assert.Equal(t, "Pizza Slice 3", first[2].Name)
	assert.Equal(t, first, second)
}

func TestEngine_Search_LimitHandling(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		available int
		wantLen   int
	}{
		{name: "zero limit uses default", limit: 0, available: 15, wantLen: DefaultLimit},
		{name: "negative limit uses default", limit: -3, available: 15, wantLen: DefaultLimit},
		{name: "oversized limit is clamped", limit: 500, available: 60, wantLen: MaxLimit},
		{name: "small limit truncates", limit: 3, available: 15, wantLen: 3},
		{name: "limit above result count returns everything", limit: 20, available: 4, wantLen: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuReader)
			engine := newTestEngine(mockRepo)

			mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
			mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(pizzaItems(tt.available), nil)

			results, err := engine.Search(context.Background(), "pizza", tt.limit, "")

			require.NoError(t, err)
			assert.Len(t, results, tt.wantLen)
		})
	}
}

func TestEngine_Search_RepositoryErrors(t *testing.T) {
	t.Run("latest date lookup fails", func(t *testing.T) {
		mockRepo := new(MockMenuReader)
		engine := newTestEngine(mockRepo)

		mockRepo.On("LatestDate", mock.Anything).Return("", errors.New("disk gone"))

		results, err := engine.Search(context.Background(), "pizza", 10, "")

		require.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "failed to resolve menu date")
	})

	t.Run("item fetch fails", func(t *testing.T) {
		mockRepo := new(MockMenuReader)
		engine := newTestEngine(mockRepo)

		mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
		mockRepo.On("ItemsForDate", mock.Anything, "2026-03-02", "").Return(nil, errors.New("disk gone"))

		results, err := engine.Search(context.Background(), "pizza", 10, "")

		require.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "failed to fetch menu items")
	})
}
