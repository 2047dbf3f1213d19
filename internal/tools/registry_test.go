package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dg4329-hash/menumap/internal/model"
)

func decodePayload(t *testing.T, payload json.RawMessage) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	return decoded
}

func TestRegistry_Execute_UnknownTool(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	payload := registry.Execute(context.Background(), "teleport_food", nil)

	decoded := decodePayload(t, payload)
	assert.Equal(t, "Unknown tool: teleport_food", decoded["error"])
}

func TestRegistry_Execute_MalformedArguments(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	payload := registry.Execute(context.Background(), "search_menu", json.RawMessage(`{"limit": "ten"}`))

	decoded := decodePayload(t, payload)
	assert.Contains(t, decoded["error"], "invalid tool arguments")
}

func TestRegistry_Execute_StoreFailure(t *testing.T) {
	mockRepo := new(MockMenuReader)
	registry := newTestRegistry(mockRepo)

	mockRepo.On("LatestDate", mock.Anything).Return("", errors.New("database is locked"))

	payload := registry.Execute(context.Background(), "search_menu", json.RawMessage(`{"keywords":["pizza"]}`))

	decoded := decodePayload(t, payload)
	assert.Contains(t, decoded["error"], "failed to resolve menu date")
}

func TestRegistry_Execute_SearchMenu(t *testing.T) {
	mockRepo := new(MockMenuReader)
	registry := newTestRegistry(mockRepo)

	rows := []model.MenuItem{
		{
			Name:     "Cheese Pizza",
			Location: "Upstein",
			Period:   "Lunch",
			Category: "Pizza Station",
			Calories: iptr(520),
		},
	}
	mockRepo.On("LatestDate", mock.Anything).Return("2026-03-02", nil)
	mockRepo.On("SearchItems", mock.Anything, mock.Anything).Return(rows, nil)

	payload := registry.Execute(context.Background(), "search_menu", json.RawMessage(`{"keywords":["pizza"]}`))

	var items []Item
	require.NoError(t, json.Unmarshal(payload, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Cheese Pizza", items[0].Name)
	assert.Equal(t, model.ItemTypeEntree, items[0].ItemType)
}

func TestRegistry_Execute_ListLocations(t *testing.T) {
	mockRepo := new(MockMenuReader)
	registry := newTestRegistry(mockRepo)

	mockRepo.On("LocationNames", mock.Anything).Return([]string{"Palladium"}, nil)

	payload := registry.Execute(context.Background(), "list_locations", nil)

	var locations []string
	require.NoError(t, json.Unmarshal(payload, &locations))
	assert.Equal(t, []string{"Palladium"}, locations)
}

func TestRegistry_Execute_LocationHours(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	payload := registry.Execute(context.Background(), "get_location_hours", json.RawMessage(`{"location":"downstein"}`))

	var result HoursResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "NYU EATS at Downstein", result.Location)
	assert.Equal(t, "Open today", result.Status)
}

func TestRegistry_Execute_CurrentTime(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	payload := registry.Execute(context.Background(), "get_current_time", nil)

	decoded := decodePayload(t, payload)
	assert.Equal(t, "12:30 PM", decoded["current_time"])
	assert.Equal(t, "Wednesday", decoded["day_of_week"])
	assert.Equal(t, false, decoded["is_weekend"])
	assert.Equal(t, "weekday", decoded["day_type"])
}

func TestRegistry_Execute_AllHours(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	payload := registry.Execute(context.Background(), "get_all_hours", nil)

	var result AllHoursResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "Wednesday", result.Today)
	assert.Len(t, result.Locations, 14)
}

func TestRegistry_Definitions(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	defs := registry.Definitions()

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		assert.Equal(t, "function", def.Type)
		names = append(names, def.Function.Name)
	}
	assert.Equal(t, []string{
		"get_complete_meals",
		"get_build_your_own",
		"search_menu",
		"list_locations",
		"get_location_hours",
		"get_current_time",
	}, names)

	byName := make(map[string]FunctionDefinition, len(defs))
	for _, def := range defs {
		byName[def.Function.Name] = def.Function
	}
	assert.Equal(t, []string{"location"}, byName["get_build_your_own"].Parameters["required"])
	assert.Equal(t, []string{"location"}, byName["get_location_hours"].Parameters["required"])
	assert.NotEmpty(t, byName["search_menu"].Description)
}

func TestRegistry_Definitions_Marshal(t *testing.T) {
	registry := newTestRegistry(new(MockMenuReader))

	for _, def := range registry.Definitions() {
		_, err := json.Marshal(def)
		assert.NoError(t, err, def.Function.Name)
	}
}
