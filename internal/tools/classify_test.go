package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dg4329-hash/menumap/internal/model"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := DefaultClassifier()

	tests := []struct {
		name     string
		category string
		want     model.ItemType
	}{
		{
			name:     "component station by exact name",
			category: "Salad Bar Toppings",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "entree station by exact name",
			category: "True Burger",
			want:     model.ItemTypeEntree,
		},
		{
			name:     "unknown station with no hints",
			category: "Random Station XYZ",
			want:     model.ItemTypeOther,
		},
		{
			name:     "case insensitive lookup",
			category: "TRUE BURGER",
			want:     model.ItemTypeEntree,
		},
		{
			name:     "choose-your hint",
			category: "Noodle Lab Choose Your Broth",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "bar hint",
			category: "Winter Veggie Bar",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "sides hint",
			category: "Homestyle Sides",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "sauce hint",
			category: "House Sauces",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "component list wins over hints and entrees",
			category: "Paper Lantern Protein",
			want:     model.ItemTypeComponent,
		},
		{
			name:     "cucina entree by exact name",
			category: "Cucina Entree",
			want:     model.ItemTypeEntree,
		},
		{
			name:     "empty category",
			category: "",
			want:     model.ItemTypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.category))
		})
	}
}
