package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ID
	}{
		{"string id", `"custom-42"`, ID("custom-42")},
		{"integer id", `17`, ID("17")},
		{"float id stays verbatim", `3.5`, ID("3.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &id))
}

func TestProduct_Percentages(t *testing.T) {
	p := Product{ReviewStats: ReviewStats{
		TotalReviews: 200,
		Sentiment:    Sentiment{Positive: 120, Negative: 50, Neutral: 30},
	}}

	assert.InDelta(t, 60.0, p.PositivePercent(), 0.001)
	assert.InDelta(t, 25.0, p.NegativePercent(), 0.001)

	empty := Product{}
	assert.Zero(t, empty.PositivePercent())
	assert.Zero(t, empty.NegativePercent())
}

func TestProduct_SalesPerMonth(t *testing.T) {
	p := Product{ReviewStats: ReviewStats{TotalReviews: 121}}
	assert.Equal(t, 84, p.SalesPerMonth())
}

func TestProduct_RatingBand(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{1.0, "red"},
		{1.8, "orange"},
		{2.8, "yellow"},
		{3.5, ""},
		{4.9, ""},
	}

	for _, tt := range tests {
		p := Product{ReviewStats: ReviewStats{AverageRating: tt.rating}}
		assert.Equal(t, tt.want, p.RatingBand(), "rating %.1f", tt.rating)
	}
}

func TestFacets(t *testing.T) {
	products := []Product{
		{
			Category: Category{Name: "Электроника"},
			ReviewStats: ReviewStats{TopThemes: []Theme{
				{Name: "звук"}, {Name: "цена"},
			}},
			SalesSources: []SalesSource{{Name: "Ozon"}, {Name: "WB"}},
		},
		{
			Category: Category{Name: "Электроника"},
			ReviewStats: ReviewStats{TopThemes: []Theme{
				{Name: "цена"},
			}},
			SalesSources: []SalesSource{{Name: "Ozon"}},
		},
		{Category: Category{Name: "Бытовая техника"}},
	}

	assert.Equal(t, []string{"Электроника", "Бытовая техника"}, Categories(products))
	assert.Equal(t, []string{"Ozon", "WB"}, Sources(products))
	assert.Equal(t, []string{"звук", "цена"}, Themes(products))

	users := []User{
		{Role: "аналитик"}, {Role: "администратор"}, {Role: "аналитик"}, {Role: ""},
	}
	assert.Equal(t, []string{"аналитик", "администратор"}, Roles(users))
}
