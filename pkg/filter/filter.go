// Package filter evaluates compound search specs over sessions and
// products. Predicates are independent conjunctive checks: an item must
// satisfy every predicate the spec supplies a value for, and absent spec
// fields impose no constraint, so UI controls can be combined arbitrarily.
package filter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/avlasov/marketlens/internal/observability"
	"github.com/avlasov/marketlens/pkg/aggregate"
	"github.com/avlasov/marketlens/pkg/catalog"
)

// Sentiment filter values.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// neutralBandPercent is the sentiment band treated as neutral: items whose
// positive and negative shares differ by less than this many percentage
// points.
const neutralBandPercent = 10.0

// SessionSpec is the filter specification for annotated sessions. Zero
// values mean "no constraint".
type SessionSpec struct {
	Search    string
	Role      string
	DateRange DateRange
	DateFrom  string // YYYY-MM-DD, only with RangeCustom
	DateTo    string // YYYY-MM-DD inclusive through end of day
}

// ProductSpec is the filter specification for catalog products.
type ProductSpec struct {
	Search    string
	Category  string
	Rating    string
	Sentiment string
	Source    string
	Theme     string
}

// Sessions returns the subset of items matching every supplied predicate.
// Named date windows are computed relative to now.
func Sessions(items []aggregate.Annotated, spec SessionSpec, now time.Time) []aggregate.Annotated {
	observability.IncFilterRun("sessions")

	result := make([]aggregate.Annotated, 0, len(items))
	for _, item := range items {
		if matchSession(item, spec, now) {
			result = append(result, item)
		}
	}
	return result
}

func matchSession(item aggregate.Annotated, spec SessionSpec, now time.Time) bool {
	if spec.Search != "" && !sessionContains(item, spec.Search) {
		return false
	}
	if spec.Role != "" && item.User.Role != spec.Role {
		return false
	}
	if spec.DateRange != "" && !inDateRange(item.Touched(), spec, now) {
		return false
	}
	return true
}

// sessionContains is the case-insensitive substring search over the
// session's free-text fields and its owner's display name and role.
func sessionContains(item aggregate.Annotated, query string) bool {
	q := strings.ToLower(query)
	fields := []string{
		item.Title,
		item.Description,
		item.Comment,
		item.Thoughts,
		item.User.DisplayName,
		item.User.Role,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Products returns the subset of products matching every supplied
// predicate.
func Products(items []catalog.Product, spec ProductSpec) []catalog.Product {
	observability.IncFilterRun("products")

	result := make([]catalog.Product, 0, len(items))
	for _, p := range items {
		if matchProduct(p, spec) {
			result = append(result, p)
		}
	}
	return result
}

func matchProduct(p catalog.Product, spec ProductSpec) bool {
	if spec.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(spec.Search)) {
		return false
	}
	if spec.Category != "" && p.Category.Name != spec.Category {
		return false
	}
	if spec.Rating != "" && !matchRating(p, spec.Rating) {
		return false
	}
	if spec.Sentiment != "" && !matchSentiment(p, spec.Sentiment) {
		return false
	}
	if spec.Source != "" && !hasSource(p, spec.Source) {
		return false
	}
	if spec.Theme != "" && !hasTheme(p, spec.Theme) {
		return false
	}
	return true
}

// matchRating compares truncated integer parts, not rounded values: a
// target of "3" matches ratings in [3.0, 4.0). An unparsable target
// imposes no constraint.
func matchRating(p catalog.Product, target string) bool {
	targetRating, err := strconv.ParseFloat(target, 64)
	if err != nil {
		return true
	}
	return math.Trunc(p.ReviewStats.AverageRating) == math.Trunc(targetRating)
}

// matchSentiment classifies by comparing positive and negative shares of
// the total review count. Products without reviews match no sentiment
// filter.
func matchSentiment(p catalog.Product, sentiment string) bool {
	if p.ReviewStats.TotalReviews == 0 {
		return false
	}

	positive := p.PositivePercent()
	negative := p.NegativePercent()

	switch sentiment {
	case SentimentPositive:
		return positive > negative
	case SentimentNegative:
		return negative > positive
	case SentimentNeutral:
		return math.Abs(positive-negative) < neutralBandPercent
	default:
		return true
	}
}

func hasSource(p catalog.Product, source string) bool {
	for _, s := range p.SalesSources {
		if s.Name == source {
			return true
		}
	}
	return false
}

func hasTheme(p catalog.Product, theme string) bool {
	for _, t := range p.ReviewStats.TopThemes {
		if t.Name == theme {
			return true
		}
	}
	return false
}
