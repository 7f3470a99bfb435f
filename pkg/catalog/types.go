package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a dataset identifier. Seed files are inconsistent about id types
// (some records carry numbers, some strings), so IDs unmarshal from either
// and always compare as strings.
type ID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("identifier must be a string or a number, got %s", string(data))
}

// Category is a product category descriptor.
type Category struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"название"`
}

// Sentiment is the review sentiment breakdown by count.
type Sentiment struct {
	Positive int `json:"позитивных"`
	Negative int `json:"негативных"`
	Neutral  int `json:"нейтральных"`
}

// Theme is a ranked discussion theme with its mention count.
type Theme struct {
	Name     string `json:"название"`
	Mentions int    `json:"упоминаний"`
}

// ReviewStats is the aggregated review block attached to a product.
type ReviewStats struct {
	TotalReviews  int       `json:"всего_отзывов"`
	AverageRating float64   `json:"средний_рейтинг"`
	Sentiment     Sentiment `json:"тональность"`
	TopThemes     []Theme   `json:"топ_темы"`
}

// SalesSource describes one sales channel a product is listed on.
type SalesSource struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"название"`
}

// Product is an immutable catalog record loaded from the seed dataset.
type Product struct {
	ID           ID            `json:"id"`
	Name         string        `json:"название"`
	Description  string        `json:"описание,omitempty"`
	Price        float64       `json:"цена,omitempty"`
	Category     Category      `json:"категория"`
	ReviewStats  ReviewStats   `json:"статистика_отзывов"`
	SalesSources []SalesSource `json:"источники_продаж"`
}

// PositivePercent returns the share of positive reviews, 0-100. Zero when
// the product has no reviews.
func (p Product) PositivePercent() float64 {
	total := p.ReviewStats.TotalReviews
	if total == 0 {
		return 0
	}
	return float64(p.ReviewStats.Sentiment.Positive) / float64(total) * 100
}

// NegativePercent returns the share of negative reviews, 0-100.
func (p Product) NegativePercent() float64 {
	total := p.ReviewStats.TotalReviews
	if total == 0 {
		return 0
	}
	return float64(p.ReviewStats.Sentiment.Negative) / float64(total) * 100
}

// SalesPerMonth estimates monthly sales from the review count. The dataset
// carries no sales figures, so listings derive this stand-in metric.
func (p Product) SalesPerMonth() int {
	return int(float64(p.ReviewStats.TotalReviews) * 0.7)
}

// RatingBand buckets the average rating for listing badges: "red" below 1.8,
// "orange" below 2.8, "yellow" below 3.5, empty otherwise.
func (p Product) RatingBand() string {
	rating := p.ReviewStats.AverageRating
	switch {
	case rating < 1.8:
		return "red"
	case rating < 2.8:
		return "orange"
	case rating < 3.5:
		return "yellow"
	default:
		return ""
	}
}

// User is a directory record loaded from the seed dataset.
type User struct {
	ID         ID     `json:"id"`
	LastName   string `json:"фамилия"`
	FirstName  string `json:"имя"`
	Patronymic string `json:"отчество,omitempty"`
	Login      string `json:"логин"`
	Password   string `json:"пароль"`
	Role       string `json:"роль"`
	Phone      string `json:"телефон,omitempty"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"аватар,omitempty"`
	Status     string `json:"статус,omitempty"`
}

// DisplayName is the short "<фамилия> <имя>" form used in listings.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.LastName + " " + u.FirstName)
}

// FullName includes the patronymic when present.
func (u User) FullName() string {
	name := u.LastName + " " + u.FirstName
	if u.Patronymic != "" {
		name += " " + u.Patronymic
	}
	return strings.TrimSpace(name)
}
