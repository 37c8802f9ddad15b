package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/autoflip/backend/internal/model"
)

// TestUser creates a user row.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Email: fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		Name:  "Test User",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail sets the user email.
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithName sets the user name.
func WithName(name string) func(*model.User) {
	return func(u *model.User) {
		u.Name = name
	}
}

// TestAnalysis creates a stored analysis row for the given requester email.
func TestAnalysis(t *testing.T, db *gorm.DB, userEmail string, opts ...func(*model.Analysis)) *model.Analysis {
	t.Helper()

	analysis := &model.Analysis{
		UserEmail:      userEmail,
		CarTitle:       fmt.Sprintf("Test Car %d", time.Now().UnixNano()%10000),
		Score:          72,
		RecommendedBid: 41000,
		Margin:         18,
		RiskLevel:      "MEDIUM",
	}

	for _, opt := range opts {
		opt(analysis)
	}

	if err := db.Create(analysis).Error; err != nil {
		t.Fatalf("Failed to create test analysis: %v", err)
	}

	return analysis
}

// WithCarTitle sets the car title.
func WithCarTitle(title string) func(*model.Analysis) {
	return func(a *model.Analysis) {
		a.CarTitle = title
	}
}

// WithScore sets the score.
func WithScore(score float64) func(*model.Analysis) {
	return func(a *model.Analysis) {
		a.Score = score
	}
}

// WithRiskLevel sets the risk level.
func WithRiskLevel(level string) func(*model.Analysis) {
	return func(a *model.Analysis) {
		a.RiskLevel = level
	}
}

// WithCreatedAt sets the creation timestamp, for ordering tests.
func WithCreatedAt(ts time.Time) func(*model.Analysis) {
	return func(a *model.Analysis) {
		a.CreatedAt = ts
	}
}
