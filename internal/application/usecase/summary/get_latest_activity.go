package summary

import (
	"context"
	"fmt"
	"time"
)

// latestActivityLimit caps the activity feed length.
const latestActivityLimit = 10

// ActivityEntry is one row of the latest income activity feed.
type ActivityEntry struct {
	CustomerName string    `json:"customerName"`
	Whatsapp     string    `json:"whatsapp"`
	Quantity     int       `json:"qty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetLatestActivityOutput represents the activity feed, newest first.
type GetLatestActivityOutput struct {
	Activities []ActivityEntry `json:"activities"`
}

// GetLatestActivityUseCase lists the most recent income transactions.
type GetLatestActivityUseCase struct {
	repo SummaryRepository
}

// NewGetLatestActivityUseCase creates a new GetLatestActivityUseCase instance.
func NewGetLatestActivityUseCase(repo SummaryRepository) *GetLatestActivityUseCase {
	return &GetLatestActivityUseCase{repo: repo}
}

// Execute returns up to ten income rows ordered by creation time descending.
func (uc *GetLatestActivityUseCase) Execute(ctx context.Context) (*GetLatestActivityOutput, error) {
	rows, err := uc.repo.LatestIncome(ctx, latestActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest activity: %w", err)
	}

	activities := make([]ActivityEntry, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, ActivityEntry{
			CustomerName: row.CustomerName,
			Whatsapp:     row.Whatsapp,
			Quantity:     row.Quantity,
			CreatedAt:    row.CreatedAt,
		})
	}

	return &GetLatestActivityOutput{Activities: activities}, nil
}
