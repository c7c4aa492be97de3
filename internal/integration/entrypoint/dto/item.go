package dto

import (
	"time"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// ItemRequest is the request body for creating or renaming a catalog item.
type ItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// ItemResponse is the API shape of a catalog item.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToItemResponse converts an item entity to its API shape.
func ToItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToItemListResponse converts item entities to their API shape.
func ToItemListResponse(items []*entity.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
