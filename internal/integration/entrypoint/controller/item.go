package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/usecase/item"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
)

// ItemController handles catalog item endpoints for one catalog. The income
// and outcome catalogs get separate instances bound to their kind.
type ItemController struct {
	kind              entity.TransactionKind
	createItemUseCase *item.CreateItemUseCase
	listItemsUseCase  *item.ListItemsUseCase
	updateItemUseCase *item.UpdateItemUseCase
	deleteItemUseCase *item.DeleteItemUseCase
}

// NewItemController creates a new ItemController instance for the given kind.
func NewItemController(
	kind entity.TransactionKind,
	createItemUseCase *item.CreateItemUseCase,
	listItemsUseCase *item.ListItemsUseCase,
	updateItemUseCase *item.UpdateItemUseCase,
	deleteItemUseCase *item.DeleteItemUseCase,
) *ItemController {
	return &ItemController{
		kind:              kind,
		createItemUseCase: createItemUseCase,
		listItemsUseCase:  listItemsUseCase,
		updateItemUseCase: updateItemUseCase,
		deleteItemUseCase: deleteItemUseCase,
	}
}

// Create handles POST /api/item-{kind}s.
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"name is required",
			string(domainerror.ErrCodeItemNameRequired),
		))
		return
	}

	output, err := c.createItemUseCase.Execute(ctx.Request.Context(), item.CreateItemInput{
		Kind: c.kind,
		Name: req.Name,
	})
	if err != nil {
		c.handleItemError(ctx, err, "create item")
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("item created", dto.ToItemResponse(output.Item)))
}

// List handles GET /api/item-{kind}s. The whole catalog is returned, newest
// first, without pagination.
func (c *ItemController) List(ctx *gin.Context) {
	output, err := c.listItemsUseCase.Execute(ctx.Request.Context(), item.ListItemsInput{Kind: c.kind})
	if err != nil {
		c.handleItemError(ctx, err, "list items")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("items retrieved", dto.ToItemListResponse(output.Items)))
}

// Update handles PUT /api/item-{kind}s/:id.
func (c *ItemController) Update(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"name is required",
			string(domainerror.ErrCodeItemNameRequired),
		))
		return
	}

	output, err := c.updateItemUseCase.Execute(ctx.Request.Context(), item.UpdateItemInput{
		ItemID: itemID,
		Name:   req.Name,
	})
	if err != nil {
		c.handleItemError(ctx, err, "update item")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("item updated", dto.ToItemResponse(output.Item)))
}

// Delete handles DELETE /api/item-{kind}s/:id. Transactions referencing the
// item are kept.
func (c *ItemController) Delete(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteItemUseCase.Execute(ctx.Request.Context(), item.DeleteItemInput{ItemID: itemID}); err != nil {
		c.handleItemError(ctx, err, "delete item")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("item deleted", nil))
}

// parseID extracts and validates the :id path parameter.
func (c *ItemController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"invalid item id",
			string(domainerror.ErrCodeItemNotFound),
		))
		return uuid.Nil, false
	}
	return id, true
}

// handleItemError maps item errors to HTTP responses.
func (c *ItemController) handleItemError(ctx *gin.Context, err error, operation string) {
	if errors.Is(err, domainerror.ErrItemNotFound) {
		ctx.JSON(http.StatusNotFound, dto.Error("item not found", string(domainerror.ErrCodeItemNotFound)))
		return
	}

	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		status := http.StatusBadRequest
		if itemErr.Code == domainerror.ErrCodeItemNameTaken {
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.Error(itemErr.Message, string(itemErr.Code)))
		return
	}

	slog.Error("item operation failed", "operation", operation, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"internal server error",
		string(domainerror.ErrCodeItemInternalError),
	))
}
