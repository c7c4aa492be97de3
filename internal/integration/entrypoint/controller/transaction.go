package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/application/usecase/transaction"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
	"github.com/hexapixel/backend/internal/integration/entrypoint/middleware"
)

// receiptFolder is the upload folder for outcome receipts.
const receiptFolder = "receipts"

// xlsxContentType is the MIME type of the export attachment.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransactionController handles transaction endpoints for one kind. The
// income and outcome routes get separate instances bound to their kind.
type TransactionController struct {
	kind                      entity.TransactionKind
	createTransactionUseCase  *transaction.CreateTransactionUseCase
	listTransactionsUseCase   *transaction.ListTransactionsUseCase
	getTransactionUseCase     *transaction.GetTransactionUseCase
	updateTransactionUseCase  *transaction.UpdateTransactionUseCase
	deleteTransactionUseCase  *transaction.DeleteTransactionUseCase
	exportTransactionsUseCase *transaction.ExportTransactionsUseCase
	fileStorage               adapter.FileStorage
	baseURL                   string
}

// NewTransactionController creates a new TransactionController instance for
// the given kind.
func NewTransactionController(
	kind entity.TransactionKind,
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	getTransactionUseCase *transaction.GetTransactionUseCase,
	updateTransactionUseCase *transaction.UpdateTransactionUseCase,
	deleteTransactionUseCase *transaction.DeleteTransactionUseCase,
	exportTransactionsUseCase *transaction.ExportTransactionsUseCase,
	fileStorage adapter.FileStorage,
	baseURL string,
) *TransactionController {
	return &TransactionController{
		kind:                      kind,
		createTransactionUseCase:  createTransactionUseCase,
		listTransactionsUseCase:   listTransactionsUseCase,
		getTransactionUseCase:     getTransactionUseCase,
		updateTransactionUseCase:  updateTransactionUseCase,
		deleteTransactionUseCase:  deleteTransactionUseCase,
		exportTransactionsUseCase: exportTransactionsUseCase,
		fileStorage:               fileStorage,
		baseURL:                   baseURL,
	}
}

// Create handles POST /api/{kind}s. Outcome records arrive as multipart form
// data carrying the mandatory receipt; income records may use plain JSON.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	input := transaction.CreateTransactionInput{
		Kind:      c.kind,
		CreatedBy: userID,
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		if !c.bindCreateForm(ctx, &input) {
			return
		}
		receiptURL, err := c.saveReceipt(ctx)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(err.Error(), string(domainerror.ErrCodeReceiptRequired)))
			return
		}
		input.ReceiptURL = receiptURL
	} else {
		var req dto.CreateTransactionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"price, item, quantity, totalPrice, and name are required",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return
		}
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"invalid item id",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return
		}
		input.Price = req.Price
		input.ItemID = itemID
		input.Quantity = req.Quantity
		input.TotalPrice = req.TotalPrice
		input.Counterparty = req.Counterparty
		input.Whatsapp = req.Whatsapp
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err, "create")
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(
		fmt.Sprintf("%s created", c.kind),
		dto.ToTransactionResponse(output.Transaction),
	))
}

// List handles GET /api/{kind}s with search and pagination.
func (c *TransactionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Kind:   c.kind,
		Search: ctx.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.handleTransactionError(ctx, err, "list")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(
		fmt.Sprintf("%ss retrieved", c.kind),
		dto.ToTransactionListResponse(output.Result),
	))
}

// Get handles GET /api/{kind}s/:id.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getTransactionUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		Kind: c.kind,
		ID:   id,
	})
	if err != nil {
		c.handleTransactionError(ctx, err, "get")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(
		fmt.Sprintf("%s retrieved", c.kind),
		dto.ToTransactionWithRefsResponse(output.Transaction),
	))
}

// Update handles PUT /api/{kind}s/:id. Absent fields are left unchanged; a
// new receipt file replaces the stored one for outcome records.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}
	actorRole, _ := middleware.GetUserRoleFromContext(ctx)

	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	input := transaction.UpdateTransactionInput{
		Kind:      c.kind,
		ID:        id,
		ActorID:   userID,
		ActorRole: actorRole,
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		if !c.bindUpdateForm(ctx, &input) {
			return
		}
		if _, err := ctx.FormFile("receipt"); err == nil {
			receiptURL, err := c.saveReceipt(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.Error(err.Error(), string(domainerror.ErrCodeReceiptRequired)))
				return
			}
			input.ReceiptURL = &receiptURL
		}
	} else {
		var req dto.UpdateTransactionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"invalid request body",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return
		}
		if req.ItemID != nil {
			itemID, err := uuid.Parse(*req.ItemID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.Error(
					"invalid item id",
					string(domainerror.ErrCodeMissingTransactionFields),
				))
				return
			}
			input.ItemID = &itemID
		}
		input.Price = req.Price
		input.Quantity = req.Quantity
		input.TotalPrice = req.TotalPrice
		input.Counterparty = req.Counterparty
		input.Whatsapp = req.Whatsapp
	}

	output, err := c.updateTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err, "update")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(
		fmt.Sprintf("%s updated", c.kind),
		dto.ToTransactionResponse(output.Transaction),
	))
}

// Delete handles DELETE /api/{kind}s/:id.
func (c *TransactionController) Delete(ctx *gin.Context) {
	actorRole, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error(
			"authorization token is required",
			string(domainerror.ErrCodeMissingToken),
		))
		return
	}

	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	err := c.deleteTransactionUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		Kind:      c.kind,
		ID:        id,
		ActorRole: actorRole,
	})
	if err != nil {
		c.handleTransactionError(ctx, err, "delete")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(fmt.Sprintf("%s deleted", c.kind), nil))
}

// Export handles GET /api/{kind}s/export/:type, streaming one calendar month
// as an xlsx attachment. The :type parameter is currMonth or prevMonth.
func (c *TransactionController) Export(ctx *gin.Context) {
	output, err := c.exportTransactionsUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		Kind:  c.kind,
		Month: transaction.ExportMonth(ctx.Param("type")),
	})
	if err != nil {
		c.handleTransactionError(ctx, err, "export")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}

// bindCreateForm reads the multipart create fields into the input. It reports
// false after responding when a numeric field fails to parse.
func (c *TransactionController) bindCreateForm(ctx *gin.Context, input *transaction.CreateTransactionInput) bool {
	price, ok := c.parseDecimal(ctx, ctx.PostForm("price"))
	if !ok {
		return false
	}
	totalPrice, ok := c.parseDecimal(ctx, ctx.PostForm("totalPrice"))
	if !ok {
		return false
	}
	quantity, _ := strconv.Atoi(ctx.PostForm("quantity"))

	itemID := uuid.Nil
	if raw := ctx.PostForm("item"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"invalid item id",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return false
		}
		itemID = parsed
	}

	input.Price = price
	input.ItemID = itemID
	input.Quantity = quantity
	input.TotalPrice = totalPrice
	input.Counterparty = ctx.PostForm("name")
	input.Whatsapp = ctx.PostForm("whatsapp")
	return true
}

// bindUpdateForm reads present multipart fields into the patch input, leaving
// absent fields nil.
func (c *TransactionController) bindUpdateForm(ctx *gin.Context, input *transaction.UpdateTransactionInput) bool {
	if raw, exists := ctx.GetPostForm("price"); exists {
		price, ok := c.parseDecimal(ctx, raw)
		if !ok {
			return false
		}
		input.Price = &price
	}
	if raw, exists := ctx.GetPostForm("totalPrice"); exists {
		totalPrice, ok := c.parseDecimal(ctx, raw)
		if !ok {
			return false
		}
		input.TotalPrice = &totalPrice
	}
	if raw, exists := ctx.GetPostForm("quantity"); exists {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"invalid quantity",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return false
		}
		input.Quantity = &quantity
	}
	if raw, exists := ctx.GetPostForm("item"); exists {
		itemID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Error(
				"invalid item id",
				string(domainerror.ErrCodeMissingTransactionFields),
			))
			return false
		}
		input.ItemID = &itemID
	}
	if raw, exists := ctx.GetPostForm("name"); exists {
		input.Counterparty = &raw
	}
	if raw, exists := ctx.GetPostForm("whatsapp"); exists {
		input.Whatsapp = &raw
	}
	return true
}

// parseDecimal parses a form decimal, responding with 400 on failure.
func (c *TransactionController) parseDecimal(ctx *gin.Context, raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"invalid amount",
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return decimal.Zero, false
	}
	return value, true
}

// saveReceipt stores an optional multipart receipt and returns its public URL.
// A missing receipt field is not an error here; the use case decides whether
// one is required.
func (c *TransactionController) saveReceipt(ctx *gin.Context) (string, error) {
	fileHeader, err := ctx.FormFile("receipt")
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename, err := c.fileStorage.Save(receiptFolder, fileHeader.Filename, file)
	if err != nil {
		return "", err
	}

	return c.fileStorage.URL(c.baseURL, receiptFolder, filename), nil
}

// parseID extracts and validates the :id path parameter.
func (c *TransactionController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error(
			"invalid transaction id",
			string(domainerror.ErrCodeTransactionNotFound),
		))
		return uuid.Nil, false
	}
	return id, true
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error, operation string) {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.Error(
			fmt.Sprintf("%s not found", c.kind),
			string(domainerror.ErrCodeTransactionNotFound),
		))
		return
	}
	if errors.Is(err, domainerror.ErrItemNotFound) {
		ctx.JSON(http.StatusBadRequest, dto.Error("item not found", string(domainerror.ErrCodeItemNotFound)))
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		switch txnErr.Code {
		case domainerror.ErrCodeNotAllowedToModify, domainerror.ErrCodeNotAllowedToDelete:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.Error(txnErr.Message, string(txnErr.Code)))
		return
	}

	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		ctx.JSON(http.StatusBadRequest, dto.Error(itemErr.Message, string(itemErr.Code)))
		return
	}

	slog.Error("transaction operation failed", "kind", c.kind, "operation", operation, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"internal server error",
		string(domainerror.ErrCodeTransactionInternalError),
	))
}
