package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hexapixel/backend/internal/application/usecase/summary"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the dashboard reporting endpoints.
type SummaryController struct {
	getTotalSummaryUseCase   *summary.GetTotalSummaryUseCase
	getCountSummaryUseCase   *summary.GetCountSummaryUseCase
	getDailyChartUseCase     *summary.GetDailyChartUseCase
	getTopItemsUseCase       *summary.GetTopItemsUseCase
	getLatestActivityUseCase *summary.GetLatestActivityUseCase
}

// NewSummaryController creates a new SummaryController instance.
func NewSummaryController(
	getTotalSummaryUseCase *summary.GetTotalSummaryUseCase,
	getCountSummaryUseCase *summary.GetCountSummaryUseCase,
	getDailyChartUseCase *summary.GetDailyChartUseCase,
	getTopItemsUseCase *summary.GetTopItemsUseCase,
	getLatestActivityUseCase *summary.GetLatestActivityUseCase,
) *SummaryController {
	return &SummaryController{
		getTotalSummaryUseCase:   getTotalSummaryUseCase,
		getCountSummaryUseCase:   getCountSummaryUseCase,
		getDailyChartUseCase:     getDailyChartUseCase,
		getTopItemsUseCase:       getTopItemsUseCase,
		getLatestActivityUseCase: getLatestActivityUseCase,
	}
}

// TotalSummary handles GET /api/dashboard/{kind}/summary/:type. The optional
// metric query switches the aggregate from summed amounts to row counts.
func (c *SummaryController) TotalSummary(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		metric := summary.Metric(ctx.DefaultQuery("metric", string(summary.MetricAmount)))

		output, err := c.getTotalSummaryUseCase.Execute(ctx.Request.Context(), summary.GetTotalSummaryInput{
			Kind:   kind,
			Period: summary.PeriodType(ctx.Param("type")),
			Metric: metric,
		})
		if err != nil {
			c.handleSummaryError(ctx, err, "total summary")
			return
		}

		ctx.JSON(http.StatusOK, dto.OK("summary retrieved", dto.ToTotalSummaryResponse(output)))
	}
}

// CountSummary handles GET /api/dashboard/{kind}/count-summary/:type.
func (c *SummaryController) CountSummary(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		output, err := c.getCountSummaryUseCase.Execute(ctx.Request.Context(), summary.GetCountSummaryInput{
			Kind:   kind,
			Period: summary.PeriodType(ctx.Param("type")),
		})
		if err != nil {
			c.handleSummaryError(ctx, err, "count summary")
			return
		}

		ctx.JSON(http.StatusOK, dto.OK("count summary retrieved", dto.ToCountSummaryResponse(output)))
	}
}

// DailyChart handles GET /api/dashboard/daily/:type?typeDate=N where :type is
// the transaction kind and typeDate the trailing day count.
func (c *SummaryController) DailyChart(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.Query("typeDate"))

	output, err := c.getDailyChartUseCase.Execute(ctx.Request.Context(), summary.GetDailyChartInput{
		Kind: entity.TransactionKind(ctx.Param("type")),
		Days: days,
	})
	if err != nil {
		c.handleSummaryError(ctx, err, "daily chart")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("daily chart retrieved", dto.ToDailyChartResponse(output)))
}

// TopItems handles GET /api/dashboard/{kind}/top-items/:type.
func (c *SummaryController) TopItems(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		output, err := c.getTopItemsUseCase.Execute(ctx.Request.Context(), summary.GetTopItemsInput{
			Kind:   kind,
			Period: summary.PeriodType(ctx.Param("type")),
		})
		if err != nil {
			c.handleSummaryError(ctx, err, "top items")
			return
		}

		ctx.JSON(http.StatusOK, dto.OK("top items retrieved", dto.ToTopItemsResponse(output)))
	}
}

// LatestClients handles GET /api/dashboard/income/latest-clients.
func (c *SummaryController) LatestClients(ctx *gin.Context) {
	output, err := c.getLatestActivityUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSummaryError(ctx, err, "latest clients")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("latest clients retrieved", dto.ToActivityResponse(output)))
}

// handleSummaryError maps summary errors to HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error, operation string) {
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		ctx.JSON(http.StatusBadRequest, dto.Error(summaryErr.Message, string(summaryErr.Code)))
		return
	}

	slog.Error("summary operation failed", "operation", operation, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.Error(
		"internal server error",
		string(domainerror.ErrCodeSummaryInternalError),
	))
}
