package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// ExportMonth selects which calendar month an export covers.
type ExportMonth string

const (
	ExportCurrentMonth  ExportMonth = "currMonth"
	ExportPreviousMonth ExportMonth = "prevMonth"
)

// ExportTransactionsInput represents the input for a monthly spreadsheet
// export.
type ExportTransactionsInput struct {
	Kind  entity.TransactionKind
	Month ExportMonth
}

// ExportTransactionsOutput represents the rendered export file.
type ExportTransactionsOutput struct {
	Filename string
	Content  []byte
}

// ExportTransactionsUseCase renders one calendar month of transactions into a
// downloadable spreadsheet.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	formatter       adapter.ExportFormatter
	loc             *time.Location
	nowFn           func() time.Time
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	formatter adapter.ExportFormatter,
	loc *time.Location,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		formatter:       formatter,
		loc:             loc,
		nowFn:           time.Now,
	}
}

// Execute renders the export. The month boundaries follow the business
// timezone, covering the first instant of day one through the last instant of
// the month's final day.
func (uc *ExportTransactionsUseCase) Execute(
	ctx context.Context,
	input ExportTransactionsInput,
) (*ExportTransactionsOutput, error) {
	if input.Month != ExportCurrentMonth && input.Month != ExportPreviousMonth {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidExportMonth,
			"month must be: currMonth or prevMonth",
			domainerror.ErrInvalidExportMonth,
		)
	}

	now := uc.nowFn().In(uc.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
	if input.Month == ExportPreviousMonth {
		monthStart = monthStart.AddDate(0, -1, 0)
	}
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	rows, err := uc.transactionRepo.ListRange(ctx, input.Kind, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s transactions for export: %w", input.Kind, err)
	}

	sheetName := fmt.Sprintf("%s %s", input.Kind, monthStart.Format("January 2006"))
	content, err := uc.formatter.TransactionLog(sheetName, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	filename := fmt.Sprintf("%s-log-%s.xlsx", input.Kind, monthStart.Format("2006-01"))
	return &ExportTransactionsOutput{Filename: filename, Content: content}, nil
}
