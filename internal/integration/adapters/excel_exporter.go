package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// exportColumn pairs a header with its column width.
type exportColumn struct {
	header string
	width  float64
}

var transactionLogColumns = []exportColumn{
	{"No", 5},
	{"Item", 20},
	{"Quantity", 10},
	{"Price", 15},
	{"Total Price", 15},
	{"Customer Name", 20},
	{"Whatsapp", 18},
	{"Created By", 20},
	{"Date", 20},
}

// excelExporter implements the adapter.ExportFormatter interface.
type excelExporter struct{}

// NewExcelExporter creates a new excel exporter instance.
func NewExcelExporter() adapter.ExportFormatter {
	return &excelExporter{}
}

// TransactionLog renders the rows into a single-sheet workbook.
func (e *excelExporter) TransactionLog(sheetName string, rows []*entity.TransactionWithRefs) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 characters by the xlsx format.
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range transactionLogColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, colName, colName, col.width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		tx := row.Transaction
		values := []interface{}{
			i + 1,
			row.ItemName,
			tx.Quantity,
			tx.Price.InexactFloat64(),
			tx.TotalPrice.InexactFloat64(),
			tx.Counterparty,
			tx.Whatsapp,
			row.CreatorName,
			tx.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
