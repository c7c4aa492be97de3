package adapter

import (
	"github.com/hexapixel/backend/internal/domain/entity"
)

// ExportFormatter defines the interface for serializing transaction logs into
// a downloadable spreadsheet.
type ExportFormatter interface {
	// TransactionLog renders the rows into a single-sheet workbook and returns
	// the encoded file content.
	TransactionLog(sheetName string, rows []*entity.TransactionWithRefs) ([]byte, error)
}
