package spreadsheet

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rma-tracker/internal/domain"
)

// XLSXReader lee libros de Excel con excelize. Solo se procesa la primera hoja.
type XLSXReader struct{}

func (x *XLSXReader) ReadRows(ctx context.Context, filename string, src io.Reader) ([]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rowsToMaps(rows), nil
}
