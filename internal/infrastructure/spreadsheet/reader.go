// Package spreadsheet lee hojas de cálculo (.xlsx y .csv) como filas indexadas por encabezado.
package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

var _ ports.SheetReader = (*Reader)(nil)

// Reader elige el formato por la extensión del nombre de archivo.
type Reader struct {
	xlsx *XLSXReader
	csv  *CSVReader
}

// NewReader crea un lector para .xlsx y .csv.
func NewReader() *Reader {
	return &Reader{xlsx: &XLSXReader{}, csv: &CSVReader{}}
}

// ReadRows devuelve las filas de la primera hoja; la primera fila es el encabezado.
func (r *Reader) ReadRows(ctx context.Context, filename string, src io.Reader) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return r.xlsx.ReadRows(ctx, filename, src)
	case ".csv":
		return r.csv.ReadRows(ctx, filename, src)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// rowsToMaps usa la primera fila como encabezado. Omite filas vacías y
// recorta espacios; las celdas faltantes al final de una fila quedan sin clave.
func rowsToMaps(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return []map[string]string{}
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		m := make(map[string]string, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			m[header[i]] = strings.TrimSpace(cell)
		}
		out = append(out, m)
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
