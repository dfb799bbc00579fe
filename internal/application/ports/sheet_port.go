package ports

import (
	"context"
	"io"
)

// SheetReader lee la primera hoja de un libro (xlsx o csv) y devuelve sus filas
// como mapas encabezado → valor. La primera fila del archivo es la de encabezados.
// Las filas completamente vacías se omiten.
type SheetReader interface {
	ReadRows(ctx context.Context, filename string, r io.Reader) ([]map[string]string, error)
}
