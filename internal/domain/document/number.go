package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefijos de numeración por tipo de documento.
const (
	PrefixReceipt = "RCP"
	PrefixInvoice = "INV"
)

// DisplayNumber genera el número cosmético que se muestra en previews y en
// el texto compartible: prefijo + últimos 8 dígitos del timestamp en
// milisegundos. No es único bajo generación concurrente en el mismo
// milisegundo; nunca usarlo como identidad.
func DisplayNumber(prefix string, t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return prefix + "-" + strings.ToUpper(ms)
}

// NewNumber genera el número persistido de un documento: prefijo + 8
// caracteres hex de un UUID v4, en mayúsculas. Esta es la identidad de
// despliegue que asigna el servidor al guardar.
func NewNumber(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "-" + strings.ToUpper(hex[:8])
}
