package document

import "strings"

// NormalizePhone limpia un teléfono en formato libre para uso en enlaces:
// conserva solo dígitos y un '+' inicial.
//
//	"+1 (234) 567-8900" -> "+12345678900"
//	"234-567-8900"      -> "2345678900"
//	""                  -> ""
//
// Una cadena vacía significa "sin destinatario directo"; el caller decide
// qué hacer en ese caso (ej. composer genérico de WhatsApp).
func NormalizePhone(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, raw)

	digits := digitsOnly(cleaned)
	if digits == "" {
		// Sin dígitos no hay número; un '+' suelto también cuenta como basura.
		return ""
	}
	if strings.HasPrefix(cleaned, "+") {
		return "+" + digits
	}
	return digits
}

// digitsOnly elimina todo lo que no sea dígito. wa.me exige el número sin
// '+' ni separadores, por eso el enlace usa esta variante y no NormalizePhone.
func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
