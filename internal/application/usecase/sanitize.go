package usecase

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy elimina todo marcado HTML de los campos de texto libre.
var textPolicy = bluemonday.StrictPolicy()

// cleanText quita etiquetas y espacios sobrantes. Las entidades se devuelven a su carácter
// ("&amp;" → "&") porque la salida es JSON o PDF, no HTML.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
