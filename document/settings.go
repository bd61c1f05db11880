package document

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormat is the document's active numeric-formatting settings,
// used wherever a measured value becomes display text (dimension
// values). Elevation labels on level lines use a fixed format and are
// not affected by these settings.
type NumberFormat struct {
	// Locale is a BCP 47 tag ("en", "de", ...). It controls decimal
	// and group separators. Unparsable or empty falls back to "en".
	Locale string `json:"locale,omitempty"`
	// Decimals is the number of fraction digits.
	Decimals int `json:"decimals"`
}

// Format renders a value in document units per the active settings.
func (f NumberFormat) Format(v float64) string {
	tag, err := language.Parse(f.Locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(v, number.Scale(f.Decimals)))
}
