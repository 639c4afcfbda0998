package utils

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Blank is printed in documents for fields left empty
const Blank = "_____________"

var (
	numberPrinter = message.NewPrinter(language.English)
	titleCaser    = cases.Title(language.English)
)

// dateLayouts are the accepted input formats for document dates
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"02/01/2006",
}

// FormatShekels renders a whole-shekel amount with thousands separators,
// e.g. ₪1,234,567. Zero and non-finite amounts render as Blank.
func FormatShekels(amount float64) string {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Blank
	}
	rounded := int64(math.Floor(amount + 0.5))
	if rounded < 0 {
		return "-₪" + numberPrinter.Sprintf("%d", -rounded)
	}
	return "₪" + numberPrinter.Sprintf("%d", rounded)
}

// FormatDocumentDate renders an ISO date as "2 January 2025".
// Empty input renders as Blank; unparseable input is returned unchanged.
func FormatDocumentDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Blank
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return s
}

// OrBlank returns s, or Blank when s is empty
func OrBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return Blank
	}
	return s
}

// HumanizeEnum turns an enum code like GARDEN_APARTMENT into "Garden Apartment"
func HumanizeEnum(code string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(code), "_", " "))
}
