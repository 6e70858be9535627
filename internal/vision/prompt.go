package vision

import (
	"strings"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// PromptFor selects the instruction string for a template. Three fixed
// templates exist; unknown values fall back to the general receipt prompt.
func PromptFor(t constants.Template) string {
	switch t {
	case constants.TemplateOdometer:
		return odometerPrompt
	case constants.TemplateTravel:
		return travelPrompt
	default:
		return generalPrompt
	}
}

var odometerPrompt = strings.Join([]string{
	"You are reading a vehicle odometer photo.",
	"Extract the single numeric odometer reading shown on the display.",
	"Ignore units such as km or mi, and ignore trip meters.",
	`Return ONLY JSON of the form {"reading": <number>}.`,
	"Never output null. If the display is unreadable, return your best guess of the digits you can see.",
}, " ")

var travelPrompt = strings.Join([]string{
	"You are an expense receipt parser for business travel.",
	"Extract the following fields from the receipt image; all of them are required:",
	"date (ISO-8601 YYYY-MM-DD), cost (decimal number), currency (3-letter ISO 4217 code),",
	"purpose (short business purpose), type (expense type such as Transportation, Lodging, Meals),",
	"vendor (merchant name), location (city and region).",
	"Return ONLY a single JSON object with exactly those keys.",
	"Never output null. If a value is uncertain, give your best reading of what is printed.",
}, " ")

var generalPrompt = strings.Join([]string{
	"You are an expense receipt parser.",
	"Extract from the receipt image: vendor (merchant name), location, date (ISO-8601 YYYY-MM-DD),",
	"items (array of line item descriptions), subtotal, tax, total (decimal numbers),",
	"and paymentMethod when visible.",
	"Return ONLY a single JSON object with those keys; omit a key when the receipt does not show it.",
	"Never output null.",
}, " ")
