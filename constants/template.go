package constants

import "strings"

// Template is a named instruction profile controlling what fields a vision
// provider is asked to extract.
type Template string

const (
	TemplateGeneral  Template = "general"
	TemplateTravel   Template = "travel"
	TemplateOdometer Template = "odometer"
)

// Templates holds the allowed values for the payload template field.
var Templates = []string{string(TemplateGeneral), string(TemplateTravel), string(TemplateOdometer)}

// ParseTemplate normalizes a template name; ok is false for unknown names.
func ParseTemplate(s string) (Template, bool) {
	switch Template(strings.ToLower(strings.TrimSpace(s))) {
	case TemplateGeneral:
		return TemplateGeneral, true
	case TemplateTravel:
		return TemplateTravel, true
	case TemplateOdometer:
		return TemplateOdometer, true
	}
	return "", false
}
