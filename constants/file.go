package constants

import "strings"

// AllowedImageTypes holds the content types accepted for receipt and
// odometer uploads. Vision providers reject anything else anyway.
var AllowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// IsAllowedImageType reports whether the upload content type is accepted.
func IsAllowedImageType(contentType string) bool {
	_, ok := AllowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ok
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
