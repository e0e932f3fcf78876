package taxonomy

import (
	"slices"
	"strings"
)

// Family groups supported file extensions by media kind.
type Family string

// Extension families.
const (
	FamilyImage    Family = "image"
	FamilyVideo    Family = "video"
	FamilyDesign   Family = "design"
	FamilyDocument Family = "document"
)

var (
	imageExtensions    = []string{"jpg", "jpeg", "png", "gif", "webp", "tiff", "bmp", "svg"}
	videoExtensions    = []string{"mp4", "mov", "avi", "wmv"}
	designExtensions   = []string{"psd", "ai", "indd", "sketch", "fig"}
	documentExtensions = []string{"pdf", "pptx", "ppt", "docx", "doc", "xlsx", "xls"}
)

// NormalizeExtension lowercases an extension and strips a leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ExtensionFamily returns the family for a supported extension.
// The second return is false for unsupported extensions.
func ExtensionFamily(ext string) (Family, bool) {
	ext = NormalizeExtension(ext)
	switch {
	case slices.Contains(imageExtensions, ext):
		return FamilyImage, true
	case slices.Contains(videoExtensions, ext):
		return FamilyVideo, true
	case slices.Contains(designExtensions, ext):
		return FamilyDesign, true
	case slices.Contains(documentExtensions, ext):
		return FamilyDocument, true
	default:
		return "", false
	}
}

// SupportedExtension reports whether files with the given extension are indexed.
func SupportedExtension(ext string) bool {
	_, ok := ExtensionFamily(ext)
	return ok
}
