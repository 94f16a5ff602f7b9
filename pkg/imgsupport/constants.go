package imgsupport

import "strings"

// Family is the browser classification assigned to a User-Agent.
type Family uint8

const (
	// FamilyUnknown is assigned when no known product marker is present
	FamilyUnknown Family = iota

	// FamilyEdgeChromium identifies Chromium based Microsoft Edge ("Edg/")
	FamilyEdgeChromium

	// FamilyEdgeLegacy identifies EdgeHTML based Microsoft Edge ("Edge/")
	FamilyEdgeLegacy

	// FamilySamsung identifies Samsung Internet
	FamilySamsung

	// FamilyUC identifies UC Browser
	FamilyUC

	// FamilyQQ identifies QQ Browser
	FamilyQQ

	// FamilyOpera identifies Chromium based Opera ("OPR/")
	FamilyOpera

	// FamilyChrome identifies Chrome and Chromium based browsers not matched above
	FamilyChrome

	// FamilyFirefox identifies Mozilla Firefox
	FamilyFirefox

	// FamilySafari identifies Apple Safari
	FamilySafari

	familyCount
)

var familyNames = [familyCount]string{
	FamilyUnknown:      "unknown",
	FamilyEdgeChromium: "edge",
	FamilyEdgeLegacy:   "edge-legacy",
	FamilySamsung:      "samsung",
	FamilyUC:           "uc",
	FamilyQQ:           "qq",
	FamilyOpera:        "opera",
	FamilyChrome:       "chrome",
	FamilyFirefox:      "firefox",
	FamilySafari:       "safari",
}

// String returns the stable lowercase name of the family.
func (f Family) String() string {
	if f >= familyCount {
		return familyNames[FamilyUnknown]
	}
	return familyNames[f]
}

// Families returns every recognised family in detection order, excluding
// FamilyUnknown.
func Families() []Family {
	out := make([]Family, 0, familyCount-1)
	seen := [familyCount]bool{}
	for _, m := range markers {
		if !seen[m.family] {
			seen[m.family] = true
			out = append(out, m.family)
		}
	}
	return out
}

// Format is an image encoding whose support is detected.
type Format uint8

const (
	// FormatWebP is the WebP image format
	FormatWebP Format = iota

	// FormatAVIF is the AV1 Image File Format
	FormatAVIF

	formatCount
)

// Formats returns all formats ordered from the smallest typical encoding to
// the largest.
func Formats() []Format {
	return []Format{FormatAVIF, FormatWebP}
}

var formatInfo = [formatCount]struct {
	name string
	mime string
	ext  string
}{
	FormatWebP: {name: "webp", mime: "image/webp", ext: ".webp"},
	FormatAVIF: {name: "avif", mime: "image/avif", ext: ".avif"},
}

// String returns the lowercase format name.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatInfo[f].name
}

// MIMEType returns the media type used in Content-Type headers.
func (f Format) MIMEType() string {
	if f >= formatCount {
		return ""
	}
	return formatInfo[f].mime
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	if f >= formatCount {
		return ""
	}
	return formatInfo[f].ext
}

// ParseFormat parses a format name such as "webp" or "AVIF".
func ParseFormat(s string) (Format, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for f := range formatCount {
		if formatInfo[f].name == s {
			return f, true
		}
	}
	return 0, false
}
