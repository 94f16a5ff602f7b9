package imgsupport

// Supported reports whether the browser identified by ua decodes format fm.
// It never fails: unknown browsers, missing versions and unsupported
// formats all yield false.
func Supported(ua []byte, fm Format) bool {
	m := Classify(ua)
	if m.Family == FamilyUnknown {
		return false
	}
	v := ParseVersion(ua, m.Offset)
	if !v.Valid() {
		return false
	}
	req, ok := Threshold(m.Family, fm)
	if !ok {
		return false
	}
	return v.AtLeast(req)
}

// WebPSupported reports whether the browser identified by ua supports WebP.
func WebPSupported(ua []byte) bool { return Supported(ua, FormatWebP) }

// AVIFSupported reports whether the browser identified by ua supports AVIF.
func AVIFSupported(ua []byte) bool { return Supported(ua, FormatAVIF) }

// WebPSupportedString is WebPSupported for a string header value.
func WebPSupportedString(ua string) bool { return WebPSupported([]byte(ua)) }

// AVIFSupportedString is AVIFSupported for a string header value.
func AVIFSupportedString(ua string) bool { return AVIFSupported([]byte(ua)) }

// Best returns the smallest format the browser supports, preferring AVIF over
// WebP. The boolean is false when neither is supported and the caller should
// fall back to a legacy encoding.
func Best(ua []byte) (Format, bool) {
	m := Classify(ua)
	if m.Family == FamilyUnknown {
		return 0, false
	}
	v := ParseVersion(ua, m.Offset)
	if !v.Valid() {
		return 0, false
	}
	for _, fm := range [...]Format{FormatAVIF, FormatWebP} {
		if req, ok := Threshold(m.Family, fm); ok && v.AtLeast(req) {
			return fm, true
		}
	}
	return 0, false
}

// Result is the full outcome of a detection, used for diagnostics.
type Result struct {
	Family  Family
	Version Version
	WebP    bool
	AVIF    bool
}

// Detect classifies ua and evaluates both formats in one pass.
func Detect(ua []byte) Result {
	m := Classify(ua)
	r := Result{Family: m.Family}
	if m.Family == FamilyUnknown {
		return r
	}
	r.Version = ParseVersion(ua, m.Offset)
	if !r.Version.Valid() {
		return r
	}
	if req, ok := Threshold(m.Family, FormatWebP); ok {
		r.WebP = r.Version.AtLeast(req)
	}
	if req, ok := Threshold(m.Family, FormatAVIF); ok {
		r.AVIF = r.Version.AtLeast(req)
	}
	return r
}
