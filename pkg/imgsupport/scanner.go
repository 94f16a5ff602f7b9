package imgsupport

import "bytes"

// Match is the outcome of Classify.
type Match struct {
	// Family is the detected browser family.
	Family Family
	// Offset is the index of the first byte after the version marker, or -1
	// when Family is FamilyUnknown. It equals len(ua) when the family was
	// recognised but carries no version marker.
	Offset int
}

// marker ties a product token to a browser family. When versionToken is set,
// the version is read after that token instead of after token itself.
type marker struct {
	token        []byte
	versionToken []byte
	family       Family
}

// Product markers in order of checking priority. Classify walks the slice
// front to back, so the literal order is the precedence. Every Chromium
// derivative sits before the generic Chrome marker because its UA also
// contains "Chrome/", and Safari sits after Chrome because Chrome UAs end
// with "Safari/".
var markers = []marker{
	{token: []byte("Edg/"), family: FamilyEdgeChromium},
	{token: []byte("EdgA/"), family: FamilyEdgeChromium},
	{token: []byte("Edge/"), family: FamilyEdgeLegacy},
	{token: []byte("SamsungBrowser/"), family: FamilySamsung},
	{token: []byte("UCBrowser/"), family: FamilyUC},
	{token: []byte("QQBrowser/"), family: FamilyQQ},
	{token: []byte("OPR/"), family: FamilyOpera},
	{token: []byte("Chrome/"), family: FamilyChrome},
	{token: []byte("Firefox/"), family: FamilyFirefox},
	{token: []byte("Safari/"), versionToken: []byte("Version/"), family: FamilySafari},
}

// Classify returns the first browser family whose marker occurs in ua,
// together with the offset at which its version starts. Markers are matched
// case-sensitively. The input is neither copied nor modified.
func Classify(ua []byte) Match {
	for i := range markers {
		m := &markers[i]
		idx := bytes.Index(ua, m.token)
		if idx < 0 {
			continue
		}
		if m.versionToken == nil {
			return Match{Family: m.family, Offset: idx + len(m.token)}
		}
		if v := bytes.Index(ua, m.versionToken); v >= 0 {
			return Match{Family: m.family, Offset: v + len(m.versionToken)}
		}
		return Match{Family: m.family, Offset: len(ua)}
	}
	return Match{Family: FamilyUnknown, Offset: -1}
}
