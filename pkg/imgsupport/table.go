package imgsupport

// threshold is the minimum version at which a family supports a format.
// A zero threshold means the family never supports it.
type threshold struct {
	min       Version
	supported bool
}

func since(major, minor uint32) threshold {
	return threshold{min: V(major, minor), supported: true}
}

var never = threshold{}

// supportTable holds the first release of each family that decodes the
// format. Sources: browser release notes and caniuse.com (webp, avif).
//
// Safari versions are the "Version/" token, not the AppleWebKit build, which
// Apple froze at 605.1.15. Legacy Edge never shipped AVIF; the entry keeps
// the historical table value, which no EdgeHTML release reaches.
var supportTable = [familyCount][formatCount]threshold{
	FamilyUnknown:      {FormatWebP: never, FormatAVIF: never},
	FamilyEdgeChromium: {FormatWebP: since(79, 0), FormatAVIF: since(121, 0)},
	FamilyEdgeLegacy:   {FormatWebP: since(18, 0), FormatAVIF: since(85, 0)},
	FamilySamsung:      {FormatWebP: since(4, 0), FormatAVIF: since(14, 0)},
	FamilyUC:           {FormatWebP: since(12, 0), FormatAVIF: never},
	FamilyQQ:           {FormatWebP: since(10, 0), FormatAVIF: never},
	FamilyOpera:        {FormatWebP: since(19, 0), FormatAVIF: since(71, 0)},
	FamilyChrome:       {FormatWebP: since(32, 0), FormatAVIF: since(85, 0)},
	FamilyFirefox:      {FormatWebP: since(65, 0), FormatAVIF: since(93, 0)},
	FamilySafari:       {FormatWebP: since(14, 0), FormatAVIF: since(16, 0)},
}

// Threshold returns the minimum version of family f that supports format fm.
// The boolean is false when the family never supports the format.
func Threshold(f Family, fm Format) (Version, bool) {
	if f >= familyCount || fm >= formatCount {
		return Version{}, false
	}
	t := supportTable[f][fm]
	return t.min, t.supported
}
