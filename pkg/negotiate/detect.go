package negotiate

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
)

// Detection is the JSON body written by DetectHandler.
type Detection struct {
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	Browser   string `json:"browser" yaml:"browser"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	WebP      bool   `json:"webp" yaml:"webp"`
	AVIF      bool   `json:"avif" yaml:"avif"`
	Best      string `json:"best,omitempty" yaml:"best,omitempty"`
}

// Detect builds a Detection for ua.
func Detect(ua string) Detection {
	res := imgsupport.Detect([]byte(ua))
	d := Detection{
		UserAgent: ua,
		Browser:   res.Family.String(),
		Version:   res.Version.String(),
		WebP:      res.WebP,
		AVIF:      res.AVIF,
	}
	switch {
	case res.AVIF:
		d.Best = imgsupport.FormatAVIF.String()
	case res.WebP:
		d.Best = imgsupport.FormatWebP.String()
	}
	return d
}

// DetectHandler writes the detection result for the request's User-Agent.
// The ua query parameter overrides the header.
func DetectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ua := r.URL.Query().Get("ua")
		if ua == "" {
			ua = r.UserAgent()
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		varyUserAgent(w.Header())
		_ = json.NewEncoder(w).Encode(Detect(ua))
	}
}
