package negotiate

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
	"github.com/dmitrymomot/imgsupport/pkg/logger"
)

type contextKey struct{}

// Middleware detects the best image format for the request's User-Agent and
// stores it in the context. Nothing is stored when neither format is
// supported.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		varyUserAgent(w.Header())
		if f, ok := imgsupport.Best([]byte(r.UserAgent())); ok {
			r = r.WithContext(WithContext(r.Context(), f))
		}
		next.ServeHTTP(w, r)
	})
}

// WithContext returns a copy of ctx carrying f.
func WithContext(ctx context.Context, f imgsupport.Format) context.Context {
	return context.WithValue(ctx, contextKey{}, f)
}

// FromContext returns the negotiated format.
func FromContext(ctx context.Context) (imgsupport.Format, bool) {
	if ctx == nil {
		return 0, false
	}
	f, ok := ctx.Value(contextKey{}).(imgsupport.Format)
	return f, ok
}

// LoggerExtractor returns a logger.ContextExtractor adding "image_format".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if f, ok := FromContext(ctx); ok {
			return logger.Format(f), true
		}
		return slog.Attr{}, false
	}
}

// candidates lists the extensions to try for a request, best first.
func candidates(r *http.Request, fallbacks []string) []string {
	f, ok := FromContext(r.Context())
	if !ok {
		f, ok = imgsupport.Best([]byte(r.UserAgent()))
	}

	exts := make([]string, 0, 2+len(fallbacks))
	if ok {
		switch f {
		case imgsupport.FormatAVIF:
			exts = append(exts, imgsupport.FormatAVIF.Extension(), imgsupport.FormatWebP.Extension())
		case imgsupport.FormatWebP:
			exts = append(exts, imgsupport.FormatWebP.Extension())
		}
	}
	return append(exts, fallbacks...)
}

func varyUserAgent(h http.Header) {
	for _, v := range h.Values("Vary") {
		for _, field := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(field), "User-Agent") {
				return
			}
		}
	}
	h.Add("Vary", "User-Agent")
}
