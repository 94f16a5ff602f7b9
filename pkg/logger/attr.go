package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// maxUserAgentLen bounds the logged User-Agent; real values rarely exceed it.
const maxUserAgentLen = 256

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// UserAgent records a User-Agent header value, truncated.
func UserAgent(ua string) slog.Attr {
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}
	return slog.String("user_agent", ua)
}

// Family records a browser family under the key "browser".
func Family(f fmt.Stringer) slog.Attr {
	return slog.String("browser", f.String())
}

// Format records an image format under the key "image_format".
func Format(f fmt.Stringer) slog.Attr {
	return slog.String("image_format", f.String())
}

// Path records a request or storage path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
