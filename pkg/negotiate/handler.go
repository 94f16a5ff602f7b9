package negotiate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imgsupport/pkg/imagestore"
	"github.com/dmitrymomot/imgsupport/pkg/logger"
)

// DefaultFallbacks are tried after the negotiated modern formats.
var DefaultFallbacks = []string{".jpg", ".jpeg", ".png"}

// DefaultCacheControl is sent with every served image.
const DefaultCacheControl = "public, max-age=86400"

// Option configures Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	fallbacks    []string
	cacheControl string
	logger       *slog.Logger
	name         func(*http.Request) string
}

// WithFallbacks replaces the legacy extensions tried after AVIF and WebP.
// Extensions without a leading dot get one.
func WithFallbacks(exts ...string) Option {
	return func(o *handlerOptions) {
		o.fallbacks = o.fallbacks[:0]
		for _, ext := range exts {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			o.fallbacks = append(o.fallbacks, strings.ToLower(ext))
		}
	}
}

// WithCacheControl sets the Cache-Control header. An empty value omits it.
func WithCacheControl(v string) Option {
	return func(o *handlerOptions) { o.cacheControl = v }
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNameFunc overrides how the image base name is read from the request.
// By default it is the chi URL parameter "name", or the wildcard.
func WithNameFunc(fn func(*http.Request) string) Option {
	return func(o *handlerOptions) {
		if fn != nil {
			o.name = fn
		}
	}
}

func chiName(r *http.Request) string {
	if name := chi.URLParam(r, "name"); name != "" {
		return name
	}
	return chi.URLParam(r, "*")
}

// Handler serves the best available variant of the requested image.
//
// A name that already carries an image extension is served as is. Otherwise
// the negotiated variants and then the fallbacks are tried in order. Missing
// images yield 404, invalid names 400 and storage failures 500.
func Handler(store imagestore.Storage, opts ...Option) http.Handler {
	o := &handlerOptions{
		fallbacks:    append([]string(nil), DefaultFallbacks...),
		cacheControl: DefaultCacheControl,
		logger:       logger.NewNop(),
		name:         chiName,
	}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("negotiate"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		varyUserAgent(w.Header())

		name := strings.TrimPrefix(o.name(r), "/")
		if name == "" {
			http.Error(w, ErrInvalidName.Error(), http.StatusBadRequest)
			return
		}

		exts := candidates(r, o.fallbacks)
		if imagestore.ContentType(name) != "application/octet-stream" {
			exts = []string{""}
		}

		obj, err := imagestore.Resolve(ctx, store, name, exts...)
		if err == nil {
			var body io.ReadCloser
			body, obj, err = openResolved(r, store, obj)
			if err == nil {
				defer body.Close()
				writeImage(w, r, obj, body, o.cacheControl, log)
				return
			}
		}

		switch {
		case errors.Is(err, imagestore.ErrInvalidPath):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, imagestore.ErrNotFound):
			http.Error(w, fmt.Sprintf("image %q not found", name), http.StatusNotFound)
		default:
			log.ErrorContext(ctx, "failed to serve image",
				logger.Path(name),
				logger.UserAgent(r.UserAgent()),
				logger.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

// openResolved skips the body for HEAD and fresh conditional requests.
func openResolved(r *http.Request, store imagestore.Storage, obj imagestore.Object) (io.ReadCloser, imagestore.Object, error) {
	if r.Method == http.MethodHead || notModified(r, obj.ModTime) {
		return io.NopCloser(strings.NewReader("")), obj, nil
	}
	return store.Open(r.Context(), obj.Path)
}

func writeImage(w http.ResponseWriter, r *http.Request, obj imagestore.Object, body io.Reader, cacheControl string, log *slog.Logger) {
	h := w.Header()
	if cacheControl != "" {
		h.Set("Cache-Control", cacheControl)
	}
	if !obj.ModTime.IsZero() {
		h.Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}
	if notModified(r, obj.ModTime) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", obj.ContentType)
	h.Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, body); err != nil {
		log.WarnContext(r.Context(), "image copy interrupted", logger.Path(obj.Path), logger.Error(err))
	}
}

func notModified(r *http.Request, modTime time.Time) bool {
	if modTime.IsZero() || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		return false
	}
	ims := r.Header.Get("If-Modified-Since")
	if ims == "" {
		return false
	}
	t, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !modTime.Truncate(time.Second).After(t)
}

// Routes returns a chi router serving Handler for GET and HEAD on any path
// below its mount point.
func Routes(store imagestore.Storage, opts ...Option) chi.Router {
	h := Handler(store, opts...)
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/*", h.ServeHTTP)
	r.Head("/*", h.ServeHTTP)
	return r
}
