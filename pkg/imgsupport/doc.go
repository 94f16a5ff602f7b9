// Package imgsupport decides from a raw HTTP User-Agent value whether the
// requesting browser can decode WebP and AVIF images.
//
// It is meant to run on every request in a server's response path, so the
// detection works directly on the header bytes: a fixed, precedence-ordered
// set of product markers is searched with bytes.Index, the version that
// follows the winning marker is read in place, and the result is compared
// against a compiled-in table of minimum supported versions. Nothing is
// allocated, nothing is cached and nothing is mutated, which makes every
// function in the package safe for concurrent use.
//
// # Architecture
//
//	User-Agent ──▶ Classify (scanner.go) ──▶ ParseVersion (version.go)
//	                                              │
//	                       Threshold (table.go) ──┴──▶ Supported (support.go)
//
// Classify returns the first matching browser family. The order matters:
// Chromium Edge and the other Chromium derivatives carry a "Chrome/" token
// and must be recognised before the generic Chrome-like family, and Safari is
// only reached when no Chrome-like marker is present because Chrome credits
// "Safari/" in its own UA.
//
// # Usage
//
//	ua := []byte(r.Header.Get("User-Agent"))
//
//	switch {
//	case imgsupport.AVIFSupported(ua):
//	    // serve image/avif
//	case imgsupport.WebPSupported(ua):
//	    // serve image/webp
//	default:
//	    // serve jpeg/png
//	}
//
// Best collapses the switch above into a single call.
//
// # Error Handling
//
// There is no error channel. Empty, truncated or binary input, an unknown
// browser or a marker without digits all yield false. Callers use the result
// to pick a safe fallback, so a false negative is always preferred over a
// false positive.
//
// # Updating thresholds
//
// The minimum versions live in table.go and nowhere else. Adding a newly
// shipped browser release only requires editing that table.
package imgsupport
