// Package imagestore reads pre-encoded image variants from local disk or an
// S3-compatible bucket.
//
// Every image is expected to exist under one base name with several
// extensions, for example hero.avif, hero.webp and hero.jpg. Resolve walks a
// list of candidate extensions in preference order and returns the first
// variant that exists, which lets an HTTP handler serve the smallest encoding
// the browser supports and fall back gracefully when a variant was never
// generated.
//
// Two backends implement Storage:
//
//   - LocalStorage confines every lookup to a base directory.
//   - S3Storage uses github.com/aws/aws-sdk-go-v2 and maps missing keys to
//     ErrNotFound.
//
// New picks the backend from Config, which is loadable with pkg/config.
package imagestore
