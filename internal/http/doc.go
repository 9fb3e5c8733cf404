// Package http provides an HTTP client for the remote APIs used by blog-index.
//
// The Client in this package handles:
//   - User-Agent headers (Bangumi requires a descriptive one)
//   - JSON decoding of REST responses
//   - Byte downloads for cover images
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Decode a JSON document
//	var page dto.CollectionPage
//	err := client.GetJSON(ctx, url, &page)
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, coverURL)
//
// # Errors
//
// Non-2xx responses are reported as *StatusError so callers can inspect
// the status code:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.StatusCode == 404 {
//	    // user not found
//	}
package http
