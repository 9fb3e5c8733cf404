// Package site provides the build orchestration that turns a content
// directory and a Bangumi collection into the data files a static blog reads.
//
// # Manager
//
// The Manager coordinates the entire build:
//
//  1. Load the visible posts from the content source
//  2. Sort and link posts, count tags and categories, build the category tree
//  3. Fetch the anime overview from Bangumi (optional)
//  4. Write the index as JSON
//  5. Export cover thumbnails (optional)
//
// # Basic Usage
//
//	manager := site.NewManager(settings, nil, func(event site.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	index, err := manager.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = manager.WriteIndex(ctx, index)
//
// # Concurrency
//
// Cover downloads run in parallel, bounded by
// settings.MaxConcurrentCoverDownloads. A cover that cannot be downloaded
// or decoded is reported as a warning and does not fail the export.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Retry Logic
//
// Failed cover downloads are retried with exponential backoff,
// configurable via settings.DownloadMaxRetries and settings.DownloadRetryCooldown.
package site
