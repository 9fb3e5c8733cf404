// Package bangumi reads a user's anime collection from the Bangumi API
// (https://bangumi.github.io/api/) and turns it into display records.
//
// The package handles three use cases:
//
//  1. Counting the entries of one collection state
//  2. Fetching every entry of one collection state, page by page
//  3. Assembling the anime page overview from both
//
// # Paged Fetching
//
// The collections endpoint returns at most "limit" entries per request.
// FetchCollection requests pages of 50 at offsets 0, 50, 100, ... and stops
// at the first page holding fewer than 50 entries:
//
//	client := bangumi.NewClient(http.NewClient(), bangumi.DefaultOptions("sai"))
//	items, err := client.FetchCollection(ctx, bangumi.CollectionWatching)
//
// Pages are never requested in parallel, and a short pause separates them.
//
// # Overview
//
//	overview, err := client.FetchOverview(ctx)
//	fmt.Printf("%d watching, %d completed\n", overview.Stats.Watching, overview.Stats.Completed)
//
// # Errors
//
// A non-success response is a *FetchError. A failed FetchCollection wraps it
// in a *CollectionError naming the collection, so both can be inspected with
// errors.As.
package bangumi
