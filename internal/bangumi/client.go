package bangumi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/blog-index/internal/bangumi/dto"
	"github.com/handiism/blog-index/internal/http"
)

const (
	// DefaultBaseURL is the public Bangumi API.
	DefaultBaseURL = "https://api.bgm.tv"

	// DefaultPageSize is the number of entries requested per page.
	DefaultPageSize = 50

	// DefaultPageDelay is the pause between two page requests.
	DefaultPageDelay = 100 * time.Millisecond
)

// Options configures a Client.
type Options struct {
	// BaseURL of the API, without trailing slash. Defaults to DefaultBaseURL.
	BaseURL string

	// UserID is the Bangumi username or numeric id whose collection is read.
	UserID string

	// PageSize is the "limit" of each page request. Defaults to DefaultPageSize.
	PageSize int

	// PageDelay is slept between page requests. Zero disables the pause.
	PageDelay time.Duration

	// Logger receives request logs. If nil, uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options for the public API with the courtesy delay enabled.
func DefaultOptions(userID string) Options {
	return Options{
		BaseURL:   DefaultBaseURL,
		UserID:    userID,
		PageSize:  DefaultPageSize,
		PageDelay: DefaultPageDelay,
	}
}

// Client reads a user's anime collection from the Bangumi v0 API.
//
// No authentication is performed; the collections endpoint is public for
// users whose collection is not private.
//
// Example usage:
//
//	client := bangumi.NewClient(http.NewClient(), bangumi.DefaultOptions("sai"))
//
//	watching, err := client.FetchCollection(ctx, bangumi.CollectionWatching)
//	completed, err := client.FetchCollectionCount(ctx, bangumi.CollectionCompleted)
type Client struct {
	http      *http.Client
	baseURL   string
	userID    string
	pageSize  int
	pageDelay time.Duration
	logger    *slog.Logger
}

// NewClient creates a Client that issues requests through httpClient.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userID:    opts.UserID,
		pageSize:  opts.PageSize,
		pageDelay: opts.PageDelay,
		logger:    opts.Logger,
	}
}

// FetchCollectionCount returns the number of anime in one collection state.
//
// A single request with limit=1 is made and the "total" field of the
// response is returned (0 when missing).
//
// Returns a *FetchError if Bangumi answers with a non-success status.
func (c *Client) FetchCollectionCount(ctx context.Context, collection CollectionType) (int, error) {
	var page dto.JSONCollectionPage
	if err := c.http.GetJSON(ctx, c.collectionURL(collection, 1, 0), &page); err != nil {
		err = asFetchError("count", err)
		c.logger.Error("fetching Bangumi count failed",
			slog.String("collection", collection.String()),
			slog.Any("error", err),
		)
		return 0, err
	}

	c.logger.Debug("fetched Bangumi count",
		slog.String("collection", collection.String()),
		slog.Int("total", page.Total),
	)
	return page.Total, nil
}

// FetchCollection returns every entry of one collection state.
//
// Pages of PageSize entries are requested at increasing offsets until a
// page comes back with fewer entries than requested. Pages are fetched
// strictly one after another, with PageDelay between them.
//
// On any failure no partial result is returned; the error is a
// *CollectionError naming the collection.
func (c *Client) FetchCollection(ctx context.Context, collection CollectionType) ([]dto.JSONCollectionItem, error) {
	var all []dto.JSONCollectionItem

	for offset := 0; ; offset += c.pageSize {
		var page dto.JSONCollectionPage
		if err := c.http.GetJSON(ctx, c.collectionURL(collection, c.pageSize, offset), &page); err != nil {
			err = &CollectionError{Collection: collection, Err: asFetchError("data", err)}
			c.logger.Error("fetching Bangumi collection failed",
				slog.String("collection", collection.String()),
				slog.Int("offset", offset),
				slog.Any("error", err),
			)
			return nil, err
		}

		all = append(all, page.Data...)
		c.logger.Debug("fetched Bangumi page",
			slog.String("collection", collection.String()),
			slog.Int("offset", offset),
			slog.Int("items", len(page.Data)),
		)

		if len(page.Data) < c.pageSize {
			break
		}

		if err := c.wait(ctx); err != nil {
			return nil, &CollectionError{Collection: collection, Err: err}
		}
	}

	if all == nil {
		all = []dto.JSONCollectionItem{}
	}
	return all, nil
}

// wait sleeps for the page delay or until ctx is cancelled.
func (c *Client) wait(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageDelay):
		return nil
	}
}

func (c *Client) collectionURL(collection CollectionType, limit, offset int) string {
	q := url.Values{}
	q.Set("subject_type", strconv.Itoa(SubjectTypeAnime))
	q.Set("type", strconv.Itoa(int(collection)))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	return fmt.Sprintf("%s/v0/users/%s/collections?%s", c.baseURL, url.PathEscape(c.userID), q.Encode())
}
