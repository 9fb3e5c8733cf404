package bangumi

import (
	"context"

	"github.com/handiism/blog-index/internal/bangumi/dto"
	"github.com/handiism/blog-index/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProcessCollection maps raw collection entries to display records.
func ProcessCollection(items []dto.JSONCollectionItem) []model.Anime {
	list := make([]model.Anime, 0, len(items))
	for i := range items {
		list = append(list, items[i].ToAnime())
	}
	return list
}

// FetchOverview assembles the anime page data.
//
// The watching list and the completed count are fetched concurrently. If
// either request fails the other is cancelled and the error is returned;
// there is no partial overview.
//
// Stats are derived as:
//   - Watching  = number of entries in the watching list
//   - Completed = Bangumi's total for the completed state
//   - Total     = Watching + Completed
func (c *Client) FetchOverview(ctx context.Context) (*model.AnimeOverview, error) {
	var (
		watching  []dto.JSONCollectionItem
		completed int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		watching, err = c.FetchCollection(ctx, CollectionWatching)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = c.FetchCollectionCount(ctx, CollectionCompleted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.AnimeOverview{
		Stats: model.AnimeStats{
			Total:     len(watching) + completed,
			Watching:  len(watching),
			Completed: completed,
		},
		AnimeList: ProcessCollection(watching),
	}, nil
}
