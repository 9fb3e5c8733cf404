package site

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/blog-index/internal/bangumi"
	"github.com/handiism/blog-index/internal/config"
	"github.com/handiism/blog-index/internal/content"
	"github.com/handiism/blog-index/internal/http"
	"github.com/handiism/blog-index/internal/i18n"
	ioutils "github.com/handiism/blog-index/internal/io"
	"github.com/handiism/blog-index/internal/model"
	"github.com/handiism/blog-index/internal/taxonomy"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a build progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Index is the data file consumed by the blog's pages.
type Index struct {
	GeneratedAt  time.Time             `json:"generated_at"`
	Posts        []*model.Post         `json:"posts"`
	PostList     []model.PostSummary   `json:"post_list"`
	Tags         []model.Tag           `json:"tags"`
	Categories   []model.Category      `json:"categories"`
	CategoryTree []*model.CategoryNode `json:"category_tree"`
	Anime        *model.AnimeOverview  `json:"anime,omitempty"`
}

// Manager coordinates site index builds.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	indexer      *taxonomy.Indexer
	bangumi      *bangumi.Client
	imageService *ioutils.ImageService

	coversTotal   int32
	coversWritten int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new build Manager.
//
// If source is nil, posts are read from settings.ContentDir.
func NewManager(settings *config.Settings, source content.Source, onProgress func(ProgressEvent)) *Manager {
	if source == nil {
		source = content.NewDir(settings.ContentDir, nil)
	}

	httpClient := http.NewClient(settings.ToHTTPOptions()...)

	return &Manager{
		settings:   settings,
		httpClient: httpClient,
		indexer: taxonomy.NewIndexer(source, taxonomy.Options{
			Filter:        content.DraftPolicy(settings.Production),
			URLs:          settings.ToURLFormatter(),
			Uncategorized: settings.UncategorizedLabel(),
			Language:      i18n.Match(settings.Lang),
		}),
		bangumi:      bangumi.NewClient(httpClient, settings.ToClientOptions()),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Build computes the complete site index.
//
// Anime data is only fetched when settings.AnimeEnabled is set. A failed
// anime fetch fails the build; the anime page has no partial state.
func (m *Manager) Build(ctx context.Context) (*Index, error) {
	index := &Index{GeneratedAt: time.Now().UTC()}
	var err error

	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading posts from %s", m.settings.ContentDir), Level: LevelVerbose})

	if index.Posts, err = m.indexer.SortedPosts(ctx); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error loading posts: %v", err), Level: LevelError})
		return nil, fmt.Errorf("loading posts: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d posts", len(index.Posts)), Level: LevelInfo})

	if index.PostList, err = m.indexer.SortedPostList(ctx); err != nil {
		return nil, fmt.Errorf("building post list: %w", err)
	}
	if index.Tags, err = m.indexer.TagList(ctx); err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d tags", len(index.Tags)), Level: LevelInfo})

	if index.Categories, err = m.indexer.CategoryList(ctx); err != nil {
		return nil, fmt.Errorf("counting categories: %w", err)
	}
	index.CategoryTree = taxonomy.BuildCategoryTree(index.Categories, m.settings.ToURLFormatter())
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d categories (%d top-level)", len(index.Categories), len(index.CategoryTree)), Level: LevelInfo})

	if m.settings.AnimeEnabled {
		if m.settings.BangumiUserID == "" {
			m.progress(ProgressEvent{Message: "Anime overview enabled but no Bangumi user set, skipping", Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching Bangumi collection of %s", m.settings.BangumiUserID), Level: LevelVerbose})

			overview, err := m.bangumi.FetchOverview(ctx)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching anime: %v", err), Level: LevelError})
				return nil, fmt.Errorf("fetching anime overview: %w", err)
			}
			index.Anime = overview
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Anime: %d watching, %d completed", overview.Stats.Watching, overview.Stats.Completed),
				Level:   LevelInfo,
			})
		}
	}

	m.progress(ProgressEvent{Message: "Index built", Level: LevelSuccess})
	return index, nil
}

// WriteIndex writes the index as indented JSON to settings.OutputPath.
func (m *Manager) WriteIndex(ctx context.Context, index *Index) error {
	if err := ioutils.WriteJSON(ctx, m.settings.OutputPath, index); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing index: %v", err), Level: LevelError})
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", m.settings.OutputPath), Level: LevelSuccess})
	return nil
}

// ExportCovers downloads the cover of every anime, shrinks it to
// settings.CoverMaxSize and saves it as JPEG below settings.CoversPath.
//
// Covers are named after the sanitized title. Entries without a cover URL
// are skipped. It returns the number of covers written; individual cover
// failures are reported as warnings only.
func (m *Manager) ExportCovers(ctx context.Context, anime []model.Anime) (int, error) {
	if err := ioutils.EnsureDir(m.settings.CoversPath); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return 0, err
	}

	jobs := coverJobs(anime)
	atomic.StoreInt32(&m.coversTotal, int32(len(jobs)))
	atomic.StoreInt32(&m.coversWritten, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.settings.MaxConcurrentCoverDownloads))

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := m.exportCover(gctx, job); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error exporting cover for %s: %v", job.title, err), Level: LevelWarning})
				return nil // Continue with other covers
			}
			atomic.AddInt32(&m.coversWritten, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(atomic.LoadInt32(&m.coversWritten)), err
	}

	written := int(atomic.LoadInt32(&m.coversWritten))
	if written == len(jobs) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Exported %d covers", written), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Exported %d of %d covers, some failed", written, len(jobs)), Level: LevelWarning})
	}
	return written, ctx.Err()
}

// Progress returns the cover export progress.
func (m *Manager) Progress() (written, total int) {
	return int(atomic.LoadInt32(&m.coversWritten)), int(atomic.LoadInt32(&m.coversTotal))
}

type coverJob struct {
	title string
	url   string
	file  string
}

// coverJobs assigns every cover a unique file name.
func coverJobs(anime []model.Anime) []coverJob {
	jobs := make([]coverJob, 0, len(anime))
	used := make(map[string]int)

	for i, a := range anime {
		if a.Cover == "" {
			continue
		}

		name := ioutils.SanitizeFileName(a.Title)
		if name == "" {
			name = ioutils.SanitizeFileName(a.OriginalTitle)
		}
		if name == "" {
			name = "cover-" + strconv.Itoa(i+1)
		}

		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s (%d)", name, n)
		}

		jobs = append(jobs, coverJob{title: a.Title, url: a.Cover, file: name + ".jpg"})
	}
	return jobs
}

func (m *Manager) exportCover(ctx context.Context, job coverJob) error {
	var data []byte
	var err error

	for tries := 0; tries < max(1, m.settings.DownloadMaxRetries); tries++ {
		data, err = m.httpClient.DownloadBytes(ctx, job.url)
		if err == nil || ctx.Err() != nil {
			break
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, job.title), Level: LevelVerbose})
		m.waitForRetry(ctx, tries)
	}
	if err != nil {
		return err
	}

	thumb, err := m.imageService.Thumbnail(ctx, data, m.settings.CoverMaxSize)
	if err != nil {
		return fmt.Errorf("decoding cover: %w", err)
	}

	path := filepath.Join(m.settings.CoversPath, job.file)
	if err := ioutils.WriteFile(ctx, path, thumb); err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved cover: %s", job.file), Level: LevelVerbose})
	return nil
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
