package site

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/blog-index/internal/bangumi/dto"
	"github.com/handiism/blog-index/internal/config"
	"github.com/handiism/blog-index/internal/content"
	"github.com/handiism/blog-index/internal/model"
)

type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) add(e ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) count(level ProgressLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Level == level {
			n++
		}
	}
	return n
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

var testPosts = content.Slice{
	{Slug: "older", Title: "Older", Published: day("2024-01-01"), Tags: []string{"Go"}, Category: "Tech/Go"},
	{Slug: "newer", Title: "Newer", Published: day("2024-03-01"), Tags: []string{"Go", "Life"}},
	{Slug: "wip", Title: "WIP", Published: day("2024-02-01"), Category: "Tech", Draft: true},
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 144, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// newBangumi serves a watching list of two titles and a completed total of 5.
// The cover of the second title is missing.
func newBangumi(t *testing.T, failWatching bool) *httptest.Server {
	t.Helper()
	cover := pngBytes(t, 400, 200)

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/v0/users/sai/collections", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") == "1" {
			json.NewEncoder(w).Encode(dto.JSONCollectionPage{Total: 5, Data: []dto.JSONCollectionItem{}})
			return
		}
		if failWatching {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		items := make([]dto.JSONCollectionItem, 2)
		for i := range items {
			items[i] = dto.JSONCollectionItem{
				EpStatus: 3,
				Subject: &dto.JSONSubject{
					NameCN: "Title " + strconv.Itoa(i+1),
					Eps:    12,
					Images: &dto.JSONImages{Medium: srv.URL + "/covers/" + strconv.Itoa(i+1) + ".png"},
				},
			}
		}
		json.NewEncoder(w).Encode(dto.JSONCollectionPage{Total: 2, Data: items})
	})
	mux.HandleFunc("/covers/1.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(cover)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	dir := t.TempDir()
	s := config.DefaultSettings()
	s.Production = true
	s.OutputPath = filepath.Join(dir, "dist", "index.json")
	s.CoversPath = filepath.Join(dir, "dist", "covers")
	s.CoverMaxSize = 100
	s.BangumiPageDelay = 0
	s.DownloadMaxRetries = 1
	s.DownloadRetryCooldown = 0
	return s
}

func TestManager_Build(t *testing.T) {
	settings := testSettings(t)
	log := &eventLog{}

	index, err := NewManager(settings, testPosts, log.add).Build(context.Background())
	require.NoError(t, err)

	require.Len(t, index.Posts, 2, "draft must be hidden in production")
	assert.Equal(t, "newer", index.Posts[0].Slug)
	assert.Equal(t, "older", index.Posts[0].PrevSlug)
	assert.Equal(t, "newer", index.Posts[1].NextSlug)

	require.Len(t, index.PostList, 2)
	assert.Empty(t, index.PostList[0].Data.PrevSlug)

	assert.Equal(t, []model.Tag{{Name: "Go", Count: 2}, {Name: "Life", Count: 1}}, index.Tags)

	names := make([]string, len(index.Categories))
	for i, c := range index.Categories {
		names[i] = c.Name
	}
	assert.ElementsMatch(t, []string{"Tech/Go", "Uncategorized"}, names)
	assert.Len(t, index.CategoryTree, 2)

	assert.Nil(t, index.Anime)
	assert.False(t, index.GeneratedAt.IsZero())
	assert.Equal(t, 1, log.count(LevelSuccess))
}

func TestManager_BuildWithAnime(t *testing.T) {
	srv := newBangumi(t, false)
	settings := testSettings(t)
	settings.AnimeEnabled = true
	settings.BangumiUserID = "sai"
	settings.BangumiAPIBase = srv.URL

	index, err := NewManager(settings, testPosts, nil).Build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, index.Anime)
	assert.Equal(t, model.AnimeStats{Total: 7, Watching: 2, Completed: 5}, index.Anime.Stats)
	assert.Equal(t, "Title 1", index.Anime.AnimeList[0].Title)
}

func TestManager_BuildAnimeFailure(t *testing.T) {
	srv := newBangumi(t, true)
	settings := testSettings(t)
	settings.AnimeEnabled = true
	settings.BangumiUserID = "sai"
	settings.BangumiAPIBase = srv.URL
	log := &eventLog{}

	index, err := NewManager(settings, testPosts, log.add).Build(context.Background())
	assert.Error(t, err)
	assert.Nil(t, index)
	assert.Equal(t, 1, log.count(LevelError))
}

func TestManager_BuildAnimeWithoutUser(t *testing.T) {
	settings := testSettings(t)
	settings.AnimeEnabled = true
	log := &eventLog{}

	index, err := NewManager(settings, testPosts, log.add).Build(context.Background())
	require.NoError(t, err)
	assert.Nil(t, index.Anime)
	assert.Equal(t, 1, log.count(LevelWarning))
}

func TestManager_WriteIndex(t *testing.T) {
	settings := testSettings(t)
	m := NewManager(settings, testPosts, nil)

	index, err := m.Build(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.WriteIndex(context.Background(), index))

	data, err := os.ReadFile(settings.OutputPath)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "posts")
	assert.Contains(t, decoded, "category_tree")
	assert.NotContains(t, decoded, "anime")
}

func TestManager_ExportCovers(t *testing.T) {
	srv := newBangumi(t, false)
	settings := testSettings(t)
	log := &eventLog{}
	m := NewManager(settings, testPosts, log.add)

	anime := []model.Anime{
		{Title: "Title 1", Cover: srv.URL + "/covers/1.png"},
		{Title: "Title 2", Cover: srv.URL + "/covers/2.png"},
		{Title: "No Cover"},
	}

	written, err := m.ExportCovers(context.Background(), anime)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	done, total := m.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, log.count(LevelWarning), "one failed cover plus the summary")

	f, err := os.Open(filepath.Join(settings.CoversPath, "Title 1.jpg"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestCoverJobs(t *testing.T) {
	jobs := coverJobs([]model.Anime{
		{Title: "Re:Zero", Cover: "a"},
		{Title: "Re:Zero", Cover: "b"},
		{Title: "", OriginalTitle: "オリジナル", Cover: "c"},
		{Title: "", Cover: "d"},
		{Title: "Skipped"},
	})

	files := make([]string, len(jobs))
	for i, j := range jobs {
		files[i] = j.file
	}
	assert.Equal(t, []string{"Re_Zero.jpg", "Re_Zero (2).jpg", "オリジナル.jpg", "cover-4.jpg"}, files)
}
