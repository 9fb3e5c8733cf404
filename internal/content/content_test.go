package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/blog-index/internal/model"
)

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello.md", "hello"},
		{"Hello World.md", "hello-world"},
		{"guide/index.md", "guide"},
		{"guide/Index.mdx", "guide"},
		{"2024/My Trip (Part 1).md", "2024/my-trip-part-1"},
		{"日本語/記事.md", "日本語/記事"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SlugFromPath(tt.input); got != tt.want {
				t.Errorf("SlugFromPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePost(t *testing.T) {
	doc := "---\n" +
		"title: Hello\n" +
		"published: 2024-01-02\n" +
		"updated: \"2024-03-04 10:30\"\n" +
		"tags: [Go, Notes]\n" +
		"category: \"  Tech/Go  \"\n" +
		"draft: true\n" +
		"---\n" +
		"# Body\n"

	post, err := ParsePost("hello", []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), post.Published)
	require.NotNil(t, post.Updated)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC), *post.Updated)
	assert.Equal(t, []string{"Go", "Notes"}, post.Tags)
	assert.Equal(t, "Tech/Go", post.Category)
	assert.True(t, post.Draft)
	assert.Equal(t, "# Body\n", post.Body)
}

func TestParsePost_Category(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"missing", "", ""},
		{"null", "category: null\n", ""},
		{"number", "category: 2024\n", "2024"},
		{"string", "category: Life\n", "Life"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "---\ntitle: x\npublished: \"2024-01-02\"\n" + tt.line + "---\n"
			post, err := ParsePost("x", []byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, post.Category)
			assert.NotNil(t, post.Tags)
		})
	}
}

func TestParsePost_NoFrontMatter(t *testing.T) {
	tests := []string{
		"# Just markdown\n",
		"---\ntitle: unterminated\n",
		"",
	}

	for _, doc := range tests {
		_, err := ParsePost("x", []byte(doc))
		assert.True(t, errors.Is(err, ErrNoFrontMatter), "doc %q: err = %v", doc, err)
	}
}

func TestParsePost_BadDate(t *testing.T) {
	_, err := ParsePost("x", []byte("---\npublished: \"someday\"\n---\n"))
	assert.Error(t, err)
}

func TestDraftPolicy(t *testing.T) {
	draft := &model.Post{Draft: true}
	public := &model.Post{}

	prod := DraftPolicy(true)
	assert.False(t, prod(draft))
	assert.True(t, prod(public))

	dev := DraftPolicy(false)
	assert.True(t, dev(draft))
	assert.True(t, dev(public))
}

func TestSlice_PostsReturnsCopies(t *testing.T) {
	src := Slice{
		{Slug: "a", Tags: []string{"x"}},
		{Slug: "b", Draft: true},
	}

	posts, err := src.Posts(context.Background(), DraftPolicy(true))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Slug)

	posts[0].NextSlug = "changed"
	posts[0].Tags[0] = "y"
	assert.Empty(t, src[0].NextSlug)
	assert.Equal(t, "x", src[0].Tags[0])
}

func TestDir_Posts(t *testing.T) {
	root := t.TempDir()
	write := func(rel, data string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	}

	write("first.md", "---\ntitle: First\npublished: 2024-01-01\ntags: [a]\n---\nbody")
	write("guide/index.mdx", "---\ntitle: Guide\npublished: 2024-02-01\ndraft: true\n---\n")
	write("README.txt", "not a post")
	write("notes.md", "no front matter here")

	src := NewDir(root, slog.New(slog.NewTextHandler(io.Discard, nil)))

	all, err := src.Posts(context.Background(), All)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Slug)
	assert.Equal(t, "guide", all[1].Slug)

	prod, err := src.Posts(context.Background(), DraftPolicy(true))
	require.NoError(t, err)
	require.Len(t, prod, 1)
	assert.Equal(t, "First", prod[0].Title)
}

func TestDir_PostsInvalidYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.md"), []byte("---\ntags: [unclosed\n---\n"), 0644))

	_, err := NewDir(root, nil).Posts(context.Background(), nil)
	assert.Error(t, err)
}

func TestDir_PostsMissingRoot(t *testing.T) {
	_, err := NewDir(filepath.Join(t.TempDir(), "missing"), nil).Posts(context.Background(), nil)
	assert.Error(t, err)
}
