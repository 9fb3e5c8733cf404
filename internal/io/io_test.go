package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-title", "normal-title"},
		{"Re:Zero / Season 2", "Re_Zero _ Season 2"},
		{"file<with>brackets", "file_with_brackets"},
		{"file|with|pipes", "file_with_pipes"},
		{"what?*", "what__"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"  padded  ", "padded"},
		{"孤独摇滚！", "孤独摇滚！"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	require.NoError(t, WriteJSON(context.Background(), path, map[string]int{"count": 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 3\n}\n", string(data))
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageService_Thumbnail(t *testing.T) {
	tests := []struct {
		name          string
		w, h, maxSize int
		wantW, wantH  int
	}{
		{"landscape shrinks by width", 600, 300, 300, 300, 150},
		{"portrait shrinks by height", 200, 400, 100, 50, 100},
		{"small image unchanged", 80, 60, 300, 80, 60},
		{"no limit", 500, 500, 0, 500, 500},
	}

	svc := NewImageService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.Thumbnail(context.Background(), pngOf(t, tt.w, tt.h), tt.maxSize)
			require.NoError(t, err)

			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err, "output must be JPEG")
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestImageService_InvalidImage(t *testing.T) {
	_, err := NewImageService().Thumbnail(context.Background(), []byte("not an image"), 100)
	assert.Error(t, err)
}
