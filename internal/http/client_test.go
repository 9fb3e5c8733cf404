package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 42}`))
	}))
	defer srv.Close()

	c := NewClient(WithUserAgent("test-agent"))

	var v struct {
		Total int `json:"total"`
	}
	require.NoError(t, c.GetJSON(context.Background(), srv.URL, &v))
	assert.Equal(t, 42, v.Total)
	assert.Equal(t, "test-agent", gotUA)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient()

	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "Not Found", se.Status)
	assert.Equal(t, "HTTP 404: Not Found", se.Error())
}

func TestClient_GetJSON_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var v map[string]any
	err := NewClient().GetJSON(context.Background(), srv.URL, &v)
	assert.Error(t, err)
}

func TestClient_DownloadBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{1, 2, 3})
	}))
	defer srv.Close()

	data, err := NewClient().DownloadBytes(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
