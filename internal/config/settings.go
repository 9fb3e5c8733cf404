package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/handiism/blog-index/internal/bangumi"
	"github.com/handiism/blog-index/internal/http"
	"github.com/handiism/blog-index/internal/i18n"
	"github.com/handiism/blog-index/internal/model"
)

// Environment variables read by ApplyEnv.
const (
	EnvContentDir   = "BLOG_CONTENT_DIR"
	EnvEnvironment  = "BLOG_ENV"
	EnvLang         = "BLOG_LANG"
	EnvBangumiBase  = "BANGUMI_API_BASE"
	EnvBangumiUser  = "BANGUMI_USER_ID"
	EnvOutput       = "BLOG_INDEX_OUTPUT"
	productionValue = "production"
)

// Settings holds all configuration options.
type Settings struct {
	// Content settings
	ContentDir string `json:"content_dir"`
	Production bool   `json:"production"`
	Lang       string `json:"lang"`

	// URL settings
	BaseURL           string `json:"base_url"`
	CategoryURLFormat string `json:"category_url_format"`

	// Output settings
	OutputPath string `json:"output_path"`

	// Bangumi settings
	AnimeEnabled     bool    `json:"anime_enabled"`
	BangumiAPIBase   string  `json:"bangumi_api_base"`
	BangumiUserID    string  `json:"bangumi_user_id"`
	BangumiPageSize  int     `json:"bangumi_page_size"`
	BangumiPageDelay float64 `json:"bangumi_page_delay"` // seconds
	UserAgent        string  `json:"user_agent"`
	RequestTimeout   float64 `json:"request_timeout"` // seconds, 0 keeps the client default

	// Cover art settings
	ExportCovers                bool   `json:"export_covers"`
	CoversPath                  string `json:"covers_path"`
	CoverMaxSize                int    `json:"cover_max_size"`
	MaxConcurrentCoverDownloads int    `json:"max_concurrent_cover_downloads"`

	// Retry settings
	DownloadMaxRetries    int     `json:"download_max_retries"`
	DownloadRetryCooldown float64 `json:"download_retry_cooldown"` // seconds
	DownloadRetryExponent float64 `json:"download_retry_exponent"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ContentDir: filepath.Join("src", "content", "posts"),
		Production: false,
		Lang:       "en",

		BaseURL:           "/",
		CategoryURLFormat: model.DefaultCategoryURLFormat,

		OutputPath: filepath.Join("dist", "index.json"),

		AnimeEnabled:     false,
		BangumiAPIBase:   bangumi.DefaultBaseURL,
		BangumiUserID:    "",
		BangumiPageSize:  bangumi.DefaultPageSize,
		BangumiPageDelay: bangumi.DefaultPageDelay.Seconds(),

		ExportCovers:                false,
		CoversPath:                  filepath.Join("dist", "covers"),
		CoverMaxSize:                300,
		MaxConcurrentCoverDownloads: 4,

		DownloadMaxRetries:    3,
		DownloadRetryCooldown: 0.2,
		DownloadRetryExponent: 4.0,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; the defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv loads the given .env files (".env" when none are given) and
// overrides settings from the environment.
//
// Missing .env files are ignored. Recognized variables:
//   - BLOG_CONTENT_DIR, BLOG_LANG, BLOG_INDEX_OUTPUT
//   - BLOG_ENV ("production" hides drafts)
//   - BANGUMI_API_BASE, BANGUMI_USER_ID (a user id also enables the anime overview)
func (s *Settings) ApplyEnv(files ...string) {
	_ = godotenv.Load(files...)

	if v := env(EnvContentDir); v != "" {
		s.ContentDir = v
	}
	if v := env(EnvEnvironment); v != "" {
		s.Production = strings.EqualFold(v, productionValue)
	}
	if v := env(EnvLang); v != "" {
		s.Lang = v
	}
	if v := env(EnvOutput); v != "" {
		s.OutputPath = v
	}
	if v := env(EnvBangumiBase); v != "" {
		s.BangumiAPIBase = v
	}
	if v := env(EnvBangumiUser); v != "" {
		s.BangumiUserID = v
		s.AnimeEnabled = true
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// UncategorizedLabel returns the localized label for posts without a category.
func (s *Settings) UncategorizedLabel() string {
	return i18n.New(s.Lang).T(i18n.Uncategorized)
}

// ToURLFormatter converts settings to the category URL formatter.
func (s *Settings) ToURLFormatter() *model.PathURLFormatter {
	return &model.PathURLFormatter{
		Base:           s.BaseURL,
		CategoryFormat: s.CategoryURLFormat,
		Uncategorized:  s.UncategorizedLabel(),
	}
}

// ToClientOptions converts settings to Bangumi client options.
func (s *Settings) ToClientOptions() bangumi.Options {
	opts := bangumi.DefaultOptions(s.BangumiUserID)
	if s.BangumiAPIBase != "" {
		opts.BaseURL = s.BangumiAPIBase
	}
	if s.BangumiPageSize > 0 {
		opts.PageSize = s.BangumiPageSize
	}
	opts.PageDelay = time.Duration(s.BangumiPageDelay * float64(time.Second))
	return opts
}

// ToHTTPOptions converts settings to HTTP client options.
func (s *Settings) ToHTTPOptions() []http.Option {
	var opts []http.Option
	if s.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(s.UserAgent))
	}
	if s.RequestTimeout > 0 {
		opts = append(opts, http.WithTimeout(time.Duration(s.RequestTimeout*float64(time.Second))))
	}
	return opts
}
