// Package config provides configuration management for blog-index.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from .env files and environment variables
//   - Conversion to the option types of other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Posts in src/content/posts
//	// Drafts visible (non-production)
//	// Index written to dist/index.json
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv() // .env and BLOG_*/BANGUMI_* variables win
//
// # Configuration Options
//
// Settings includes options for:
//   - Content location and draft visibility
//   - Category URL templates
//   - The Bangumi user and paging behaviour
//   - Cover thumbnail export
package config
