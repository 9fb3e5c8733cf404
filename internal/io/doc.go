// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Writing files and JSON documents, creating directories as needed
//   - Filename sanitization for cross-platform compatibility
//   - Cover art thumbnails
//
// # File Operations
//
//	// Write the site index
//	err := ioutils.WriteJSON(ctx, "dist/index.json", index)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("dist/covers")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Re:Zero") // Returns "Re_Zero"
//
// # Image Processing
//
// The ImageService shrinks cover art and re-encodes it as JPEG:
//
//	svc := ioutils.NewImageService()
//	thumb, _ := svc.Thumbnail(ctx, imageData, 300)
package ioutils
