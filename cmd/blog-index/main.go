package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/blog-index/internal/config"
	"github.com/handiism/blog-index/internal/site"
)

func main() {
	// Command line flags
	var (
		contentFlag = flag.String("content", "", "Posts directory (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		outputFlag  = flag.String("out", "", "Index output file (overrides config)")
		langFlag    = flag.String("lang", "", "Site language, e.g. en or zh_CN")
		prodFlag    = flag.Bool("prod", false, "Production build (hide drafts)")
		animeFlag   = flag.Bool("anime", false, "Fetch the Bangumi anime overview")
		userFlag    = flag.String("user", "", "Bangumi user id (implies -anime)")
		coversFlag  = flag.String("covers", "", "Export anime cover thumbnails to this directory")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag  = flag.Bool("dry-run", false, "Build the index without writing files")
	)

	flag.Usage = func() {
		fmt.Println("blog-index - Build the post, tag, category and anime index of a blog")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  blog-index [options]")
		fmt.Println()
		fmt.Println("Settings are read from -config, then .env and BLOG_*/BANGUMI_* variables, then flags.")
		fmt.Println("For interactive mode, use: blog-tui")
		fmt.Println()
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()

	// Apply flags
	if *contentFlag != "" {
		settings.ContentDir = *contentFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *langFlag != "" {
		settings.Lang = *langFlag
	}
	if *prodFlag {
		settings.Production = true
	}
	if *animeFlag {
		settings.AnimeEnabled = true
	}
	if *userFlag != "" {
		settings.BangumiUserID = *userFlag
		settings.AnimeEnabled = true
	}
	if *coversFlag != "" {
		settings.CoversPath = *coversFlag
		settings.ExportCovers = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := site.NewManager(settings, nil, func(event site.ProgressEvent) {
		if event.Level == site.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case site.LevelError:
			prefix = "❌ "
		case site.LevelWarning:
			prefix = "⚠️  "
		case site.LevelSuccess:
			prefix = "✅ "
		case site.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("📚 Blog Index")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	index, err := manager.Build(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nBuild cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error building index: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not writing]")
		return
	}

	if err := manager.WriteIndex(ctx, index); err != nil {
		os.Exit(1)
	}

	if settings.ExportCovers && index.Anime != nil {
		fmt.Println("\n🖼  Exporting covers...")
		fmt.Println()

		if _, err := manager.ExportCovers(ctx, index.Anime.AnimeList); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nExport cancelled.")
				os.Exit(130)
			}
			fmt.Fprintf(os.Stderr, "Error exporting covers: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! %d posts, %d tags, %d categories\n", len(index.Posts), len(index.Tags), len(index.Categories))
	if written, total := manager.Progress(); total > 0 {
		fmt.Printf("   %d/%d covers exported\n", written, total)
	}
}
