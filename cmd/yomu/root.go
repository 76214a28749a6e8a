package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yomu-reader/yomu/pkg/app"
	"github.com/yomu-reader/yomu/pkg/app/screens"
	"github.com/yomu-reader/yomu/pkg/cache"
	"github.com/yomu-reader/yomu/pkg/config"
	"github.com/yomu-reader/yomu/pkg/data"
	"github.com/yomu-reader/yomu/pkg/services"
	"github.com/yomu-reader/yomu/pkg/sources"
)

var rootCmd = &cobra.Command{
	Use:   "yomu [gist-id | album-descriptor]",
	Short: "Read gist-hosted manifests and imgur albums in your terminal",
	Long:  "Point yomu at a GitHub gist holding a content manifest, or a public imgur album, and read it as a paginated chapter",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reader, repo := mustWire(true)

		var target *screens.ReadTarget
		if len(args) == 1 {
			if albumID, ok := sources.AlbumID(args[0]); ok {
				target = &screens.ReadTarget{AlbumID: albumID}
			} else {
				target = &screens.ReadTarget{GistID: args[0]}
			}
		}

		a := app.NewApp(reader, repo)
		if err := a.Run(target); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(resumeCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustWire builds the fetch/resolve stack from configuration. The progress
// database is only opened for commands that need it; a repo that fails to
// open degrades to no persistence rather than refusing to read.
func mustWire(withDB bool) (*services.Reader, *data.Repository) {
	cfg := config.MustLoad()
	setupLogger(cfg)

	store := cache.New(cfg.CacheTTL)
	gist := sources.NewGist(store)
	imgur := sources.NewImgur(cfg.Imgur.ClientID, store)
	resolver := sources.NewDefaultResolver(imgur)
	reader := services.NewReader(gist, resolver)

	var repo *data.Repository
	if withDB {
		db, err := data.InitDuckDB(cfg.DBPath())
		if err != nil {
			slog.Warn("progress database unavailable, reading without resume", "path", cfg.DBPath(), "err", err)
		} else {
			repo = data.NewRepository(db)
		}
	}

	return reader, repo
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
