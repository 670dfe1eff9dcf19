package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/strrl/build-in-public/internal/compose"
	"github.com/strrl/build-in-public/internal/config"
	"github.com/strrl/build-in-public/internal/discover"
	"github.com/strrl/build-in-public/internal/events"
	"github.com/strrl/build-in-public/internal/extract"
	"github.com/strrl/build-in-public/internal/report"
	"github.com/strrl/build-in-public/internal/sanitize"
	"github.com/strrl/build-in-public/internal/tui"
	"github.com/strrl/build-in-public/pkg/models"
)

type rootFlags struct {
	session       string
	outputDir     string
	emitJSON      bool
	twitterStyle  string
	linkedinStyle string
	hashtags      string
	shortLimit    int
	configPath    string
	preview       bool
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "build-in-public",
		Short: "Generate social media posts from Claude Code sessions",
		Long: `build-in-public turns one Claude Code session log into ready-to-post
social media content for Twitter/X, BlueSky, LinkedIn, and long-form platforms.

Without --session it picks the session with the most recent activity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.session, "session", "s", "", "Session ID or path to a JSONL session log")
	rootCmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory for generated documents (default: current directory)")
	rootCmd.Flags().BoolVar(&flags.emitJSON, "json", false, "Also write the structured JSON payload")
	rootCmd.Flags().StringVar(&flags.twitterStyle, "twitter-style", "", "Short/thread tone: devlog, ship, or minimal")
	rootCmd.Flags().StringVar(&flags.linkedinStyle, "linkedin-style", "", "Medium post structure: professional, story, or wins")
	rootCmd.Flags().StringVar(&flags.hashtags, "hashtags", "", "Hashtag mode: auto, on, or off")
	rootCmd.Flags().IntVar(&flags.shortLimit, "short-limit", 0, "Short post character limit (280 or 300)")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file (default: plugin root or user config dir)")
	rootCmd.Flags().BoolVar(&flags.preview, "preview", false, "Browse the generated posts interactively instead of writing files")

	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewHookCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// styleFromFlags merges built-in defaults, the config file, and explicit
// flags (strongest last) into a validated style configuration.
func styleFromFlags(flags *rootFlags) (models.StyleConfig, config.File, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	file, err := config.Load(path)
	if err != nil {
		return models.StyleConfig{}, file, err
	}

	pick := func(flag, fromFile string) string {
		if flag != "" {
			return flag
		}
		return fromFile
	}

	var cfg models.StyleConfig
	if cfg.Twitter, err = models.ParseTwitterStyle(pick(flags.twitterStyle, file.TwitterStyle)); err != nil {
		return cfg, file, err
	}
	if cfg.LinkedIn, err = models.ParseLinkedInStyle(pick(flags.linkedinStyle, file.LinkedInStyle)); err != nil {
		return cfg, file, err
	}
	if cfg.Hashtags, err = models.ParseHashtagMode(pick(flags.hashtags, file.IncludeHashtags)); err != nil {
		return cfg, file, err
	}
	cfg.ShortLimit = flags.shortLimit
	if cfg.ShortLimit == 0 {
		cfg.ShortLimit = file.ShortLimit
	}
	if err := cfg.Validate(); err != nil {
		return cfg, file, err
	}
	return cfg, file, nil
}

// runPipeline resolves a session and runs the core pipeline: parse, extract,
// compose. This is the whole deterministic part of a run.
func runPipeline(ctx context.Context, selector string, cfg models.StyleConfig) (models.SessionSummary, models.PostSet, error) {
	handle, err := discover.Resolve(ctx, selector)
	if err != nil {
		return models.SessionSummary{}, models.PostSet{}, err
	}

	f, err := os.Open(handle.Path)
	if err != nil {
		return models.SessionSummary{}, models.PostSet{}, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stderr, "📖 Parsing session: %s\n", handle.SessionID)

	evs, skipped, err := events.Parse(f)
	if err != nil {
		return models.SessionSummary{}, models.PostSet{}, fmt.Errorf("read session log: %w", err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "⚠️  Skipped %d malformed line(s)\n", skipped)
	}

	summary := extract.Summarize(evs)
	summary.SessionID = handle.SessionID
	summary.ProjectName = sanitize.ProjectName(handle.RawProject)

	fmt.Fprintf(os.Stderr, "📁 Project: %s\n", summary.ProjectName)

	posts, err := compose.Posts(summary, cfg)
	if err != nil {
		return models.SessionSummary{}, models.PostSet{}, err
	}
	return summary, posts, nil
}

func runGenerate(ctx context.Context, flags *rootFlags) error {
	cfg, file, err := styleFromFlags(flags)
	if err != nil {
		return err
	}

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = file.OutputDir
	}
	if outputDir == "" {
		outputDir = "."
	}

	if flags.preview {
		return tui.Preview(func(ctx context.Context) (tui.Result, error) {
			summary, posts, err := runPipeline(ctx, flags.session, cfg)
			return tui.Result{Summary: summary, Posts: posts}, err
		})
	}

	summary, posts, err := runPipeline(ctx, flags.session, cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	doc := report.Markdown(summary, posts, now)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	stamp := now.Format("20060102_150405")
	mdPath := filepath.Join(outputDir, fmt.Sprintf("build-in-public_%s.md", stamp))
	if err := os.WriteFile(mdPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write markdown output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "\n✅ Posts generated: %s\n", mdPath)

	if flags.emitJSON {
		payload, err := report.JSON(summary, posts)
		if err != nil {
			return err
		}
		jsonPath := filepath.Join(outputDir, fmt.Sprintf("build-in-public_%s.json", stamp))
		if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
			return fmt.Errorf("write JSON output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "📄 JSON output: %s\n", jsonPath)
	}

	// Echo the document for piping.
	fmt.Println(doc)
	return nil
}
