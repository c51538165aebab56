package cmd

import (
	"fmt"
	"os"

	"github.com/Khoiidayy/linguabot/internal/app"
	"github.com/Khoiidayy/linguabot/internal/auth"
	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Auth: auth.NewService(st.UserRepo()),
	}

	// LINGUABOT_* env vars take precedence; otherwise probe the standard
	// provider key vars. Without either the tutor chat is unavailable.
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
			return app.Run(opts)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider setup failed:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
