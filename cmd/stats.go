package cmd

import (
	"fmt"

	"github.com/Khoiidayy/linguabot/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show AI tutor usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().LLMStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Requests:      %d\n", stats.Requests)
		fmt.Printf("Failures:      %d\n", stats.Failures)
		fmt.Printf("Input tokens:  %d\n", stats.InputTokens)
		fmt.Printf("Output tokens: %d\n", stats.OutputTokens)
		return nil
	},
}
