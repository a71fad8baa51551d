package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/db"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the persisted audit trail",
	Long: `Show the most recent audit messages stored in the repository database.

Example:
  exchangectl audit
  exchangectl audit --msgid import --limit 5 --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msgid, _ := cmd.Flags().GetString("msgid")
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel})
		if err != nil {
			return err
		}

		messages, err := audit.NewStore(database).Recent(cmd.Context(), msgid, limit)
		if err != nil {
			return fmt.Errorf("failed to read audit messages: %w", err)
		}
		return printMessages(os.Stdout, messages, output)
	},
}

func printMessages(w io.Writer, messages []audit.Message, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if messages == nil {
			messages = []audit.Message{}
		}
		return enc.Encode(messages)
	case "text":
		for _, m := range messages {
			fmt.Fprintf(w, "%s %-8s %s\n", m.Timestamp.UTC().Format("2006-01-02T15:04:05Z"), m.Msgid, m.Message)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().String("msgid", "", "only show one kind of event (exchange, authn or import)")
	auditCmd.Flags().Int("limit", 20, "maximum number of messages")
	auditCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
