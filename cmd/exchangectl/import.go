package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/loader"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Apply an exchange document",
	Long: `Apply an exchange document to the repository.

Elements the asset manager already registered, matched by external
identifier, are updated. The rest are created. The GUID of every element
is printed as JSON.

Example:
  exchangectl import --user garygeeke crm.yml
  exchangectl import --dry-run crm.yml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := importOptionsFrom(cmd)
		if opts.dryRun {
			if _, err := loader.ParseFile(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s is a valid exchange document\n", args[0])
			return nil
		}

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		b, err := openBackend(cfg, log)
		if err != nil {
			return err
		}
		defer func() { _ = b.Close() }()

		result, err := importFile(cmd.Context(), newLoader(b.exchange, opts, log), opts.userID, args[0])
		if err != nil {
			return err
		}
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	},
}

type importOptions struct {
	userID string
	merge  bool
	dryRun bool
}

func addImportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", defaultImportUser(), "user the document is applied as")
	cmd.Flags().Bool("merge", false, "keep stored properties the document does not mention")
}

func importOptionsFrom(cmd *cobra.Command) importOptions {
	var opts importOptions
	opts.userID, _ = cmd.Flags().GetString("user")
	opts.merge, _ = cmd.Flags().GetBool("merge")
	opts.dryRun, _ = cmd.Flags().GetBool("dry-run")
	return opts
}

func defaultImportUser() string {
	if user := os.Getenv("EXCHANGE_USER"); user != "" {
		return user
	}
	return "exchangectl"
}

func init() {
	rootCmd.AddCommand(importCmd)
	addImportFlags(importCmd)
	importCmd.Flags().Bool("dry-run", false, "validate the document without applying it")
}

func newLoader(exch *server.Exchange, opts importOptions, log logger.Logger) *loader.Loader {
	return loader.NewLoader(exch.AssetManagers, exch.Glossaries, exch.DataAssets, opts.userID).
		WithMergeUpdate(opts.merge).
		WithLogger(log)
}

// importFile applies the document at path and audits the outcome.
func importFile(ctx context.Context, l *loader.Loader, userID, path string) (*loader.LoadResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := l.LoadFromFile(ctx, path)

	event := audit.ImportEvent{UserID: userID, Source: path, Success: err == nil}
	if result != nil {
		event.AssetManagerGUID = result.AssetManagerGUID
		event.Created = len(result.Created)
		event.Updated = len(result.Updated)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	if err != nil {
		return result, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return result, nil
}
