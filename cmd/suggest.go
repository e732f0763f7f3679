// =============================================================================
// Data Formatter - Suggest Command
// =============================================================================
//
// The suggest command sends a sample of the parsed file to the configured
// suggestion service and writes the proposed column mapping as a profile
// YAML the format command can consume. The service is best-effort: when it
// fails or proposes nothing usable, a notice is printed, no file is written,
// and the command still exits zero — an absent suggestion is a normal
// outcome, not a failure.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/data-formatter/internal/config"
	"github.com/ginjaninja78/data-formatter/internal/schema"
	"github.com/ginjaninja78/data-formatter/internal/session"
	"github.com/ginjaninja78/data-formatter/internal/suggest"
)

var (
	suggestFile     string
	suggestKind     string
	suggestOut      string
	suggestEndpoint string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the suggestion service to propose a mapping profile",
	Long: `Parse the input file and ask the external suggestion service for a column
mapping onto the chosen schema kind. The proposal is written as a mapping
profile YAML; review and edit it before formatting with it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringVar(&suggestFile, "file", "", "Input file (.csv or .xlsx)")
	suggestCmd.Flags().StringVar(&suggestKind, "kind", "customer", "Schema kind (customer or product)")
	suggestCmd.Flags().StringVar(&suggestOut, "out", "suggested_mapping.yaml", "Where to write the proposed profile")
	suggestCmd.Flags().StringVar(&suggestEndpoint, "endpoint", "", "Suggestion service URL (overrides the config)")
	suggestCmd.MarkFlagRequired("file")
}

func runSuggest(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	endpoint := suggestEndpoint
	if endpoint == "" {
		endpoint = cfg.SuggestEndpoint
	}
	if endpoint == "" {
		return errors.New("no suggestion endpoint configured (set suggest_endpoint in the config or pass --endpoint)")
	}

	kind, err := schema.ParseKind(suggestKind)
	if err != nil {
		return err
	}

	client, err := suggest.NewClient(suggest.ClientConfig{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	})
	if err != nil {
		return err
	}

	sess, err := session.New(kind, session.WithSuggester(client))
	if err != nil {
		return err
	}
	if err := sess.LoadFile(suggestFile); err != nil {
		return err
	}

	suggested, err := sess.SuggestMappings(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Notice: %v\n", err)
		fmt.Println("No suggestion available; existing mappings are unchanged.")
		return nil
	}
	if len(suggested) == 0 {
		fmt.Println("The service proposed no usable mappings; nothing written.")
		return nil
	}

	profile := &config.Profile{
		Kind:    string(kind),
		Columns: suggested,
	}
	if err := config.SaveProfile(suggestOut, profile); err != nil {
		return err
	}

	fmt.Printf("Wrote %d suggested mappings to %s\n", len(suggested), suggestOut)
	return nil
}
