// =============================================================================
// Data Formatter - Root Command
// =============================================================================
//
// CLI structure:
//
//   formatter
//   ├── format   : parse a file, apply a mapping profile, export CSV
//   ├── suggest  : ask the suggestion service for a mapping profile
//   └── version  : display version information
//
// The root command owns the global flags (--config, --verbose) and loads the
// application configuration for the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/data-formatter/internal/config"
)

// cfgFile is the path to the application configuration file.
var cfgFile string

// verbose enables diagnostic output.
var verbose bool

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "formatter",
	Short: "Data Formatter - map spreadsheet columns onto a fixed schema and export CSV",
	Long: `Data Formatter reads a CSV or XLSX file, maps its columns onto a fixed
target schema (customer or product records), optionally concatenates or
templates values across columns, and exports the result as quoted CSV to a
file or the clipboard.

Example Usage:
  formatter format --file clientes.xlsx --profile mapping.yaml
  formatter format --file clientes.csv --profile mapping.yaml --copy
  formatter suggest --file clientes.csv --kind customer --out mapping.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the application configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}

// loadConfig loads the application config. The default config file may be
// absent; an explicitly flagged one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	allowMissing := !cmd.Flags().Changed("config") && !cmd.InheritedFlags().Changed("config")
	return config.Load(cfgFile, allowMissing)
}

// logVerbose prints diagnostics when --verbose is set.
func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
