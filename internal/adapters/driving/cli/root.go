// Package cli provides the cobra command tree for doclens.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/doclens/doclens-cli/internal/adapters/driven/config/file"
	"github.com/doclens/doclens-cli/internal/adapters/driven/serper"
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/core/services"
	"github.com/doclens/doclens-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Wired services, shared by all commands. Populated by initServices.
var (
	configStore          *configfile.ConfigStore
	serperClient         *serper.Client
	domainTable          domain.DomainTable
	documentationService driving.DocumentationService
)

var rootCmd = &cobra.Command{
	Use:   "doclens",
	Short: "Search and read LlamaIndex and LangChain documentation",
	Long: `Doclens searches the LlamaIndex and LangChain documentation sites
through the Serper API and returns the content of the top matching pages
as one formatted document.

It can be used directly from the command line, interactively via the TUI,
or as an MCP server for AI assistants (see "doclens mcp serve").`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the config store, the Serper client, and the
// documentation service. Idempotent: tests may pre-populate the
// services and commands share one wiring.
func initServices() error {
	if documentationService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	apiKey := configfile.ResolveAPIKey(store)
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "WARNING: no Serper API key configured")
		fmt.Fprintf(os.Stderr, "Set %s or run: doclens config set-key\n", configfile.EnvAPIKey)
	}

	cfg := serper.Config{APIKey: apiKey}
	if secs := store.GetInt(configfile.KeyTimeoutSeconds); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if rps := store.GetInt(configfile.KeyRequestsPerSecond); rps > 0 {
		cfg.RequestsPerSecond = float64(rps)
	}
	serperClient = serper.NewClient(cfg)

	domainTable = domain.DefaultDomains()
	documentationService = services.NewDocumentationService(serperClient, serperClient, domainTable)

	return nil
}
