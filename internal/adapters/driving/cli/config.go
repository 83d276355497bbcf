package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/doclens/doclens-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage doclens configuration",
	Long: `View and configure the Serper API key and request settings.

The API key is resolved in this order:
  1. The ` + configfile.EnvAPIKey + ` environment variable
  2. A .env file in the working directory
  3. The config file (~/.doclens/config.toml)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Store the Serper API key",
	Long: `Store the Serper API key in the config file.

Without an argument, the key is read from a hidden prompt so it does not
end up in shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()

	key := configfile.ResolveAPIKey(configStore)
	cmd.Println("[serper]")
	cmd.Printf("  api_key: %s\n", maskKey(key))
	if secs := configStore.GetInt(configfile.KeyTimeoutSeconds); secs > 0 {
		cmd.Printf("  timeout_seconds: %d\n", secs)
	}
	if rps := configStore.GetInt(configfile.KeyRequestsPerSecond); rps > 0 {
		cmd.Printf("  requests_per_second: %d\n", rps)
	}

	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("Serper API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		key = string(raw)
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key cannot be empty")
	}

	if err := configStore.Set(configfile.KeyAPIKey, key); err != nil {
		return fmt.Errorf("saving key: %w", err)
	}

	// Current process picks it up immediately too.
	if serperClient != nil {
		serperClient.SetAPIKey(configfile.ResolveAPIKey(configStore))
	}

	cmd.Printf("API key saved to %s\n", configStore.Path())
	return nil
}

// maskKey shows only the last four characters of a configured key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
