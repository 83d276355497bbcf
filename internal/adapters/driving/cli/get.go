package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

var (
	getLibrary    string
	getMaxResults int
)

var getCmd = &cobra.Command{
	Use:   "get [query]",
	Short: "Fetch documentation for a query",
	Long: `Searches the chosen library's documentation site for the query,
fetches the top matching pages, and prints one formatted document.

Examples:
  doclens get "vector store" --library llamaindex
  doclens get "chat models" --library langchain --max 1`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getLibrary, "library", "l", "",
		"documentation library: 'llamaindex' or 'langchain'")
	getCmd.Flags().IntVarP(&getMaxResults, "max", "n", domain.MaxResults,
		fmt.Sprintf("maximum number of pages to fetch (%d-%d)", domain.MinResults, domain.MaxResults))
	getCmd.MarkFlagRequired("library") //nolint:errcheck
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if documentationService == nil {
		return errors.New("documentation service not configured")
	}

	report := documentationService.GetDocumentation(
		cmd.Context(), args[0], strings.TrimSpace(getLibrary), getMaxResults)
	cmd.Println(report)

	return nil
}
