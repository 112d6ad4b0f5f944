package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/scaffold"
)

var (
	searchShort bool
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search templates by name or description",
	Long: `Search templates across all sources.

The query matches against template names, short descriptions and
descriptions (case-insensitive substring).`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchShort, "short", false, "Print template names only")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	m, err := newManager(cmd, "")
	if err != nil {
		return err
	}

	var matches []*scaffold.Template
	for _, t := range m.AllTemplates() {
		if matchesSearch(t, query) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates found matching %q\n", query)
		return nil
	}
	return printTemplates(cmd, matches, searchShort, searchJSON)
}

// matchesSearch reports whether the query is a case-insensitive substring
// of the template's name or descriptions. An empty query matches all.
func matchesSearch(t *scaffold.Template, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{t.Name(), t.ShortDescription(), t.Description()} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
