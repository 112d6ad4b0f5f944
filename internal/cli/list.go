package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/scaffold"
)

var (
	listShort bool
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long: `List every template across all sources. When several sources provide a
template with the same name only the first one is shown, since that is the
one create would use.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listShort, "short", false, "Print template names only")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// templateEntry represents a template for display.
type templateEntry struct {
	Name             string `json:"name"`
	Source           string `json:"source"`
	ShortDescription string `json:"short_description"`
	Version          string `json:"version,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd, "")
	if err != nil {
		return err
	}
	templates := m.AllTemplates()
	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
		return nil
	}
	return printTemplates(cmd, templates, listShort, listJSON)
}

func newTemplateEntry(t *scaffold.Template) templateEntry {
	entry := templateEntry{
		Name:             t.Name(),
		Source:           t.Source(),
		ShortDescription: t.ShortDescription(),
	}
	if mf := t.Manifest(); mf != nil && mf.Version != nil {
		entry.Version = mf.Version.String()
	}
	return entry
}

func printTemplates(cmd *cobra.Command, templates []*scaffold.Template, short, asJSON bool) error {
	entries := make([]templateEntry, 0, len(templates))
	for _, t := range templates {
		entries = append(entries, newTemplateEntry(t))
	}

	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case short:
		for _, e := range entries {
			fmt.Fprintln(out, e.Name)
		}
		return nil
	}

	st := newStyles(out)
	for _, e := range entries {
		name := st.Name.Render(e.Name)
		if e.Version != "" {
			name += " " + st.Dim.Render(e.Version)
		}
		fmt.Fprintf(out, "%s %s\n", name, st.Dim.Render("("+e.Source+")"))
		fmt.Fprintf(out, "    %s\n", e.ShortDescription)
	}
	return nil
}
