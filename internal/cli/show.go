package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/templateme/templateme/internal/scaffold"
)

var (
	showYAML  bool
	showCheck bool
)

var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show the details of a template",
	Long: `Show a template's description, includes, arguments and the files it
creates. Arguments and files include everything inherited from included
templates.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Output in YAML format")
	showCmd.Flags().BoolVar(&showCheck, "check", false, "Also validate the template manifest against the schema")
	rootCmd.AddCommand(showCmd)
}

// templateDetail is the full description of a template for display.
type templateDetail struct {
	Name             string           `yaml:"name"`
	Source           string           `yaml:"source"`
	Version          string           `yaml:"version,omitempty"`
	ShortDescription string           `yaml:"short_description"`
	Description      string           `yaml:"description"`
	Includes         []string         `yaml:"includes,omitempty"`
	Arguments        []argumentDetail `yaml:"arguments,omitempty"`
	Files            []string         `yaml:"files"`
}

type argumentDetail struct {
	Name        string `yaml:"name"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description"`
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd, "")
	if err != nil {
		return err
	}
	t, err := m.Template(args[0])
	if err != nil {
		return err
	}

	detail, err := newTemplateDetail(t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showYAML {
		data, err := yaml.Marshal(detail)
		if err != nil {
			return fmt.Errorf("marshaling template: %w", err)
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	} else {
		printTemplateDetail(out, detail)
	}

	if showCheck {
		return checkTemplateManifest(cmd, t)
	}
	return nil
}

func newTemplateDetail(t *scaffold.Template) (*templateDetail, error) {
	entry := newTemplateEntry(t)
	detail := &templateDetail{
		Name:             entry.Name,
		Source:           entry.Source,
		Version:          entry.Version,
		ShortDescription: entry.ShortDescription,
		Description:      t.Description(),
		Includes:         t.Includes(),
	}
	for _, a := range t.Args().All() {
		detail.Arguments = append(detail.Arguments, argumentDetail{
			Name:        a.Name(),
			Required:    a.Required(),
			Default:     a.Default(),
			Description: a.Description(),
		})
	}
	elements, err := t.Elements()
	if err != nil {
		return nil, err
	}
	for _, e := range elements {
		detail.Files = append(detail.Files, e.Path())
	}
	return detail, nil
}

func printTemplateDetail(w io.Writer, d *templateDetail) {
	st := newStyles(w)
	title := d.Name
	if d.Version != "" {
		title += " " + d.Version
	}
	fmt.Fprintln(w, st.Title.Render(title))
	fmt.Fprintf(w, "%s %s\n", st.Key.Render("Source:"), d.Source)
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.ShortDescription)
	if d.Description != "" && d.Description != d.ShortDescription {
		fmt.Fprintln(w)
		fmt.Fprintln(w, d.Description)
	}

	if len(d.Includes) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", st.Key.Render("Includes:"), strings.Join(d.Includes, ", "))
	}

	if len(d.Arguments) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.Key.Render("Arguments:"))
		for _, a := range d.Arguments {
			marker := ""
			if a.Required {
				marker = " " + st.Warning.Render("(required)")
			}
			fmt.Fprintf(w, "  %s%s\n      %s\n", st.Name.Render(a.Name), marker, st.Dim.Render(a.Description))
		}
	}

	fmt.Fprintf(w, "\n%s\n", st.Key.Render("Files:"))
	for _, f := range d.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}

// checkTemplateManifest validates the manifest a template was built from.
// A template without a manifest passes.
func checkTemplateManifest(cmd *cobra.Command, t *scaffold.Template) error {
	result, err := validateTemplateManifest(t)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nNo manifest to check.")
		return nil
	}
	if err != nil {
		return err
	}
	return reportValidation(cmd, t.Name(), result)
}
