package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/manifest"
	"github.com/templateme/templateme/internal/scaffold"
	"github.com/templateme/templateme/internal/userdata"
)

var (
	checkUserdata  bool
	checkTemplates bool
	doctorFix      bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkUserdata, "check-userdata", false, "Verify search directories and config files")
	doctorCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Validate the manifest of every template")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create the user config directory if missing")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for templateme setup",
	Long: `Run diagnostic checks on the template search directories, config files and
template manifests. With no flags every check runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := !checkUserdata && !checkTemplates
		out := cmd.OutOrStdout()
		problems := 0

		if all || checkUserdata {
			problems += userdata.CheckUserdata(out, doctorFix)
		}
		if all || checkTemplates {
			if all || checkUserdata {
				fmt.Fprintln(out)
			}
			m, err := newManager(cmd, "")
			if err != nil {
				return err
			}
			problems += checkAllTemplates(out, m)
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		return nil
	},
}

// checkAllTemplates validates every template manifest and returns the
// number of invalid ones.
func checkAllTemplates(w io.Writer, m *scaffold.Manager) int {
	fmt.Fprintln(w, "Template check:")
	problems := 0
	for _, t := range m.AllTemplates() {
		label := fmt.Sprintf("%s (%s)", t.Name(), t.Source())
		result, err := validateTemplateManifest(t)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(w, "  [ OK ] %s: no manifest\n", label)
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", label, err)
			problems++
		case !result.Valid:
			fmt.Fprintf(w, "  [FAIL] %s\n", label)
			for _, issue := range result.Issues {
				fmt.Fprintf(w, "         %s\n", issue)
			}
			problems++
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", label)
		}
	}
	return problems
}

// validateTemplateManifest validates the manifest a template was built
// from. A missing manifest yields an error matching fs.ErrNotExist.
func validateTemplateManifest(t *scaffold.Template) (*manifest.ValidationResult, error) {
	fsys, name, ok := t.ManifestLocation()
	if !ok {
		return nil, fmt.Errorf("%s: %w", t.Name(), fs.ErrNotExist)
	}
	return manifest.ValidateFS(fsys, name)
}
