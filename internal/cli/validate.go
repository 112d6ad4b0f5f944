package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <template-dir|manifest.json>",
	Short: "Validate a template manifest",
	Long: `Validate a manifest against the manifest schema. Pass either a template
directory (its manifest.json is checked) or the manifest file itself.
Comments and trailing commas are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	target := args[0]
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, manifest.FileName)
	}

	result, err := manifest.ValidateFile(target)
	if err != nil {
		return fmt.Errorf("validating %s: %w", target, err)
	}
	return reportValidation(cmd, target, result)
}

// reportValidation prints the outcome and returns an error when the
// manifest is invalid.
func reportValidation(cmd *cobra.Command, label string, result *manifest.ValidationResult) error {
	out := cmd.OutOrStdout()
	st := newStyles(out)
	if result.Valid {
		fmt.Fprintln(out, st.Success.Render(label+": manifest is valid"))
		return nil
	}
	fmt.Fprintln(out, st.Warning.Render(label+": manifest is invalid"))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
	return fmt.Errorf("%s: %d validation issue(s)", label, len(result.Issues))
}
