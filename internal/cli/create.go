package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/arguments"
	"github.com/templateme/templateme/internal/prompt"
	"github.com/templateme/templateme/internal/scaffold"
)

var (
	createOutputDir string
	createForce     bool
	createQuiet     bool
	createDryRun    bool
	createArgs      []string
)

var createCmd = &cobra.Command{
	Use:   "create <template> [project-name]",
	Short: "Create a project from a template",
	Long: `Create a new project from a template.

Arguments declared by the template (and by every template it includes) can
be given with -a key=value. Missing arguments are asked for interactively
unless --quiet is set, in which case the command fails.

Examples:
  templateme create cpp -a class=Parser
  templateme create python3-tests demo -a module=demo -o ./demo
  templateme create license-mit --dry-run`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createOutputDir, "output-dir", "o", "", "Output directory (default: ./<project-name>)")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Write into an existing output directory without asking")
	createCmd.Flags().BoolVarP(&createQuiet, "quiet", "q", false, "Never prompt; fail when arguments are missing")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Print every file instead of writing it")
	createCmd.Flags().StringArrayVarP(&createArgs, "arg", "a", nil, "Template argument as key=value (repeatable)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	templateName := args[0]
	projectName := ""
	if len(args) > 1 {
		projectName = args[1]
	}

	values, err := parseArgValues(createArgs)
	if err != nil {
		return usageError(err)
	}

	m, err := newManager(cmd, projectName)
	if err != nil {
		return err
	}
	t, err := m.Template(templateName)
	if err != nil {
		return err
	}

	targs := t.Args()
	targs.AddValues(values)
	if missing := targs.Missing(); len(missing) > 0 {
		if createQuiet {
			return usageError(&scaffold.MissingArgumentsError{Count: len(missing), First: missing[0].Name()})
		}
		err := targs.InputMissing(func(a *arguments.Argument) (string, error) {
			return promptDriver.Input(cmd.Context(), prompt.InputConfig{
				Message: a.Question(),
				Default: a.Default(),
				Help:    a.Description(),
			})
		})
		if err != nil {
			return err
		}
	}

	outDir := resolveOutputDir(projectName, t.Name())
	force := createForce
	if !force && !createDryRun {
		err := t.ExamineSave(outDir, false)
		switch {
		case errors.Is(err, scaffold.ErrAlreadyExists) && !createQuiet:
			ok, perr := promptDriver.Confirm(cmd.Context(), prompt.ConfirmConfig{
				Message: fmt.Sprintf("Directory %s already exists. Write into it anyway?", outDir),
			})
			if perr != nil {
				return perr
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			force = true
		case err != nil:
			return err
		}
	}

	result, err := t.Save(outDir, scaffold.SaveOptions{
		ProjectName: projectName,
		DryRun:      createDryRun,
		Force:       force,
	})
	if err != nil {
		return err
	}
	if !createDryRun {
		printResult(cmd, t, result)
	}
	return nil
}

// parseArgValues parses key=value pairs. Both sides must be non-empty and
// the value may not contain another '='.
func parseArgValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" || strings.Contains(value, "=") {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		values[key] = value
	}
	return values, nil
}

func resolveOutputDir(projectName, templateName string) string {
	if createOutputDir != "" {
		return createOutputDir
	}
	if projectName != "" {
		return filepath.Join(".", projectName)
	}
	return filepath.Join(".", templateName)
}

func printResult(cmd *cobra.Command, t *scaffold.Template, result *scaffold.Result) {
	st := newStyles(cmd.OutOrStdout())
	msg := fmt.Sprintf("Created %s at %s/ (%d files)", t.Name(), result.OutputDir, len(result.Files))
	fmt.Fprintln(cmd.OutOrStdout(), st.Success.Render(msg))
}
