package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/bundled"
	"github.com/templateme/templateme/internal/config"
	"github.com/templateme/templateme/internal/prompt"
	"github.com/templateme/templateme/internal/scaffold"
	"github.com/templateme/templateme/internal/userdata"
)

// promptDriver answers interactive questions. Tests replace it.
var promptDriver prompt.Driver = prompt.Survey()

// now is the clock used for %YEAR%.
var now = time.Now

// newManager builds a template manager from the layered config: bundled
// templates first, then the system and user directories, then the
// configured extra paths.
func newManager(cmd *cobra.Command, projectName string) (*scaffold.Manager, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	search := append(userdata.SearchDirs(), cfg.Paths()...)
	return scaffold.NewManager(scaffold.Options{
		ProjectName: projectName,
		Author:      cfg.Author(),
		Email:       cfg.Email(),
		Bundled:     bundled.FS(),
		SearchPaths: search,
		Out:         cmd.OutOrStdout(),
		Now:         now,
	}), nil
}
