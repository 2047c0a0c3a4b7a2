package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tsresolve/tsconfig/pkg/tsconfig"
)

var filesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "List the source files selected by files/include/exclude",
	Long: `Files resolves the given config and walks the project directory,
printing every file its files, include and exclude settings select.
Paths are printed relative to the config's directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := tsconfig.ParseFile(configArg(args))
		if err != nil {
			return err
		}

		matcher := tsconfig.NewMatcher(cfg, filepath.Dir(cfg.Path))
		matched, err := matcher.Walk(afero.NewOsFs())
		if err != nil {
			return err
		}
		for _, f := range matched {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}
