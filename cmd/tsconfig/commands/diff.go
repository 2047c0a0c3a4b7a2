package commands

import (
	"encoding/json"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/tsresolve/tsconfig/pkg/tsconfig"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare two resolved configurations",
	Long: `Diff resolves both config files, including their extends chains,
and prints a line diff of the effective configurations. Useful for
checking what actually changes when a project switches base configs.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := resolvedJSON(args[0])
		if err != nil {
			return err
		}
		right, err := resolvedJSON(args[1])
		if err != nil {
			return err
		}

		if left == right {
			fmt.Fprintln(cmd.OutOrStdout(), "configurations are identical")
			return nil
		}

		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(left, right, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		fmt.Fprint(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
		return nil
	},
}

func resolvedJSON(path string) (string, error) {
	tree, err := tsconfig.NewResolver().EffectiveValue(path)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
