package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/tsresolve/tsconfig/pkg/tsconfig"
)

var queryPath string

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Print the effective configuration after folding extends",
	Long: `Resolve loads the given config file (tsconfig.json by default),
follows its extends chain, and prints the merged result as JSON.
Key order and unknown fields from the source files are preserved.

With --query, only the value at the given gjson path is printed:

  tsconfig resolve --query compilerOptions.target web/tsconfig.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := tsconfig.NewResolver().EffectiveValue(configArg(args))
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}

		if queryPath != "" {
			res := gjson.GetBytes(out, queryPath)
			if !res.Exists() {
				return fmt.Errorf("no value at %q", queryPath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&queryPath, "query", "q", "", "Print only the value at this path")
}
