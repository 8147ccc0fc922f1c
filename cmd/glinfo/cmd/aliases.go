package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gl-dispatch/dispatch"
)

func init() {
	rootCmd.AddCommand(aliasesCmd)
}

// aliasesCmd represents the aliases command
var aliasesCmd = &cobra.Command{
	Use:   "aliases [NAME]",
	Short: "List alias classes, or the class containing NAME",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter string
		if len(args) > 0 {
			filter = strings.TrimPrefix(args[0], dispatch.DefaultPrefix)
		}

		found := false
		for _, class := range dispatch.AliasClasses {
			if filter != "" && !contains(class, filter) {
				continue
			}
			found = true
			fmt.Printf("%s %s\n", colorName(class[0]), strings.Join(class[1:], " "))
		}
		if filter != "" && !found {
			return fmt.Errorf("%s has no aliases", args[0])
		}

		if gaps := dispatch.ClosureGaps(dispatch.Aliases); len(gaps) > 0 {
			return fmt.Errorf("alias pairs are not transitively closed: %d missing pairs", len(gaps))
		}
		return nil
	},
}

func contains(class []string, name string) bool {
	for _, n := range class {
		if n == name {
			return true
		}
	}
	return false
}
