package cmd

import (
	"fmt"
	"sort"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gl-dispatch/dispatch"
	"gl-dispatch/gl"
	"gl-dispatch/glcompat"
)

var (
	colorName    = color.New(color.Bold).SprintFunc()
	colorNative  = color.New(color.FgGreen).SprintFunc()
	colorHealed  = color.New(color.FgYellow).SprintFunc()
	colorMissing = color.New(color.FgRed).SprintFunc()
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolP("healed", "a", false, "list entry points filled in from an alias")
	reportCmd.Flags().BoolP("missing", "m", false, "list entry points that did not resolve")
	reportCmd.Flags().String("require", "", "fail unless the context version satisfies this constraint (e.g. \">= 3.3\")")
	reportCmd.Flags().Bool("go-gl", false, "also initialise go-gl from the healed table and cross-check GL_VERSION")
	viper.BindPFlag("report.healed", reportCmd.Flags().Lookup("healed"))
	viper.BindPFlag("report.missing", reportCmd.Flags().Lookup("missing"))
	viper.BindPFlag("report.require", reportCmd.Flags().Lookup("require"))
	viper.BindPFlag("report.go-gl", reportCmd.Flags().Lookup("go-gl"))
	addContextFlags(reportCmd, "report")
}

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load every known entry point and report what resolved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, tbl, err := openContext("report", false)
		if err != nil {
			return err
		}
		defer window.Destroy()

		f := gl.Load(tbl)
		v, err := f.Version()
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", colorName("Vendor:  "), f.GetString(gl.VENDOR))
		fmt.Printf("%s %s\n", colorName("Renderer:"), f.GetString(gl.RENDERER))
		fmt.Printf("%s %s\n", colorName("Version: "), v)
		fmt.Printf("%s %d\n", colorName("Extensions:"), len(f.Extensions()))

		if err := checkVersion(v, viper.GetString("report.require")); err != nil {
			return err
		}

		printStats(tbl.Stats())
		if viper.GetBool("report.healed") {
			printHealed(tbl.Healed())
		}
		if viper.GetBool("report.missing") {
			fmt.Println(colorName("\nMissing:"))
			for _, name := range tbl.Missing() {
				fmt.Printf("  %s\n", colorMissing(name))
			}
		}

		if viper.GetBool("report.go-gl") {
			if err := glcompat.Init(tbl, window.ProcAddress()); err != nil {
				return err
			}
			if got := glcompat.Version(); got != f.GetString(gl.VERSION) {
				log.WithField("go-gl", got).Warn("go-gl reports a different GL_VERSION")
			} else {
				log.Info("go-gl initialised from healed table")
			}
		}
		return nil
	},
}

// checkVersion fails when v does not satisfy constraint. An empty
// constraint always passes.
func checkVersion(v gl.Version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid --require constraint: %w", err)
	}
	if !c.Check(v.Version) {
		return fmt.Errorf("context version %s does not satisfy %q", v, constraint)
	}
	return nil
}

func printStats(st dispatch.Stats) {
	fmt.Printf("\n%s %d\n", colorName("Entry points:"), st.Total)
	fmt.Printf("  native:  %s\n", colorNative(st.Native))
	fmt.Printf("  healed:  %s\n", colorHealed(st.Healed))
	fmt.Printf("  missing: %s\n", colorMissing(st.Missing))
}

func printHealed(healed map[string]string) {
	names := make([]string, 0, len(healed))
	for name := range healed {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(colorName("\nHealed:"))
	for _, name := range names {
		fmt.Printf("  %s <- %s\n", colorHealed(name), colorNative(healed[name]))
	}
}
