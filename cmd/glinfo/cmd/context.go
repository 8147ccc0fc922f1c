package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gl-dispatch/core"
	"gl-dispatch/dispatch"
	"gl-dispatch/resolve"
)

// addContextFlags registers the GL context flags shared by commands that
// open a window, bound to viper under key.
func addContextFlags(cmd *cobra.Command, key string) {
	cmd.Flags().Int("major", 0, "requested GL major version (0 lets the driver choose)")
	cmd.Flags().Int("minor", 0, "requested GL minor version")
	cmd.Flags().Bool("core", false, "request a core profile context")
	cmd.Flags().Bool("es", false, "request an OpenGL ES context")
	cmd.Flags().StringSlice("lib", nil, "resolve through these shared libraries instead of glfw")
	cmd.Flags().Bool("trace", false, "log every symbol lookup")
	for _, name := range []string{"major", "minor", "core", "es", "lib", "trace"} {
		viper.BindPFlag(key+"."+name, cmd.Flags().Lookup(name))
	}
}

func windowConfig(key string, visible bool) core.WindowConfig {
	cfg := core.DefaultWindowConfig()
	cfg.Major = viper.GetInt(key + ".major")
	cfg.Minor = viper.GetInt(key + ".minor")
	cfg.CoreProfile = viper.GetBool(key + ".core")
	cfg.ES = viper.GetBool(key + ".es")
	cfg.Visible = visible
	return cfg
}

// openContext creates a window with a current context and loads its
// dispatch table.
func openContext(key string, visible bool) (*core.Window, *dispatch.Table, error) {
	window, err := core.NewWindow(windowConfig(key, visible))
	if err != nil {
		return nil, nil, err
	}

	resolver := window.ProcAddress()
	if libs := viper.GetStringSlice(key + ".lib"); len(libs) > 0 {
		lib, err := resolve.Library(libs...)
		if err != nil {
			window.Destroy()
			return nil, nil, fmt.Errorf("failed to load resolver: %w", err)
		}
		resolver = lib
	}
	if viper.GetBool(key + ".trace") {
		resolver = resolve.Traced(resolver)
	}

	tbl := dispatch.Load(resolver)
	st := tbl.Stats()
	log.WithFields(log.Fields{
		"native":  st.Native,
		"healed":  st.Healed,
		"missing": st.Missing,
	}).Debug("loaded entry points")
	return window, tbl, nil
}
