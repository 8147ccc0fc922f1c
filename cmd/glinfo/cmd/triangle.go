package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gl-dispatch/core"
	"gl-dispatch/gl"
	"gl-dispatch/opengl"
)

func init() {
	rootCmd.AddCommand(triangleCmd)

	triangleCmd.Flags().IntP("frames", "n", 1, "frames to draw (0 runs until the window is closed)")
	triangleCmd.Flags().Bool("show", false, "show the window")
	viper.BindPFlag("triangle.frames", triangleCmd.Flags().Lookup("frames"))
	viper.BindPFlag("triangle.show", triangleCmd.Flags().Lookup("show"))
	addContextFlags(triangleCmd, "triangle")
}

// triangleCmd represents the triangle command
var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Draw a triangle through the dispatch table and verify the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		frames := viper.GetInt("triangle.frames")
		window, tbl, err := openContext("triangle", viper.GetBool("triangle.show") || frames == 0)
		if err != nil {
			return err
		}
		defer window.Destroy()

		r, err := opengl.NewRenderer(gl.Load(tbl))
		if err != nil {
			return err
		}
		defer r.Destroy()

		mesh := &opengl.Mesh{Vertices: core.Triangle()}
		for n := 0; frames == 0 || n < frames; n++ {
			if window.ShouldClose() || window.IsKeyPressed(core.KeyEscape) {
				break
			}
			w, h := window.GetFramebufferSize()
			r.SetViewport(w, h)
			r.BeginFrame(core.ColorBlack)
			r.DrawMesh(mesh, core.ColorWhite)

			if frames != 0 && n == frames-1 {
				if err := r.CheckError(); err != nil {
					return err
				}
				px := r.ReadPixel(w/2, h/2)
				if px[0] == 0 && px[1] == 0 && px[2] == 0 {
					return fmt.Errorf("triangle not rendered: centre pixel is %v", px)
				}
				log.WithField("pixel", px).Info("triangle rendered")
			}

			window.SwapBuffers()
			window.PollEvents()
		}
		return nil
	},
}
