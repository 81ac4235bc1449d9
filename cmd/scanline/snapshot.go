package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		output string
		ticks  int
	)
	cmd := &cobra.Command{
		Use:   "snapshot [scene.yaml]",
		Short: "Render one frame to an image file",
		Long:  "Advance the scene by --ticks updates, draw one frame and write it as PNG, BMP or TIFF (chosen by the output extension).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("ticks must be non-negative, got %d", ticks)
			}
			if _, err := render.FormatFromPath(output); err != nil {
				return err
			}

			s, err := loadScene(opts, args)
			if err != nil {
				return err
			}
			for range ticks {
				s.Update()
			}

			frame := make([]byte, scene.Width*scene.Height*4)
			if err := s.Draw(frame); err != nil {
				return err
			}
			img, err := render.FrameImage(frame, scene.Width, scene.Height)
			if err != nil {
				return err
			}
			if err := render.SaveImage(output, img); err != nil {
				return err
			}

			st := s.Stats()
			render.Logger().Info("snapshot written", "path", output, "ticks", ticks, "drawn", st.Drawn, "skipped", st.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d triangles, %d skipped)\n", output, st.Drawn, st.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scanline.png", "output image (.png, .bmp, .tiff)")
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 0, "updates to run before drawing")
	return cmd
}
