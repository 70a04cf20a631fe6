package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/plan"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/philipparndt/gohabitat/pkg/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	planOutput    string
	previewOutput string
	renderWidth   int
	renderHeight  int
	renderPitch   float64
	renderYaw     float64
)

const renderMarginPx = 24

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the plan or the 3D preview to an image",
}

var renderPlanCmd = &cobra.Command{
	Use:   "plan [design.json]",
	Short: "Render the 2D plan as PNG or SVG (chosen by the output extension)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRenderPlan,
}

var renderPreviewCmd = &cobra.Command{
	Use:   "preview [design.json]",
	Short: "Render the 3D preview as PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRenderPreview,
}

func init() {
	for _, c := range []*cobra.Command{renderPlanCmd, renderPreviewCmd} {
		c.Flags().IntVar(&renderWidth, "width", 800, "image width in pixels")
		c.Flags().IntVar(&renderHeight, "height", 800, "image height in pixels")
	}
	renderPlanCmd.Flags().StringVarP(&planOutput, "output", "o", "plan.png", "output file (.png or .svg)")
	renderPreviewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.png", "output file")
	renderPreviewCmd.Flags().Float64Var(&renderPitch, "pitch", viewer.DefaultPitch, "camera elevation in radians")
	renderPreviewCmd.Flags().Float64Var(&renderYaw, "yaw", viewer.DefaultYaw, "camera azimuth in radians")

	renderCmd.AddCommand(renderPlanCmd, renderPreviewCmd)
	rootCmd.AddCommand(renderCmd)
}

func checkImageSize() error {
	if renderWidth < 16 || renderHeight < 16 {
		return fmt.Errorf("image size %dx%d is too small", renderWidth, renderHeight)
	}
	return nil
}

func runRenderPlan(cmd *cobra.Command, args []string) error {
	if err := checkImageSize(); err != nil {
		return err
	}
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	vp := plan.FitViewport(float64(renderWidth), float64(renderHeight), s.Envelope.RadiusM, renderMarginPx)
	d := plan.Build(s, vp)

	if strings.EqualFold(filepath.Ext(planOutput), ".svg") {
		if err := writeSVGFile(planOutput, d); err != nil {
			return err
		}
	} else if err := viewer.SavePNG(planOutput, viewer.RenderPlan(d, renderWidth, renderHeight)); err != nil {
		return err
	}

	logger.Info("plan rendered", zap.String("path", planOutput))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", planOutput)
	return nil
}

func writeSVGFile(path string, d plan.Diagram) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := plan.WriteSVG(f, d, renderWidth, renderHeight); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runRenderPreview(cmd *cobra.Command, args []string) error {
	if err := checkImageSize(); err != nil {
		return err
	}
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	sc := scene.Build(s)
	cam := viewer.NewCamera(sc.Bounds())
	cam.Pitch = renderPitch
	cam.Yaw = renderYaw

	img := viewer.RenderScene(sc, cam, renderWidth, renderHeight)
	if err := viewer.SavePNG(previewOutput, img); err != nil {
		return err
	}

	logger.Info("preview rendered", zap.String("path", previewOutput))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", previewOutput)
	return nil
}
