package main

import (
	stderrors "errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/n64gfx/vi"
)

func init() { rootCmd.AddCommand(previewCmd) }

var previewCmd = &cobra.Command{
	Use:   `preview`,
	Short: `show the scanned framebuffer in a window`,
	Long:  `show the scanned framebuffer in a window`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(preview)
	},
}

func preview() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	s, err := boot(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	w, h := int(cfg.width), int(cfg.height)
	scale := max(scaleFlag, 1)
	ebiten.SetWindowTitle(`n64fb ` + cfg.tv.String())
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(&display{scene: s, frame: ebiten.NewImage(w, h)})
}

// display is an ebiten.Game showing what the VI scans out, one field per
// update.
type display struct {
	scene *scene
	frame *ebiten.Image
	blank bool
}

// Update implements ebiten.Game.
func (d *display) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	vi.WaitVBlank(d.scene.regs)
	img, err := d.scene.scan()
	if stderrors.Is(err, vi.ErrBlank) {
		d.blank = true
		return nil
	}
	if err != nil {
		return err
	}
	d.blank = false
	d.frame.WritePixels(img.Pix)
	return nil
}

// Draw implements ebiten.Game.
func (d *display) Draw(screen *ebiten.Image) {
	if d.blank {
		screen.Clear()
		return
	}
	screen.DrawImage(d.frame, nil)
}

// Layout implements ebiten.Game. The logical screen is the framebuffer;
// ebiten scales it to the window.
func (d *display) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return d.frame.Bounds().Dx(), d.frame.Bounds().Dy()
}
