package main

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&outFlag, `out`, `o`, `n64fb.png`, `output PNG file, - for stdout`)
}

var outFlag string

var renderCmd = &cobra.Command{
	Use:   `render`,
	Short: `write the scanned framebuffer as PNG`,
	Long:  `write the scanned framebuffer as PNG`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(render)
	},
}

func render() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	s, err := boot(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	img, err := s.scan()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outFlag != `-` {
		f, err := os.Create(outFlag)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		defer f.Close()
		w = f
	}
	if err := png.Encode(w, upscale(img, scaleFlag)); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// upscale enlarges img by an integer factor without filtering, keeping
// the pixel grid visible.
func upscale(img *image.RGBA, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
