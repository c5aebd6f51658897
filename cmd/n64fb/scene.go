package main

import (
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/go-errors/errors"

	"github.com/gogpu/n64gfx"
	"github.com/gogpu/n64gfx/arena"
	"github.com/gogpu/n64gfx/isv"
	"github.com/gogpu/n64gfx/pixel"
	"github.com/gogpu/n64gfx/surface"
	"github.com/gogpu/n64gfx/text"
	"github.com/gogpu/n64gfx/vi"
)

// textOrigin is where the message baseline starts.
var textOrigin = image.Pt(32, 32)

// sceneConfig holds the parsed command line.
type sceneConfig struct {
	tv      vi.TVType
	console n64gfx.Console
	width   uint16
	height  uint16
	message string
	debug   bool
}

func configFromFlags() (sceneConfig, error) {
	cfg := sceneConfig{
		width:   widthFlag,
		height:  heightFlag,
		message: messageFlag,
		debug:   debugFlag,
	}
	if cfg.width == 0 || cfg.height == 0 {
		return cfg, errors.Errorf(`framebuffer %dx%d has no pixels`, cfg.width, cfg.height)
	}
	var err error
	if cfg.tv, err = parseTV(tvFlag); err != nil {
		return cfg, err
	}
	if cfg.console, err = parseConsole(consoleFlag); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseTV(s string) (vi.TVType, error) {
	switch strings.ToLower(s) {
	case `pal`:
		return vi.PAL, nil
	case `ntsc`:
		return vi.NTSC, nil
	case `mpal`:
		return vi.MPAL, nil
	}
	return 0, errors.Errorf(`unknown video standard %q`, s)
}

func parseConsole(s string) (n64gfx.Console, error) {
	switch strings.ToLower(s) {
	case `n64`:
		return n64gfx.N64, nil
	case `ique`:
		return n64gfx.IQue, nil
	}
	return 0, errors.Errorf(`unknown console %q`, s)
}

// scene is a booted system: memory, a displayed framebuffer and the VI
// registers scanning it.
type scene struct {
	heap *arena.Heap
	fb   *surface.Surface[pixel.RGBA5551]
	regs *vi.RegisterFile
}

// boot runs the start-up sequence. Debug channel output, including the
// log, goes to console.
func boot(cfg sceneConfig, console io.Writer) (*scene, error) {
	ch := isv.NewChannel(isv.NewSimBus(console), isv.WithConsole(cfg.console))
	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	n64gfx.SetLogger(slog.New(slog.NewTextHandler(ch, &slog.HandlerOptions{Level: level})))
	if err := ch.Init(); err != nil {
		// No viewer is not fatal; output is simply lost.
		n64gfx.Logger().Debug(`debug channel unavailable`, `err`, err)
	}
	ch.Println(cfg.message)

	s := &scene{heap: arena.NewHeap(), regs: vi.NewRegisterFile()}
	s.fb = surface.New[pixel.RGBA5551](s.heap, cfg.width, cfg.height, surface.Framebuffer)

	s.fb.Clear(pixel.Blue5551)
	text.Draw(s.fb, cfg.message, textOrigin, text.NewStyle(pixel.White5551))

	if err := vi.Setup(s.regs, s.fb, cfg.tv, cfg.console); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// scan returns the picture currently on screen.
func (s *scene) scan() (*image.RGBA, error) {
	return vi.Scan(s.regs, s.heap)
}

func (s *scene) Close() error {
	return s.fb.Close()
}
