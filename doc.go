// Package n64gfx is a small graphics and debug-output runtime for the
// Nintendo 64.
//
// # Overview
//
// The runtime brings up a video framebuffer, renders into it through a
// pixel-format abstraction and streams diagnostics over the IS-Viewer
// development cartridge. The work is split across sub-packages:
//
//   - pixel: the RGBA8888 and RGBA5551 packed color formats
//   - arena: the memory provider boundary and a simulated RDRAM heap
//   - surface: pixel buffers over arena memory, drawn to point by point
//   - text: bitmap text rendered through a surface's point interface
//   - isv: the IS-Viewer debug text channel
//   - vi: video interface setup and a host-side display scanner
//
// # Quick Start
//
//	heap := arena.NewHeap()
//	fb := surface.New[pixel.RGBA5551](heap, 320, 240, surface.Framebuffer)
//	defer fb.Close()
//
//	fb.Clear(pixel.Blue5551)
//	text.Draw(fb, "Hello N64", image.Pt(32, 32), text.NewStyle(pixel.White5551))
//
//	regs := vi.NewRegisterFile()
//	if err := vi.Setup(regs, fb, vi.NTSC, vi.N64); err != nil {
//		log.Fatal(err)
//	}
//
// # Logging
//
// Nothing is logged by default. [SetLogger] installs an [log/slog] logger
// shared by every sub-package.
package n64gfx
