package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// DrawFrame draws a resolved RGBA frame of width×height pixels onto a
// terminal screen.
// Each terminal row shows two frame rows: ▀ with fg = top and bg = bottom.
// A frame larger than area is sampled every FrameStep pixels so it fits.
// Cells beyond the (sampled) frame are left untouched.
func DrawFrame(scr uv.Screen, area uv.Rectangle, frame []byte, width, height int) {
	if len(frame) < width*height*4 {
		return
	}
	step := FrameStep(width, height, area.Dx(), area.Dy())

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2 * step
		botY := topY + step
		if topY >= height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := (col - area.Min.X) * step
			if x >= width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: frameColor(frame, width, height, x, topY),
					Bg: frameColor(frame, width, height, x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// FrameStep returns the smallest integer sampling step that fits a
// width×height frame into cols×rows half-block cells.
func FrameStep(width, height, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return max((width+cols-1)/cols, (height+2*rows-1)/(2*rows), 1)
}

// TerminalSize returns the cell area needed to show a width×height frame
// sampled every step pixels.
func TerminalSize(width, height, step int) (cols, rows int) {
	if step < 1 {
		step = 1
	}
	w := (width + step - 1) / step
	h := (height + step - 1) / step
	return w, (h + 1) / 2
}

// frameColor reads one pixel, returning nil (no color) outside the frame
// or for fully transparent pixels.
func frameColor(frame []byte, width, height, x, y int) color.Color {
	if x < 0 || x >= width || y < 0 || y >= height {
		return nil
	}
	i := (y*width + x) * 4
	c := color.RGBA{frame[i], frame[i+1], frame[i+2], frame[i+3]}
	if c.A == 0 {
		return nil
	}
	return c
}
