package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalSize(t *testing.T) {
	tests := []struct {
		w, h, step int
		cols, rows int
	}{
		{400, 300, 1, 400, 150},
		{400, 300, 2, 200, 75},
		{400, 300, 3, 134, 50},
		{3, 5, 1, 3, 3},
		{1, 1, 0, 1, 1},
	}
	for _, tc := range tests {
		cols, rows := TerminalSize(tc.w, tc.h, tc.step)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("TerminalSize(%d, %d, %d) = %d, %d; want %d, %d", tc.w, tc.h, tc.step, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestFrameStep(t *testing.T) {
	tests := []struct {
		name             string
		w, h, cols, rows int
		want             int
	}{
		{"fits", 400, 300, 400, 150, 1},
		{"narrow", 400, 300, 200, 150, 2},
		{"short", 400, 300, 400, 50, 3},
		{"typical", 400, 300, 120, 40, 4},
		{"empty area", 400, 300, 0, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			step := FrameStep(tc.w, tc.h, tc.cols, tc.rows)
			if step != tc.want {
				t.Fatalf("FrameStep = %d, want %d", step, tc.want)
			}
			cols, rows := TerminalSize(tc.w, tc.h, step)
			if tc.cols > 0 && (cols > tc.cols || rows > tc.rows) {
				t.Errorf("sampled frame %dx%d does not fit %dx%d", cols, rows, tc.cols, tc.rows)
			}
		})
	}
}

func TestDrawFrameSamples(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Set(2, 0, ColorRed, 1)
	buf.Set(2, 2, ColorBlue, 1)
	frame := make([]byte, buf.FrameSize())
	if err := buf.Resolve(frame); err != nil {
		t.Fatal(err)
	}

	scr := uv.NewScreenBuffer(2, 1)
	DrawFrame(scr, scr.Bounds(), frame, 4, 4)

	c := scr.CellAt(1, 0)
	if c.Style.Fg != color.Color(ColorRed) || c.Style.Bg != color.Color(ColorBlue) {
		t.Errorf("sampled cell fg/bg = %v/%v, want red/blue", c.Style.Fg, c.Style.Bg)
	}
}

func TestDrawFrameHalfBlocks(t *testing.T) {
	buf := NewBuffer(2, 3)
	buf.Set(0, 0, ColorRed, 1)
	buf.Set(0, 1, ColorBlue, 1)
	buf.Set(1, 2, ColorGreen, 1)
	frame := make([]byte, buf.FrameSize())
	if err := buf.Resolve(frame); err != nil {
		t.Fatal(err)
	}

	scr := uv.NewScreenBuffer(4, 4)
	DrawFrame(scr, uv.Rect(1, 1, 3, 3), frame, 2, 3)

	top := scr.CellAt(1, 1)
	if top == nil || top.Content != "▀" {
		t.Fatalf("cell (1, 1) = %+v, want half block", top)
	}
	if top.Style.Fg != color.Color(ColorRed) || top.Style.Bg != color.Color(ColorBlue) {
		t.Errorf("top cell fg/bg = %v/%v, want red/blue", top.Style.Fg, top.Style.Bg)
	}

	// Last frame row has no partner row below it.
	bottom := scr.CellAt(2, 2)
	if bottom.Style.Fg != color.Color(ColorGreen) || bottom.Style.Bg != nil {
		t.Errorf("bottom cell fg/bg = %v/%v, want green/nil", bottom.Style.Fg, bottom.Style.Bg)
	}

	// Columns past the frame width are left alone.
	if c := scr.CellAt(3, 1); c != nil && c.Content == "▀" {
		t.Error("DrawFrame wrote past the frame width")
	}
}

func TestDrawFrameShortFrameIsNoop(t *testing.T) {
	scr := uv.NewScreenBuffer(2, 2)
	DrawFrame(scr, scr.Bounds(), make([]byte, 4), 2, 2)
	if c := scr.CellAt(0, 0); c != nil && c.Content == "▀" {
		t.Error("short frame should not be drawn")
	}
}
