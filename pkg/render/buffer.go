package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Cell is one pixel of a Buffer: the nearest color seen so far and its
// camera-space depth.
type Cell struct {
	Color Color
	Depth float64
}

// emptyCell is the state of every cell in a fresh buffer.
var emptyCell = Cell{Color: ColorWhite, Depth: math.Inf(1)}

// Buffer is a combined depth and color buffer (a Z-buffer) stored as one
// flat row-major slice addressed by x + y*Width.
type Buffer struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewBuffer creates a buffer with every cell at (+Inf, opaque white).
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	b.Reset()
	return b
}

// Reset returns every cell to (+Inf, opaque white).
func (b *Buffer) Reset() {
	// Use copy-doubling for faster clearing
	n := len(b.Cells)
	if n == 0 {
		return
	}
	b.Cells[0] = emptyCell
	for i := 1; i < n; i *= 2 {
		copy(b.Cells[i:], b.Cells[:i])
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes c at (x, y) if depth is strictly nearer than what the cell
// holds. Coordinates outside the buffer are silently ignored.
// It reports whether the write was accepted.
func (b *Buffer) Set(x, y int, c Color, depth float64) bool {
	if !b.InBounds(x, y) {
		return false
	}
	cell := &b.Cells[y*b.Width+x]
	if !(depth < cell.Depth) {
		return false
	}
	cell.Color = c
	cell.Depth = depth
	return true
}

// Get returns the color at (x, y).
// Reading outside the buffer is a programming error and panics.
func (b *Buffer) Get(x, y int) Color {
	return b.Cells[b.mustIndex(x, y)].Color
}

// Depth returns the stored depth at (x, y). Panics outside the buffer.
func (b *Buffer) Depth(x, y int) float64 {
	return b.Cells[b.mustIndex(x, y)].Depth
}

func (b *Buffer) mustIndex(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("render: read of (%d, %d) outside %dx%d buffer", x, y, b.Width, b.Height))
	}
	return y*b.Width + x
}

// FrameSize returns the byte length Resolve expects.
func (b *Buffer) FrameSize() int {
	return b.Width * b.Height * 4
}

// Resolve copies every cell's color into frame, row-major, 4 bytes per
// pixel in R, G, B, A order. frame must hold exactly FrameSize bytes;
// otherwise nothing is written and ErrSizeMismatch is returned.
func (b *Buffer) Resolve(frame []byte) error {
	if len(frame) != b.FrameSize() {
		return fmt.Errorf("%w: got %d bytes, want %d (%dx%dx4)", ErrSizeMismatch, len(frame), b.FrameSize(), b.Width, b.Height)
	}
	for i, cell := range b.Cells {
		px := frame[i*4 : i*4+4 : i*4+4]
		px[0] = cell.Color.R
		px[1] = cell.Color.G
		px[2] = cell.Color.B
		px[3] = cell.Color.A
	}
	return nil
}

// ToImage converts the buffer to a standard Go image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	// image.RGBA.Pix shares Resolve's layout when the stride is Width*4.
	_ = b.Resolve(img.Pix)
	return img
}

// ImageFormat selects an encoder for Encode.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// FormatFromPath picks an ImageFormat from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format: %q (use .png, .bmp or .tiff)", ext)
	}
}

// FrameImage wraps a resolved width×height RGBA frame as an image without
// copying it.
func FrameImage(frame []byte, width, height int) (*image.RGBA, error) {
	if len(frame) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(frame), width*height*4)
	}
	return &image.RGBA{Pix: frame, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}, nil
}

// Encode writes the buffer's colors as an image.
func (b *Buffer) Encode(w io.Writer, format ImageFormat) error {
	return EncodeImage(w, b.ToImage(), format)
}

// EncodeImage writes img in the given format.
func EncodeImage(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format: %q", format)
	}
}

// Save encodes the buffer to path, choosing the format from its extension.
func (b *Buffer) Save(path string) error {
	return SaveImage(path, b.ToImage())
}

// SaveImage encodes img to path, choosing the format from its extension.
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeImage(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
