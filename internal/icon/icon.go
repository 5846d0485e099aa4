// Package icon renders the URL-Notes placeholder icons: an iOS-blue
// rounded badge with a white note card and, on sizes 32 and up, short
// accent lines standing in for text.
package icon

import (
	"fmt"
	"image"
	"image/color"
)

// Badge and note colors.
var (
	Blue  = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Sizes are the icon dimensions the extension manifest declares.
var Sizes = []int{16, 32, 48, 128}

// Layout is the computed geometry for one icon size. All rectangles are
// inclusive of both corner coordinates.
type Layout struct {
	Margin int // badge inset from the bitmap edge
	Radius int // badge corner radius

	NoteX, NoteY          int
	NoteWidth, NoteHeight int

	LineX, LineWidth        int
	LineHeight, LineSpacing int
	LineYs                  []int // y offsets of the accent lines that fit; nil below 32px
}

// LayoutFor computes the badge, note-card and accent-line geometry for a
// positive size. Pure and deterministic.
//
// Fractional factors are applied as float64 multiply then truncate; note
// that e.g. int(float64(10)*0.7) is 6 under IEEE doubles.
func LayoutFor(size int) Layout {
	l := Layout{
		Margin: max(1, size/8),
		Radius: max(2, size/6),
	}

	noteMargin := max(2, size/4)
	l.NoteWidth = size - 2*noteMargin
	l.NoteHeight = int(float64(l.NoteWidth) * 0.8)
	l.NoteX = noteMargin
	l.NoteY = (size - l.NoteHeight) / 2

	if size < 32 {
		return l
	}

	l.LineHeight = max(1, size/16)
	l.LineSpacing = max(2, size/8)
	l.LineWidth = int(float64(l.NoteWidth) * 0.7)
	l.LineX = l.NoteX + int(float64(l.NoteWidth)*0.15)
	for i := 0; i < 3; i++ {
		y := l.NoteY + int(float64(l.NoteHeight)*0.3) + i*l.LineSpacing
		if y+l.LineHeight >= l.NoteY+l.NoteHeight {
			continue // would poke out of the note card
		}
		l.LineYs = append(l.LineYs, y)
	}
	return l
}

// Draw renders a size×size icon on a transparent background. It is a pure
// function of size: two calls with the same size produce identical pixels.
func Draw(size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("icon: size must be positive, got %d", size)
	}

	l := LayoutFor(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fillRoundedRect(img, l.Margin, l.Margin, size-l.Margin, size-l.Margin, l.Radius, Blue)
	fillRect(img, l.NoteX, l.NoteY, l.NoteX+l.NoteWidth, l.NoteY+l.NoteHeight, White)
	for _, y := range l.LineYs {
		fillRect(img, l.LineX, y, l.LineX+l.LineWidth, y+l.LineHeight, Blue)
	}
	return img, nil
}

// fillRect fills the rectangle [x0,y0]..[x1,y1], both corners inclusive.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillRoundedRect fills [x0,y0]..[x1,y1] with rounded corners of the given
// radius: a cross of two rectangles plus a disc at each corner center.
// A pixel belongs to a disc when dx²+dy² ≤ r².
func fillRoundedRect(img *image.RGBA, x0, y0, x1, y1, r int, c color.RGBA) {
	fillRect(img, x0+r, y0, x1-r, y1, c)
	fillRect(img, x0, y0+r, x1, y1-r, c)

	centers := [4][2]int{
		{x0 + r, y0 + r},
		{x1 - r, y0 + r},
		{x0 + r, y1 - r},
		{x1 - r, y1 - r},
	}
	for _, ctr := range centers {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy <= r*r {
					img.SetRGBA(ctr[0]+dx, ctr[1]+dy, c)
				}
			}
		}
	}
}
