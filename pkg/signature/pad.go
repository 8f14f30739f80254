// Package signature captures freehand strokes as ordered point samples and
// rasterizes them into an inline-embeddable PNG on confirmation.
package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

const (
	defaultWidth  = 700
	defaultHeight = 200

	strokeRadius = 1.25
)

var strokeColor = color.RGBA{R: 0x0a, G: 0x1a, B: 0x0a, A: 0xff}

// ErrEmpty is returned when Confirm is called on a pad without strokes.
var ErrEmpty = errors.New("signature: pad is empty")

// Point is one pointer sample in pad coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pad accumulates strokes on a fixed-size surface. Strokes are append-only
// until Clear, which resets the surface synchronously.
type Pad struct {
	width   int
	height  int
	strokes [][]Point
	current []Point
}

// NewPad creates a pad with the default surface dimensions.
func NewPad() *Pad {
	return NewPadSize(defaultWidth, defaultHeight)
}

// NewPadSize creates a pad with a custom surface. Non-positive dimensions
// fall back to the defaults.
func NewPadSize(width, height int) *Pad {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Pad{width: width, height: height}
}

// Begin starts a new stroke at the given point.
func (p *Pad) Begin(pt Point) {
	p.endCurrent()
	p.current = []Point{pt}
}

// Extend appends a sample to the stroke in progress. Without a preceding
// Begin the sample is dropped, mirroring a move event with no button down.
func (p *Pad) Extend(pt Point) {
	if p.current == nil {
		return
	}
	p.current = append(p.current, pt)
}

// End finishes the stroke in progress.
func (p *Pad) End() {
	p.endCurrent()
}

func (p *Pad) endCurrent() {
	if len(p.current) > 0 {
		p.strokes = append(p.strokes, p.current)
	}
	p.current = nil
}

// AddStroke appends a complete stroke, as submitted by a remote capture
// surface in one batch.
func (p *Pad) AddStroke(points []Point) {
	if len(points) == 0 {
		return
	}
	stroke := make([]Point, len(points))
	copy(stroke, points)
	p.strokes = append(p.strokes, stroke)
}

// Clear discards all strokes and resets the surface.
func (p *Pad) Clear() {
	p.strokes = nil
	p.current = nil
}

// Empty reports whether nothing has been drawn yet.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0 && len(p.current) == 0
}

// Confirm rasterizes the strokes and returns the signature as a PNG data
// URI. The pad keeps its strokes, so a session can re-confirm after further
// drawing; callers overwrite the prior signature with the new value.
func (p *Pad) Confirm() (string, error) {
	if p.Empty() {
		return "", ErrEmpty
	}

	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for _, stroke := range p.strokes {
		drawStroke(img, stroke)
	}
	if len(p.current) > 0 {
		drawStroke(img, p.current)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("signature: encode png: %w", err)
	}
	return DataURI(buf.Bytes()), nil
}

func drawStroke(img *image.RGBA, stroke []Point) {
	if len(stroke) == 1 {
		stamp(img, stroke[0])
		return
	}
	for i := 1; i < len(stroke); i++ {
		drawSegment(img, stroke[i-1], stroke[i])
	}
}

func drawSegment(img *image.RGBA, from, to Point) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	steps := int(length*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(img, Point{X: from.X + dx*t, Y: from.Y + dy*t})
	}
}

func stamp(img *image.RGBA, center Point) {
	minX := int(math.Floor(center.X - strokeRadius))
	maxX := int(math.Ceil(center.X + strokeRadius))
	minY := int(math.Floor(center.Y - strokeRadius))
	maxY := int(math.Ceil(center.Y + strokeRadius))
	bounds := img.Bounds()

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			ddx := float64(x) + 0.5 - center.X
			ddy := float64(y) + 0.5 - center.Y
			if ddx*ddx+ddy*ddy <= strokeRadius*strokeRadius {
				img.SetRGBA(x, y, strokeColor)
			}
		}
	}
}

// DataURI wraps raw PNG bytes into an inline-embeddable data URI.
func DataURI(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// FileDataURI reads a PNG file and returns it as a data URI, for callers
// that capture the signature outside the pad (e.g. the terminal wizard).
func FileDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("signature: read file: %w", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		return "", fmt.Errorf("signature: %s is not a png file", path)
	}
	return DataURI(data), nil
}
