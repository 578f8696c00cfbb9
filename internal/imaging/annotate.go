package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/danielflood/microburbs/internal/geometry"
)

// Canvas is a mutable copy of a source image that orientation results get
// drawn onto. The source image is never modified.
type Canvas struct {
	base *image.NRGBA
}

// NewCanvas clones img into a drawable canvas.
func NewCanvas(img image.Image) *Canvas {
	return &Canvas{base: imaging.Clone(img)}
}

// Image returns the annotated image.
func (c *Canvas) Image() image.Image {
	return c.base
}

// ParseColor parses a hex color string like "#ffcc00" or "#fc0".
func ParseColor(s string) (color.NRGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// DrawMarker draws a filled disc of the given radius centered on p.
func (c *Canvas) DrawMarker(p geometry.PixelPoint, radius int, col color.NRGBA) {
	cx, cy := int(math.Round(p.X)), int(math.Round(p.Y))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// DrawSegment draws a straight line from a to b.
func (c *Canvas) DrawSegment(a, b geometry.PixelPoint, col color.NRGBA) {
	v := b.Sub(a)
	steps := int(math.Ceil(v.Len()))
	if steps == 0 {
		c.set(int(math.Round(a.X)), int(math.Round(a.Y)), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + v.DX*t))
		y := int(math.Round(a.Y + v.DY*t))
		// 2px stroke
		c.set(x, y, col)
		c.set(x+1, y, col)
		c.set(x, y+1, col)
	}
}

// DrawArrow draws a segment from a to b with a head at b. The head wings
// sweep back from the tip at 45 degrees on either side of the shaft.
func (c *Canvas) DrawArrow(a, b geometry.PixelPoint, col color.NRGBA) {
	c.DrawSegment(a, b, col)

	dir := b.Sub(a).Unit()
	if dir.IsZero() {
		return
	}

	const wingLen = 12.0
	cos45 := math.Cos(math.Pi / 4)
	sin45 := math.Sin(math.Pi / 4)

	back := dir.Scale(-1)
	left := geometry.PixelVec{
		DX: back.DX*cos45 - back.DY*sin45,
		DY: back.DX*sin45 + back.DY*cos45,
	}
	right := geometry.PixelVec{
		DX: back.DX*cos45 + back.DY*sin45,
		DY: -back.DX*sin45 + back.DY*cos45,
	}

	c.DrawSegment(b, b.Add(left.Scale(wingLen)), col)
	c.DrawSegment(b, b.Add(right.Scale(wingLen)), col)
}

// DrawTag draws a small text label with a solid background, top-left corner
// at p. The glyph set covers what result labels need: digits, the four
// cardinal letters, and a little punctuation; anything else renders as a
// blank advance.
func (c *Canvas) DrawTag(p geometry.PixelPoint, text string, fg, bg color.NRGBA) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))

	const scale = 2
	charWidth := 4 * scale
	labelWidth := len([]rune(text)) * charWidth
	labelHeight := 7 * scale

	for dy := -scale; dy < labelHeight; dy++ {
		for dx := -scale; dx < labelWidth; dx++ {
			c.set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := tagGlyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						c.set(cx+col*scale+sx, y+row*scale+sy, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}

// tagGlyphs is a 3x5 pixel font covering result labels like "SE (135.0°)".
var tagGlyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'N': {"101", "111", "111", "111", "101"},
	'E': {"111", "100", "111", "100", "111"},
	'S': {"111", "100", "111", "001", "111"},
	'W': {"101", "101", "111", "111", "101"},
	'.': {"000", "000", "000", "000", "010"},
	',': {"000", "000", "000", "010", "010"},
	'(': {"010", "100", "100", "100", "010"},
	')': {"010", "001", "001", "001", "010"},
	'°': {"010", "101", "010", "000", "000"},
}

func (c *Canvas) set(x, y int, col color.NRGBA) {
	b := c.base.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		c.base.Set(x, y, col)
	}
}
