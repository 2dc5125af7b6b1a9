package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/argumentlab/miner/internal/core/model"
)

// ErrUnknownColorMode is returned for a colour mode name no encoder
// implements; callers treat it as bad input.
var ErrUnknownColorMode = errors.New("unknown color mode")

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance is the YUV luma of the colour, used to pick readable label
// text on top of it.
func (c RGB) Luminance() float64 {
	return float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
}

// ColorEncoder deterministically maps a node set to one colour per node.
// Implementations must be pure functions of the node fields they read.
type ColorEncoder interface {
	Name() string
	Encode(nodes []model.Node) []RGB
}

// midGray is the fallback for degenerate coordinate ranges and missing
// similarity values.
var midGray = RGB{R: 128, G: 128, B: 128}

// BlendEncoder maps the projected x coordinate to the red channel and the
// y coordinate to the green channel, each normalized over the node set to
// [50,255] so no colour gets too dark. Blue stays fixed at 128.
type BlendEncoder struct{}

func (BlendEncoder) Name() string { return "blend" }

func (BlendEncoder) Encode(nodes []model.Node) []RGB {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		if n.Position2D == nil {
			continue
		}
		xMin = math.Min(xMin, n.Position2D[0])
		xMax = math.Max(xMax, n.Position2D[0])
		yMin = math.Min(yMin, n.Position2D[1])
		yMax = math.Max(yMax, n.Position2D[1])
	}

	colors := make([]RGB, len(nodes))
	for i, n := range nodes {
		if n.Position2D == nil {
			colors[i] = midGray
			continue
		}
		colors[i] = RGB{
			R: channel(n.Position2D[0], xMin, xMax),
			G: channel(n.Position2D[1], yMin, yMax),
			B: 128,
		}
	}
	return colors
}

// channel normalizes v over [min,max] into [50,255]. A degenerate range
// (all values equal) maps to the fixed mid value 128.
func channel(v, min, max float64) int {
	if !(max-min > 0) {
		return 128
	}
	return int((v-min)/(max-min)*205 + 50)
}

// HueEncoder derives a hue from each node's cosine similarity to the
// first node: similarity 1 maps to 0° (red), -1 to 240° (blue), with
// fixed saturation 0.6 and value 0.9. Nodes without a similarity get the
// mid-gray fallback.
type HueEncoder struct{}

func (HueEncoder) Name() string { return "hue" }

func (HueEncoder) Encode(nodes []model.Node) []RGB {
	colors := make([]RGB, len(nodes))
	for i, n := range nodes {
		if n.CosSimToFirst == nil {
			colors[i] = midGray
			continue
		}
		sim := math.Max(-1, math.Min(1, *n.CosSimToFirst))
		hue := (1 - (sim+1)/2) * 240
		colors[i] = hsvToRGB(hue, 0.6, 0.9)
	}
	return colors
}

func hsvToRGB(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}

// EncoderFor maps a colour mode name to its encoder.
func EncoderFor(mode string) (ColorEncoder, error) {
	switch mode {
	case "", "blend":
		return BlendEncoder{}, nil
	case "hue":
		return HueEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownColorMode, mode)
	}
}
