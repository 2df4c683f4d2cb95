package game

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

const backdropSteps = 256

// backdropRamp is the vignette colour from the bright inner stop (index 0)
// to the dark outer stop (last index), already composited over the page base
// colour at canvas opacity.
func backdropRamp() [backdropSteps][4]uint8 {
	base := mustHex(config.BackdropBaseColorHex)
	black := colorful.Color{}

	var ramp [backdropSteps][4]uint8
	for i := range ramp {
		t := float64(i) / (backdropSteps - 1)
		a := config.BackdropInnerAlpha + (config.BackdropOuterAlpha-config.BackdropInnerAlpha)*t
		c := base.BlendRgb(black, a*config.CanvasOpacity)
		r, g, b := c.RGB255()
		ramp[i] = [4]uint8{r, g, b, 255}
	}
	return ramp
}

// gradientOffset solves the two-circle radial gradient used for the
// backdrop: an inner circle of radius 0 at (cx, y0) grows into an outer
// circle of radius r1 at (cx, y1). It returns where (px, py) falls between
// the two stops, clamped to [0, 1].
func gradientOffset(px, py, cx, y0, y1, r1 float64) float64 {
	dy := y1 - y0
	qx, qy := px-cx, py-y0

	a := dy*dy - r1*r1
	b := 2 * qy * dy
	c := qx*qx + qy*qy
	if a == 0 {
		if b == 0 {
			return 1
		}
		return clamp01(c / b)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	// the larger root is the outermost circle through the point
	t1 := (b - math.Sqrt(disc)) / (2 * a)
	t2 := (b + math.Sqrt(disc)) / (2 * a)
	return clamp01(math.Max(t1, t2))
}

// rasterizeBackdrop paints the vignette for a w x h viewport. It returns nil
// for an empty viewport.
func rasterizeBackdrop(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ramp := backdropRamp()

	fw, fh := float64(w), float64(h)
	cx := fw * 0.5
	y0 := fh * config.BackdropInnerCenterY
	y1 := fh * config.BackdropOuterCenterY
	r1 := fh * config.BackdropOuterRadiusH

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			t := gradientOffset(float64(x)+0.5, float64(y)+0.5, cx, y0, y1, r1)
			c := ramp[int(t*(backdropSteps-1)+0.5)]
			copy(row[x*4:x*4+4], c[:])
		}
	}
	return img
}
