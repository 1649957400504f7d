package mrv

import (
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"
)

// ErrBadImage indicates an upload that could not be decoded as an image.
var ErrBadImage = errors.New("image could not be decoded")

const (
	// minImageVariance is the luminance variance below which an image is
	// considered too uniform to be genuine field evidence.
	minImageVariance = 50.0
	// minImagePixels is the smallest pixel count accepted as sufficient
	// resolution.
	minImagePixels = 10000
)

// DecodeImage decodes a PNG or JPEG upload.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	return img, nil
}

// CheckImage runs the image plausibility heuristics: luminance variance must
// reach minImageVariance and the pixel count must reach minImagePixels. The
// variance check runs first, matching the recorded failure reasons.
func CheckImage(img image.Image) Verdict {
	variance := LuminanceVariance(img)
	if variance < minImageVariance {
		return Verdict{Reason: fmt.Sprintf("low variance (%.1f): pixels are too uniform, image may be manipulated", variance)}
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width*height < minImagePixels {
		return Verdict{Reason: fmt.Sprintf("too small (%dx%d): insufficient resolution", width, height)}
	}
	return Verdict{Passed: true, Reason: fmt.Sprintf("image passes basic checks (variance=%.1f)", variance)}
}

// LuminanceVariance converts the image to single-channel luminance using
// ITU-R 601 weights on 8-bit channels and returns the population variance
// across all pixels. An empty image has zero variance.
func LuminanceVariance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	var sum, sumSquares float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			sum += lum
			sumSquares += lum * lum
		}
	}

	n := float64(count)
	mean := sum / n
	variance := sumSquares/n - mean*mean
	if variance < 0 {
		// Guard against tiny negative values from floating-point rounding.
		return 0
	}
	return variance
}
