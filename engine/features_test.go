package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(c color.RGBA, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestExtractImageFeaturesVectorLength(t *testing.T) {
	data := encodePNG(t, solidImage(color.RGBA{R: 120, G: 80, B: 200, A: 255}, 4, 4))
	features := ExtractImageFeatures(data)
	assert.Len(t, features, featureCount)
}

func TestExtractImageFeaturesDeterministic(t *testing.T) {
	data := encodePNG(t, solidImage(color.RGBA{R: 10, G: 10, B: 10, A: 255}, 8, 8))
	assert.Equal(t, ExtractImageFeatures(data), ExtractImageFeatures(data))
}

func TestExtractImageFeaturesBlackImageHistogram(t *testing.T) {
	data := encodePNG(t, solidImage(color.RGBA{A: 255}, 4, 4))
	features := ExtractImageFeatures(data)

	// All pixels land in bin 0 of each channel.
	assert.InDelta(t, 1.0, features[0], 1e-9, "red bin 0")
	assert.InDelta(t, 1.0, features[8], 1e-9, "green bin 0")
	assert.InDelta(t, 1.0, features[16], 1e-9, "blue bin 0")
	for _, i := range []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 17, 18, 19} {
		assert.Zero(t, features[i])
	}
}

func TestExtractImageFeaturesUndecodableFallsBack(t *testing.T) {
	features := ExtractImageFeatures([]byte("definitely not an image"))
	assert.Len(t, features, featureCount)
}

func TestClassifyImageKeywordRefinement(t *testing.T) {
	classification := ClassifyImage([]byte("not an image"), "large pothole forming a deep crater")

	assert.Equal(t, "pothole", classification.IssueType)
	assert.GreaterOrEqual(t, classification.Confidence, 0.65)
	assert.Equal(t, "dangerous", classification.Subcategory, "\"large\" maps to the worst tier")
}

func TestClassifyImageNoDescription(t *testing.T) {
	data := encodePNG(t, solidImage(color.RGBA{R: 200, G: 200, B: 200, A: 255}, 4, 4))
	classification := ClassifyImage(data, "")

	assert.Contains(t, issueTypes, classification.IssueType)
	assert.InDelta(t, 0.5, classification.Confidence, 1e-9)
}
