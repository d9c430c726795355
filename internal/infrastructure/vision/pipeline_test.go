//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(color.Black), image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r {
				img.Set(x, y, color.Black)
			}
		}
	}
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyze_VerticalCrack(t *testing.T) {
	img := whiteCanvas(200, 200)
	fillRect(img, 99, 40, 102, 160)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusStructuralCrack, res.Status)
	require.NotNil(t, res.Measurement)
	require.Equal(t, entity.OrientationVertical, res.Measurement.Orientation)
	require.Equal(t, "shrinkage/load-induced crack", res.Measurement.Pattern)
	require.Greater(t, res.Measurement.LengthPixels, 100.0)
	require.Less(t, res.Measurement.LengthPixels, 200.0)
	require.Greater(t, res.Measurement.WidthPixels, 0.0)
	require.Less(t, res.Measurement.WidthPixels, 3.0)
	require.Equal(t, entity.SeverityModerate, res.Severity)
	require.NotNil(t, res.Recommendation)
	require.True(t, res.Recommendation.EngineerRequired)
	require.NotEmpty(t, res.Regions)
	require.NotEmpty(t, res.Overlay)
}

func TestAnalyze_HorizontalCrack(t *testing.T) {
	img := whiteCanvas(200, 200)
	fillRect(img, 40, 99, 160, 102)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusStructuralCrack, res.Status)
	require.Equal(t, entity.OrientationHorizontal, res.Measurement.Orientation)
	require.Equal(t, "settlement crack", res.Measurement.Pattern)
}

func TestOrientationOf_DiagonalStroke(t *testing.T) {
	// Наклонный штрих с почти квадратной рамкой: протяжённости по осям
	// сравниваются, а не стороны повёрнутого прямоугольника.
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 200, 200, gocv.MatTypeCV8UC1)
	defer mask.Close()
	for y := 40; y < 160; y++ {
		for x := 40; x < 160; x++ {
			if d := y - x; d >= -5 && d <= 5 {
				mask.SetUCharAt(y, x, 255)
			}
		}
	}

	p := NewCrackPipeline(DefaultParams())
	require.Equal(t, entity.OrientationDiagonal, p.orientationOf(mask))
}

func TestOrientationOf_EmptyMaskIsIrregular(t *testing.T) {
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 120, 120, gocv.MatTypeCV8UC1)
	defer mask.Close()

	p := NewCrackPipeline(DefaultParams())
	require.Equal(t, entity.OrientationIrregular, p.orientationOf(mask))
}

func TestAnalyze_BlankImageKeepsOriginalOverlay(t *testing.T) {
	data := pngBytes(t, whiteCanvas(200, 200))

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusNoCrack, res.Status)
	require.Empty(t, res.Regions)
	require.Equal(t, data, res.Overlay)
}

func TestAnalyze_FilledCircleDiscardedByElongation(t *testing.T) {
	img := whiteCanvas(200, 200)
	fillCircle(img, 100, 100, 12)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusNoCrack, res.Status)
	require.Empty(t, res.Regions)
}

func TestAnalyze_ShortMarkRejected(t *testing.T) {
	img := whiteCanvas(200, 200)
	fillRect(img, 80, 100, 110, 104)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusNonStructural, res.Status)
	require.Equal(t, reasonTooShort, res.Reason)
}

func TestAnalyze_InconsistentWidthRejected(t *testing.T) {
	// Толстые наплывы на концах тонкой перемычки дают большой разброс ширины.
	img := whiteCanvas(240, 200)
	fillRect(img, 40, 88, 64, 112)
	fillRect(img, 64, 99, 160, 102)
	fillRect(img, 160, 88, 184, 112)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, entity.StatusNonStructural, res.Status)
	require.Equal(t, reasonWidthSpread, res.Reason)
	require.Contains(t, res.Reason, "width")
	require.NotEmpty(t, res.Overlay)
}

func TestAnalyze_GarbageBytes(t *testing.T) {
	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(context.Background(), []byte("definitely not an image"))
	require.NoError(t, err)

	require.Equal(t, entity.StatusError, res.Status)
	require.Equal(t, "invalid image", res.Message)
	require.Empty(t, res.Overlay)
}

func TestAnalyze_Deterministic(t *testing.T) {
	img := whiteCanvas(200, 200)
	fillRect(img, 99, 40, 102, 160)
	data := pngBytes(t, img)

	p := NewCrackPipeline(DefaultParams())
	first, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)
	second, err := p.Analyze(context.Background(), data)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	data := pngBytes(t, whiteCanvas(200, 200))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewCrackPipeline(DefaultParams())
	res, err := p.Analyze(ctx, data)
	require.Error(t, err)
	require.Nil(t, res)
}
