//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// renderOverlay подсвечивает маску поверх кадра и обводит области-кандидаты.
// Отрисовка не влияет на вердикт: при любом сбое возвращается исходное
// изображение, при пустой маске оно возвращается без изменений.
func (p *CrackPipeline) renderOverlay(original gocv.Mat, mask gocv.Mat, regions []entity.CandidateArea, fallback []byte) (overlay []byte) {
	defer func() {
		if recover() != nil {
			overlay = fallback
		}
	}()

	if len(regions) == 0 && gocv.CountNonZero(mask) == 0 {
		return fallback
	}

	// Красная подсветка под маской, смешанная 70 на 30 с оригиналом.
	marker := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 255, 0), original.Rows(), original.Cols(), gocv.MatTypeCV8UC3)
	defer marker.Close()

	tinted := original.Clone()
	defer tinted.Close()
	marker.CopyToWithMask(&tinted, mask)

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(original, 0.7, tinted, 0.3, 0, &blended)

	green := color.RGBA{G: 255, A: 255}
	for _, region := range regions {
		rect := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
		gocv.Rectangle(&blended, rect, green, 2)
	}

	img, err := blended.ToImage()
	if err != nil {
		return fallback
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fallback
	}

	return buf.Bytes()
}
