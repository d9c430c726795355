//go:build gocv
// +build gocv

package vision

import (
	"math"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// maskStatsOf считает скелет, локальные ширины и плотность маски.
func (p *CrackPipeline) maskStatsOf(mask gocv.Mat) maskStats {
	st := maskStats{
		SkeletonLength: skeletonLength(mask),
	}

	st.WidthMean, st.WidthStdDev = widthStats(localWidths(mask))

	if total := mask.Rows() * mask.Cols(); total > 0 {
		st.Density = float64(gocv.CountNonZero(mask)) / float64(total)
	}

	return st
}

// skeletonLength утончает маску до линии в один пиксель и считает её длину.
// Вырожденная маска даёт ноль, а не сбой.
func skeletonLength(mask gocv.Mat) (length float64) {
	defer func() {
		if recover() != nil {
			length = 0
		}
	}()

	if gocv.CountNonZero(mask) == 0 {
		return 0
	}

	skeleton := gocv.NewMat()
	defer skeleton.Close()
	contrib.Thinning(mask, &skeleton, contrib.ThinningZhangSuen)

	return float64(gocv.CountNonZero(skeleton))
}

// localWidths собирает локальную ширину в каждом пикселе переднего плана:
// удвоенное расстояние до ближайшего фона приближает толщину трещины.
func localWidths(mask gocv.Mat) []float64 {
	dist := gocv.NewMat()
	defer dist.Close()
	distLabels := gocv.NewMat()
	defer distLabels.Close()
	gocv.DistanceTransform(mask, &dist, &distLabels, gocv.DistL2, gocv.DistanceMask5, gocv.DistanceLabelCComp)

	widths := make([]float64, 0, gocv.CountNonZero(mask))
	for y := 0; y < mask.Rows(); y++ {
		for x := 0; x < mask.Cols(); x++ {
			if mask.GetUCharAt(y, x) == 0 {
				continue
			}
			widths = append(widths, 2*float64(dist.GetFloatAt(y, x)))
		}
	}

	return widths
}

// measure строит итоговые измерения подтверждённой трещины.
func (p *CrackPipeline) measure(mask gocv.Mat, st maskStats) entity.CrackMeasurement {
	orientation := p.orientationOf(mask)

	return entity.CrackMeasurement{
		LengthPixels: entity.Round2(st.SkeletonLength),
		WidthPixels:  entity.Round2(st.WidthMean),
		Orientation:  orientation,
		Pattern:      orientation.Pattern(),
	}
}

// orientationOf определяет ориентацию по минимальному охватывающему
// прямоугольнику самой крупной компоненты.
func (p *CrackPipeline) orientationOf(mask gocv.Mat) entity.Orientation {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return entity.OrientationIrregular
	}

	largest := 0
	largestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > largestArea {
			largest, largestArea = i, area
		}
	}

	rect := gocv.MinAreaRect(contours.At(largest))
	w, h := axisExtents(rect)

	return entity.OrientationFor(w, h, p.Params.OrientationAspect)
}

// axisExtents проецирует стороны повёрнутого прямоугольника на оси кадра.
// Порядок сторон у minAreaRect зависит от угла, поэтому сравнивать нужно
// протяжённости по осям, а не сырые стороны.
func axisExtents(rect gocv.RotatedRect) (w, h float64) {
	theta := rect.Angle * math.Pi / 180
	sin, cos := math.Abs(math.Sin(theta)), math.Abs(math.Cos(theta))

	rw, rh := float64(rect.Width), float64(rect.Height)
	w = rw*cos + rh*sin
	h = rw*sin + rh*cos

	return w, h
}
