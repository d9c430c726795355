//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// Колонки матрицы статистик connectedComponentsWithStats.
const (
	ccLeft   = 0
	ccTop    = 1
	ccWidth  = 2
	ccHeight = 3
	ccArea   = 4
)

// preprocess переводит кадр в оттенки серого и выравнивает локальный
// контраст, чтобы компенсировать неравномерное освещение.
func (p *CrackPipeline) preprocess(mat gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	clahe := gocv.NewCLAHEWithParams(p.Params.CLAHEClip, image.Pt(p.Params.CLAHETile, p.Params.CLAHETile))
	defer clahe.Close()

	equalized := gocv.NewMat()
	clahe.Apply(gray, &equalized)
	gray.Close()

	return equalized
}

// detectCandidates ищет тёмные вытянутые структуры на нескольких масштабах
// и возвращает маску выживших компонент вместе с их описаниями.
func (p *CrackPipeline) detectCandidates(gray gocv.Mat) (gocv.Mat, []entity.CandidateArea) {
	union := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), gray.Rows(), gray.Cols(), gocv.MatTypeCV8UC1)

	cleanup := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.Params.CleanupKernel, p.Params.CleanupKernel))
	defer cleanup.Close()

	for _, k := range p.Params.ScaleKernels {
		kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(k, k))

		// Blackhat выделяет тёмные детали мельче структурного элемента.
		ridge := gocv.NewMat()
		gocv.MorphologyEx(gray, &ridge, gocv.MorphBlackhat, kernel)
		kernel.Close()

		// Контраст трещин меняется от кадра к кадру, порог подбираем по Оцу.
		binary := gocv.NewMat()
		gocv.Threshold(ridge, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
		ridge.Close()

		// Закрытие сшивает разрывы, открытие убирает одиночные пиксели.
		closed := gocv.NewMat()
		gocv.MorphologyEx(binary, &closed, gocv.MorphClose, cleanup)
		binary.Close()

		opened := gocv.NewMat()
		gocv.MorphologyEx(closed, &opened, gocv.MorphOpen, cleanup)
		closed.Close()

		gocv.BitwiseOr(union, opened, &union)
		opened.Close()
	}

	filtered, regions := p.filterComponents(union)
	union.Close()

	return filtered, regions
}

// filterComponents отбрасывает мелкие и не вытянутые компоненты связности:
// структурные трещины линейные, пятна текстуры ближе к кругу.
func (p *CrackPipeline) filterComponents(mask gocv.Mat) (gocv.Mat, []entity.CandidateArea) {
	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	count := gocv.ConnectedComponentsWithStats(mask, &labels, &stats, &centroids)

	// Метка 0 зарезервирована за фоном.
	keep := make(map[int32]bool, count)
	regions := make([]entity.CandidateArea, 0, count)
	for i := 1; i < count; i++ {
		region := entity.CandidateArea{
			X:      int(stats.GetIntAt(i, ccLeft)),
			Y:      int(stats.GetIntAt(i, ccTop)),
			Width:  int(stats.GetIntAt(i, ccWidth)),
			Height: int(stats.GetIntAt(i, ccHeight)),
			Area:   int(stats.GetIntAt(i, ccArea)),
		}
		if region.Area < p.Params.MinComponentArea {
			continue
		}
		if region.Elongation() < p.Params.MinElongation {
			continue
		}
		keep[int32(i)] = true
		regions = append(regions, region)
	}

	filtered := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), mask.Rows(), mask.Cols(), gocv.MatTypeCV8UC1)
	if len(keep) == 0 {
		return filtered, regions
	}

	for y := 0; y < labels.Rows(); y++ {
		for x := 0; x < labels.Cols(); x++ {
			if keep[labels.GetIntAt(y, x)] {
				filtered.SetUCharAt(y, x, 255)
			}
		}
	}

	return filtered, regions
}
