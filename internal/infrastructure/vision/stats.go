package vision

import "gonum.org/v1/gonum/stat"

// Причины отказа структурной проверки. Каждая называет не прошедший критерий.
const (
	reasonTooShort    = "skeletal length below minimum"
	reasonWidthSpread = "width variation above maximum"
	reasonTooDense    = "mask density above maximum"
)

// maskStats сводные характеристики маски-кандидата
type maskStats struct {
	SkeletonLength float64 // число пикселей скелета
	WidthMean      float64 // средняя локальная ширина
	WidthStdDev    float64 // разброс локальной ширины
	Density        float64 // доля переднего плана
}

// validate прогоняет маску через проверки правдоподобия в фиксированном
// порядке: длина, постоянство ширины, плотность. Возвращает причину
// первой не прошедшей проверки.
func (p Params) validate(st maskStats) (reason string, ok bool) {
	if st.SkeletonLength < p.MinSkeletonLength {
		return reasonTooShort, false
	}
	if st.WidthStdDev > p.MaxWidthStdDev {
		return reasonWidthSpread, false
	}
	if st.Density > p.MaxDensity {
		return reasonTooDense, false
	}
	return "", true
}

// widthStats считает среднее и разброс выборки локальных ширин.
// Для выборки короче двух элементов разброс равен нулю.
func widthStats(widths []float64) (mean, stddev float64) {
	if len(widths) == 0 {
		return 0, 0
	}
	mean = stat.Mean(widths, nil)
	if len(widths) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(widths, nil)
}
