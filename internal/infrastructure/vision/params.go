package vision

import (
	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
	"github.com/DavidOG03/crack-analyst/internal/domain/port"
)

// Params пороги конвейера анализа. Все величины в пикселях.
type Params struct {
	ScaleKernels      []int   // размеры структурных элементов blackhat
	MinComponentArea  int     // минимальная площадь компоненты-кандидата
	MinElongation     float64 // минимальная вытянутость компоненты
	MinSkeletonLength float64 // минимальная длина скелета трещины
	MaxWidthStdDev    float64 // максимальный разброс ширины вдоль трещины
	MaxDensity        float64 // максимальная доля переднего плана в маске
	OrientationAspect float64 // порог пропорций для вертикали и горизонтали
	CLAHEClip         float64 // предел контраста CLAHE
	CLAHETile         int     // сторона тайла CLAHE
	CleanupKernel     int     // ядро морфологической чистки

	Severity entity.SeverityThresholds // пороги классификации серьёзности
}

// DefaultParams возвращает пороги по умолчанию.
func DefaultParams() Params {
	return Params{
		ScaleKernels:      []int{7, 15, 25},
		MinComponentArea:  60,
		MinElongation:     2.5,
		MinSkeletonLength: 60,
		MaxWidthStdDev:    4,
		MaxDensity:        0.25,
		OrientationAspect: 1.5,
		CLAHEClip:         2.0,
		CLAHETile:         8,
		CleanupKernel:     3,
		Severity:          entity.DefaultSeverityThresholds(),
	}
}

// Проверка реализации интерфейса
var _ port.CrackAnalyzer = (*CrackPipeline)(nil)
