package entity

import "math"

// Status итоговый вердикт анализа изображения
type Status string

const (
	StatusNoCrack         Status = "NO_CRACK"                  // кандидатов не найдено
	StatusNonStructural   Status = "NON_STRUCTURAL_FEATURE"    // найденное не прошло проверку правдоподобия
	StatusStructuralCrack Status = "STRUCTURAL_CRACK_DETECTED" // подтверждённая структурная трещина
	StatusError           Status = "ERROR"                     // изображение не удалось обработать
)

// Orientation ориентация трещины на поверхности
type Orientation string

const (
	OrientationVertical   Orientation = "Vertical"
	OrientationHorizontal Orientation = "Horizontal"
	OrientationDiagonal   Orientation = "Diagonal"
	OrientationIrregular  Orientation = "Irregular"
)

// Pattern возвращает инженерный тип трещины для данной ориентации.
func (o Orientation) Pattern() string {
	switch o {
	case OrientationVertical:
		return "shrinkage/load-induced crack"
	case OrientationHorizontal:
		return "settlement crack"
	case OrientationDiagonal:
		return "shear/structural crack"
	default:
		return "non-structural"
	}
}

// OrientationFor классифицирует ориентацию по сторонам минимального
// охватывающего прямоугольника. Вырожденные стороны дают Irregular.
func OrientationFor(width, height, aspect float64) Orientation {
	switch {
	case width <= 0 || height <= 0:
		return OrientationIrregular
	case height > width*aspect:
		return OrientationVertical
	case width > height*aspect:
		return OrientationHorizontal
	default:
		return OrientationDiagonal
	}
}

// CrackMeasurement геометрия подтверждённой трещины.
// Все величины в пикселях исходного изображения.
type CrackMeasurement struct {
	LengthPixels float64     // длина скелета трещины
	WidthPixels  float64     // средняя ширина
	Orientation  Orientation // ориентация по охватывающему прямоугольнику
	Pattern      string      // инженерный тип трещины
}

// AnalysisResult хранит итог анализа изображения.
// Поля-варианты заполняются конструкторами в зависимости от Status.
type AnalysisResult struct {
	Status         Status
	Reason         string            // причина отказа, только для NON_STRUCTURAL_FEATURE
	Message        string            // текст ошибки, только для ERROR
	Measurement    *CrackMeasurement // только для STRUCTURAL_CRACK_DETECTED
	Severity       Severity          // только для STRUCTURAL_CRACK_DETECTED
	Recommendation *Recommendation   // только для STRUCTURAL_CRACK_DETECTED
	Regions        []CandidateArea   // выжившие области-кандидаты
	Overlay        []byte            // визуализация, пустая только при ошибке декодирования
}

// NewNoCrackResult создаёт результат без найденных трещин.
func NewNoCrackResult(overlay []byte) *AnalysisResult {
	return &AnalysisResult{
		Status:  StatusNoCrack,
		Overlay: overlay,
	}
}

// NewNonStructuralResult создаёт результат для кандидатов, не прошедших проверку.
func NewNonStructuralResult(reason string, regions []CandidateArea, overlay []byte) *AnalysisResult {
	return &AnalysisResult{
		Status:  StatusNonStructural,
		Reason:  reason,
		Regions: regions,
		Overlay: overlay,
	}
}

// NewStructuralCrackResult создаёт результат с подтверждённой трещиной.
func NewStructuralCrackResult(m CrackMeasurement, severity Severity, rec Recommendation, regions []CandidateArea, overlay []byte) *AnalysisResult {
	return &AnalysisResult{
		Status:         StatusStructuralCrack,
		Measurement:    &m,
		Severity:       severity,
		Recommendation: &rec,
		Regions:        regions,
		Overlay:        overlay,
	}
}

// NewErrorResult создаёт результат для изображения, которое не удалось обработать.
func NewErrorResult(message string) *AnalysisResult {
	return &AnalysisResult{
		Status:  StatusError,
		Message: message,
	}
}

// Round2 округляет значение до двух знаков для стабильного вывода.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
