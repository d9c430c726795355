package entity

// Severity степень серьёзности трещины, упорядочена по возрастанию опасности
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeveritySevere
	SeverityCritical
)

// String возвращает имя степени; значения вне диапазона считаются критическими.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	default:
		return "Critical"
	}
}

// SeverityThresholds пороги классификации серьёзности в пикселях
type SeverityThresholds struct {
	LowMaxWidth       float64 // ширина ниже порога для Low
	LowMaxLength      float64 // длина ниже порога для Low
	ModerateMaxWidth  float64 // ширина ниже порога для Moderate
	ModerateMaxLength float64 // длина ниже порога для Moderate
	SevereMaxWidth    float64 // ширина ниже порога для Severe
}

// DefaultSeverityThresholds возвращает пороги по умолчанию.
func DefaultSeverityThresholds() SeverityThresholds {
	return SeverityThresholds{
		LowMaxWidth:       1.5,
		LowMaxLength:      80,
		ModerateMaxWidth:  3,
		ModerateMaxLength: 200,
		SevereMaxWidth:    6,
	}
}

// Classify сопоставляет ширину и длину трещины со степенью серьёзности.
// Проверки идут по возрастанию, сравнение строгое: граничное значение
// попадает в более тяжёлую степень.
func (t SeverityThresholds) Classify(width, length float64) Severity {
	switch {
	case width < t.LowMaxWidth && length < t.LowMaxLength:
		return SeverityLow
	case width < t.ModerateMaxWidth && length < t.ModerateMaxLength:
		return SeverityModerate
	case width < t.SevereMaxWidth:
		return SeveritySevere
	default:
		return SeverityCritical
	}
}
