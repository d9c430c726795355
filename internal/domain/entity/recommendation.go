package entity

// Recommendation инженерная рекомендация по результату анализа
type Recommendation struct {
	RiskLevel           string // уровень риска
	RecommendedAction   string // рекомендуемое действие
	EstimatedRepairTime string // ожидаемый срок ремонта
	EngineerRequired    bool   // нужен ли инженер-строитель
}

// RecommendationFor возвращает рекомендацию для степени серьёзности.
// Неизвестная степень трактуется как критическая.
func RecommendationFor(s Severity) Recommendation {
	switch s {
	case SeverityLow:
		return Recommendation{
			RiskLevel:           "Low",
			RecommendedAction:   "Seal crack and monitor",
			EstimatedRepairTime: "1–2 days",
			EngineerRequired:    false,
		}
	case SeverityModerate:
		return Recommendation{
			RiskLevel:           "Medium",
			RecommendedAction:   "Epoxy injection or surface repair",
			EstimatedRepairTime: "3–7 days",
			EngineerRequired:    true,
		}
	case SeveritySevere:
		return Recommendation{
			RiskLevel:           "High",
			RecommendedAction:   "Structural strengthening required",
			EstimatedRepairTime: "2–4 weeks",
			EngineerRequired:    true,
		}
	default:
		return Recommendation{
			RiskLevel:           "Critical",
			RecommendedAction:   "Immediate evacuation and full structural assessment",
			EstimatedRepairTime: "1–3 months",
			EngineerRequired:    true,
		}
	}
}
