package api

import (
	"encoding/base64"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// CrackAnalysisDTO геометрия трещины в ответе API
type CrackAnalysisDTO struct {
	LengthPixels float64 `json:"length_pixels"`
	WidthPixels  float64 `json:"width_pixels"`
	Orientation  string  `json:"orientation"`
	Pattern      string  `json:"pattern"`
}

// RecommendationDTO инженерная рекомендация в ответе API
type RecommendationDTO struct {
	RiskLevel           string `json:"risk_level"`
	RecommendedAction   string `json:"recommended_action"`
	EstimatedRepairTime string `json:"estimated_repair_time"`
	EngineerRequired    bool   `json:"engineer_required"`
}

// AnalysisResponse сериализованный итог анализа. Поля-варианты присутствуют
// только при своём статусе, поле с визуализацией присутствует всегда.
type AnalysisResponse struct {
	Status             string             `json:"status"`
	Reason             string             `json:"reason,omitempty"`
	Message            string             `json:"message,omitempty"`
	CrackAnalysis      *CrackAnalysisDTO  `json:"crack_analysis,omitempty"`
	Severity           string             `json:"severity,omitempty"`
	Recommendation     *RecommendationDTO `json:"engineering_recommendation,omitempty"`
	OverlayImageBase64 string             `json:"overlay_image_base64"`
}

// NewAnalysisResponse преобразует доменный результат в ответ API.
func NewAnalysisResponse(result *entity.AnalysisResult) AnalysisResponse {
	resp := AnalysisResponse{
		Status:             string(result.Status),
		Reason:             result.Reason,
		Message:            result.Message,
		OverlayImageBase64: base64.StdEncoding.EncodeToString(result.Overlay),
	}

	if result.Status != entity.StatusStructuralCrack {
		return resp
	}

	resp.Severity = result.Severity.String()
	if result.Measurement != nil {
		resp.CrackAnalysis = &CrackAnalysisDTO{
			LengthPixels: result.Measurement.LengthPixels,
			WidthPixels:  result.Measurement.WidthPixels,
			Orientation:  string(result.Measurement.Orientation),
			Pattern:      result.Measurement.Pattern,
		}
	}
	if result.Recommendation != nil {
		resp.Recommendation = &RecommendationDTO{
			RiskLevel:           result.Recommendation.RiskLevel,
			RecommendedAction:   result.Recommendation.RecommendedAction,
			EstimatedRepairTime: result.Recommendation.EstimatedRepairTime,
			EngineerRequired:    result.Recommendation.EngineerRequired,
		}
	}

	return resp
}
