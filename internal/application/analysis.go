package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
	"github.com/DavidOG03/crack-analyst/internal/domain/port"
)

// AnalysisService управляет анализом фотографий и рассылкой результатов.
type AnalysisService struct {
	analyzer  port.CrackAnalyzer
	publisher port.ResultPublisher
	log       zerolog.Logger
}

// NewAnalysisService создаёт сервис анализа. Publisher необязателен.
func NewAnalysisService(analyzer port.CrackAnalyzer, publisher port.ResultPublisher, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		analyzer:  analyzer,
		publisher: publisher,
		log:       log,
	}
}

// AnalyzePhoto запускает конвейер и раздаёт результат наблюдателям.
func (s *AnalysisService) AnalyzePhoto(ctx context.Context, photo []byte) (*entity.AnalysisResult, error) {
	if s.analyzer == nil {
		return nil, errors.New("analyzer is not configured")
	}

	result, err := s.analyzer.Analyze(ctx, photo)
	if err != nil {
		return nil, err
	}

	event := s.log.Info().
		Str("status", string(result.Status)).
		Int("regions", len(result.Regions))
	if result.Status == entity.StatusStructuralCrack {
		event = event.Str("severity", result.Severity.String())
	}
	event.Msg("analysis completed")

	if s.publisher != nil {
		s.publisher.Publish(result)
	}

	return result, nil
}
