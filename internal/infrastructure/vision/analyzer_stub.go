//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// CrackPipeline заглушка конвейера для сборки без OpenCV.
type CrackPipeline struct {
	Params Params
}

// NewCrackPipeline создаёт конвейер-заглушку (без OpenCV).
func NewCrackPipeline(p Params) *CrackPipeline {
	return &CrackPipeline{Params: p}
}

// Analyze возвращает ошибку, если сборка без тега gocv.
func (p *CrackPipeline) Analyze(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}
