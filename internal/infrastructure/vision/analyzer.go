//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"

	"gocv.io/x/gocv"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// CrackPipeline детерминированный конвейер анализа трещин поверх OpenCV.
// Состояние между запросами не сохраняется, один экземпляр можно
// использовать из нескольких горутин.
type CrackPipeline struct {
	Params Params
}

// NewCrackPipeline создаёт конвейер с заданными порогами.
func NewCrackPipeline(p Params) *CrackPipeline {
	return &CrackPipeline{Params: p}
}

// Analyze прогоняет изображение через стадии конвейера: предобработка,
// поиск кандидатов, структурная проверка, измерение, классификация.
// Нечитаемое изображение даёт статус ERROR; паника внутри стадии также
// деградирует в ERROR, а не роняет запрос. Отмена контекста проверяется
// между стадиями.
func (p *CrackPipeline) Analyze(ctx context.Context, imageData []byte) (result *entity.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = entity.NewErrorResult("analysis failed")
			err = nil
		}
	}()

	mat, derr := decodeToMat(imageData)
	if derr != nil {
		return entity.NewErrorResult("invalid image"), nil
	}
	defer mat.Close()

	gray := p.preprocess(mat)
	defer gray.Close()

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}

	mask, regions := p.detectCandidates(gray)
	defer mask.Close()

	overlay := p.renderOverlay(mat, mask, regions, imageData)

	if len(regions) == 0 {
		return entity.NewNoCrackResult(overlay), nil
	}

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}

	st := p.maskStatsOf(mask)
	if reason, ok := p.Params.validate(st); !ok {
		return entity.NewNonStructuralResult(reason, regions, overlay), nil
	}

	m := p.measure(mask, st)
	severity := p.Params.Severity.Classify(m.WidthPixels, m.LengthPixels)
	rec := entity.RecommendationFor(severity)

	return entity.NewStructuralCrackResult(m, severity, rec, regions, overlay), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
