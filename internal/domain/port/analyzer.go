package port

import (
	"context"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// CrackAnalyzer интерфейс анализатора трещин
type CrackAnalyzer interface {
	// Analyze прогоняет изображение через конвейер и возвращает вердикт.
	// Нечитаемое изображение даёт результат со статусом ERROR, а не ошибку;
	// ошибка возвращается только при сбое инфраструктуры или отмене контекста.
	Analyze(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error)
}
