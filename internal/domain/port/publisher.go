package port

import "github.com/DavidOG03/crack-analyst/internal/domain/entity"

// ResultPublisher интерфейс рассылки результатов анализа наблюдателям
type ResultPublisher interface {
	// Publish отправляет результат подключённым наблюдателям без блокировки.
	Publish(result *entity.AnalysisResult)
}
