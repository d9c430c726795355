package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	app "github.com/DavidOG03/crack-analyst/internal/application"
	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я помогаю оценивать трещины на фотографиях стен и бетонных поверхностей.

📸 Отправьте фото поверхности, и я определю, есть ли структурная трещина, измерю её и подскажу, что делать.

📋 Команды:
/check — начать осмотр
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото стены или поверхности
2️⃣ Бот найдёт трещину, измерит длину и ширину
3️⃣ Вы получите вердикт, степень серьёзности и рекомендацию

💡 Рекомендации:
• Снимайте при хорошем освещении
• Держите камеру параллельно поверхности
• Фото должно быть чётким

📋 Команды:
/check — начать осмотр
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото поверхности с трещиной."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для нового осмотра."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото поверхности для осмотра."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую изображение..."
	msgNoCrack         = "✅ Трещины не обнаружены."
	msgNonStructural   = "ℹ️ Найденные следы не похожи на структурную трещину.\nПричина: %s"
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."

	msgCrackReport = `🧱 Обнаружена структурная трещина!

📏 Длина: %.2f px
📐 Ширина: %.2f px
🧭 Ориентация: %s (%s)
⚠️ Серьёзность: %s

🛡 Уровень риска: %s
🛠 Рекомендация: %s
⏱ Срок ремонта: %s
👷 Нужен инженер: %s`
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *app.UserService
	analysis *app.AnalysisService
	log      zerolog.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, analysis *app.AnalysisService, log zerolog.Logger) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", botAPI.Self.UserName).Msg("telegram bot authorized")

	return &Bot{
		api:      botAPI,
		users:    users,
		analysis: analysis,
		log:      log,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID); err != nil {
		b.log.Error().Err(err).Int64("user", msg.From.ID).Msg("get user")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение без команды.
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.users.BeginCheck(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото: скачивает файл, запускает анализ
// и возвращает вердикт вместе с подсвеченным изображением.
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.users.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Telegram присылает несколько размеров, берём самый крупный.
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		b.log.Error().Err(err).Msg("download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return
	}

	result, err := b.analysis.AnalyzePhoto(ctx, imageData)
	if err != nil {
		b.log.Error().Err(err).Msg("analyze photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return
	}

	b.sendMessage(msg.Chat.ID, formatResult(result))

	// Возвращаем снимок с подсветкой, только если есть что подсвечивать.
	if len(result.Overlay) > 0 && result.Status != entity.StatusNoCrack && result.Status != entity.StatusError {
		b.sendPhoto(msg.Chat.ID, result.Overlay)
	}

	b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// formatResult строит текст ответа по результату анализа.
func formatResult(result *entity.AnalysisResult) string {
	switch result.Status {
	case entity.StatusNoCrack:
		return msgNoCrack

	case entity.StatusNonStructural:
		return fmt.Sprintf(msgNonStructural, result.Reason)

	case entity.StatusStructuralCrack:
		m := result.Measurement
		rec := result.Recommendation

		engineer := "нет"
		if rec.EngineerRequired {
			engineer = "да"
		}

		return fmt.Sprintf(msgCrackReport,
			m.LengthPixels, m.WidthPixels,
			m.Orientation, m.Pattern,
			result.Severity,
			rec.RiskLevel, rec.RecommendedAction, rec.EstimatedRepairTime,
			engineer)

	default:
		return msgProcessingError
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}

// sendPhoto отправляет изображение с подсветкой найденных областей
func (b *Bot) sendPhoto(chatID int64, data []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "overlay.jpg", Bytes: data})
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("send photo")
	}
}
