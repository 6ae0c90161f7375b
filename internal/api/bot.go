package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "safeai-bot/internal/application"
	"safeai-bot/internal/container"
	"safeai-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для оценки трещин в строительных конструкциях.

📸 Отправьте фото стены, перекрытия или фасада, и я оценю уровень риска.

📋 Команды:
/check — начать проверку конструкции
/report — экспертное заключение по последней проверке
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото конструкции
2️⃣ Бот найдёт трещины и оценит их плотность
3️⃣ Вы получите вывод, показатели и фото с подсветкой трещин

💡 Рекомендации:
• Снимайте при хорошем освещении
• Держите камеру параллельно поверхности
• Фото должно быть чётким

⚠️ Оценка ориентировочная и не заменяет обследование специалистом.

📋 Команды:
/check — начать проверку
/report — экспертное заключение
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото конструкции для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото конструкции для проверки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую изображение..."
	msgBusy            = "⏳ Предыдущее фото ещё обрабатывается, подождите."
	msgNoReport        = "📭 Проверок ещё не было. Отправьте /check."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgSaveError       = "⚠️ Не удалось сохранить результат. Попробуйте позже."
	msgInternalError   = "⚠️ Внутренняя ошибка. Попробуйте позже."
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	inspection *app.InspectionService
	logger     *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:        api,
		users:      c.UserService,
		inspection: c.InspectionService,
		logger:     logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	// Сообщения обрабатываются параллельно, долгий анализ не блокирует чат.
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer wg.Done()
				b.handleMessage(ctx, msg)
			}(update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("get user", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		if _, err := b.users.BeginCheck(ctx, user.ID, chatID); err != nil {
			b.logger.Error("begin check", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		if _, err := b.users.Cancel(ctx, user.ID, chatID); err != nil {
			b.logger.Error("cancel", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		b.sendMessage(chatID, msgCancelled)

	case "report":
		b.sendReport(ctx, user, chatID)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID
	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	data, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.logger.Error("download photo", zap.String("file_id", photo.FileID), zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	out, err := b.inspection.ProcessPhoto(ctx, user.ID, chatID, photoName(photo.FileUniqueID), data)
	if err != nil {
		b.logger.Warn("inspection failed", zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, errorMessage(err))
		return
	}

	if a := out.Report.Artifact; a != nil {
		p := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: a.Name, Bytes: a.Data})
		p.Caption = tierTitle(out.Report.Tier)
		if _, err := b.api.Send(p); err != nil {
			b.logger.Error("send overlay", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
	b.sendMessage(chatID, formatResult(out.Report))
}

func (b *Bot) sendReport(ctx context.Context, user *entity.User, chatID int64) {
	record, err := b.inspection.LastReport(ctx, user.ID, chatID)
	if errors.Is(err, app.ErrNoAnalysis) {
		b.sendMessage(chatID, msgNoReport)
		return
	}
	if err != nil {
		b.logger.Error("last report", zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, msgInternalError)
		return
	}

	text, err := formatExpert(record)
	if err != nil {
		b.logger.Error("format report", zap.String("analysis_id", record.ID), zap.Error(err))
		b.sendMessage(chatID, msgInternalError)
		return
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.users.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		b.logger.Error("set state", zap.Int64("user_id", user.ID), zap.Error(err))
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

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
		b.logger.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
