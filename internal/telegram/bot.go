package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

var ErrMissingToken = errors.New("telegram token is required")

// NewBot crea el cliente de Telegram con los handlers registrados y los
// reportes de errores y debug enviados a zap.
func NewBot(token string, logger *zap.Logger, h *Handler) (*tgbot.Bot, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sugar := logger.Sugar()

	b, err := tgbot.New(token,
		tgbot.WithMiddlewares(updateLogger(logger)),
		tgbot.WithDefaultHandler(h.Default),
		tgbot.WithErrorsHandler(func(err error) {
			logger.Error("telegram bot error", zap.Error(err))
		}),
		tgbot.WithDebugHandler(func(format string, args ...any) {
			sugar.Debugf(format, args...)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	h.Register(b)
	return b, nil
}

// Run bloquea recibiendo updates hasta que ctx se cancela.
func Run(ctx context.Context, b *tgbot.Bot, logger *zap.Logger) {
	logger.Info("telegram bot listening")
	b.Start(ctx)
	logger.Info("telegram bot stopped")
}

// updateLogger registra tipo, chat y duracion de cada update procesado.
func updateLogger(logger *zap.Logger) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			start := time.Now()
			next(ctx, b, update)

			fields := []zap.Field{zap.Int64("update_id", update.ID), zap.Duration("latency", time.Since(start))}
			switch {
			case update.Message != nil:
				fields = append(fields, zap.String("type", "message"), zap.Int64("chat_id", update.Message.Chat.ID))
			case update.CallbackQuery != nil:
				fields = append(fields, zap.String("type", "callback"), zap.String("data", update.CallbackQuery.Data))
			default:
				fields = append(fields, zap.String("type", "other"))
			}
			logger.Debug("update handled", fields...)
		}
	}
}
