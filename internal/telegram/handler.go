// Package telegram conecta el motor de analisis con go-telegram/bot: comandos,
// teclado inline y observacion pasiva de mensajes de texto.
package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/render"
	"behavior-analytics/internal/service"
)

const storageErrorMsg = "Sorry, I can't reach your history right now. Please try again later."

// sender es el subconjunto del cliente de Telegram que usan los handlers.
type sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

// Handler agrupa los handlers del bot y sus dependencias.
type Handler struct {
	logger  *zap.Logger
	users   *service.UserService
	ingest  *service.IngestService
	reports *service.ReportService
}

func NewHandler(
	logger *zap.Logger,
	users *service.UserService,
	ingest *service.IngestService,
	reports *service.ReportService,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger, users: users, ingest: ingest, reports: reports}
}

// Register asocia comandos y callbacks al bot.
func (h *Handler) Register(b *tgbot.Bot) {
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "start", tgbot.MatchTypeCommandStartOnly, adapt(h.handleStart))
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "help", tgbot.MatchTypeCommandStartOnly, adapt(h.handleHelp))
	for cmd, kind := range commandReports {
		b.RegisterHandler(tgbot.HandlerTypeMessageText, cmd, tgbot.MatchTypeCommandStartOnly,
			adapt(func(ctx context.Context, s sender, u *models.Update) { h.handleReportCommand(ctx, s, u, kind) }))
	}
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "", tgbot.MatchTypePrefix, adapt(h.handleCallback))
}

// Default es el handler de mensajes que no coinciden con ningun comando.
func (h *Handler) Default(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	h.handleText(ctx, b, update)
}

var commandReports = map[string]domain.ReportKind{
	"mood":        domain.ReportMood,
	"personality": domain.ReportPersonality,
	"report":      domain.ReportComprehensive,
	"stats":       domain.ReportStats,
}

func adapt(fn func(context.Context, sender, *models.Update)) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		fn(ctx, b, update)
	}
}

func (h *Handler) handleStart(ctx context.Context, s sender, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	if _, err := h.users.Register(ctx, registerInput(msg.From)); err != nil {
		h.logger.Error("register user failed", zap.Error(err), zap.Int64("user_id", msg.From.ID))
	}
	h.send(ctx, s, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        render.Welcome(msg.From.FirstName),
		ReplyMarkup: welcomeKeyboard(),
	})
}

func (h *Handler) handleHelp(ctx context.Context, s sender, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.send(ctx, s, &tgbot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      render.Help(),
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) handleReportCommand(ctx context.Context, s sender, update *models.Update, kind domain.ReportKind) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	h.sendReport(ctx, s, msg.Chat.ID, msg.From.ID, kind)
}

// handleCallback responde a los botones de bienvenida como si fueran comandos.
func (h *Handler) handleCallback(ctx context.Context, s sender, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	if _, err := s.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{CallbackQueryID: cq.ID}); err != nil {
		h.logger.Warn("answer callback failed", zap.Error(err))
	}

	kind, ok := callbackReports[cq.Data]
	if !ok || cq.Message.Message == nil {
		h.logger.Debug("ignoring callback", zap.String("data", cq.Data))
		return
	}
	h.sendReport(ctx, s, cq.Message.Message.Chat.ID, cq.From.ID, kind)
}

var callbackReports = map[string]domain.ReportKind{
	"mood":        domain.ReportMood,
	"personality": domain.ReportPersonality,
	"report":      domain.ReportComprehensive,
}

// handleText observa cada mensaje de texto y solo responde con feedback.
func (h *Handler) handleText(ctx context.Context, s sender, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}

	res, err := h.ingest.Ingest(ctx, service.IngestInput{
		UserID:      userKey(msg.From.ID),
		Username:    msg.From.Username,
		DisplayName: msg.From.FirstName,
		Text:        msg.Text,
	})
	switch {
	case errors.Is(err, service.ErrRateLimited), errors.Is(err, service.ErrIngestInvalidInput):
		h.logger.Debug("message skipped", zap.Error(err), zap.Int64("user_id", msg.From.ID))
		return
	case err != nil:
		h.logger.Error("ingest message failed", zap.Error(err), zap.Int64("user_id", msg.From.ID))
		return
	}

	if res.Feedback != nil {
		h.send(ctx, s, &tgbot.SendMessageParams{ChatID: msg.Chat.ID, Text: render.Feedback(*res.Feedback)})
	}
}

func (h *Handler) sendReport(ctx context.Context, s sender, chatID, userID int64, kind domain.ReportKind) {
	text, markdown := h.reportText(ctx, userKey(userID), kind)
	params := &tgbot.SendMessageParams{ChatID: chatID, Text: text}
	if markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}
	h.send(ctx, s, params)
}

// reportText arma el texto del reporte. El segundo valor indica si el texto
// lleva formato Markdown.
func (h *Handler) reportText(ctx context.Context, userID string, kind domain.ReportKind) (string, bool) {
	var (
		text string
		err  error
	)
	switch kind {
	case domain.ReportMood:
		var r domain.MoodReport
		if r, err = h.reports.Mood(ctx, userID); err == nil {
			text = render.Mood(r)
		}
	case domain.ReportPersonality:
		var r domain.PersonalityReport
		if r, err = h.reports.Personality(ctx, userID); err == nil {
			text = render.Personality(r)
		}
	case domain.ReportComprehensive:
		var r domain.ComprehensiveReport
		if r, err = h.reports.Comprehensive(ctx, userID); err == nil {
			text = render.Comprehensive(r)
		}
	case domain.ReportStats:
		var r domain.StatsReport
		if r, err = h.reports.Stats(ctx, userID); err == nil {
			text = render.Stats(r)
		}
	}
	if err == nil {
		return text, true
	}
	if msg, ok := render.InsufficientData(err); ok {
		return msg, false
	}
	h.logger.Error("build report failed", zap.Error(err), zap.String("report", string(kind)), zap.String("user_id", userID))
	return storageErrorMsg, false
}

func (h *Handler) send(ctx context.Context, s sender, params *tgbot.SendMessageParams) {
	if _, err := s.SendMessage(ctx, params); err != nil {
		h.logger.Error("send message failed", zap.Error(err), zap.Any("chat_id", params.ChatID))
	}
}

func welcomeKeyboard() *models.InlineKeyboardMarkup {
	buttons := render.WelcomeButtons()
	rows := make([][]models.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []models.InlineKeyboardButton{{Text: btn.Text, CallbackData: btn.Data}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func registerInput(u *models.User) service.RegisterUserInput {
	return service.RegisterUserInput{
		UserID:      userKey(u.ID),
		Username:    u.Username,
		DisplayName: u.FirstName,
	}
}

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
