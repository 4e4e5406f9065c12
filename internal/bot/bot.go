package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thais-adelino/projeto-skin-track/internal/gateway"
	"github.com/thais-adelino/projeto-skin-track/internal/quiz"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var skinTypeLabels = map[quiz.SkinType]string{
	quiz.SkinTypeOily:        "Oleosa",
	quiz.SkinTypeCombination: "Mista",
	quiz.SkinTypeNormal:      "Normal",
	quiz.SkinTypeDry:         "Seca",
	quiz.SkinTypeSensitive:   "Sensível",
}

// Bot runs the skin-type quiz over Telegram, one session per chat. Results are
// persisted through the HTTP gateway, exactly like any other quiz frontend.
type Bot struct {
	api     *tgbotapi.BotAPI
	catalog *quiz.Catalog
	gateway *gateway.Client

	mu       sync.Mutex
	sessions map[int64]*quiz.Session
}

func New(token string, catalog *quiz.Catalog, gw *gateway.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		catalog:  catalog,
		gateway:  gw,
		sessions: make(map[int64]*quiz.Session),
	}, nil
}

func (b *Bot) Start() {
	log.Printf("telegram bot authorized as %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			switch update.Message.Command() {
			case "start", "quiz":
				b.startQuiz(update.Message.Chat.ID, update.Message.From.FirstName)
			case "stats":
				b.sendStatistics(update.Message.Chat.ID)
			default:
				b.sendMessage(update.Message.Chat.ID, "Use /start para descobrir seu tipo de pele ou /stats para ver as estatísticas.")
			}
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("error answering callback: %v", err)
	}

	switch {
	case strings.HasPrefix(data, "ans_"):
		b.handleAnswer(chatID, data)
	case data == "restart":
		b.startQuiz(chatID, callback.From.FirstName)
	case data == "stats":
		b.sendStatistics(chatID)
	}
}

func (b *Bot) startQuiz(chatID int64, firstName string) {
	session := quiz.NewSession(b.catalog, firstName, b.gateway)

	b.mu.Lock()
	b.sessions[chatID] = session
	b.mu.Unlock()

	greeting := session.Messages()[0]
	b.sendMessage(chatID, greeting.Text)
	b.sendQuestion(chatID, session)
}

func (b *Bot) sendQuestion(chatID int64, session *quiz.Session) {
	q, ok := session.CurrentQuestion()
	if !ok {
		return
	}

	answered := len(session.Answers())
	text := fmt.Sprintf("❓ Pergunta %d/%d\n\n%s", answered+1, b.catalog.Len(), q.Prompt)
	msg := tgbotapi.NewMessage(chatID, text)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		callbackData := fmt.Sprintf("ans_%d_%d", answered, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, callbackData),
		))
	}
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("error sending question: %v", err)
	}
}

func (b *Bot) handleAnswer(chatID int64, data string) {
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return
	}
	questionIndex, _ := strconv.Atoi(parts[1])
	optionIndex, _ := strconv.Atoi(parts[2])

	b.mu.Lock()
	session, exists := b.sessions[chatID]
	b.mu.Unlock()
	if !exists {
		b.sendMessage(chatID, "Use /start para começar o quiz.")
		return
	}

	// Stale taps on an earlier question's keyboard are ignored.
	if questionIndex != len(session.Answers()) {
		return
	}

	q, ok := session.CurrentQuestion()
	if !ok || optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}

	if err := session.SubmitAnswer(q.Options[optionIndex]); err != nil {
		log.Printf("error submitting answer: %v", err)
		return
	}

	if session.IsFinished() {
		b.sendResult(chatID, session)
		return
	}
	b.sendQuestion(chatID, session)
}

func (b *Bot) sendResult(chatID int64, session *quiz.Session) {
	result := session.Result()
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✨ Seu tipo de pele é: %s\n\n", skinTypeLabels[result.SkinType])
	sb.WriteString("Pontuação por categoria:\n")
	for _, st := range quiz.SkinTypes {
		fmt.Fprintf(&sb, "• %s: %d\n", skinTypeLabels[st], result.Characteristics[st])
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refazer o quiz", "restart"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Estatísticas", "stats"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("error sending result: %v", err)
	}
}

func (b *Bot) sendStatistics(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := b.gateway.FetchStatistics(ctx)
	if err != nil {
		log.Printf("error fetching statistics: %v", err)
		b.sendMessage(chatID, "Não foi possível carregar as estatísticas. Tente novamente.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Estatísticas da comunidade (%d participantes)\n\n", stats.Total)
	for _, row := range stats.Statistics {
		label := skinTypeLabels[quiz.SkinType(row.SkinType)]
		if label == "" {
			label = row.SkinType
		}
		fmt.Fprintf(&sb, "• %s: %d (%.2f%%)\n", label, row.Count, row.Percentage)
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("error sending message: %v", err)
	}
}
