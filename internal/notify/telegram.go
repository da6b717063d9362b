package notify

import (
	"context"
	"fmt"
	"strings"

	"bellavista/internal/contact"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts each new reservation request into the staff chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) NotifySubmission(ctx context.Context, sub *contact.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatSubmission(sub))
	msg.DisableWebPagePreview = true

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// FormatSubmission renders the plain-text staff message. Empty optional
// fields are left out.
func FormatSubmission(sub *contact.Submission) string {
	var b strings.Builder

	b.WriteString("New reservation request\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.FullName())
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)

	optional := []struct{ label, value string }{
		{"Phone", sub.Phone},
		{"Date", sub.ReservationDate},
		{"Party size", string(sub.PartySize)},
		{"Requests", sub.SpecialRequests},
	}
	for _, f := range optional {
		if f.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
		}
	}

	fmt.Fprintf(&b, "Ref: %s", sub.ID)
	return b.String()
}
