// Package telegram entrega comunicaciones de tipo telegram con telegram-bot-api.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

var _ ports.ChatSender = (*BotSender)(nil)

// BotSender crea el cliente del bot en el primer envío (NewBotAPI consulta getMe).
type BotSender struct {
	token string
	log   zerolog.Logger

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

// NewBotSender crea el sender. Con token vacío todos los envíos devuelven domain.ErrChannelDisabled.
func NewBotSender(token string, log zerolog.Logger) *BotSender {
	return &BotSender{token: token, log: log}
}

// SendChat envía text al chat indicado. chatID es el ID numérico del chat.
func (s *BotSender) SendChat(ctx context.Context, chatID, text string) error {
	if s.token == "" {
		return domain.ErrChannelDisabled
	}
	id, err := ParseChatID(chatID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	bot, err := s.client()
	if err != nil {
		return err
	}
	if _, err := bot.Send(tgbotapi.NewMessage(id, text)); err != nil {
		return fmt.Errorf("telegram: enviar a %d: %w", id, err)
	}
	s.log.Info().Int64("chat_id", id).Msg("mensaje de telegram enviado")
	return nil
}

func (s *BotSender) client() (*tgbotapi.BotAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bot != nil {
		return s.bot, nil
	}
	bot, err := tgbotapi.NewBotAPI(s.token)
	if err != nil {
		return nil, fmt.Errorf("telegram: iniciar bot: %w", err)
	}
	s.bot = bot
	return bot, nil
}

// ParseChatID valida el destinatario de una comunicación de Telegram.
func ParseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: chat ID %q", domain.ErrInvalidInput, chatID)
	}
	return id, nil
}
