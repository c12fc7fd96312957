// Package telegram adapts the Telegram Bot API to gateway.Gateway and feeds
// long-polled updates to the engine.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
	"github.com/dmitrijs2005/teamfinder/internal/logging"
)

type Options struct {
	Token string
	// Endpoint overrides the Bot API URL template; empty means tgbotapi.APIEndpoint.
	Endpoint    string
	PollTimeout time.Duration
	// HandleTimeout bounds the handling of a single update.
	HandleTimeout time.Duration
}

type Client struct {
	api    *tgbotapi.BotAPI
	opts   Options
	logger logging.Logger
}

// New connects to the Bot API and verifies the token.
func New(opts Options, l logging.Logger) (*Client, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = tgbotapi.APIEndpoint
	}
	if opts.HandleTimeout <= 0 {
		opts.HandleTimeout = 30 * time.Second
	}

	logger := l.With("module", "telegram")
	if err := tgbotapi.SetLogger(botLogger{logger}); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(opts.Token, opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("error connecting to bot api: %w", err)
	}
	return &Client{api: api, opts: opts, logger: logger}, nil
}

// Username is the bot's own username.
func (c *Client) Username() string { return c.api.Self.UserName }

func (c *Client) Send(ctx context.Context, to gateway.Target, m gateway.Message) (gateway.Ref, error) {
	if err := ctx.Err(); err != nil {
		return gateway.Ref{}, err
	}
	sent, err := c.api.Send(newMessage(to, m))
	if err != nil {
		return gateway.Ref{}, fmt.Errorf("send to %s: %w", to, err)
	}
	return gateway.Ref{Chat: to, MessageID: int64(sent.MessageID)}, nil
}

func (c *Client) EditText(ctx context.Context, ref gateway.Ref, m gateway.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := tgbotapi.EditMessageTextConfig{BaseEdit: baseEdit(ref), Text: m.Text}
	if m.HTML {
		cfg.ParseMode = tgbotapi.ModeHTML
	}
	if len(m.Buttons) > 0 {
		kb := inlineMarkup(m.Buttons)
		cfg.ReplyMarkup = &kb
	}
	return unmodified(c.request(cfg, "edit"))
}

func (c *Client) EditButtons(ctx context.Context, ref gateway.Ref, kb gateway.Keyboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	markup := inlineMarkup(kb)
	cfg := tgbotapi.EditMessageReplyMarkupConfig{BaseEdit: baseEdit(ref)}
	cfg.ReplyMarkup = &markup
	return unmodified(c.request(cfg, "edit buttons"))
}

func (c *Client) Delete(ctx context.Context, ref gateway.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.request(tgbotapi.DeleteMessageConfig{
		ChannelUsername: ref.Chat.Username,
		ChatID:          ref.Chat.ChatID,
		MessageID:       int(ref.MessageID),
	}, "delete")
}

func (c *Client) Answer(ctx context.Context, callbackID, text string, alert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = alert
	return c.request(cfg, "answer")
}

func (c *Client) request(cfg tgbotapi.Chattable, op string) error {
	if _, err := c.api.Request(cfg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// unmodified treats an edit that changes nothing as success.
func unmodified(err error) error {
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	return err
}

func newMessage(to gateway.Target, m gateway.Message) tgbotapi.MessageConfig {
	var cfg tgbotapi.MessageConfig
	if to.Username != "" {
		cfg = tgbotapi.NewMessageToChannel(to.Username, m.Text)
	} else {
		cfg = tgbotapi.NewMessage(to.ChatID, m.Text)
	}
	if m.HTML {
		cfg.ParseMode = tgbotapi.ModeHTML
	}

	switch {
	case len(m.Buttons) > 0:
		cfg.ReplyMarkup = inlineMarkup(m.Buttons)
	case len(m.Reply) > 0:
		cfg.ReplyMarkup = replyMarkup(m.Reply)
	case m.RemoveReply:
		cfg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}
	return cfg
}

func baseEdit(ref gateway.Ref) tgbotapi.BaseEdit {
	return tgbotapi.BaseEdit{
		ChatID:          ref.Chat.ChatID,
		ChannelUsername: ref.Chat.Username,
		MessageID:       int(ref.MessageID),
	}
}

func inlineMarkup(kb gateway.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func replyMarkup(labels [][]string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(labels))
	for _, row := range labels {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, l := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(l))
		}
		rows = append(rows, buttons)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// botLogger routes the library's own log lines into the structured logger.
type botLogger struct {
	l logging.Logger
}

func (b botLogger) Println(v ...any) {
	b.l.Warn(context.Background(), strings.TrimSpace(fmt.Sprintln(v...)))
}

func (b botLogger) Printf(format string, v ...any) {
	b.l.Warn(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}
