package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
)

// Handler consumes decoded updates.
type Handler interface {
	Handle(ctx context.Context, u gateway.Update)
}

// Run long-polls for updates until ctx is done and hands each one to h on
// its own goroutine. Handlers already running are allowed to finish.
func (c *Client) Run(ctx context.Context, h Handler) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = int(c.opts.PollTimeout.Seconds())
	cfg.AllowedUpdates = []string{"message", "callback_query"}

	updates := c.api.GetUpdatesChan(cfg)

	var wg sync.WaitGroup
	defer wg.Wait()

	c.logger.Info(ctx, "Starting long polling", "bot", c.Username())

	for {
		select {
		case <-ctx.Done():
			c.logger.Info(ctx, "Stopping long polling...")
			c.api.StopReceivingUpdates()
			return nil

		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			u, ok := convert(upd)
			if !ok {
				c.logger.Debug(ctx, "skipping update", "update_id", upd.UpdateID)
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.HandleTimeout)
				defer cancel()
				h.Handle(hctx, u)
			}()
		}
	}
}

// convert decodes text messages and button presses; everything else is skipped.
func convert(upd tgbotapi.Update) (gateway.Update, bool) {
	switch {
	case upd.CallbackQuery != nil:
		q := upd.CallbackQuery
		if q.From == nil || q.Message == nil || q.Message.Chat == nil {
			return gateway.Update{}, false
		}
		return gateway.Update{
			UserID:     q.From.ID,
			Username:   q.From.UserName,
			ChatID:     q.Message.Chat.ID,
			Private:    q.Message.Chat.IsPrivate(),
			MessageID:  int64(q.Message.MessageID),
			CallbackID: q.ID,
			Action:     action.Parse(q.Data),
		}, true

	case upd.Message != nil:
		m := upd.Message
		if m.From == nil || m.Chat == nil || m.Text == "" {
			return gateway.Update{}, false
		}
		return gateway.Update{
			UserID:    m.From.ID,
			Username:  m.From.UserName,
			ChatID:    m.Chat.ID,
			Private:   m.Chat.IsPrivate(),
			MessageID: int64(m.MessageID),
			Action:    action.FromMessage(m.Text),
		}, true
	}
	return gateway.Update{}, false
}
