// Package engine runs the conversational workflows: the application form in
// private chats and moderation in the moderator chat. Every inbound update is
// handled under the sender's session lock, routed through explicit
// state/action transition tables and answered through the gateway.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
	"github.com/dmitrijs2005/teamfinder/internal/bot/metrics"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/ratelimit"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
	"github.com/dmitrijs2005/teamfinder/internal/common"
	"github.com/dmitrijs2005/teamfinder/internal/logging"
)

type UserService interface {
	Touch(ctx context.Context, telegramID int64, username string) (*models.User, error)
	IsOwner(telegramID int64) bool
	IsModerator(ctx context.Context, telegramID int64) (bool, error)
	Get(ctx context.Context, telegramID int64) (*models.User, error)
	Find(ctx context.Context, identifier string) (*models.User, error)
	SetModerator(ctx context.Context, telegramID int64, isModerator bool) error
	Moderators(ctx context.Context) ([]*models.User, error)
}

type ApplicationService interface {
	Latest(ctx context.Context, telegramID int64) (*models.Application, error)
	Active(ctx context.Context, telegramID int64) (*models.Application, error)
	Submit(ctx context.Context, telegramID int64, username string, p models.Profile) (*models.Application, error)
	Approve(ctx context.Context, id int64, moderatorTelegramID int64) (*models.Application, error)
	SetPublishReference(ctx context.Context, id int64, ref int64) error
	Get(ctx context.Context, id int64) (*models.Application, error)
	Pending(ctx context.Context) ([]*models.Application, error)
	Delete(ctx context.Context, id int64) error
	Owner(ctx context.Context, app *models.Application) (*models.User, error)
}

// Options are the engine's deployment settings.
type Options struct {
	ModeratorChatID int64
	// PublicChannel receives approved posts; zero disables publishing.
	PublicChannel gateway.Target
	// OwnerID receives fatal inconsistency alerts.
	OwnerID int64
	Limits  config.Limits
}

func OptionsFromConfig(c *config.Config) Options {
	return Options{
		ModeratorChatID: c.ModeratorChatID,
		PublicChannel:   gateway.ParseTarget(c.PublicChannel),
		OwnerID:         c.OwnerID,
		Limits:          c.Limits,
	}
}

type Engine struct {
	opts     Options
	users    UserService
	apps     ApplicationService
	sessions session.Store
	gw       gateway.Gateway
	limiter  *ratelimit.Limiter
	logger   logging.Logger
}

func New(opts Options, us UserService, as ApplicationService, store session.Store, gw gateway.Gateway,
	limiter *ratelimit.Limiter, l logging.Logger) *Engine {
	return &Engine{
		opts:     opts,
		users:    us,
		apps:     as,
		sessions: store,
		gw:       gw,
		limiter:  limiter,
		logger:   l.With("module", "engine"),
	}
}

// handler carries the state of one update through the steps.
type handler struct {
	*Engine
	log      logging.Logger
	u        gateway.Update
	key      session.Key
	modChat  bool
	answered bool
}

// Handle processes one update. It is safe to call concurrently; updates from
// the same user in the same chat are serialised.
func (e *Engine) Handle(ctx context.Context, u gateway.Update) {
	start := time.Now()
	kind := "message"
	if u.IsCallback() {
		kind = "callback"
	}

	h := &handler{
		Engine:  e,
		log:     e.logger.With("update_id", uuid.NewString(), "user_id", u.UserID, "chat_id", u.ChatID),
		u:       u,
		key:     session.Key{ChatID: u.ChatID, UserID: u.UserID},
		modChat: e.opts.ModeratorChatID != 0 && u.ChatID == e.opts.ModeratorChatID,
	}

	if !e.limiter.Allow(u.UserID) {
		h.log.Warn(ctx, "rate limited")
		h.alert(ctx, msgTooFast)
		metrics.RecordUpdate(kind, metrics.OutcomeRateLimited, time.Since(start))
		return
	}

	unlock := e.sessions.Lock(h.key)
	defer unlock()

	if _, err := e.users.Touch(ctx, u.UserID, u.Username); err != nil {
		h.log.Error(ctx, "error saving user", "error", err)
	}

	s, _ := e.sessions.Get(h.key)
	state := s.State

	err := h.dispatch(ctx, &s, u.Action)
	if err == nil {
		e.sessions.Put(h.key, s)
	}

	outcome := h.report(ctx, state, err)
	if u.IsCallback() && !h.answered {
		h.answer(ctx, "", false)
	}
	metrics.RecordUpdate(kind, outcome, time.Since(start))
}

// dispatch routes a by chat kind, then by state through the tables.
func (h *handler) dispatch(ctx context.Context, s *session.Session, a action.Action) error {
	switch a := a.(type) {
	case nil:
		return fmt.Errorf("%w: empty update", common.ErrMalformedAction)
	case action.Malformed:
		return fmt.Errorf("%w: %s", common.ErrMalformedAction, a.Reason)
	case action.Command:
		return h.command(ctx, s, a)
	}

	k := kindOf(a)
	if k.moderation() || s.State.InRejection() {
		st, ok := moderationTable.lookup(s.State, a)
		if !ok {
			return common.ErrIllegalTransition
		}
		return st(h, ctx, s, a)
	}

	// User features are silent in the moderator chat.
	if h.modChat {
		return common.ErrIllegalTransition
	}

	if st, ok := privateGlobal[k]; ok {
		return st(h, ctx, s, a)
	}
	st, ok := formTable.lookup(s.State, a)
	if !ok {
		return common.ErrIllegalTransition
	}
	return st(h, ctx, s, a)
}

// report tells the actor about a failed step and returns the metrics outcome.
func (h *handler) report(ctx context.Context, state session.State, err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK

	case errors.Is(err, common.ErrMalformedAction):
		h.log.Warn(ctx, "malformed action", "error", err)
		h.alert(ctx, msgBadData)
		return metrics.OutcomeMalformed

	case errors.Is(err, common.ErrIllegalTransition):
		h.log.Debug(ctx, "action not allowed", "state", string(state), "action", fmt.Sprintf("%T", h.u.Action))
		switch {
		case h.u.IsCallback():
			h.alert(ctx, msgActionExpired)
		case !h.modChat && state.InForm():
			h.reply(ctx, gateway.Message{Text: msgUseButtons})
		}
		return metrics.OutcomeIllegal

	case errors.Is(err, common.ErrorUnauthorized):
		h.log.Warn(ctx, "moderator action denied")
		h.alert(ctx, msgNoRights)
		return metrics.OutcomeDenied

	case errors.Is(err, common.ErrorNotFound):
		h.alert(ctx, msgNotFound)
		return metrics.OutcomeOK

	case errors.Is(err, common.ErrAlreadyProcessed):
		h.alert(ctx, msgProcessed)
		return metrics.OutcomeOK
	}

	h.log.Error(ctx, "error handling update", "error", err)
	h.alert(ctx, msgInternal)
	return metrics.OutcomeError
}

// here is the chat the update came from.
func (h *handler) here() gateway.Target { return gateway.Chat(h.u.ChatID) }

// origin is the message carrying the pressed button.
func (h *handler) origin() gateway.Ref {
	return gateway.Ref{Chat: h.here(), MessageID: h.u.MessageID}
}

func (h *handler) send(ctx context.Context, to gateway.Target, m gateway.Message) (gateway.Ref, bool) {
	ref, err := h.gw.Send(ctx, to, m)
	if err != nil {
		h.log.Warn(ctx, "error sending message", "to", to.String(), "error", err)
		metrics.RecordGatewayError("send")
		return gateway.Ref{}, false
	}
	return ref, true
}

func (h *handler) reply(ctx context.Context, m gateway.Message) {
	h.send(ctx, h.here(), m)
}

// edit rewrites the button's message, or replies when there is none.
func (h *handler) edit(ctx context.Context, m gateway.Message) {
	if !h.u.IsCallback() || h.u.MessageID == 0 {
		h.reply(ctx, m)
		return
	}
	h.editRef(ctx, h.origin(), m)
}

func (h *handler) editRef(ctx context.Context, ref gateway.Ref, m gateway.Message) bool {
	if err := h.gw.EditText(ctx, ref, m); err != nil {
		h.log.Warn(ctx, "error editing message", "message_id", ref.MessageID, "error", err)
		metrics.RecordGatewayError("edit")
		return false
	}
	return true
}

func (h *handler) editButtons(ctx context.Context, kb gateway.Keyboard) {
	if err := h.gw.EditButtons(ctx, h.origin(), kb); err != nil {
		h.log.Warn(ctx, "error editing buttons", "message_id", h.u.MessageID, "error", err)
		metrics.RecordGatewayError("edit_buttons")
	}
}

func (h *handler) answer(ctx context.Context, text string, alert bool) {
	if !h.u.IsCallback() || h.answered {
		return
	}
	h.answered = true
	if err := h.gw.Answer(ctx, h.u.CallbackID, text, alert); err != nil {
		h.log.Warn(ctx, "error answering callback", "error", err)
		metrics.RecordGatewayError("answer")
	}
}

// alert shows a transient error: a popup for button presses, a message otherwise.
func (h *handler) alert(ctx context.Context, text string) {
	if h.u.IsCallback() {
		h.answer(ctx, text, true)
		return
	}
	if h.modChat || h.u.Private {
		h.reply(ctx, gateway.Message{Text: text})
	}
}

// requireModerator re-reads the privilege on every moderator action.
func (h *handler) requireModerator(ctx context.Context) error {
	ok, err := h.users.IsModerator(ctx, h.u.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorUnauthorized
	}
	return nil
}
