package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
	"github.com/dmitrijs2005/teamfinder/internal/bot/metrics"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/presenter"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
	"github.com/dmitrijs2005/teamfinder/internal/common"
)

// command handles slash commands. Commands are accepted in every state.
func (h *handler) command(ctx context.Context, s *session.Session, c action.Command) error {
	switch c.Name {
	case "start":
		if h.modChat {
			return h.moderatorStart(ctx)
		}
		*s = session.Session{}
		text := msgWelcome
		if h.users.IsOwner(h.u.UserID) {
			text += msgWelcomeOwner
		}
		h.reply(ctx, gateway.Message{Text: text, Reply: mainMenu})
		return nil

	case "help":
		if h.modChat {
			text := msgModeratorHelp
			if h.users.IsOwner(h.u.UserID) {
				text += msgModeratorHelpOwner
			}
			h.reply(ctx, gateway.Message{Text: text})
		}
		return nil

	case "cancel":
		return h.cancelCommand(ctx, s)

	case "pending":
		if !h.modChat {
			return nil
		}
		return h.pending(ctx)

	case "add_moderator":
		return h.ownerOnly(ctx, func() error { return h.changeModerator(ctx, c, true) })
	case "remove_moderator":
		return h.ownerOnly(ctx, func() error { return h.changeModerator(ctx, c, false) })
	case "list_moderators":
		return h.ownerOnly(ctx, func() error { return h.listModerators(ctx) })

	case "check_my_rights":
		return h.checkRights(ctx)
	}

	h.log.Debug(ctx, "unknown command", "command", c.Name)
	return nil
}

func (h *handler) cancelCommand(ctx context.Context, s *session.Session) error {
	var menu [][]string
	if !h.modChat {
		menu = mainMenu
	}
	if s.State == session.Idle {
		h.reply(ctx, gateway.Message{Text: msgNothingToCancel, Reply: menu})
		return nil
	}
	*s = session.Session{}
	h.reply(ctx, gateway.Message{Text: msgActionCancelled, Reply: menu})
	return nil
}

func (h *handler) moderatorStart(ctx context.Context) error {
	text := msgModeratorWelcome
	switch ok, err := h.users.IsModerator(ctx, h.u.UserID); {
	case err != nil:
		return err
	case h.users.IsOwner(h.u.UserID):
		text += msgModeratorOwner
	case ok:
		text += msgModeratorRole
	default:
		text += msgModeratorNone
	}
	h.reply(ctx, gateway.Message{Text: text + msgModeratorFooter})
	return nil
}

// pending re-posts every application awaiting a decision, oldest first.
func (h *handler) pending(ctx context.Context) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	apps, err := h.apps.Pending(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		h.reply(ctx, gateway.Message{Text: msgNoPending})
		return nil
	}
	for _, app := range apps {
		h.reply(ctx, moderationMessage(app))
	}
	return nil
}

// ownerOnly runs fn for the owner. Others are told off in private chats and
// ignored in the moderator chat.
func (h *handler) ownerOnly(ctx context.Context, fn func() error) error {
	if h.users.IsOwner(h.u.UserID) {
		return fn()
	}
	if !h.modChat {
		h.reply(ctx, gateway.Message{Text: msgOwnerOnly})
	}
	return nil
}

func (h *handler) changeModerator(ctx context.Context, c action.Command, grant bool) error {
	identifier := strings.Fields(c.Args)
	if len(identifier) == 0 {
		h.reply(ctx, gateway.Message{Text: fmt.Sprintf(fmtModeratorUsage, c.Name)})
		return nil
	}

	user, err := h.users.Find(ctx, identifier[0])
	if errors.Is(err, common.ErrorNotFound) {
		h.reply(ctx, gateway.Message{Text: msgUserNotFound})
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case grant && user.IsModerator:
		h.reply(ctx, gateway.Message{Text: msgAlreadyModerator})
		return nil
	case !grant && !user.IsModerator:
		h.reply(ctx, gateway.Message{Text: msgNotModerator})
		return nil
	}

	if err := h.users.SetModerator(ctx, user.TelegramID, grant); err != nil {
		return err
	}

	name := user.Username
	if name == "" {
		name = identifier[0]
	}
	done, notice := fmtModeratorAdded, msgGrantedNotice
	if !grant {
		done, notice = fmtModeratorRemoved, msgRevokedNotice
	}
	h.log.Info(ctx, "moderator flag changed", "target_id", user.TelegramID, "moderator", grant)
	h.reply(ctx, gateway.Message{Text: fmt.Sprintf(done, name)})
	h.send(ctx, gateway.Chat(user.TelegramID), gateway.Message{Text: notice})
	return nil
}

func (h *handler) listModerators(ctx context.Context) error {
	mods, err := h.users.Moderators(ctx)
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		h.reply(ctx, gateway.Message{Text: msgNoModerators})
		return nil
	}

	var b strings.Builder
	b.WriteString(msgModeratorsHeader)
	for i, m := range mods {
		fmt.Fprintf(&b, "%d. @%s (ID: %d)\n", i+1, orNoUsername(m.Username), m.TelegramID)
	}
	h.reply(ctx, gateway.Message{Text: b.String()})
	return nil
}

func (h *handler) checkRights(ctx context.Context) error {
	user, err := h.users.Get(ctx, h.u.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		h.reply(ctx, gateway.Message{Text: msgUnknownSelf})
		return nil
	}
	if err != nil {
		return err
	}
	h.reply(ctx, gateway.Message{Text: fmt.Sprintf(fmtRights,
		h.u.UserID, orNoUsername(h.u.Username), mark(user.IsModerator), mark(h.users.IsOwner(h.u.UserID)))})
	return nil
}

func (h *handler) menu(ctx context.Context, s *session.Session, a action.Action) error {
	switch a.(action.Menu).Item {
	case action.MenuSubmit:
		return h.startForm(ctx, s)
	case action.MenuMine:
		return h.showMine(ctx)
	case action.MenuRules:
		h.reply(ctx, gateway.Message{Text: msgRules, HTML: true, Reply: mainMenu})
		return nil
	}
	return common.ErrIllegalTransition
}

func (h *handler) showMine(ctx context.Context) error {
	app, err := h.apps.Latest(ctx, h.u.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		h.reply(ctx, gateway.Message{Text: msgNoApplication, Reply: mainMenu})
		return nil
	}
	if err != nil {
		return err
	}

	if app.Status == models.StatusPending {
		h.reply(ctx, gateway.Message{Text: msgMinePending, Reply: mainMenu})
		return nil
	}
	h.reply(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtMineApproved, presenter.PublicPost(app.Profile)),
		HTML:    true,
		Buttons: manageKeyboard(app.ID),
	})
	return nil
}

// deleteOwn removes the caller's application and its channel post.
func (h *handler) deleteOwn(ctx context.Context, _ *session.Session, a action.Action) error {
	id := a.(action.DeleteApplication).AppID
	log := h.log.With("application_id", id)

	app, err := h.apps.Get(ctx, id)
	if err != nil {
		return err
	}
	owner, err := h.apps.Owner(ctx, app)
	if err != nil {
		return err
	}
	if owner.TelegramID != h.u.UserID {
		return common.ErrorUnauthorized
	}

	if app.Status == models.StatusApproved && app.PublishRef != nil && !h.opts.PublicChannel.IsZero() {
		ref := gateway.Ref{Chat: h.opts.PublicChannel, MessageID: *app.PublishRef}
		if err := h.gw.Delete(ctx, ref); err != nil {
			log.Warn(ctx, "error deleting channel post", "error", err)
			metrics.RecordGatewayError("delete")
		}
	}

	if err := h.apps.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		log.Error(ctx, "error deleting application", "error", err)
		h.edit(ctx, gateway.Message{Text: msgDeleteFailed})
		return nil
	}

	metrics.RecordApplication(metrics.EventDeleted)
	log.Info(ctx, "application deleted by owner")
	h.edit(ctx, gateway.Message{Text: msgDeleted})
	h.reply(ctx, gateway.Message{Text: msgChooseAction, Reply: mainMenu})
	return nil
}

func orNoUsername(s string) string {
	if s == "" {
		return noUsername
	}
	return s
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
