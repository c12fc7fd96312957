package engine

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/catalog"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
	"github.com/dmitrijs2005/teamfinder/internal/bot/metrics"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/presenter"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
	"github.com/dmitrijs2005/teamfinder/internal/common"
)

// approve publishes the application. Publishing and notifications are best
// effort once the status change is stored.
func (h *handler) approve(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	id := a.(action.Approve).AppID

	app, err := h.apps.Approve(ctx, id, h.u.UserID)
	if err != nil {
		return err
	}
	metrics.RecordApplication(metrics.EventApproved)
	log := h.log.With("application_id", id)
	log.Info(ctx, "application approved")

	if s.Reject != nil && s.Reject.AppID == id {
		*s = session.Session{}
	}

	if !h.opts.PublicChannel.IsZero() {
		if ref, ok := h.send(ctx, h.opts.PublicChannel, gateway.Message{Text: presenter.PublicPost(app.Profile), HTML: true}); ok {
			if err := h.apps.SetPublishReference(ctx, id, ref.MessageID); err != nil {
				log.Error(ctx, "error saving publish reference", "error", err)
			} else {
				metrics.RecordApplication(metrics.EventPublished)
			}
		}
	}

	h.notifyOwner(ctx, app, gateway.Message{Text: msgApprovedNotice})
	h.edit(ctx, gateway.Message{Text: fmt.Sprintf(fmtApproved, id)})
	return nil
}

// pendingApplication loads id and refuses anything not awaiting a decision.
func (h *handler) pendingApplication(ctx context.Context, id int64) (*models.Application, error) {
	app, err := h.apps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.StatusPending {
		return nil, common.ErrAlreadyProcessed
	}
	return app, nil
}

func (h *handler) startRejection(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	id := a.(action.Reject).AppID
	if _, err := h.pendingApplication(ctx, id); err != nil {
		return err
	}

	*s = session.Session{
		State:  session.ReasonSelection,
		Reject: &session.Reject{AppID: id, MessageID: h.u.MessageID},
	}
	h.showReasons(ctx, s)
	return nil
}

func (h *handler) showReasons(ctx context.Context, s *session.Session) {
	chosen := msgNoReasonsChosen
	if len(s.Reject.Reasons) > 0 {
		chosen = strings.Join(presenter.ReasonLabels(s.Reject.Reasons), ", ")
	}
	h.edit(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtChooseReasons, chosen),
		Buttons: reasonsKeyboard(s.Reject.AppID, s.Reject.Reasons),
	})
}

// sameTarget rejects buttons of a different application than the one being rejected.
func sameTarget(s *session.Session, appID int64) error {
	if s.Reject == nil || s.Reject.AppID != appID {
		return common.ErrIllegalTransition
	}
	return nil
}

func (h *handler) toggleReason(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	r := a.(action.RejectReason)
	if err := sameTarget(s, r.AppID); err != nil {
		return err
	}

	if r.Code == catalog.CustomReason {
		s.State = session.CustomReason
		h.edit(ctx, gateway.Message{Text: msgAskCustomReason, Buttons: customReasonKeyboard(r.AppID)})
		return nil
	}
	if _, ok := catalog.ReasonLabel(r.Code); !ok {
		return fmt.Errorf("%w: unknown reason %q", common.ErrMalformedAction, r.Code)
	}

	s.Reject.Reasons = session.Toggle(s.Reject.Reasons, r.Code)
	h.showReasons(ctx, s)
	return nil
}

// backToReasons returns from custom text entry with the chosen reasons intact.
func (h *handler) backToReasons(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	if err := sameTarget(s, a.(action.RejectBack).AppID); err != nil {
		return err
	}

	s.State = session.ReasonSelection
	h.showReasons(ctx, s)
	return nil
}

func (h *handler) confirmRejection(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	if err := sameTarget(s, a.(action.RejectConfirm).AppID); err != nil {
		return err
	}
	if len(s.Reject.Reasons) == 0 {
		h.alert(ctx, msgNeedReason)
		return nil
	}

	labels := presenter.ReasonLabels(s.Reject.Reasons)
	return h.reject(ctx, s,
		gateway.Message{Text: fmt.Sprintf(fmtRejectedNotice, presenter.Bullets(labels)), HTML: true},
		gateway.Message{Text: fmt.Sprintf(fmtRejected, s.Reject.AppID, html.EscapeString(strings.Join(labels, ", "))), HTML: true},
	)
}

func (h *handler) customReason(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	text := strings.TrimSpace(a.(action.Text).Body)
	if text == "" {
		h.reply(ctx, gateway.Message{Text: msgEmptyCustomReason})
		return nil
	}

	escaped := html.EscapeString(text)
	return h.reject(ctx, s,
		gateway.Message{Text: fmt.Sprintf(fmtRejectedCustom, escaped), HTML: true},
		gateway.Message{Text: fmt.Sprintf(fmtRejectedWithText, s.Reject.AppID, escaped), HTML: true},
	)
}

// reject notifies the submitter, then deletes the application and updates
// the moderator message. A failed delete after the notice went out leaves
// the user and the store disagreeing; it is logged as fatal, counted and
// sent to the owner, and the session is kept so the moderator can retry.
func (h *handler) reject(ctx context.Context, s *session.Session, notice, outcome gateway.Message) error {
	id := s.Reject.AppID
	log := h.log.With("application_id", id)

	app, err := h.pendingApplication(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		*s = session.Session{}
		h.alert(ctx, msgNotFound)
		return nil
	case errors.Is(err, common.ErrAlreadyProcessed):
		*s = session.Session{}
		h.alert(ctx, msgProcessed)
		return nil
	case err != nil:
		return err
	}

	h.notifyOwner(ctx, app, notice)

	if err := h.apps.Delete(ctx, id); err != nil {
		log.Error(ctx, "rejected application could not be deleted", "severity", "fatal", "error", err)
		metrics.RecordInconsistency()
		if h.opts.OwnerID != 0 {
			h.send(ctx, gateway.Chat(h.opts.OwnerID), gateway.Message{Text: fmt.Sprintf(fmtInconsistency, id)})
		}
		h.alert(ctx, msgRejectFailed)
		return nil
	}

	metrics.RecordApplication(metrics.EventRejected)
	log.Info(ctx, "application rejected and deleted", "reasons", s.Reject.Reasons)

	ref := gateway.Ref{Chat: h.here(), MessageID: s.Reject.MessageID}
	if s.Reject.MessageID == 0 || !h.editRef(ctx, ref, outcome) {
		h.reply(ctx, outcome)
	}
	*s = session.Session{}
	return nil
}

// cancelRejection rebuilds the moderation view from the stored record.
func (h *handler) cancelRejection(ctx context.Context, s *session.Session, a action.Action) error {
	if err := h.requireModerator(ctx); err != nil {
		return err
	}
	id := a.(action.RejectCancel).AppID
	if s.Reject == nil || s.Reject.AppID == id {
		*s = session.Session{}
	}

	app, err := h.apps.Get(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		h.edit(ctx, gateway.Message{Text: msgNotFound})
	case err != nil:
		return err
	case app.Status != models.StatusPending:
		h.edit(ctx, gateway.Message{Text: fmt.Sprintf(fmtApproved, id)})
	default:
		h.edit(ctx, moderationMessage(app))
	}

	h.answer(ctx, msgRejectCancelled, false)
	return nil
}

// notifyOwner messages the submitter of app. Failures are logged only.
func (h *handler) notifyOwner(ctx context.Context, app *models.Application, m gateway.Message) {
	owner, err := h.apps.Owner(ctx, app)
	if err != nil {
		h.log.Warn(ctx, "error loading application owner", "application_id", app.ID, "error", err)
		return
	}
	h.send(ctx, gateway.Chat(owner.TelegramID), m)
}
