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

func prompt(text string) gateway.Message {
	return gateway.Message{Text: text, HTML: true, Reply: cancelMenu}
}

// startForm enters the form unless the user already has an active application.
func (h *handler) startForm(ctx context.Context, s *session.Session) error {
	*s = session.Session{}

	app, err := h.apps.Active(ctx, h.u.UserID)
	switch {
	case err == nil:
		text := msgHasApproved
		if app.Status == models.StatusPending {
			text = msgHasPending
		}
		h.reply(ctx, gateway.Message{Text: text, Reply: mainMenu})
		return nil
	case !errors.Is(err, common.ErrorNotFound):
		return err
	}

	s.State = session.RiotID
	h.reply(ctx, prompt(msgAskRiotID))
	return nil
}

func (h *handler) cancelForm(ctx context.Context, s *session.Session, _ action.Action) error {
	*s = session.Session{}
	if h.u.IsCallback() {
		h.edit(ctx, gateway.Message{Text: msgFormCancelled})
		h.reply(ctx, gateway.Message{Text: msgChooseAction, Reply: mainMenu})
		return nil
	}
	h.reply(ctx, gateway.Message{Text: msgFormCancelled, Reply: mainMenu})
	return nil
}

func (h *handler) riotID(ctx context.Context, s *session.Session, a action.Action) error {
	id, err := validateRiotID(a.(action.Text).Body, h.opts.Limits)
	switch {
	case errors.Is(err, errFormat):
		h.reply(ctx, prompt(msgBadRiotID))
		return nil
	case err != nil:
		h.reply(ctx, prompt(fmt.Sprintf(fmtRiotIDTooLong, h.opts.Limits.RiotIDMax)))
		return nil
	}

	s.Draft.RiotID = id
	s.State = session.Age
	h.reply(ctx, prompt(msgAskAge))
	return nil
}

func (h *handler) age(ctx context.Context, s *session.Session, a action.Action) error {
	age, err := validateAge(a.(action.Text).Body, h.opts.Limits)
	switch {
	case errors.Is(err, errRange):
		h.reply(ctx, prompt(fmt.Sprintf(fmtAgeRange, h.opts.Limits.AgeMin, h.opts.Limits.AgeMax)))
		return nil
	case err != nil:
		h.reply(ctx, prompt(msgAgeNotNumber))
		return nil
	}

	s.Draft.Age = age
	s.State = session.Rank
	h.reply(ctx, gateway.Message{Text: msgAskRank, Buttons: ranksKeyboard()})
	return nil
}

func (h *handler) rank(ctx context.Context, s *session.Session, a action.Action) error {
	rank, ok := catalog.Rank(a.(action.RankChoice).Index)
	if !ok {
		return fmt.Errorf("%w: rank out of range", common.ErrMalformedAction)
	}

	s.Draft.Rank = rank
	s.State = session.Roles
	h.edit(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtAskRoles, html.EscapeString(rank), h.opts.Limits.RolesMax),
		HTML:    true,
		Buttons: rolesKeyboard(s.Draft.Roles, h.opts.Limits.RolesMax),
	})
	return nil
}

func (h *handler) toggleRole(ctx context.Context, s *session.Session, a action.Action) error {
	role := a.(action.RoleToggle).Label
	if !catalog.IsRole(role) {
		return fmt.Errorf("%w: unknown role", common.ErrMalformedAction)
	}

	roles, err := toggleBounded(s.Draft.Roles, role, h.opts.Limits.RolesMax)
	if err != nil {
		h.alert(ctx, fmt.Sprintf(fmtTooManyRoles, h.opts.Limits.RolesMax))
		return nil
	}

	s.Draft.Roles = roles
	h.editButtons(ctx, rolesKeyboard(roles, h.opts.Limits.RolesMax))
	return nil
}

func (h *handler) confirmRoles(ctx context.Context, s *session.Session, _ action.Action) error {
	switch err := validateRoles(s.Draft.Roles, h.opts.Limits); {
	case errors.Is(err, errEmpty):
		h.alert(ctx, msgNoRoles)
		return nil
	case err != nil:
		h.alert(ctx, fmt.Sprintf(fmtRolesTooLong, h.opts.Limits.RolesTextMax))
		return nil
	}

	s.State = session.Agents
	h.edit(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtAskAgents, html.EscapeString(strings.Join(s.Draft.Roles, ", ")), h.opts.Limits.AgentsMax),
		HTML:    true,
		Buttons: agentsKeyboard(s.Draft.Agents, h.opts.Limits.AgentsMax),
	})
	return nil
}

func (h *handler) toggleAgent(ctx context.Context, s *session.Session, a action.Action) error {
	agent, ok := catalog.Agent(a.(action.AgentToggle).Index)
	if !ok {
		return fmt.Errorf("%w: agent out of range", common.ErrMalformedAction)
	}

	agents, err := toggleBounded(s.Draft.Agents, agent, h.opts.Limits.AgentsMax)
	if err != nil {
		h.alert(ctx, fmt.Sprintf(fmtTooManyAgents, h.opts.Limits.AgentsMax))
		return nil
	}

	s.Draft.Agents = agents
	h.editButtons(ctx, agentsKeyboard(agents, h.opts.Limits.AgentsMax))
	return nil
}

func (h *handler) confirmAgents(ctx context.Context, s *session.Session, _ action.Action) error {
	if len(s.Draft.Agents) == 0 {
		h.alert(ctx, msgNoAgents)
		return nil
	}

	s.State = session.Region
	h.edit(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtAskRegion, html.EscapeString(strings.Join(s.Draft.Agents, ", "))),
		HTML:    true,
		Buttons: regionsKeyboard(),
	})
	return nil
}

func (h *handler) region(ctx context.Context, s *session.Session, a action.Action) error {
	region, ok := catalog.RegionByCode(a.(action.RegionChoice).Code)
	if !ok {
		h.alert(ctx, msgBadRegion)
		return nil
	}

	s.Draft.Region = region.Code
	s.Draft.Servers = nil
	s.State = session.Servers
	h.edit(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtAskServers, html.EscapeString(region.Name)),
		HTML:    true,
		Buttons: serversKeyboard(region, nil),
	})
	return nil
}

func (h *handler) toggleServer(ctx context.Context, s *session.Session, a action.Action) error {
	region, ok := catalog.RegionByCode(s.Draft.Region)
	if !ok {
		return fmt.Errorf("%w: region %q", common.ErrorInternal, s.Draft.Region)
	}
	code := a.(action.ServerToggle).Code
	if _, ok := region.Server(code); !ok {
		return fmt.Errorf("%w: server outside region", common.ErrMalformedAction)
	}

	s.Draft.Servers = session.Toggle(s.Draft.Servers, code)
	h.editButtons(ctx, serversKeyboard(region, s.Draft.Servers))
	return nil
}

// backToRegions drops the server selection.
func (h *handler) backToRegions(ctx context.Context, s *session.Session, _ action.Action) error {
	s.Draft.Region = ""
	s.Draft.Servers = nil
	s.State = session.Region
	h.edit(ctx, gateway.Message{Text: msgAskRegionAgain, Buttons: regionsKeyboard()})
	return nil
}

func (h *handler) confirmServers(ctx context.Context, s *session.Session, _ action.Action) error {
	if len(s.Draft.Servers) == 0 {
		h.alert(ctx, msgNoServers)
		return nil
	}

	s.State = session.Bio
	names := strings.Join(presenter.ServerNames(s.Draft), ", ")
	h.edit(ctx, gateway.Message{Text: fmt.Sprintf(fmtAskBio, html.EscapeString(names)), HTML: true})
	return nil
}

func (h *handler) bio(ctx context.Context, s *session.Session, a action.Action) error {
	bio, err := validateBio(a.(action.Text).Body, h.opts.Limits)
	if err != nil {
		h.reply(ctx, prompt(fmt.Sprintf(fmtBioTooLong, h.opts.Limits.BioMax)))
		return nil
	}

	s.Draft.Bio = bio
	s.State = session.Contact
	h.reply(ctx, prompt(msgAskContact))
	return nil
}

func (h *handler) contact(ctx context.Context, s *session.Session, a action.Action) error {
	contact, err := validateContact(a.(action.Text).Body, h.opts.Limits)
	switch {
	case errors.Is(err, errEmpty):
		h.reply(ctx, prompt(msgNoContact))
		return nil
	case err != nil:
		h.reply(ctx, prompt(fmt.Sprintf(fmtContactTooLong, h.opts.Limits.ContactMax)))
		return nil
	}

	s.Draft.Contact = contact
	s.State = session.Confirmation
	h.reply(ctx, gateway.Message{
		Text:    fmt.Sprintf(fmtPreview, presenter.Preview(s.Draft)),
		HTML:    true,
		Buttons: confirmKeyboard(),
	})
	return nil
}

// submit stores the draft and posts it to the moderator chat.
func (h *handler) submit(ctx context.Context, s *session.Session, _ action.Action) error {
	app, err := h.apps.Submit(ctx, h.u.UserID, h.u.Username, s.Draft)
	if errors.Is(err, common.ErrActiveApplicationExists) {
		h.log.Info(ctx, "submission refused, active application exists")
		metrics.RecordApplication(metrics.EventConflict)
		*s = session.Session{}
		h.edit(ctx, gateway.Message{Text: msgConflict})
		h.reply(ctx, gateway.Message{Text: msgChooseAction, Reply: mainMenu})
		return nil
	}
	if err != nil {
		return err
	}

	*s = session.Session{}
	metrics.RecordApplication(metrics.EventSubmitted)
	h.log.Info(ctx, "application submitted", "application_id", app.ID)

	if h.opts.ModeratorChatID != 0 {
		h.send(ctx, gateway.Chat(h.opts.ModeratorChatID), moderationMessage(app))
	}

	h.edit(ctx, gateway.Message{Text: msgSubmitted})
	h.reply(ctx, gateway.Message{Text: msgChooseAction, Reply: mainMenu})
	return nil
}

func moderationMessage(app *models.Application) gateway.Message {
	return gateway.Message{
		Text:    fmt.Sprintf(fmtNewApplication, presenter.Preview(app.Profile)),
		HTML:    true,
		Buttons: moderationKeyboard(app.ID),
	}
}
