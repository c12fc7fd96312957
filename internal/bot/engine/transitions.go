package engine

import (
	"context"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
)

// kind names an action variant for the transition tables.
type kind int

const (
	kindUnknown kind = iota
	kindRank
	kindRoleToggle
	kindRolesConfirm
	kindAgentToggle
	kindAgentsConfirm
	kindRegion
	kindServerToggle
	kindServersConfirm
	kindServersBack
	kindFormConfirm
	kindFormCancel
	kindApprove
	kindReject
	kindRejectReason
	kindRejectConfirm
	kindRejectCancel
	kindRejectBack
	kindDelete
	kindMenu
	kindText
)

func kindOf(a action.Action) kind {
	switch a.(type) {
	case action.RankChoice:
		return kindRank
	case action.RoleToggle:
		return kindRoleToggle
	case action.RolesConfirm:
		return kindRolesConfirm
	case action.AgentToggle:
		return kindAgentToggle
	case action.AgentsConfirm:
		return kindAgentsConfirm
	case action.RegionChoice:
		return kindRegion
	case action.ServerToggle:
		return kindServerToggle
	case action.ServersConfirm:
		return kindServersConfirm
	case action.ServersBack:
		return kindServersBack
	case action.FormConfirm:
		return kindFormConfirm
	case action.FormCancel:
		return kindFormCancel
	case action.Approve:
		return kindApprove
	case action.Reject:
		return kindReject
	case action.RejectReason:
		return kindRejectReason
	case action.RejectConfirm:
		return kindRejectConfirm
	case action.RejectCancel:
		return kindRejectCancel
	case action.RejectBack:
		return kindRejectBack
	case action.DeleteApplication:
		return kindDelete
	case action.Menu:
		return kindMenu
	case action.Text:
		return kindText
	}
	return kindUnknown
}

// moderation reports whether k is a moderator action.
func (k kind) moderation() bool {
	return k >= kindApprove && k <= kindRejectBack
}

// step handles one action in one state. It may mutate s; the dispatcher
// stores s only when step returns nil.
type step func(h *handler, ctx context.Context, s *session.Session, a action.Action) error

type table map[session.State]map[kind]step

// privateGlobal is accepted in any state of a private chat and takes
// precedence over the form table.
var privateGlobal = map[kind]step{
	kindFormCancel: (*handler).cancelForm,
	kindMenu:       (*handler).menu,
	kindDelete:     (*handler).deleteOwn,
}

var formTable = table{
	session.RiotID: {kindText: (*handler).riotID},
	session.Age:    {kindText: (*handler).age},
	session.Rank:   {kindRank: (*handler).rank},
	session.Roles: {
		kindRoleToggle:   (*handler).toggleRole,
		kindRolesConfirm: (*handler).confirmRoles,
	},
	session.Agents: {
		kindAgentToggle:   (*handler).toggleAgent,
		kindAgentsConfirm: (*handler).confirmAgents,
	},
	session.Region: {kindRegion: (*handler).region},
	session.Servers: {
		kindServerToggle:   (*handler).toggleServer,
		kindServersConfirm: (*handler).confirmServers,
		kindServersBack:    (*handler).backToRegions,
	},
	session.Bio:          {kindText: (*handler).bio},
	session.Contact:      {kindText: (*handler).contact},
	session.Confirmation: {kindFormConfirm: (*handler).submit},
}

var moderationTable = table{
	session.Idle: {
		kindApprove:      (*handler).approve,
		kindReject:       (*handler).startRejection,
		kindRejectCancel: (*handler).cancelRejection,
	},
	session.ReasonSelection: {
		kindApprove:       (*handler).approve,
		kindReject:        (*handler).startRejection,
		kindRejectReason:  (*handler).toggleReason,
		kindRejectConfirm: (*handler).confirmRejection,
		kindRejectCancel:  (*handler).cancelRejection,
	},
	session.CustomReason: {
		kindApprove:      (*handler).approve,
		kindReject:       (*handler).startRejection,
		kindText:         (*handler).customReason,
		kindRejectBack:   (*handler).backToReasons,
		kindRejectCancel: (*handler).cancelRejection,
	},
}

// lookup returns the step for a in state, if the table allows it.
func (t table) lookup(state session.State, a action.Action) (step, bool) {
	st, ok := t[state][kindOf(a)]
	return st, ok
}
