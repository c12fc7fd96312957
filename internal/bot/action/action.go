// Package action decodes inbound button presses and messages into a closed
// set of typed actions. Button payloads travel as short "tag:payload" tokens.
package action

import (
	"strconv"
)

// Action is implemented only by the types in this package.
type Action interface {
	isAction()
}

// Button actions. FormCancel also comes from the reply-keyboard cancel label.
type (
	RankChoice        struct{ Index int }
	RoleToggle        struct{ Label string }
	RolesConfirm      struct{}
	AgentToggle       struct{ Index int }
	AgentsConfirm     struct{}
	RegionChoice      struct{ Code string }
	ServerToggle      struct{ Code string }
	ServersConfirm    struct{}
	ServersBack       struct{}
	FormConfirm       struct{}
	FormCancel        struct{}
	Approve           struct{ AppID int64 }
	Reject            struct{ AppID int64 }
	RejectConfirm     struct{ AppID int64 }
	RejectCancel      struct{ AppID int64 }
	RejectBack        struct{ AppID int64 }
	DeleteApplication struct{ AppID int64 }
)

type RejectReason struct {
	AppID int64
	Code  string
}

// Message-derived actions.
type (
	// Command is a slash command; Name excludes the slash and any @bot suffix.
	Command struct {
		Name string
		Args string
	}
	Menu struct{ Item MenuItem }
	// Text is free-form input for the current step.
	Text struct{ Body string }
)

// Malformed is any token that fails to decode.
type Malformed struct {
	Raw    string
	Reason string
}

func (RankChoice) isAction()        {}
func (RoleToggle) isAction()        {}
func (RolesConfirm) isAction()      {}
func (AgentToggle) isAction()       {}
func (AgentsConfirm) isAction()     {}
func (RegionChoice) isAction()      {}
func (ServerToggle) isAction()      {}
func (ServersConfirm) isAction()    {}
func (ServersBack) isAction()       {}
func (FormConfirm) isAction()       {}
func (FormCancel) isAction()        {}
func (Approve) isAction()           {}
func (Reject) isAction()            {}
func (RejectReason) isAction()      {}
func (RejectConfirm) isAction()     {}
func (RejectCancel) isAction()      {}
func (RejectBack) isAction()        {}
func (DeleteApplication) isAction() {}
func (Command) isAction()           {}
func (Menu) isAction()              {}
func (Text) isAction()              {}
func (Malformed) isAction()         {}

const (
	tagRank          = "rank-choice"
	tagRole          = "role-choice"
	tagAgent         = "agent-choice"
	tagRegion        = "region-choice"
	tagServer        = "server-choice"
	tagServerBack    = "server-back"
	tagFormConfirm   = "form-confirm"
	tagFormCancel    = "form-cancel"
	tagApprove       = "approve"
	tagReject        = "reject"
	tagRejectReason  = "reject-reason"
	tagRejectConfirm = "reject-confirm"
	tagRejectCancel  = "reject-cancel"
	tagRejectBack    = "reject-back"
	tagDelete        = "app-delete"

	payloadConfirm = "confirm"
)

func (a RankChoice) Token() string        { return tagRank + ":" + strconv.Itoa(a.Index) }
func (a RoleToggle) Token() string        { return tagRole + ":" + a.Label }
func (RolesConfirm) Token() string        { return tagRole + ":" + payloadConfirm }
func (a AgentToggle) Token() string       { return tagAgent + ":" + strconv.Itoa(a.Index) }
func (AgentsConfirm) Token() string       { return tagAgent + ":" + payloadConfirm }
func (a RegionChoice) Token() string      { return tagRegion + ":" + a.Code }
func (a ServerToggle) Token() string      { return tagServer + ":" + a.Code }
func (ServersConfirm) Token() string      { return tagServer + ":" + payloadConfirm }
func (ServersBack) Token() string         { return tagServerBack }
func (FormConfirm) Token() string         { return tagFormConfirm }
func (FormCancel) Token() string          { return tagFormCancel }
func (a Approve) Token() string           { return tagApprove + ":" + id(a.AppID) }
func (a Reject) Token() string            { return tagReject + ":" + id(a.AppID) }
func (a RejectReason) Token() string      { return tagRejectReason + ":" + id(a.AppID) + ":" + a.Code }
func (a RejectConfirm) Token() string     { return tagRejectConfirm + ":" + id(a.AppID) }
func (a RejectCancel) Token() string      { return tagRejectCancel + ":" + id(a.AppID) }
func (a RejectBack) Token() string        { return tagRejectBack + ":" + id(a.AppID) }
func (a DeleteApplication) Token() string { return tagDelete + ":" + id(a.AppID) }

func id(v int64) string { return strconv.FormatInt(v, 10) }
