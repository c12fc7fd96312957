// Package session keeps per-user workflow progress in memory. Nothing here is
// persisted; a restart drops every session and users restart the step.
package session

import (
	"slices"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
)

// State is the workflow step a session is in.
type State string

const (
	Idle State = ""

	// Form workflow, in order.
	RiotID       State = "riot_id"
	Age          State = "age"
	Rank         State = "rank"
	Roles        State = "roles"
	Agents       State = "agents"
	Region       State = "region"
	Servers      State = "servers"
	Bio          State = "bio"
	Contact      State = "contact_info"
	Confirmation State = "confirmation"

	// Rejection sub-flow of the moderation workflow.
	ReasonSelection State = "reason_selection"
	CustomReason    State = "custom_reason_entry"
)

// InForm reports whether s is one of the form steps.
func (s State) InForm() bool {
	switch s {
	case RiotID, Age, Rank, Roles, Agents, Region, Servers, Bio, Contact, Confirmation:
		return true
	}
	return false
}

// InRejection reports whether s belongs to the rejection sub-flow.
func (s State) InRejection() bool {
	return s == ReasonSelection || s == CustomReason
}

// Key identifies a session. The same person has independent sessions in
// different chats.
type Key struct {
	ChatID int64
	UserID int64
}

// Reject tracks a moderator's rejection in progress.
type Reject struct {
	AppID int64
	// Reasons holds chosen reason codes in the order they were picked.
	Reasons []string
	// MessageID is the moderator-chat message edited in place.
	MessageID int64
}

type Session struct {
	State  State
	Draft  models.Profile
	Reject *Reject
}

// Clone returns a deep copy so a caller can mutate it freely.
func (s Session) Clone() Session {
	out := s
	out.Draft.Roles = slices.Clone(s.Draft.Roles)
	out.Draft.Agents = slices.Clone(s.Draft.Agents)
	out.Draft.Servers = slices.Clone(s.Draft.Servers)
	if s.Reject != nil {
		r := *s.Reject
		r.Reasons = slices.Clone(s.Reject.Reasons)
		out.Reject = &r
	}
	return out
}

// Toggle flips v's membership in set, keeping insertion order.
func Toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}
