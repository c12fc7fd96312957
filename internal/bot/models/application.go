// Package models holds the records shared by repositories, services and the engine.
package models

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	// StatusRejected is only used in notifications; rejected applications are deleted.
	StatusRejected Status = "rejected"
)

// Active reports whether s counts against the one-active-application limit.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Profile is the set of fields collected by the form. Roles hold role
// labels, Agents agent names and Servers server codes within Region.
type Profile struct {
	RiotID  string
	Age     int
	Rank    string
	Roles   []string
	Agents  []string
	Region  string
	Servers []string
	Bio     string
	Contact string
}

// Application is a stored profile awaiting or past moderation.
type Application struct {
	ID     int64
	UserID int64
	Status Status
	Profile
	// ModeratorID is the users.id of the moderator who approved it.
	ModeratorID *int64
	// PublishRef is the message id of the public channel post.
	PublishRef *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
