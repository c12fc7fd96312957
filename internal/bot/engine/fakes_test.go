package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/ratelimit"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/repomanager"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/repotest"
	"github.com/dmitrijs2005/teamfinder/internal/bot/services"
	"github.com/dmitrijs2005/teamfinder/internal/bot/session"
	"github.com/dmitrijs2005/teamfinder/internal/logging"
)

// ---- fake gateway ----

type sentMessage struct {
	Ref gateway.Ref
	Msg gateway.Message
}

type answer struct {
	ID    string
	Text  string
	Alert bool
}

type fakeGateway struct {
	mu      sync.Mutex
	nextID  int64
	sent    []sentMessage
	edits   []sentMessage
	buttons []sentMessage
	deleted []gateway.Ref
	answers []answer
	// down lists targets that fail every send.
	down map[gateway.Target]bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{nextID: 1000, down: map[gateway.Target]bool{}}
}

func (g *fakeGateway) Send(_ context.Context, to gateway.Target, m gateway.Message) (gateway.Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.down[to] {
		return gateway.Ref{}, errors.New("chat unreachable")
	}
	g.nextID++
	ref := gateway.Ref{Chat: to, MessageID: g.nextID}
	g.sent = append(g.sent, sentMessage{Ref: ref, Msg: m})
	return ref, nil
}

func (g *fakeGateway) EditText(_ context.Context, ref gateway.Ref, m gateway.Message) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edits = append(g.edits, sentMessage{Ref: ref, Msg: m})
	return nil
}

func (g *fakeGateway) EditButtons(_ context.Context, ref gateway.Ref, kb gateway.Keyboard) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buttons = append(g.buttons, sentMessage{Ref: ref, Msg: gateway.Message{Buttons: kb}})
	return nil
}

func (g *fakeGateway) Delete(_ context.Context, ref gateway.Ref) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted = append(g.deleted, ref)
	return nil
}

func (g *fakeGateway) Answer(_ context.Context, id, text string, alert bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.answers = append(g.answers, answer{ID: id, Text: text, Alert: alert})
	return nil
}

// sentTo returns messages sent to chat, oldest first.
func (g *fakeGateway) sentTo(to gateway.Target) []sentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []sentMessage
	for _, s := range g.sent {
		if s.Ref.Chat == to {
			out = append(out, s)
		}
	}
	return out
}

func (g *fakeGateway) lastTo(t *testing.T, to gateway.Target) sentMessage {
	t.Helper()
	msgs := g.sentTo(to)
	require.NotEmpty(t, msgs, "nothing sent to %s", to)
	return msgs[len(msgs)-1]
}

func (g *fakeGateway) lastEdit(t *testing.T) sentMessage {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.edits, "no edits")
	return g.edits[len(g.edits)-1]
}

func (g *fakeGateway) lastAnswer(t *testing.T) answer {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.answers, "no answers")
	return g.answers[len(g.answers)-1]
}

func (g *fakeGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sent) + len(g.edits) + len(g.buttons)
}

// ---- failing application service ----

type failingDelete struct {
	ApplicationService
	err error
}

func (f failingDelete) Delete(context.Context, int64) error { return f.err }

// ---- harness ----

const (
	ownerID   int64 = 1
	modID     int64 = 2
	userID    int64 = 100
	modChatID int64 = -1001
	channel         = "@valorant_team"
)

type harness struct {
	t      *testing.T
	e      *Engine
	gw     *fakeGateway
	users  *services.UserService
	apps   *services.ApplicationService
	store  *session.MemoryStore
	logBuf *bytes.Buffer
	cbSeq  atomic.Int64
}

type option func(*Options, *engineDeps)

type engineDeps struct {
	apps    ApplicationService
	limiter *ratelimit.Limiter
}

func withLimits(fn func(*config.Limits)) option {
	return func(o *Options, _ *engineDeps) { fn(&o.Limits) }
}

func withApps(wrap func(ApplicationService) ApplicationService) option {
	return func(_ *Options, d *engineDeps) { d.apps = wrap(d.apps) }
}

func withLimiter(l *ratelimit.Limiter) option {
	return func(_ *Options, d *engineDeps) { d.limiter = l }
}

func newHarness(t *testing.T, opts ...option) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.OwnerID = ownerID
	cfg.ModeratorChatID = modChatID
	cfg.PublicChannel = channel

	db := repotest.NewSQLite(t)
	m := repomanager.NewSQLiteRepositoryManager()
	us := services.NewUserService(db, m, cfg)
	as := services.NewApplicationService(db, m)

	o := OptionsFromConfig(cfg)
	deps := &engineDeps{apps: as}
	for _, fn := range opts {
		fn(&o, deps)
	}

	gw := newFakeGateway()
	store := session.NewMemoryStore(100, 0)
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&syncWriter{w: &buf}, "debug")

	e := New(o, us, deps.apps, store, gw, deps.limiter, logger)
	return &harness{t: t, e: e, gw: gw, users: us, apps: as, store: store, logBuf: &buf}
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// say sends a text message from user in chat.
func (h *harness) say(user, chat int64, text string) {
	h.e.Handle(context.Background(), gateway.Update{
		UserID:   user,
		Username: fmt.Sprintf("user%d", user),
		ChatID:   chat,
		Private:  chat > 0,
		Action:   action.FromMessage(text),
	})
}

// press presses a button carrying token on message msgID.
func (h *harness) press(user, chat, msgID int64, token string) {
	cb := h.cbSeq.Add(1)
	h.e.Handle(context.Background(), gateway.Update{
		UserID:     user,
		Username:   fmt.Sprintf("user%d", user),
		ChatID:     chat,
		Private:    chat > 0,
		MessageID:  msgID,
		CallbackID: fmt.Sprintf("cb%d", cb),
		Action:     action.Parse(token),
	})
}

func (h *harness) session(user, chat int64) session.Session {
	s, _ := h.store.Get(session.Key{ChatID: chat, UserID: user})
	return s
}

func (h *harness) makeModerator(id int64) {
	h.t.Helper()
	ctx := context.Background()
	_, err := h.users.Touch(ctx, id, fmt.Sprintf("user%d", id))
	require.NoError(h.t, err)
	require.NoError(h.t, h.users.SetModerator(ctx, id, true))
}

// submitted stores a profile for user directly and returns it.
func (h *harness) submitted(user int64) *models.Application {
	h.t.Helper()
	app, err := h.apps.Submit(context.Background(), user, fmt.Sprintf("user%d", user), sampleProfile())
	require.NoError(h.t, err)
	return app
}

func (h *harness) logs() string {
	return h.logBuf.String()
}

func sampleProfile() models.Profile {
	return models.Profile{
		RiotID:  "Player123#EUW",
		Age:     20,
		Rank:    "Immortal 1",
		Roles:   []string{"Дуелянт"},
		Agents:  []string{"Jett"},
		Region:  "eu",
		Servers: []string{"eu_paris"},
		Bio:     "Не вказано",
		Contact: "@user",
	}
}

func hasButton(kb gateway.Keyboard, data string) bool {
	for _, row := range kb {
		for _, b := range row {
			if b.Data == data {
				return true
			}
		}
	}
	return false
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
