package session

import (
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetClear(t *testing.T) {
	s := NewMemoryStore(0, 0)
	k := Key{ChatID: 1, UserID: 1}

	_, ok := s.Get(k)
	assert.False(t, ok)

	s.Put(k, Session{State: Age, Draft: models.Profile{RiotID: "a#b"}})
	got, ok := s.Get(k)
	require.True(t, ok)
	assert.Equal(t, Age, got.State)
	assert.Equal(t, "a#b", got.Draft.RiotID)

	s.Clear(k)
	_, ok = s.Get(k)
	assert.False(t, ok)
}

func TestStore_IdlePutClears(t *testing.T) {
	s := NewMemoryStore(0, 0)
	k := Key{ChatID: 1, UserID: 1}
	s.Put(k, Session{State: Bio})
	s.Put(k, Session{})
	assert.Zero(t, s.Len())
}

func TestStore_KeysAreIndependent(t *testing.T) {
	s := NewMemoryStore(0, 0)
	private := Key{ChatID: 5, UserID: 5}
	modChat := Key{ChatID: -100, UserID: 5}

	s.Put(private, Session{State: Roles})
	s.Put(modChat, Session{State: ReasonSelection, Reject: &Reject{AppID: 3}})

	a, _ := s.Get(private)
	b, _ := s.Get(modChat)
	assert.Equal(t, Roles, a.State)
	assert.Equal(t, ReasonSelection, b.State)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0, 0)
	k := Key{ChatID: 1, UserID: 2}
	s.Put(k, Session{State: Roles, Draft: models.Profile{Roles: []string{"Дуелянт"}}, Reject: &Reject{Reasons: []string{"rules"}}})

	got, _ := s.Get(k)
	got.Draft.Roles[0] = "changed"
	got.Reject.Reasons[0] = "changed"

	again, _ := s.Get(k)
	assert.Equal(t, []string{"Дуелянт"}, again.Draft.Roles)
	assert.Equal(t, []string{"rules"}, again.Reject.Reasons)
}

func TestStore_TTL(t *testing.T) {
	s := NewMemoryStore(10, 50*time.Millisecond)
	k := Key{ChatID: 1, UserID: 1}
	s.Put(k, Session{State: Age})

	assert.Eventually(t, func() bool {
		_, ok := s.Get(k)
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}

func TestStore_Capacity(t *testing.T) {
	s := NewMemoryStore(2, 0)
	for i := int64(1); i <= 3; i++ {
		s.Put(Key{ChatID: i, UserID: i}, Session{State: Age})
	}
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(Key{ChatID: 1, UserID: 1})
	assert.False(t, ok, "least recently used session is evicted")
}

func TestStore_LockSerialisesReadModifyWrite(t *testing.T) {
	s := NewMemoryStore(0, 0)
	k := Key{ChatID: 9, UserID: 9}
	s.Put(k, Session{State: Agents})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock := s.Lock(k)
			defer unlock()
			sess, _ := s.Get(k)
			sess.Draft.Agents = append(sess.Draft.Agents, string(rune('A'+i%26))+string(rune('a'+i/26)))
			s.Put(k, sess)
		}(i)
	}
	wg.Wait()

	got, _ := s.Get(k)
	assert.Len(t, got.Draft.Agents, n, "no lost updates")
}

func TestToggle(t *testing.T) {
	orig := []string{"Jett", "Sage"}

	once := Toggle(orig, "Omen")
	assert.Equal(t, []string{"Jett", "Sage", "Omen"}, once)
	assert.Equal(t, []string{"Jett", "Sage"}, orig, "input is not mutated")

	twice := Toggle(once, "Omen")
	assert.Equal(t, orig, twice)

	assert.Equal(t, []string{"Sage"}, Toggle(orig, "Jett"))
	assert.Equal(t, []string{"x"}, Toggle(nil, "x"))
}

func TestStateGroups(t *testing.T) {
	assert.True(t, Servers.InForm())
	assert.False(t, Idle.InForm())
	assert.False(t, CustomReason.InForm())
	assert.True(t, CustomReason.InRejection())
	assert.False(t, Confirmation.InRejection())
}
