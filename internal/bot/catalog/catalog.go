// Package catalog holds the static reference lists the form and moderation
// workflows index into. Ordinals are stable; nothing here is mutated at runtime.
package catalog

var ranks = []string{
	"Iron 1", "Iron 2", "Iron 3",
	"Bronze 1", "Bronze 2", "Bronze 3",
	"Silver 1", "Silver 2", "Silver 3",
	"Gold 1", "Gold 2", "Gold 3",
	"Platinum 1", "Platinum 2", "Platinum 3",
	"Diamond 1", "Diamond 2", "Diamond 3",
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

var roles = []string{"Дуелянт", "Захисник", "Контролер", "Ініціатор"}

// agents is kept in byte order.
var agents = []string{
	"Astra", "Breach", "Brimstone", "Chamber", "Clove", "Cypher", "Deadlock",
	"Fade", "Gekko", "Harbor", "Iso", "Jett", "KAY/O", "Killjoy", "Neon",
	"Omen", "Phoenix", "Raze", "Reyna", "Sage", "Skye", "Sova", "Tejo",
	"Veto", "Viper", "Vyse", "Waylay", "Yoru",
}

// Ranks returns the rank list in ordinal order.
func Ranks() []string { return clone(ranks) }

// Rank returns the rank at ordinal i.
func Rank(i int) (string, bool) {
	if i < 0 || i >= len(ranks) {
		return "", false
	}
	return ranks[i], true
}

// Roles returns the role labels in display order.
func Roles() []string { return clone(roles) }

// IsRole reports whether label is a known role.
func IsRole(label string) bool {
	for _, r := range roles {
		if r == label {
			return true
		}
	}
	return false
}

// Agents returns the agent names in ordinal order.
func Agents() []string { return clone(agents) }

// Agent returns the agent at ordinal i.
func Agent(i int) (string, bool) {
	if i < 0 || i >= len(agents) {
		return "", false
	}
	return agents[i], true
}

// AgentIndex returns the ordinal of name or -1.
func AgentIndex(name string) int {
	for i, a := range agents {
		if a == name {
			return i
		}
	}
	return -1
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
