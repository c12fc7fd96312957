// Package presenter renders profiles as Telegram HTML. Every user-supplied
// value is escaped.
package presenter

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/catalog"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
)

// Preview is shown to the user before submitting and to moderators.
func Preview(p models.Profile) string {
	var b strings.Builder
	line(&b, "🎮 <b>Riot ID:</b> ", p.RiotID)
	line(&b, "📅 <b>Вік:</b> ", strconv.Itoa(p.Age))
	line(&b, "🏆 <b>Ранг:</b> ", p.Rank)
	line(&b, "🎯 <b>Ролі:</b> ", join(p.Roles))
	line(&b, "🦸 <b>Агенти:</b> ", join(p.Agents))
	line(&b, "🌍 <b>Сервери:</b> ", join(ServerNames(p)))
	line(&b, "💬 <b>Про себе:</b> ", p.Bio)
	b.WriteString("📞 <b>Контакт:</b> " + html.EscapeString(p.Contact))
	return b.String()
}

// PublicPost is the channel post of an approved profile.
func PublicPost(p models.Profile) string {
	var b strings.Builder
	b.WriteString("🎮 <b>Шукаю напарника в Valorant!</b>\n\n")
	line(&b, "👤 <b>Гравець:</b> ", p.RiotID)
	line(&b, "🏆 <b>Ранг:</b> ", p.Rank)
	line(&b, "🎯 <b>Ролі:</b> ", join(p.Roles))
	line(&b, "🦸 <b>Агенти:</b> ", join(p.Agents))
	line(&b, "🌍 <b>Сервери:</b> ", join(ServerNames(p)))
	line(&b, "💬 <b>Стиль гри:</b> ", p.Bio)
	b.WriteString("📞 <b>Зв'язок:</b> " + html.EscapeString(p.Contact) + "\n\n")
	b.WriteString(strings.Join(Hashtags(p), " "))
	return b.String()
}

// Hashtags returns #valorant, one tag per role and one for the first word
// of the rank.
func Hashtags(p models.Profile) []string {
	tags := []string{"#valorant"}
	for _, r := range p.Roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		tags = append(tags, tag(strings.ReplaceAll(r, " ", "_")))
	}

	if words := strings.Fields(p.Rank); len(words) > 0 {
		tags = append(tags, tag(words[0]))
	} else {
		tags = append(tags, "#rank")
	}
	return tags
}

// ServerNames resolves the server codes of p to display names.
func ServerNames(p models.Profile) []string {
	names := make([]string, 0, len(p.Servers))
	for _, code := range p.Servers {
		names = append(names, catalog.ServerName(p.Region, code))
	}
	return names
}

// ReasonLabels resolves reason codes to labels. Unknown codes are kept as is.
func ReasonLabels(codes []string) []string {
	labels := make([]string, 0, len(codes))
	for _, c := range codes {
		if l, ok := catalog.ReasonLabel(c); ok {
			labels = append(labels, l)
			continue
		}
		labels = append(labels, c)
	}
	return labels
}

// Bullets renders items as an escaped bullet list.
func Bullets(items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = fmt.Sprintf("• %s", html.EscapeString(s))
	}
	return strings.Join(lines, "\n")
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('\n')
}

func join(s []string) string { return strings.Join(s, ", ") }

func tag(s string) string { return "#" + html.EscapeString(strings.ToLower(s)) }
