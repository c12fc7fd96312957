package action

import "strings"

type MenuItem int

const (
	MenuSubmit MenuItem = iota + 1
	MenuMine
	MenuRules
)

// Reply-keyboard labels.
const (
	LabelSubmit = "Подати анкету"
	LabelMine   = "Моя анкета"
	LabelRules  = "Правила"
	LabelCancel = "Скасувати"
)

// FromMessage classifies a text message. The cancel button and menu labels
// are recognised before anything else so they win over step input.
func FromMessage(text string) Action {
	trimmed := strings.TrimSpace(text)

	switch trimmed {
	case LabelCancel:
		return FormCancel{}
	case LabelSubmit:
		return Menu{Item: MenuSubmit}
	case LabelMine:
		return Menu{Item: MenuMine}
	case LabelRules:
		return Menu{Item: MenuRules}
	}

	if strings.HasPrefix(trimmed, "/") {
		head, args, _ := strings.Cut(trimmed[1:], " ")
		name, _, _ := strings.Cut(head, "@")
		if name != "" {
			return Command{Name: strings.ToLower(name), Args: strings.TrimSpace(args)}
		}
	}

	return Text{Body: text}
}
