package engine

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
	"github.com/dmitrijs2005/teamfinder/internal/bot/catalog"
	"github.com/dmitrijs2005/teamfinder/internal/bot/gateway"
)

var (
	mainMenu   = [][]string{{action.LabelSubmit}, {action.LabelMine, action.LabelRules}}
	cancelMenu = [][]string{{action.LabelCancel}}

	cancelButton = gateway.Button{Text: "❌ Скасувати", Data: action.FormCancel{}.Token()}
)

// grid lays buttons out perRow to a row.
func grid(buttons []gateway.Button, perRow int) gateway.Keyboard {
	var kb gateway.Keyboard
	for chunk := range slices.Chunk(buttons, perRow) {
		kb = append(kb, chunk)
	}
	return kb
}

func checkbox(on bool, label string) string {
	if on {
		return "✅ " + label
	}
	return "☐ " + label
}

func ranksKeyboard() gateway.Keyboard {
	ranks := catalog.Ranks()
	buttons := make([]gateway.Button, len(ranks))
	for i, r := range ranks {
		buttons[i] = gateway.Button{Text: r, Data: action.RankChoice{Index: i}.Token()}
	}
	return append(grid(buttons, 3), gateway.Row(cancelButton))
}

func rolesKeyboard(selected []string, limit int) gateway.Keyboard {
	roles := catalog.Roles()
	buttons := make([]gateway.Button, len(roles))
	for i, r := range roles {
		buttons[i] = gateway.Button{Text: checkbox(slices.Contains(selected, r), r), Data: action.RoleToggle{Label: r}.Token()}
	}
	return append(grid(buttons, 2),
		gateway.Row(gateway.Button{Text: fmt.Sprintf("🔸 Підтвердити вибір (до %d)", limit), Data: action.RolesConfirm{}.Token()}),
		gateway.Row(cancelButton),
	)
}

func agentsKeyboard(selected []string, limit int) gateway.Keyboard {
	agents := catalog.Agents()
	buttons := make([]gateway.Button, len(agents))
	for i, a := range agents {
		buttons[i] = gateway.Button{Text: checkbox(slices.Contains(selected, a), a), Data: action.AgentToggle{Index: i}.Token()}
	}
	return append(grid(buttons, 3),
		gateway.Row(gateway.Button{Text: fmt.Sprintf("🔸 Підтвердити вибір (до %d)", limit), Data: action.AgentsConfirm{}.Token()}),
		gateway.Row(cancelButton),
	)
}

func regionsKeyboard() gateway.Keyboard {
	regions := catalog.Regions()
	buttons := make([]gateway.Button, len(regions))
	for i, r := range regions {
		buttons[i] = gateway.Button{Text: r.Name, Data: action.RegionChoice{Code: r.Code}.Token()}
	}
	return append(grid(buttons, 2), gateway.Row(cancelButton))
}

func serversKeyboard(region catalog.Region, selected []string) gateway.Keyboard {
	var kb gateway.Keyboard
	for _, s := range region.Servers {
		kb = append(kb, gateway.Row(gateway.Button{
			Text: checkbox(slices.Contains(selected, s.Code), s.Name),
			Data: action.ServerToggle{Code: s.Code}.Token(),
		}))
	}
	return append(kb,
		gateway.Row(gateway.Button{Text: "🔸 Підтвердити вибір серверів", Data: action.ServersConfirm{}.Token()}),
		gateway.Row(gateway.Button{Text: "◀️ Назад до регіонів", Data: action.ServersBack{}.Token()}),
		gateway.Row(cancelButton),
	)
}

func confirmKeyboard() gateway.Keyboard {
	return gateway.Keyboard{
		gateway.Row(gateway.Button{Text: "✅ Все вірно, відправити", Data: action.FormConfirm{}.Token()}),
		gateway.Row(cancelButton),
	}
}

func moderationKeyboard(appID int64) gateway.Keyboard {
	return gateway.Keyboard{gateway.Row(
		gateway.Button{Text: "✅ Схвалити", Data: action.Approve{AppID: appID}.Token()},
		gateway.Button{Text: "❌ Відхилити", Data: action.Reject{AppID: appID}.Token()},
	)}
}

// reasonsKeyboard marks chosen reasons and ends with the custom sentinel.
func reasonsKeyboard(appID int64, chosen []string) gateway.Keyboard {
	var kb gateway.Keyboard
	for _, r := range catalog.Reasons() {
		label := r.Label
		if slices.Contains(chosen, r.Code) {
			label = "✅ " + label
		}
		kb = append(kb, gateway.Row(gateway.Button{Text: label, Data: action.RejectReason{AppID: appID, Code: r.Code}.Token()}))
	}
	return append(kb,
		gateway.Row(gateway.Button{Text: catalog.CustomReasonLabel, Data: action.RejectReason{AppID: appID, Code: catalog.CustomReason}.Token()}),
		gateway.Row(gateway.Button{Text: "🔸 Підтвердити відхилення", Data: action.RejectConfirm{AppID: appID}.Token()}),
		gateway.Row(gateway.Button{Text: "❌ Скасувати відхилення", Data: action.RejectCancel{AppID: appID}.Token()}),
	)
}

func customReasonKeyboard(appID int64) gateway.Keyboard {
	return gateway.Keyboard{
		gateway.Row(gateway.Button{Text: "◀️ Назад до вибору причин", Data: action.RejectBack{AppID: appID}.Token()}),
		gateway.Row(gateway.Button{Text: "❌ Скасувати відхилення", Data: action.RejectCancel{AppID: appID}.Token()}),
	}
}

func manageKeyboard(appID int64) gateway.Keyboard {
	return gateway.Keyboard{gateway.Row(gateway.Button{Text: "🗑️ Видалити анкету", Data: action.DeleteApplication{AppID: appID}.Token()})}
}
