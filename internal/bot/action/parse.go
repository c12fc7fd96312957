package action

import (
	"strconv"
	"strings"
)

// Parse decodes a button token. Unknown tags and bad payloads come back as
// Malformed; Parse never fails otherwise.
func Parse(token string) Action {
	tag, payload, hasPayload := strings.Cut(token, ":")

	bad := func(reason string) Action { return Malformed{Raw: token, Reason: reason} }

	switch tag {
	case tagRank:
		n, ok := ordinal(payload)
		if !ok {
			return bad("rank ordinal")
		}
		return RankChoice{Index: n}

	case tagRole:
		switch {
		case payload == payloadConfirm:
			return RolesConfirm{}
		case payload != "":
			return RoleToggle{Label: payload}
		}
		return bad("empty role")

	case tagAgent:
		if payload == payloadConfirm {
			return AgentsConfirm{}
		}
		n, ok := ordinal(payload)
		if !ok {
			return bad("agent ordinal")
		}
		return AgentToggle{Index: n}

	case tagRegion:
		if payload == "" {
			return bad("empty region")
		}
		return RegionChoice{Code: payload}

	case tagServer:
		switch {
		case payload == payloadConfirm:
			return ServersConfirm{}
		case payload != "":
			return ServerToggle{Code: payload}
		}
		return bad("empty server")

	case tagServerBack, tagFormConfirm, tagFormCancel:
		if hasPayload {
			return bad("unexpected payload")
		}
		switch tag {
		case tagServerBack:
			return ServersBack{}
		case tagFormConfirm:
			return FormConfirm{}
		}
		return FormCancel{}

	case tagRejectReason:
		rawID, code, ok := strings.Cut(payload, ":")
		appID, idOK := appID(rawID)
		if !ok || !idOK || code == "" {
			return bad("reject reason")
		}
		return RejectReason{AppID: appID, Code: code}

	case tagApprove, tagReject, tagRejectConfirm, tagRejectCancel, tagRejectBack, tagDelete:
		appID, ok := appID(payload)
		if !ok {
			return bad("application id")
		}
		switch tag {
		case tagApprove:
			return Approve{AppID: appID}
		case tagReject:
			return Reject{AppID: appID}
		case tagRejectConfirm:
			return RejectConfirm{AppID: appID}
		case tagRejectCancel:
			return RejectCancel{AppID: appID}
		case tagRejectBack:
			return RejectBack{AppID: appID}
		}
		return DeleteApplication{AppID: appID}
	}

	return bad("unknown tag")
}

func ordinal(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func appID(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
