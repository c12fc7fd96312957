package catalog

// CustomReason is the sentinel code that switches rejection to free text.
const CustomReason = "custom"

// Reason is a structured rejection reason.
type Reason struct {
	Code  string
	Label string
}

var reasons = []Reason{
	{"bad_id", "Некоректний ID"},
	{"offensive", "Образливий зміст"},
	{"insufficient", "Недостатньо інформації"},
	{"rules", "Порушення правил"},
	{"other", "Інше"},
}

// CustomReasonLabel is the button label for CustomReason.
const CustomReasonLabel = "💬 Своя причина"

// Reasons returns structured reasons in display order, without the custom sentinel.
func Reasons() []Reason {
	out := make([]Reason, len(reasons))
	copy(out, reasons)
	return out
}

// ReasonLabel resolves a structured reason code.
func ReasonLabel(code string) (string, bool) {
	for _, r := range reasons {
		if r.Code == code {
			return r.Label, true
		}
	}
	return "", false
}
