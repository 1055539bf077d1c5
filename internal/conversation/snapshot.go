package conversation

import (
	"strings"

	"adaptive-response-engine/internal/model"
)

// String renders the snapshot in the fixed layout used inside prompts.
// Equal snapshots always render to the same string.
func (s Snapshot) String() string {
	var b strings.Builder

	b.WriteString(headerHistory)
	b.WriteByte('\n')
	for _, t := range s.Turns {
		b.WriteString(t.Speaker)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(headerThreads)
	b.WriteByte('\n')
	if len(s.ActiveThreads) == 0 {
		b.WriteString(noThreads)
		b.WriteByte('\n')
	}
	for _, thread := range s.ActiveThreads {
		b.WriteString("- ")
		b.WriteString(thread)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(headerLastAgent)
	b.WriteByte('\n')
	b.WriteString(orNone(s.LastAgent))
	b.WriteByte('\n')

	b.WriteByte('\n')
	b.WriteString(headerPrimaryIntent)
	b.WriteByte('\n')
	b.WriteString(orNone(string(s.LastPrimaryIntent)))

	return b.String()
}

// LastPrimaryText returns the text of the newest primary turn in the snapshot.
func (s Snapshot) LastPrimaryText() string {
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role == model.RolePrimary {
			return s.Turns[i].Text
		}
	}
	return ""
}

func orNone(v string) string {
	if v == "" {
		return none
	}
	return v
}
