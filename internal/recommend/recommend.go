// ABOUTME: Maps canonical intents to execution-strategy records (helper roles and commands)
// ABOUTME: Team records outrank action records when picking the single best recommendation

package recommend

// Type distinguishes single-action strategies from multi-agent team strategies.
type Type string

const (
	TypeAction Type = "action"
	TypeTeam   Type = "team"
)

// Record is the execution strategy for one canonical intent.
type Record struct {
	Intent      string   `json:"intent"`
	Type        Type     `json:"type"`
	Description string   `json:"description"`
	Roles       []string `json:"roles"`
	Commands    []string `json:"commands"`
}

// Lookup is the result of resolving one intent against the table.
// Found is false for intents the table does not know.
type Lookup struct {
	Intent string
	Record Record
	Found  bool
}

// Find resolves a single intent.
func Find(intent string) Lookup {
	r, ok := table[intent]
	if !ok {
		return Lookup{Intent: intent}
	}
	return Lookup{Intent: intent, Record: r.clone(), Found: true}
}

// LookupAll resolves each distinct intent in input order, keeping misses.
func LookupAll(intents []string) []Lookup {
	seen := make(map[string]bool, len(intents))
	out := make([]Lookup, 0, len(intents))
	for _, in := range intents {
		if seen[in] {
			continue
		}
		seen[in] = true
		out = append(out, Find(in))
	}
	return out
}

// Recommendations returns the records for the known intents, in input order.
func Recommendations(intents []string) []Record {
	var out []Record
	for _, l := range LookupAll(intents) {
		if l.Found {
			out = append(out, l.Record)
		}
	}
	return out
}

// Best picks the single strategy to run. Any team record wins over action
// records regardless of position; otherwise the first known action wins.
func Best(intents []string) (Record, bool) {
	lookups := LookupAll(intents)
	for _, l := range lookups {
		if l.Found && l.Record.Type == TypeTeam {
			return l.Record, true
		}
	}
	for _, l := range lookups {
		if l.Found && l.Record.Type == TypeAction {
			return l.Record, true
		}
	}
	return Record{}, false
}

func (r Record) clone() Record {
	r.Roles = append([]string{}, r.Roles...)
	r.Commands = append([]string{}, r.Commands...)
	return r
}
