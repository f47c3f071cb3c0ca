// ABOUTME: Static intent labels and the near-synonym pair registry used by ambiguity scoring
// ABOUTME: Adding a synonym relationship or label is a data change here, not a code change

package intent

// pair is an unordered pair of intents; newPair orders its members.
type pair struct{ a, b string }

func newPair(x, y string) pair {
	if x > y {
		x, y = y, x
	}
	return pair{x, y}
}

// synonymPairs holds intents whose practical effect overlaps.
var synonymPairs = map[pair]bool{
	newPair("action:build", "action:implement"):   true,
	newPair("action:fix", "action:debug"):         true,
	newPair("action:refactor", "action:optimize"): true,
	newPair("action:explain", "action:document"):  true,
	newPair("team:summon", "team:parallel"):       true,
}

func areSynonyms(x, y string) bool {
	return synonymPairs[newPair(x, y)]
}

// labels maps intents to the phrase used in clarifying questions.
var labels = map[string]string{
	"action:build":     "build the project",
	"action:implement": "implement a feature",
	"action:test":      "run the tests",
	"action:fix":       "fix a bug",
	"action:debug":     "debug a problem",
	"action:refactor":  "refactor the code",
	"action:review":    "review the code",
	"action:deploy":    "deploy a release",
	"action:explain":   "get an explanation",
	"action:plan":      "plan the work",
	"action:document":  "write documentation",
	"action:optimize":  "optimize performance",
	"team:summon":      "bring in the whole team",
	"team:parallel":    "run agents in parallel",
}

// Label returns the human-readable label for an intent.
func Label(intent string) (string, bool) {
	l, ok := labels[intent]
	return l, ok
}
