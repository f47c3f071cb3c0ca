// ABOUTME: Static recommendation table with one strategy per canonical intent
// ABOUTME: Records are cloned on read so callers cannot mutate the table

package recommend

// table holds one strategy per known canonical intent.
var table = map[string]Record{
	"action:build": {
		Intent:      "action:build",
		Type:        TypeAction,
		Description: "Compile and package the project",
		Roles:       []string{"builder"},
		Commands:    []string{"build"},
	},
	"action:implement": {
		Intent:      "action:implement",
		Type:        TypeAction,
		Description: "Implement a feature end to end",
		Roles:       []string{"architect", "implementer"},
		Commands:    []string{"implement", "build"},
	},
	"action:test": {
		Intent:      "action:test",
		Type:        TypeAction,
		Description: "Write and run tests",
		Roles:       []string{"tester"},
		Commands:    []string{"test"},
	},
	"action:fix": {
		Intent:      "action:fix",
		Type:        TypeAction,
		Description: "Locate and fix a defect",
		Roles:       []string{"debugger", "implementer"},
		Commands:    []string{"fix", "test"},
	},
	"action:debug": {
		Intent:      "action:debug",
		Type:        TypeAction,
		Description: "Diagnose a failure from logs and traces",
		Roles:       []string{"debugger"},
		Commands:    []string{"debug"},
	},
	"action:refactor": {
		Intent:      "action:refactor",
		Type:        TypeAction,
		Description: "Restructure code without changing behavior",
		Roles:       []string{"refactorer", "reviewer"},
		Commands:    []string{"refactor", "test"},
	},
	"action:review": {
		Intent:      "action:review",
		Type:        TypeAction,
		Description: "Review changes for correctness and quality",
		Roles:       []string{"reviewer"},
		Commands:    []string{"review"},
	},
	"action:deploy": {
		Intent:      "action:deploy",
		Type:        TypeAction,
		Description: "Ship a release to an environment",
		Roles:       []string{"devops"},
		Commands:    []string{"build", "deploy"},
	},
	"action:explain": {
		Intent:      "action:explain",
		Type:        TypeAction,
		Description: "Explain how code or a system works",
		Roles:       []string{},
		Commands:    []string{"explain"},
	},
	"action:plan": {
		Intent:      "action:plan",
		Type:        TypeAction,
		Description: "Produce a design and task breakdown",
		Roles:       []string{"architect"},
		Commands:    []string{"plan"},
	},
	"action:document": {
		Intent:      "action:document",
		Type:        TypeAction,
		Description: "Write or update documentation",
		Roles:       []string{"writer"},
		Commands:    []string{"document"},
	},
	"action:optimize": {
		Intent:      "action:optimize",
		Type:        TypeAction,
		Description: "Profile and improve performance",
		Roles:       []string{"optimizer", "tester"},
		Commands:    []string{"profile", "optimize", "test"},
	},
	"team:summon": {
		Intent:      "team:summon",
		Type:        TypeTeam,
		Description: "Assemble the full team for a multi-step task",
		Roles:       []string{"architect", "implementer", "tester", "reviewer"},
		Commands:    []string{"plan", "implement", "test", "review"},
	},
	"team:parallel": {
		Intent:      "team:parallel",
		Type:        TypeTeam,
		Description: "Fan independent subtasks out to parallel agents",
		Roles:       []string{"coordinator", "implementer", "tester"},
		Commands:    []string{"dispatch", "merge"},
	},
}
