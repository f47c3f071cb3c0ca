// ABOUTME: Tier tables: blocked/confirm substrings and patterns, command words per tier
// ABOUTME: Entries are lower-case; auto applies only when every pipeline segment is read-only

package permission

import "regexp"

// blockedActions are irreversible or catastrophic. Checked first.
var blockedActions = []string{
	"rm -rf /",
	"rm -rf ~",
	"rm -rf *",
	"rm -fr /",
	"mkfs",
	"dd if=",
	"> /dev/sd",
	"format disk",
	"format c:",
	"wipe disk",
	":(){",
	"chmod -r 777 /",
	"chown -r",
	"drop database",
	"drop table",
	"drop schema",
	"truncate table",
	"delete from",
	"shutdown",
	"reboot",
	"poweroff",
	"halt system",
	"init 0",
	"kill -9 1",
	"killall",
	"git push --force",
	"git push -f",
	"git clean -fdx",
	"docker system prune -a",
	"delete all",
	"erase all",
}

// confirmActions change state but can be inspected or undone.
var confirmActions = []string{
	"rm ",
	"rmdir",
	"delete",
	"remove",
	"kill",
	"restart",
	"stop",
	"docker rm",
	"docker run",
	"docker compose up",
	"docker compose down",
	"git push",
	"git reset",
	"git rebase",
	"git checkout",
	"git branch -d",
	"git commit",
	"git merge",
	"install",
	"upgrade",
	"update",
	"deploy",
	"chmod",
	"chown",
	"mv ",
	"write",
	"edit",
	"modify",
	"create",
	"systemctl",
	"migrate",
}

// blockedPatterns catch catastrophic constructs whose parts can be far apart.
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(curl|wget)\b[^|]*\|\s*(sudo\s+)?(ba|z|da|k)?sh\b`), // pipe a download into a shell
	regexp.MustCompile(`:\(\)\s*\{\s*:\s*\|\s*:`),                             // fork bomb
}

// confirmCommands are command words that change state, escalate, or move data
// off the machine, wherever they appear in a pipeline.
var confirmCommands = map[string]bool{
	"rm":       true,
	"rmdir":    true,
	"del":      true,
	"format":   true,
	"fdisk":    true,
	"su":       true,
	"sudo":     true,
	"passwd":   true,
	"chsh":     true,
	"usermod":  true,
	"useradd":  true,
	"userdel":  true,
	"groupadd": true,
	"groupdel": true,
	"chmod":    true,
	"chown":    true,
	"mount":    true,
	"umount":   true,
	"crontab":  true,
	"at":       true,
	"nc":       true,
	"netcat":   true,
	"ncat":     true,
	"socat":    true,
	"telnet":   true,
	"ssh":      true,
	"scp":      true,
	"rsync":    true,
	"curl":     true,
	"wget":     true,
	"tee":      true,
	"xargs":    true,
	"eval":     true,
	"exec":     true,
	"source":   true,
}

// riskyPatterns are shell constructs that keep an otherwise read-only
// command out of the auto tier.
var riskyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\(`),                  // command substitution $(...)
	regexp.MustCompile("`[^`]*`"),               // command substitution `...`
	regexp.MustCompile(`;\s*\w+`),               // chaining with semicolon
	regexp.MustCompile(`>`),                     // output redirection
	regexp.MustCompile(`/etc/(shadow|sudoers)`), // sensitive files
	regexp.MustCompile(`\bsed\b.*\s-i`),         // in-place edit
	regexp.MustCompile(`\bfind\b.*\s-(delete|exec)`),
}

// readOnlyCommands are command words (and free-text verbs) that only read or report.
var readOnlyCommands = map[string]bool{
	"ls":       true,
	"cat":      true,
	"head":     true,
	"tail":     true,
	"less":     true,
	"grep":     true,
	"egrep":    true,
	"fgrep":    true,
	"rg":       true,
	"wc":       true,
	"sort":     true,
	"uniq":     true,
	"echo":     true,
	"pwd":      true,
	"whoami":   true,
	"id":       true,
	"date":     true,
	"uptime":   true,
	"uname":    true,
	"which":    true,
	"file":     true,
	"stat":     true,
	"tree":     true,
	"find":     true,
	"df":       true,
	"du":       true,
	"ps":       true,
	"top":      true,
	"htop":     true,
	"free":     true,
	"jq":       true,
	"yq":       true,
	"read":     true,
	"list":     true,
	"show":     true,
	"view":     true,
	"check":    true,
	"inspect":  true,
	"display":  true,
	"describe": true,
}

// readOnlySubcommands are tools whose safety depends on the subcommand.
var readOnlySubcommands = map[string]map[string]bool{
	"git":     {"status": true, "log": true, "diff": true, "branch": true, "show": true, "blame": true},
	"docker":  {"ps": true, "logs": true, "inspect": true, "images": true},
	"kubectl": {"get": true, "describe": true, "logs": true},
}

var pipelineSplitter = regexp.MustCompile(`\s*(?:\|{1,2}|&&)\s*`)
