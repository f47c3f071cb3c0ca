// ABOUTME: End-to-end tests for the pi-intent command tree
// ABOUTME: Runs subcommands in-process with buffers for stdin, stdout, and stderr

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mauromedda/pi-intent/internal/intent"
	"github.com/mauromedda/pi-intent/internal/permission"
	"github.com/mauromedda/pi-intent/internal/recommend"
	"github.com/mauromedda/pi-intent/internal/resolver"
)

// These tests share the global logger, so they do not run in parallel.

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, settings, stdin string, args ...string) result {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(cfg, []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestMatch_Text(t *testing.T) {
	r := run(t, "", "", "match", "please", "compile", "the", "project")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "action:build  compile  en") {
		t.Errorf("unexpected output:\n%s", r.stdout)
	}
}

func TestMatch_JSON(t *testing.T) {
	r := run(t, "", "", "--format", "json", "match", "please compile the project")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var got []intent.Match
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", r.stdout, err)
	}
	want := []intent.Match{{Intent: "action:build", Keyword: "compile", Language: "en"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_JSONEmptyIsArray(t *testing.T) {
	r := run(t, "", "", "--format", "json", "match", "hello there")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if strings.TrimSpace(r.stdout) != "[]" {
		t.Errorf("expected empty array, got %q", r.stdout)
	}
}

func TestMatch_Stdin(t *testing.T) {
	r := run(t, "", "배포해줘\n", "match")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "action:deploy") || !strings.Contains(r.stdout, "ko") {
		t.Errorf("unexpected output:\n%s", r.stdout)
	}
}

func TestMatch_LanguageFlag(t *testing.T) {
	r := run(t, "", "", "match", "--lang", "ja", "please compile the project")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "no intents detected\n" {
		t.Errorf("expected no matches with --lang ja, got:\n%s", r.stdout)
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	r := run(t, "", "", "resolve", "build and test it")
	if r.err != nil {
		t.Fatal(r.err)
	}
	for _, want := range []string{"ambiguity:      50 ambiguous", "clarification:  Did you want to", "recommendation: none"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("missing %q in:\n%s", want, r.stdout)
		}
	}
}

func TestResolve_ThresholdFromSettings(t *testing.T) {
	r := run(t, "threshold: 80\n", "", "resolve", "build and test it")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "recommendation: action:build") {
		t.Errorf("expected recommendation under threshold 80:\n%s", r.stdout)
	}
}

func TestResolve_ThresholdFlagOverridesSettings(t *testing.T) {
	r := run(t, "threshold: 80\n", "", "resolve", "--threshold", "50", "build and test it")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "50 ambiguous") {
		t.Errorf("flag should override settings:\n%s", r.stdout)
	}
}

func TestResolve_NegativeThreshold(t *testing.T) {
	r := run(t, "", "", "resolve", "--threshold", "-1", "build")
	if r.err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestResolve_Markdown(t *testing.T) {
	r := run(t, "", "", "resolve", "--markdown", "deploy it")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.HasPrefix(r.stdout, "# Resolution") || !strings.Contains(r.stdout, "**action:deploy**") {
		t.Errorf("unexpected markdown:\n%s", r.stdout)
	}
}

func TestResolve_JSON(t *testing.T) {
	r := run(t, "", "", "--format", "json", "resolve", "summon the team")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var got resolver.Outcome
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if diff := cmp.Diff([]string{"team:summon"}, got.Intents); diff != "" {
		t.Errorf("intents mismatch (-want +got):\n%s", diff)
	}
	if !got.HasRecommendation || got.Recommendation.Type != recommend.TypeTeam {
		t.Errorf("expected team recommendation, got %+v", got.Recommendation)
	}
}

func TestRecommend(t *testing.T) {
	r := run(t, "", "", "recommend", "action:build", "action:nope")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "action:build") || !strings.Contains(r.stdout, "builder") {
		t.Errorf("unexpected output:\n%s", r.stdout)
	}
	if !strings.Contains(r.stderr, `unknown intent "action:nope"`) {
		t.Errorf("expected unknown intent warning, got stderr:\n%s", r.stderr)
	}
}

func TestRecommend_Suggestions(t *testing.T) {
	r := run(t, "", "", "recommend", "action:bild")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stderr, "did you mean") || !strings.Contains(r.stderr, "action:build") {
		t.Errorf("expected suggestion, got stderr:\n%s", r.stderr)
	}
	if r.stdout != "no recommendations\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRecommend_NoArgs(t *testing.T) {
	r := run(t, "", "", "recommend")
	if r.err == nil || !strings.Contains(r.err.Error(), "action:build") {
		t.Errorf("expected error listing known intents, got %v", r.err)
	}
}

func TestRecommend_BestFromText(t *testing.T) {
	r := run(t, "", "", "--format", "json", "recommend", "--text", "--best", "summon the team to deploy")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var got []recommend.Record
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Intent != "team:summon" {
		t.Errorf("best = %+v, want team:summon", got)
	}
}

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const cpuSnapshot = `{"platform":{"os":"linux","arch":"amd64"},"cpu":{"usage":92.5}}`

func TestInject(t *testing.T) {
	snap := writeSnapshot(t, cpuSnapshot)
	r := run(t, "", "", "inject", "--snapshot", snap, "why is the cpu so slow")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "why is the cpu so slow\n\n[System Context: linux/amd64 | CPU: 92.5%]\n"
	if r.stdout != want {
		t.Errorf("inject =\n%q\nwant\n%q", r.stdout, want)
	}
}

func TestInject_SnapshotFromStdin(t *testing.T) {
	r := run(t, "", cpuSnapshot, "inject", "--snapshot", "-", "cpu is slow")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "CPU: 92.5%") {
		t.Errorf("unexpected output:\n%s", r.stdout)
	}
}

func TestInject_NotRelevantJSON(t *testing.T) {
	snap := writeSnapshot(t, cpuSnapshot)
	r := run(t, "", "", "--format", "json", "inject", "--snapshot", snap, "hello")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var got injection
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Inject || got.Output != "hello" || len(got.Sections) != 0 {
		t.Errorf("unexpected injection %+v", got)
	}
}

func TestInject_Errors(t *testing.T) {
	if r := run(t, "", "", "inject", "cpu"); r.err == nil {
		t.Error("expected error without --snapshot")
	}
	if r := run(t, "", "", "inject", "--snapshot", filepath.Join(t.TempDir(), "missing.json"), "cpu"); r.err == nil {
		t.Error("expected error for missing snapshot file")
	}
	if r := run(t, "", "not json", "inject", "--snapshot", "-", "cpu"); r.err == nil {
		t.Error("expected error for malformed snapshot")
	}
}

func TestInject_RejectsNonPositiveTokens(t *testing.T) {
	snap := writeSnapshot(t, cpuSnapshot)
	for _, tokens := range []string{"0", "-5"} {
		r := run(t, "", "", "inject", "--snapshot", snap, "--tokens", tokens, "cpu is slow")
		if r.err == nil || !strings.Contains(r.err.Error(), "tokens must be positive") {
			t.Errorf("--tokens %s: err = %v, want rejection", tokens, r.err)
		}
		if r.stdout != "" {
			t.Errorf("--tokens %s: unexpected output %q", tokens, r.stdout)
		}
	}
}

func TestInject_TokensFlagShrinksBudget(t *testing.T) {
	snap := writeSnapshot(t, cpuSnapshot)
	r := run(t, "", "", "inject", "--snapshot", snap, "--tokens", "1", "cpu is slow")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "cpu is slow\n" {
		t.Errorf("inject with 1 token = %q, want prompt unchanged", r.stdout)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"ls -la", "auto"},
		{"git push origin main", "confirm"},
		{"rm -rf /", "blocked"},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			r := run(t, "", "", "classify", tt.action)
			if r.err != nil {
				t.Fatal(r.err)
			}
			if !strings.HasPrefix(r.stdout, tt.want+"  "+tt.action) {
				t.Errorf("classify %q = %q, want tier %s", tt.action, r.stdout, tt.want)
			}
		})
	}
}

func TestClassify_GateAsksAndAllows(t *testing.T) {
	r := run(t, "", "y\n", "classify", "--gate", "git push origin main")
	if r.err != nil {
		t.Fatalf("expected approval, got %v", r.err)
	}
	if !strings.Contains(r.stderr, "Proceed? [y/N]") {
		t.Errorf("expected prompt on stderr, got %q", r.stderr)
	}
}

func TestClassify_GateRefused(t *testing.T) {
	r := run(t, "", "n\n", "classify", "--gate", "git push origin main")
	if !errors.Is(r.err, permission.ErrDenied) {
		t.Errorf("expected ErrDenied, got %v", r.err)
	}
}

func TestClassify_GateBlocked(t *testing.T) {
	r := run(t, "", "", "--format", "json", "classify", "--gate", "--mode", "yolo", "rm -rf /")
	if !errors.Is(r.err, permission.ErrBlocked) {
		t.Errorf("expected ErrBlocked, got %v", r.err)
	}
	var got verdict
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Allowed || !got.Gated || got.Classification.Tier != permission.TierBlocked {
		t.Errorf("unexpected verdict %+v", got)
	}
}

func TestClassify_GateRulesFromSettings(t *testing.T) {
	settings := "allow: [\"git push*\"]\ndeny: [\"git commit*\"]\n"

	if r := run(t, settings, "", "classify", "--gate", "git push origin main"); r.err != nil {
		t.Errorf("allow rule should permit without asking, got %v", r.err)
	}
	if r := run(t, settings, "y\n", "classify", "--gate", "git commit -m wip"); !errors.Is(r.err, permission.ErrDenied) {
		t.Errorf("deny rule should refuse, got %v", r.err)
	}
}

func TestClassify_GatePlanMode(t *testing.T) {
	r := run(t, "permission_mode: plan\n", "y\n", "classify", "--gate", "git push origin main")
	if !errors.Is(r.err, permission.ErrDenied) {
		t.Errorf("plan mode should refuse confirm-tier actions, got %v", r.err)
	}
	if r := run(t, "permission_mode: plan\n", "", "classify", "--gate", "ls -la"); r.err != nil {
		t.Errorf("plan mode should allow auto-tier actions, got %v", r.err)
	}
}

func TestBatch_JSONLinesKeepOrder(t *testing.T) {
	input := "please compile the project\n\nbuild and test it\nsummon the team\n"
	r := run(t, "", input, "--format", "json", "batch", "-j", "2")
	if r.err != nil {
		t.Fatal(r.err)
	}

	var texts []string
	scanner := bufio.NewScanner(strings.NewReader(r.stdout))
	for scanner.Scan() {
		var out resolver.Outcome
		if err := json.Unmarshal(scanner.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		texts = append(texts, out.Text)
	}
	want := []string{"please compile the project", "build and test it", "summon the team"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBatch_TextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	if err := os.WriteFile(path, []byte("deploy it\nbuild and test it\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := run(t, "", "", "batch", path)
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "action:deploy") || !strings.Contains(r.stdout, "50?") {
		t.Errorf("unexpected table:\n%s", r.stdout)
	}
}

func TestConfig_JSON(t *testing.T) {
	r := run(t, "threshold: 70\nlanguages: [en]\n", "", "--format", "json", "config")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var got effectiveSettings
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Threshold != 70 || got.ContextTokens != 500 {
		t.Errorf("unexpected settings %+v", got)
	}
	if diff := cmp.Diff([]string{"en"}, got.Languages); diff != "" {
		t.Errorf("languages mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Text(t *testing.T) {
	r := run(t, "", "", "config")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "=== Intent ===") {
		t.Errorf("unexpected output:\n%s", r.stdout)
	}
}

func TestUnknownFormat(t *testing.T) {
	if r := run(t, "", "", "--format", "xml", "config"); r.err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestMissingConfigFile(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(""), &out, &errOut)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "config"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for missing --config file")
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd(strings.NewReader(""), &out, &out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "pi-intent dev") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	r := run(t, "", "", "--verbose", "match", "deploy")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stderr, "matched keywords") {
		t.Errorf("expected debug log on stderr, got %q", r.stderr)
	}
}
