package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"flare/internal/diag"
	"flare/internal/diagfmt"
)

const sampleTOML = `
source = "// code\nprint 'Hello, World!'"
start = 8
end = 13
message = "Bad function"
kind = "warning"
notes = ["This is a note"]
helps = ["Some help text"]

[config]
color = false
char-set = "ascii"

[[label]]
start = 8
end = 13
message = "Invalid command"
color = "red"

[[file]]
name = "other.txt"
text = "other text"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpecTOML(t *testing.T) {
	spec, err := loadSpec(writeTemp(t, "report.toml", sampleTOML))
	if err != nil {
		t.Fatalf("loadSpec failed: %v", err)
	}
	if spec.Message != "Bad function" || spec.Kind != "warning" {
		t.Errorf("spec = %+v", spec)
	}
	if len(spec.Labels) != 1 || spec.Labels[0].Message != "Invalid command" {
		t.Errorf("labels = %+v", spec.Labels)
	}
	if len(spec.Files) != 1 || spec.Files[0].Name != "other.txt" {
		t.Errorf("files = %+v", spec.Files)
	}
	if spec.Config == nil || spec.Config.Color == nil || *spec.Config.Color {
		t.Errorf("config = %+v", spec.Config)
	}
}

func TestLoadSpecMsgpack(t *testing.T) {
	want := reportSpec{
		Source:  "abc",
		Start:   0,
		End:     1,
		Message: "machine made",
		Labels:  []labelSpec{{Start: 0, End: 1, Message: "m"}},
	}
	raw, err := msgpack.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "report.mpk")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadSpec(path)
	if err != nil {
		t.Fatalf("loadSpec failed: %v", err)
	}
	if got.Message != want.Message || len(got.Labels) != 1 {
		t.Fatalf("spec = %+v", got)
	}
}

func TestLoadSpecUnknownExtension(t *testing.T) {
	if _, err := loadSpec(writeTemp(t, "report.yaml", "x")); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestBuildReportRenders(t *testing.T) {
	spec, err := loadSpec(writeTemp(t, "report.toml", sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := buildReport(spec)
	if err != nil {
		t.Fatalf("buildReport failed: %v", err)
	}

	var buf bytes.Buffer
	if err := diagfmt.Render(&buf, rep.Snapshot(), rep.Sources()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, fragment := range []string{
		"Warning: Bad function",
		"print 'Hello, World!'",
		"^^^^^ Invalid command",
		"= note: This is a note",
		"= help: Some help text",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestBuildConfigDefaultsAndOverrides(t *testing.T) {
	cfg, err := buildConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != diag.DefaultConfig() {
		t.Fatalf("nil spec must yield defaults, got %+v", cfg)
	}

	compact := true
	tabs := 8
	cfg, err = buildConfig(&optionsSpec{
		Compact:   &compact,
		TabWidth:  &tabs,
		CharSet:   "ascii",
		IndexType: "byte",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Compact || cfg.TabWidth != 8 || cfg.CharSet != diag.CharSetAscii || cfg.IndexType != diag.IndexByte {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Underlines {
		t.Fatal("untouched fields must keep defaults")
	}

	if _, err := buildConfig(&optionsSpec{CharSet: "marble"}); err == nil {
		t.Fatal("expected char set validation failure")
	}
}

func TestBuildReportConflictingPrimary(t *testing.T) {
	_, err := buildReport(reportSpec{Source: "abc", Path: "x.lox"})
	if err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestBuildReportBadKind(t *testing.T) {
	_, err := buildReport(reportSpec{Source: "abc", Kind: "catastrophe"})
	if err == nil {
		t.Fatal("expected kind resolution failure")
	}
}
