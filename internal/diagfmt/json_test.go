package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"flare/internal/diag"
	"flare/internal/source"
)

func TestWriteJSON(t *testing.T) {
	rep, err := diag.NewReport(source.Inline{Name: "main.lox", Text: "line one\nline two"}, 9, 13, plainConfig(),
		diag.WithKind("warning"),
		diag.WithCode("W007"),
		diag.WithReportMessage("odd line"),
		diag.WithSources(source.Inline{Name: "other.txt", Text: "other text"}),
	)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	if _, err := rep.Label(9, 13, diag.WithMessage("here")); err != nil {
		t.Fatal(err)
	}
	if _, err := rep.Label(0, 5, diag.WithTarget("other.txt"), diag.WithOrder(2)); err != nil {
		t.Fatal(err)
	}
	rep.AddNote("a note")
	rep.AddHelp("a help")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep.Snapshot(), rep.Sources()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got ReportJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if got.Kind != "Warning" || got.Code != "W007" || got.Message != "odd line" {
		t.Errorf("header fields = %q/%q/%q", got.Kind, got.Code, got.Message)
	}
	if got.Location.Path != "main.lox" || got.Location.StartLine != 2 || got.Location.StartCol != 1 {
		t.Errorf("primary location = %+v", got.Location)
	}
	if len(got.Labels) != 2 {
		t.Fatalf("labels = %d, want 2", len(got.Labels))
	}
	if got.Labels[0].Location.Path != "main.lox" {
		t.Errorf("unset target must resolve to primary, got %q", got.Labels[0].Location.Path)
	}
	if got.Labels[1].Location.Path != "other.txt" || got.Labels[1].Order != 2 {
		t.Errorf("second label = %+v", got.Labels[1])
	}
	if got.Labels[0].Color == "" {
		t.Error("auto-colored label must serialise its color")
	}
	if len(got.Notes) != 1 || got.Notes[0] != "a note" {
		t.Errorf("notes = %v", got.Notes)
	}
	if len(got.Helps) != 1 || got.Helps[0] != "a help" {
		t.Errorf("helps = %v", got.Helps)
	}
	want := []string{"main.lox", "other.txt"}
	if len(got.Sources) != 2 || got.Sources[0] != want[0] || got.Sources[1] != want[1] {
		t.Errorf("sources = %v, want %v", got.Sources, want)
	}
}

func TestWriteJSONUnknownTarget(t *testing.T) {
	rep, err := diag.NewReport(source.Inline{Text: "abc"}, 0, 1, plainConfig())
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	if _, err := rep.Label(0, 1, diag.WithTarget("nope.txt")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep.Snapshot(), rep.Sources()); err == nil {
		t.Fatal("expected unknown target failure")
	}
}
