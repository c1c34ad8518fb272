package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"flare/internal/color"
	"flare/internal/diag"
	"flare/internal/source"
)

// reportSpec is the on-disk description of one diagnostic report.
// TOML is the human-edited form; msgpack carries the same shape for
// machine pipelines (a compiler handing its findings to flare).
type reportSpec struct {
	Source  string `toml:"source" msgpack:"source"` // inline primary text
	Path    string `toml:"path" msgpack:"path"`     // or a primary file path
	Start   uint32 `toml:"start" msgpack:"start"`
	End     uint32 `toml:"end" msgpack:"end"`
	Code    string `toml:"code" msgpack:"code"`
	Message string `toml:"message" msgpack:"message"`

	Kind      string `toml:"kind" msgpack:"kind"`
	KindColor string `toml:"kind-color" msgpack:"kind_color"`

	Labels []labelSpec  `toml:"label" msgpack:"labels"`
	Files  []fileSpec   `toml:"file" msgpack:"files"`
	Notes  []string     `toml:"notes" msgpack:"notes"`
	Helps  []string     `toml:"helps" msgpack:"helps"`
	Config *optionsSpec `toml:"config" msgpack:"config"`
}

type labelSpec struct {
	Start    uint32 `toml:"start" msgpack:"start"`
	End      uint32 `toml:"end" msgpack:"end"`
	Target   string `toml:"target" msgpack:"target"`
	Message  string `toml:"message" msgpack:"message"`
	Color    string `toml:"color" msgpack:"color"`
	Order    int32  `toml:"order" msgpack:"order"`
	Priority int32  `toml:"priority" msgpack:"priority"`
}

type fileSpec struct {
	Path string `toml:"path" msgpack:"path"` // load from disk
	Name string `toml:"name" msgpack:"name"` // or inline under this name
	Text string `toml:"text" msgpack:"text"`
}

// optionsSpec mirrors diag.Config with optional fields so omitted keys
// keep their defaults.
type optionsSpec struct {
	CrossGap        *bool  `toml:"cross-gap" msgpack:"cross_gap"`
	Compact         *bool  `toml:"compact" msgpack:"compact"`
	Underlines      *bool  `toml:"underlines" msgpack:"underlines"`
	MultilineArrows *bool  `toml:"multiline-arrows" msgpack:"multiline_arrows"`
	Color           *bool  `toml:"color" msgpack:"color"`
	TabWidth        *int   `toml:"tab-width" msgpack:"tab_width"`
	CharSet         string `toml:"char-set" msgpack:"char_set"`
	IndexType       string `toml:"index-type" msgpack:"index_type"`
	LabelAttach     string `toml:"label-attach" msgpack:"label_attach"`
}

// loadSpec reads a report description, picking the codec by extension.
func loadSpec(path string) (reportSpec, error) {
	var spec reportSpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &spec); err != nil {
			return spec, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".msgpack", ".mpk":
		raw, err := os.ReadFile(path)
		if err != nil {
			return spec, err
		}
		if err := msgpack.Unmarshal(raw, &spec); err != nil {
			return spec, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return spec, fmt.Errorf("unsupported report format %q (must be .toml, .msgpack, or .mpk)", ext)
	}
	return spec, nil
}

// buildConfig applies the optional overrides on top of the defaults.
func buildConfig(spec *optionsSpec) (diag.Config, error) {
	cfg := diag.DefaultConfig()
	if spec == nil {
		return cfg, nil
	}
	if spec.CrossGap != nil {
		cfg.CrossGap = *spec.CrossGap
	}
	if spec.Compact != nil {
		cfg.Compact = *spec.Compact
	}
	if spec.Underlines != nil {
		cfg.Underlines = *spec.Underlines
	}
	if spec.MultilineArrows != nil {
		cfg.MultilineArrows = *spec.MultilineArrows
	}
	if spec.Color != nil {
		cfg.Color = *spec.Color
	}
	if spec.TabWidth != nil {
		cfg.TabWidth = *spec.TabWidth
	}
	var err error
	if cfg.CharSet, err = diag.ParseCharSet(spec.CharSet); err != nil {
		return cfg, err
	}
	if cfg.IndexType, err = diag.ParseIndexType(spec.IndexType); err != nil {
		return cfg, err
	}
	if cfg.LabelAttach, err = diag.ParseLabelAttach(spec.LabelAttach); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func primaryResolver(spec reportSpec) (source.Resolver, error) {
	if spec.Path != "" && spec.Source != "" {
		return nil, fmt.Errorf("report specifies both inline source and path %q", spec.Path)
	}
	if spec.Path != "" {
		return source.File{Path: spec.Path}, nil
	}
	return source.Inline{Text: spec.Source}, nil
}

func fileResolver(f fileSpec) (source.Resolver, error) {
	if f.Path != "" && f.Text != "" {
		return nil, fmt.Errorf("auxiliary source specifies both inline text and path %q", f.Path)
	}
	if f.Path != "" {
		return source.File{Path: f.Path}, nil
	}
	if f.Name == "" {
		return nil, fmt.Errorf("inline auxiliary source needs a name")
	}
	return source.Inline{Name: f.Name, Text: f.Text}, nil
}

// buildReport assembles the diagnostic aggregate from its description.
func buildReport(spec reportSpec) (*diag.Report, error) {
	primary, err := primaryResolver(spec)
	if err != nil {
		return nil, err
	}

	cfg, err := buildConfig(spec.Config)
	if err != nil {
		return nil, err
	}

	opts := []diag.ReportOption{
		diag.WithNotes(spec.Notes...),
		diag.WithHelps(spec.Helps...),
	}
	if spec.Code != "" {
		opts = append(opts, diag.WithCode(spec.Code))
	}
	if spec.Message != "" {
		opts = append(opts, diag.WithReportMessage(spec.Message))
	}
	if spec.Kind != "" {
		opts = append(opts, diag.WithKind(spec.Kind))
	}
	if spec.KindColor != "" {
		c, err := color.Parse(spec.KindColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diag.WithKindColor(c))
	}
	for _, f := range spec.Files {
		ref, err := fileResolver(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diag.WithSources(ref))
	}

	rep, err := diag.NewReport(primary, spec.Start, spec.End, cfg, opts...)
	if err != nil {
		return nil, err
	}

	for _, l := range spec.Labels {
		labelOpts := []diag.LabelOption{
			diag.WithOrder(l.Order),
			diag.WithPriority(l.Priority),
		}
		if l.Target != "" {
			labelOpts = append(labelOpts, diag.WithTarget(l.Target))
		}
		if l.Message != "" {
			labelOpts = append(labelOpts, diag.WithMessage(l.Message))
		}
		if l.Color != "" {
			c, err := color.Parse(l.Color)
			if err != nil {
				return nil, err
			}
			labelOpts = append(labelOpts, diag.WithColor(c))
		}
		if _, err := rep.Label(l.Start, l.End, labelOpts...); err != nil {
			return nil, err
		}
	}
	return rep, nil
}
