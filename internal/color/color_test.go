package color

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected Color
		wantErr  bool
	}{
		{
			name:     "palette name",
			spec:     "red",
			expected: Named(Red),
		},
		{
			name:     "bright palette name",
			spec:     "bright-cyan",
			expected: Named(BrightCyan),
		},
		{
			name:     "primary",
			spec:     "primary",
			expected: Named(Primary),
		},
		{
			name:     "decimal index",
			spec:     "142",
			expected: Fixed(142),
		},
		{
			name:     "index zero",
			spec:     "0",
			expected: Fixed(0),
		},
		{
			name:     "hex triple",
			spec:     "#ff8800",
			expected: RGB(0xff, 0x88, 0x00),
		},
		{
			name:    "index out of range",
			spec:    "256",
			wantErr: true,
		},
		{
			name:    "unknown name",
			spec:    "vermilion",
			wantErr: true,
		},
		{
			name:    "short hex",
			spec:    "#f80",
			wantErr: true,
		},
		{
			name:    "empty",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
				}
				var specErr *InvalidSpecError
				if !errors.As(err, &specErr) {
					t.Fatalf("Parse(%q) error %v, want *InvalidSpecError", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if got != tt.expected {
				t.Fatalf("Parse(%q) = %v, want %v", tt.spec, got, tt.expected)
			}
		})
	}
}

func TestColorEquality(t *testing.T) {
	if Named(Red) != Named(Red) {
		t.Fatal("identical named colors must compare equal")
	}
	if Named(Red) == Named(Green) {
		t.Fatal("different named colors must not compare equal")
	}
	if Fixed(1) == Named(Red) {
		t.Fatal("variants must not compare equal across kinds")
	}
	if RGB(0, 0, 0) != RGB(0, 0, 0) {
		t.Fatal("identical RGB colors must compare equal")
	}
	if RGB(0, 0, 0) == RGB(1, 0, 0) {
		t.Fatal("different RGB colors must not compare equal")
	}
}

func TestColorAsMapKey(t *testing.T) {
	seen := map[Color]int{
		Named(Red):   1,
		Fixed(1):     2,
		RGB(0, 0, 0): 3,
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", len(seen))
	}
	if seen[Named(Red)] != 1 {
		t.Fatal("named key lookup failed")
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{Named(Red), "red"},
		{Named(BrightMagenta), "bright-magenta"},
		{Fixed(7), "fixed(7)"},
		{RGB(0, 0, 0), "rgb(0, 0, 0)"},
		{Color{}, "unset"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestZeroValueIsUnset(t *testing.T) {
	var c Color
	if !c.IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	if Named(Primary).IsZero() {
		t.Fatal("constructed color must not report IsZero")
	}
}
