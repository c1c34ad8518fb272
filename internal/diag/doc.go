// Package diag defines the diagnostic report model: severity-tagged
// messages anchored to source spans, decorated with labels, notes, and
// help text, possibly spanning several source files.
//
// # Purpose
//
//   - Provide validated, deterministic data structures describing a
//     finished diagnostic: Span, Label, ReportKind, Config, Report.
//   - Accumulate labels, notes, helps, and auxiliary sources through
//     append-only mutators on the Report aggregate.
//   - Hand a frozen snapshot plus the ordered source list to a rendering
//     layer without leaking references into the aggregate's internals.
//
// # Scope
//
// Package diag performs no formatting and no IO beyond resolving sources
// through the adapters in internal/source at construction time. Rendering
// responsibilities live in internal/diagfmt.
//
// # Validation
//
// Every invariant is enforced once, at a single construction boundary:
// spans reject start > end when a Label or Report is built from raw
// bounds, and the severity name/color coupling is checked by ResolveKind
// before a Report becomes visible. A failed constructor never exposes a
// partially built aggregate.
package diag
