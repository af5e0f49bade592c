package lsp

import (
	"strconv"

	"fortio.org/safecast"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/source"
)

// diagnosticSource is the "source" field of every published diagnostic.
const diagnosticSource = "humorlint"

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// lspSeverity maps a diagnostic severity to the LSP DiagnosticSeverity.
func lspSeverity(sev config.Severity) int {
	switch sev {
	case config.SeverityWarning:
		return severityWarning
	case config.SeverityInfo:
		return severityInformation
	default:
		return severityError
	}
}

// toPosition converts a byte-column position to an LSP position.
func toPosition(snap *source.Snapshot, pos source.Position) position {
	col := utf16Column(snap.LineText(pos.Line), pos.Column)
	return position{
		Line:      safeUint32(pos.Line),
		Character: safeUint32(col),
	}
}

// toLSPDiagnostics converts engine diagnostics for publishing. The result is
// never nil so an empty list is sent as [].
func toLSPDiagnostics(snap *source.Snapshot, diags []lint.Diagnostic) []lspDiagnostic {
	out := make([]lspDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, lspDiagnostic{
			Range: lspRange{
				Start: toPosition(snap, d.Range.Start),
				End:   toPosition(snap, d.Range.End),
			},
			Severity: lspSeverity(d.Severity),
			Code:     d.Code,
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	return out
}

// describeID renders a raw request ID for logging.
func describeID(id []byte) string {
	if s, err := strconv.Unquote(string(id)); err == nil {
		return s
	}
	return string(id)
}
