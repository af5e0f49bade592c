package lsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/source"
)

func TestSafeUint32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), safeUint32(-5))
	assert.Equal(t, uint32(42), safeUint32(42))
	assert.Equal(t, maxUint32, safeUint32(math.MaxInt64))
}

func TestToLSPDiagnostics(t *testing.T) {
	t.Parallel()

	snap := source.NewSnapshot("file:///p.txt", "import x\n😀😀 words\nreturn")
	diags := []lint.Diagnostic{
		lint.NewPointDiagnostic("HL004", snap.Path, 1, 12, "semi").
			WithCode(4).
			WithSeverity(config.SeverityError).
			Build(),
		lint.NewPointDiagnostic("HLX", snap.Path, 2, 0, "warn").
			WithSeverity(config.SeverityWarning).
			Build(),
	}

	got := toLSPDiagnostics(snap, diags)
	require.Len(t, got, 2)

	assert.Equal(t, position{Line: 1, Character: 8}, got[0].Range.Start)
	assert.Equal(t, got[0].Range.Start, got[0].Range.End)
	assert.Equal(t, 4, got[0].Code)
	assert.Equal(t, severityError, got[0].Severity)
	assert.Equal(t, "humorlint", got[0].Source)
	assert.Equal(t, "semi", got[0].Message)

	assert.Equal(t, severityWarning, got[1].Severity)
}

func TestToLSPDiagnosticsEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	got := toLSPDiagnostics(source.NewSnapshot("", ""), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
