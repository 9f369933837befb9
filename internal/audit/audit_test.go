package audit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/swatchnorm/internal/audit"
	"bennypowers.dev/swatchnorm/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(findings []audit.Finding) []audit.Kind {
	var out []audit.Kind
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestFile(t *testing.T) {
	auditor := audit.New("testdata/site")

	findings, err := auditor.File("picker.html")
	require.NoError(t, err)

	assert.Equal(t, []audit.Kind{
		audit.DroppedStyle,      // Red border
		audit.UnmatchedSwatch,   // Blue attribute order
		audit.ColorMismatch,     // Yellow background
		audit.InvalidBackground, // Magenta var()
		audit.HandlerArity,      // Magenta fourth argument
	}, kinds(findings))

	t.Run("dropped style names the declaration", func(t *testing.T) {
		f := findings[0]
		assert.Equal(t, audit.SeverityInfo, f.Severity)
		assert.Equal(t, 2, f.Line)
		assert.Equal(t, 3, f.Column)
		assert.Contains(t, f.Message, `"Red" loses border: 1px solid #000`)
	})

	t.Run("unmatched swatch explains the attribute order", func(t *testing.T) {
		f := findings[1]
		assert.Equal(t, audit.SeverityWarning, f.Severity)
		assert.Equal(t, 4, f.Line)
		assert.Equal(t, 3, f.Column)
		assert.Contains(t, f.Message, `swatch "Blue" will not be normalized`)
		assert.Contains(t, f.Message, "attributes are ordered class data-name data-color")
	})

	t.Run("mismatch and errors", func(t *testing.T) {
		assert.Equal(t, audit.SeverityWarning, findings[2].Severity)
		assert.Contains(t, findings[2].Message, "#FFFF00 does not match background #FFAA00")

		assert.Equal(t, audit.SeverityError, findings[3].Severity)
		assert.Contains(t, findings[3].Message, "var(--magenta)")

		assert.Equal(t, audit.SeverityError, findings[4].Severity)
		assert.Contains(t, findings[4].Message, "with 4 arguments")
	})

	t.Run("findings render as compiler-style lines", func(t *testing.T) {
		assert.Equal(t,
			`picker.html:2:3: info: swatch "Red" loses border: 1px solid #000 [dropped-style]`,
			findings[0].String())
	})
}

func TestContentAfterNormalize(t *testing.T) {
	data, err := os.ReadFile("testdata/site/picker.html")
	require.NoError(t, err)

	normalized, _ := normalize.Normalize(string(data))
	findings := audit.New(".").Content("picker.html", normalized)

	assert.NotContains(t, kinds(findings), audit.DroppedStyle, "normalized swatches keep nothing to drop")
	assert.Contains(t, kinds(findings), audit.UnmatchedSwatch, "reordered swatches stay unmatched")
}

func TestContentHandlerMismatch(t *testing.T) {
	content := `<div class="color-option" data-color="#FF0000" data-name="Red" style="background: #FF0000;" onclick="selectColor('#00FF00', 'Red', true)" title="Red"></div>`

	findings := audit.New(".").Content("inline.html", content)

	require.Len(t, findings, 1)
	assert.Equal(t, audit.HandlerMismatch, findings[0].Kind)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, 1, findings[0].Column)
}

func TestContentMissingAttribute(t *testing.T) {
	content := `<div class="color-option" data-color="#FF0000" data-name="Red" style="background: #FF0000;" onclick="selectColor('#FF0000', 'Red', true)"></div>`

	findings := audit.New(".").Content("inline.html", content)

	require.Len(t, findings, 1)
	assert.Equal(t, audit.UnmatchedSwatch, findings[0].Kind)
	assert.Contains(t, findings[0].Message, "missing title attribute")
}

func TestRun(t *testing.T) {
	auditor := audit.New("testdata/site")

	t.Run("expands globs in sorted order", func(t *testing.T) {
		report, err := auditor.Run([]string{"**/*.html", "picker.html"})
		require.NoError(t, err)

		assert.Equal(t, []string{"pages/clean.html", "picker.html"}, report.Files)
		assert.Len(t, report.Findings, 5)
		assert.Equal(t, 2, report.Count(audit.SeverityError))
		assert.Equal(t, 2, report.Count(audit.SeverityWarning))
		assert.Equal(t, 1, report.Count(audit.SeverityInfo))
		assert.True(t, report.Failed(false))
	})

	t.Run("clean page passes", func(t *testing.T) {
		report, err := auditor.Run([]string{"pages/*.html"})
		require.NoError(t, err)

		assert.Empty(t, report.Findings)
		assert.False(t, report.Failed(true))
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := auditor.Run([]string{"netlify-deploy/pebble-static-config.html"})

		assert.True(t, errors.Is(err, audit.ErrNoFiles))
	})

	t.Run("absolute file path", func(t *testing.T) {
		abs, err := filepath.Abs("testdata/site/pages/clean.html")
		require.NoError(t, err)

		findings, err := auditor.File(abs)
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestReportFailed(t *testing.T) {
	warnings := &audit.Report{Findings: []audit.Finding{{Severity: audit.SeverityWarning}, {Severity: audit.SeverityInfo}}}

	assert.False(t, warnings.Failed(false))
	assert.True(t, warnings.Failed(true))
	assert.False(t, (&audit.Report{}).Failed(true))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", audit.SeverityInfo.String())
	assert.Equal(t, "warning", audit.SeverityWarning.String())
	assert.Equal(t, "error", audit.SeverityError.String())
}
