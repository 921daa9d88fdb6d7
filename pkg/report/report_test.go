package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Done-0/i18n-check/pkg/corelog"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/warn"
)

func sampleFindings() []corereview.StringInfo {
	return []corereview.StringInfo{
		{Text: "Hello", File: "b.cpp", Line: 3, Column: 5, WarningID: warn.NotL10NAvailable, Message: "looks translatable"},
		{Text: "image.bmp", File: "a.rc", Line: 2, Column: 1, WarningID: warn.SuspectL10NString, Message: "looks like a file name"},
		{Text: "Au revoir", File: "a.rc", Line: 1, Column: 1, WarningID: warn.PrintfMismatch, Message: "format specifiers differ"},
	}
}

func TestFormatResultsIncludesHeaderByDefault(t *testing.T) {
	out := FormatResults(sampleFindings(), true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, resultsHeader, lines[0])
}

func TestFormatResultsOmitsHeaderWhenRequested(t *testing.T) {
	out := FormatResults(sampleFindings(), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.NotEqual(t, resultsHeader, lines[0])
}

func TestFormatResultsIsSortedByFileThenLineThenColumn(t *testing.T) {
	out := FormatResults(sampleFindings(), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "a.rc\t1\t1"))
	assert.True(t, strings.HasPrefix(lines[1], "a.rc\t2\t1"))
	assert.True(t, strings.HasPrefix(lines[2], "b.cpp\t3\t5"))
}

func TestFormatResultsEscapesEmbeddedTabs(t *testing.T) {
	findings := []corereview.StringInfo{
		{Text: "a\tb", File: "f.cpp", Line: 1, Column: 1, WarningID: warn.MalformedString, Message: "contains a tab"},
	}
	out := FormatResults(findings, false)
	assert.Contains(t, out, `a\tb`)
	assert.NotContains(t, out, "a\tb\tf.cpp")
}

func TestFormatResultsColumnsMatchSpecOrder(t *testing.T) {
	findings := []corereview.StringInfo{
		{Text: "value", File: "f.cpp", Line: 7, Column: 9, WarningID: warn.Tabs, Message: "explanation text"},
	}
	out := FormatResults(findings, false)
	expected := "f.cpp\t7\t9\tvalue\texplanation text\t[tabs]\n"
	assert.Equal(t, expected, out)
}

func TestFormatSummaryCountsByWarningID(t *testing.T) {
	out := FormatSummary(sampleFindings(), 0, false)
	assert.Contains(t, out, "[notL10NAvailable] 1")
	assert.Contains(t, out, "[suspectL10NString] 1")
	assert.Contains(t, out, "[printfMismatch] 1")
}

func TestFormatSummaryReportsFileErrorCount(t *testing.T) {
	out := FormatSummary(sampleFindings(), 2, false)
	assert.Contains(t, out, "2 file(s) could not be read")
}

func TestFormatSummaryVerboseIncludesPerFileBreakdown(t *testing.T) {
	out := FormatSummary(sampleFindings(), 0, true)
	assert.Contains(t, out, "By file:")
	assert.Contains(t, out, "a.rc")
	assert.Contains(t, out, "b.cpp")
}

func TestFormatLogReportConcatenatesNonEmptySectionsInOrder(t *testing.T) {
	sections := map[string][]corelog.Entry{
		"cpp": {{Seq: 0, Message: "diagnostics: 1 finding"}},
		"po":  nil,
		"rc":  {{Seq: 0, Message: "code page 1252"}},
	}
	out := FormatLogReport(sections, []string{"cpp", "po", "rc"})

	assert.Contains(t, out, "== cpp ==")
	assert.Contains(t, out, "diagnostics: 1 finding")
	assert.Contains(t, out, "== rc ==")
	assert.Contains(t, out, "code page 1252")
	assert.NotContains(t, out, "== po ==")
}
