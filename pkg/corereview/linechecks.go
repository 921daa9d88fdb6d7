package corereview

import (
	"bytes"

	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// DefaultMaxLineWidth is the column count above which a line is flagged by
// check_line_width when the caller does not override it (Open Question: the
// source left the threshold unspecified; 120 matches common C/C++ style guides).
const DefaultMaxLineWidth = 120

// ScanLineChecks runs the three whole-line checks shared by every text-based
// reviewer (trailing whitespace, tabs, line width) over data and records
// findings on core according to which bits of core.View.Style are set.
func ScanLineChecks(core *Core, data []byte, file string, maxWidth int) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxLineWidth
	}
	style := core.View.Style
	checkTrailing := style.Has(config.CheckTrailingSpaces)
	checkTabs := style.Has(config.CheckTabs)
	checkWidth := style.Has(config.CheckLineWidth)
	if !checkTrailing && !checkTabs && !checkWidth {
		return
	}

	offset := 0
	lineNo := 1
	for _, line := range bytes.Split(data, []byte("\n")) {
		if checkTabs {
			if idx := bytes.IndexByte(line, '\t'); idx >= 0 {
				core.AddTab(StringInfo{
					File: file, Line: lineNo, Column: idx + 1, ByteOffset: offset + idx,
					WarningID: warn.Tabs, Message: "line contains a tab character",
				})
			}
		}
		if checkTrailing {
			trimmed := bytes.TrimRight(line, " \t\r")
			if len(trimmed) < len(line) {
				core.AddTrailingSpace(StringInfo{
					File: file, Line: lineNo, Column: len(trimmed) + 1, ByteOffset: offset + len(trimmed),
					WarningID: warn.TrailingSpaces, Message: "line has trailing whitespace",
				})
			}
		}
		if checkWidth && runeWidth(line) > maxWidth {
			core.AddWideLine(StringInfo{
				File: file, Line: lineNo, Column: maxWidth + 1, ByteOffset: offset,
				WarningID: warn.WideLine, Message: "line exceeds the configured width limit",
			})
		}
		offset += len(line) + 1
		lineNo++
	}
}

func runeWidth(line []byte) int {
	n := 0
	for range string(line) {
		n++
	}
	return n
}
