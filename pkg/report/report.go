// Package report 把审查发现项格式化为下游消费的制表符分隔报告，以及供终端
// 阅读的彩色摘要（spec §4.8 format_results/format_summary，§6 报告格式）。
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/Done-0/i18n-check/pkg/corelog"
	"github.com/Done-0/i18n-check/pkg/corereview"
)

var (
	headerStyle  = color.New(color.FgMagenta, color.Bold)
	fileStyle    = color.New(color.FgHiCyan)
	warningStyle = color.New(color.FgHiYellow)
	errorStyle   = color.New(color.FgHiRed)
)

const resultsHeader = "File\tLine\tColumn\tValue\tExplanation\tID"

// escapeField 把字段里可能出现的制表符替换成字面量转义，保证每条记录严格
// 占用一行（spec §6 "no embedded tabs in fields (replace with \t escape)"）
func escapeField(s string) string {
	return strings.ReplaceAll(s, "\t", `\t`)
}

// sortForOutput 按 (file, line, column) 对 findings 做一次稳定排序，
// 这是跨语言合并后报告输出前要求的顺序（spec §5）
func sortForOutput(findings []corereview.StringInfo) []corereview.StringInfo {
	out := make([]corereview.StringInfo, len(findings))
	copy(out, findings)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

// FormatResults 把 findings 渲染为一张制表符分隔表，列为
// file, line, column, value, explanation, warning_id。除非 includeHeader 为
// false，否则首行是 "File\tLine\tColumn\tValue\tExplanation\tID"。
func FormatResults(findings []corereview.StringInfo, includeHeader bool) string {
	sorted := sortForOutput(findings)

	var b strings.Builder
	if includeHeader {
		b.WriteString(resultsHeader)
		b.WriteString("\n")
	}
	for _, f := range sorted {
		fmt.Fprintf(&b, "%s\t%d\t%d\t%s\t%s\t%s\n",
			escapeField(f.File), f.Line, f.Column,
			escapeField(f.Text), escapeField(f.Message), string(f.WarningID))
	}
	return b.String()
}

// FormatSummary 统计每个 warning id 与每个文件的发现项数量。按 warning id 的计数
// 总是输出；按文件的计数只在 verbose 为 true 时输出。verbose 为 true 时还用
// fatih/color 给终端输出上色；否则输出纯文本，适合重定向到文件。
func FormatSummary(findings []corereview.StringInfo, fileErrorCount int, verbose bool) string {
	byWarning := map[string]int{}
	byFile := map[string]int{}
	for _, f := range findings {
		byWarning[string(f.WarningID)]++
		byFile[f.File]++
	}

	warningIDs := sortedKeys(byWarning)
	files := sortedKeys(byFile)

	var b strings.Builder
	writeLine := func(style *color.Color, format string, args ...interface{}) {
		line := fmt.Sprintf(format, args...)
		if verbose {
			b.WriteString(style.Sprint(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	writeLine(headerStyle, "Summary: %d findings across %d files", len(findings), len(files))
	if fileErrorCount > 0 {
		writeLine(errorStyle, "%d file(s) could not be read and were skipped", fileErrorCount)
	}

	writeLine(headerStyle, "By warning id:")
	for _, id := range warningIDs {
		writeLine(warningStyle, "  %s %d", id, byWarning[id])
	}

	if verbose {
		writeLine(headerStyle, "By file:")
		for _, file := range files {
			writeLine(fileStyle, "  %s %d", file, byFile[file])
		}
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatLogReport 拼接一组按语言命名的日志环形缓冲快照（spec §4.8 get_log_report）
func FormatLogReport(sections map[string][]corelog.Entry, order []string) string {
	var b strings.Builder
	for _, name := range order {
		entries := sections[name]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "== %s ==\n", name)
		for _, e := range entries {
			fmt.Fprintf(&b, "[%d] %s\n", e.Seq, e.Message)
		}
	}
	return b.String()
}
