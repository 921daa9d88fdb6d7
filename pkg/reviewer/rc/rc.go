// Package rc 实现 Windows 资源脚本（.rc）的行向量解析与字符串提取（spec §4.6）。
// 识别顶层块 STRINGTABLE、DIALOG/DIALOGEX、MENU/MENUEX、ACCELERATORS，块由
// BEGIN/END 或 {/} 定界；块内（包括 DIALOG 的 CAPTION 等头部字段）的每个字符串
// 字面量默认视为可翻译，套用与 §4.2 相同的可疑内容测试。
package rc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Done-0/i18n-check/pkg/classify"
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Reviewer 扫描一个 .rc 文件，把发现项写入借用的 corereview.Core
type Reviewer struct {
	core *corereview.Core
}

// New 创建一个借用给定 Core 的 Reviewer
func New(core *corereview.Core) *Reviewer {
	return &Reviewer{core: core}
}

// Process 实现 corereview.ScanDriver
func (r *Reviewer) Process(text string, fileName string) error {
	data := []byte(text)
	s := &scanner{data: data, file: fileName, core: r.core}
	s.run()
	corereview.ScanLineChecks(r.core, data, fileName, corereview.DefaultMaxLineWidth)
	return nil
}

type blockKind int

const (
	blockNone blockKind = iota
	blockStringTable
	blockDialog
	blockMenu
	blockAccelerators
)

var topLevelKeywords = map[string]blockKind{
	"STRINGTABLE": blockStringTable,
	"DIALOG":      blockDialog,
	"DIALOGEX":    blockDialog,
	"MENU":        blockMenu,
	"MENUEX":      blockMenu,
	"ACCELERATORS": blockAccelerators,
}

type scanner struct {
	data []byte
	file string
	core *corereview.Core

	i, line, col int

	kind   blockKind
	inBody bool
	depth  int
}

func (s *scanner) run() {
	s.line, s.col = 1, 1
	for s.i < len(s.data) {
		s.step()
	}
}

func (s *scanner) step() {
	b := s.data[s.i]
	switch {
	case b == '\n', b == ' ', b == '\t', b == '\r':
		s.advance(1)
	case b == '/' && s.peek(1) == '/':
		end := corereview.SkipLineComment(s.data, s.i)
		s.advance(end - s.i)
	case b == '/' && s.peek(1) == '*':
		end := corereview.SkipBlockComment(s.data, s.i)
		s.advance(end - s.i)
	case b == '#':
		s.scanDirectiveLine()
	case b == '"':
		s.scanQuotedString()
	case b == '{':
		s.enterBody()
		s.advance(1)
	case b == '}':
		s.exitBody()
		s.advance(1)
	case isWordByte(b):
		s.scanWord()
	default:
		s.advance(1)
	}
}

// scanWord 读取一个标识符/关键字 token，并驱动块状态机
func (s *scanner) scanWord() {
	start, startLine, startCol := s.i, s.line, s.col
	for s.i < len(s.data) && isWordByte(s.data[s.i]) {
		s.advance(1)
	}
	word := string(s.data[start:s.i])
	upper := strings.ToUpper(word)

	if s.kind == blockNone {
		if kind, ok := topLevelKeywords[upper]; ok {
			s.kind = kind
			s.inBody = false
		}
		return
	}

	if !s.inBody {
		switch upper {
		case "BEGIN":
			s.enterBody()
		case "FONT":
			s.handleFontStatement(start, startLine, startCol)
		}
		return
	}

	switch upper {
	case "BEGIN":
		s.depth++
	case "END":
		s.exitBody()
	}
}

func (s *scanner) enterBody() {
	if s.kind == blockNone {
		return
	}
	if !s.inBody {
		s.inBody = true
		s.depth = 1
		return
	}
	s.depth++
}

func (s *scanner) exitBody() {
	if !s.inBody {
		return
	}
	s.depth--
	if s.depth <= 0 {
		s.inBody = false
		s.kind = blockNone
		s.depth = 0
	}
}

// scanQuotedString 消费一个 .rc 字符串字面量：反斜杠不转义，"" 是唯一的内嵌引号
// 写法（spec §4.1 "backslash-less verbatim for .rc"，与 C# 逐字字符串同一套规则）
func (s *scanner) scanQuotedString() {
	startLine, startCol, offset := s.line, s.col, s.i
	end, ok := corereview.SkipStringLiteral(s.data, s.i, corereview.DialectCSharpVerbatim)
	if !ok {
		s.advance(end - s.i)
		if s.core.View.Style.Has(config.CheckMalformedStrings) {
			s.core.AddMalformedString(corereview.StringInfo{
				Text: string(s.data[offset:]), File: s.file, Line: startLine, Column: startCol, ByteOffset: offset,
				WarningID: warn.MalformedString, Message: "string literal truncated at end of file",
			})
		}
		return
	}
	raw := string(s.data[offset+1 : end-1])
	s.advance(end - s.i)

	if s.kind == blockNone {
		return
	}
	decoded := strings.ReplaceAll(raw, `""`, `"`)
	s.classifyAndRoute(decoded, offset, startLine, startCol)
}

func (s *scanner) classifyAndRoute(decoded string, offset, line, col int) {
	result := classify.ClassifyKnownTranslatable(decoded)
	info := corereview.StringInfo{
		Text: decoded, File: s.file, Line: line, Column: col,
		Usage: classify.Orphan(decoded), ByteOffset: offset,
	}
	if s.core.View.Style.Has(config.CheckL10NStrings) {
		switch result.Classification {
		case classify.SuspiciousTranslatable:
			if classify.StyleAllowsWarning(s.core.View.Style, result.WarningID) {
				info.WarningID = result.WarningID
				info.Message = result.Rule
				s.core.AddUnsafeLocalizable(info)
			}
		default:
			info.WarningID = result.WarningID
			s.core.AddLocalizable(info)
		}
	}

	if s.core.View.Style.Has(config.CheckUnencodedExtASCII) && classify.ContainsUnrecognizedExtendedASCII(decoded) {
		s.core.AddUnencodedExtASCII(corereview.StringInfo{
			Text: decoded, File: s.file, Line: line, Column: col, ByteOffset: offset,
			WarningID: warn.UnencodedExtASCII, Message: "string contains an unencoded extended ASCII byte",
		})
	}
}

// fontLinePattern 解析 "FONT size, "face"[, weight, italic, charset]" 语句
var fontLinePattern = regexp.MustCompile(`(?i)^\s*FONT\s+(-?\d+)\s*,\s*"([^"]*)"`)

// recommendedFontSizes 是规则认为标准的对话框字体点数集合
var recommendedFontSizes = map[string]bool{"8": true, "9": true}

func (s *scanner) handleFontStatement(wordStart, line, col int) {
	if !s.core.View.Style.Has(config.CheckFonts) {
		return
	}
	rest := restOfLine(s.data, wordStart)
	m := fontLinePattern.FindStringSubmatch(rest)
	if m == nil {
		return
	}
	size, face := m[1], m[2]

	if !recommendedFontSizes[size] {
		s.core.AddBadDialogFontSize(corereview.StringInfo{
			Text: size, File: s.file, Line: line, Column: col, ByteOffset: wordStart,
			WarningID: warn.FontIssue,
			Message: fmt.Sprintf(`FONT %s, "%s": font size %s is non-standard (8 is recommended).`, size, face, size),
		})
	}
	if !isRecommendedFace(s.core.View.Options.RecommendedDialogFonts, face) {
		s.core.AddNonSystemDialogFont(corereview.StringInfo{
			Text: face, File: s.file, Line: line, Column: col, ByteOffset: wordStart,
			WarningID: warn.FontIssue,
			Message: fmt.Sprintf(`FONT %s, "%s": font name '%s' may not map well on some systems (MS Shell Dlg is recommended).`, size, face, face),
		})
	}
}

func isRecommendedFace(recommended []string, face string) bool {
	for _, name := range recommended {
		if name == face {
			return true
		}
	}
	return false
}

// codePagePattern 识别 "#pragma code_page(N)"
var codePagePattern = regexp.MustCompile(`(?i)^#\s*pragma\s+code_page\s*\(\s*(\d+)\s*\)`)

// scanDirectiveLine 处理以 # 开头的预处理行；目前只关心 code_page 声明，记录到
// 日志供后续以声明编码重读文件使用（spec §4.6 "noted for later save encoding"）
func (s *scanner) scanDirectiveLine() {
	start := s.i
	line := restOfLine(s.data, start)
	if m := codePagePattern.FindStringSubmatch(line); m != nil {
		s.core.Log.Appendf("rc: %s declares code page %s", s.file, m[1])
	}
	for s.i < len(s.data) && s.data[s.i] != '\n' {
		s.advance(1)
	}
}

func restOfLine(data []byte, start int) string {
	end := start
	for end < len(data) && data[end] != '\n' {
		end++
	}
	return string(data[start:end])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

func (s *scanner) advance(n int) {
	for k := 0; k < n; k++ {
		if s.i >= len(s.data) {
			return
		}
		if s.data[s.i] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.i++
	}
}

func (s *scanner) peek(offset int) byte {
	if s.i+offset >= len(s.data) {
		return 0
	}
	return s.data[s.i+offset]
}
