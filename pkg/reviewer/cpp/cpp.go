// Package cpp 实现 C/C++/Objective-C 源码的字符串字面量扫描与分类（spec §4.4）。
//
// 扫描本身是一个纯文本状态机：Code、LineComment、BlockComment、StringLit、
// CharLit、RawString、Preprocessor、AsmBlock。找不到调用上下文时（回扫启发式
// 命中块/语句边界），借助 tree-sitter 解析一次整份源码，定位包住该字符串字节
// 偏移量的最近 call_expression 节点，取得更准确的调用名 —— 解析失败时静默回退
// 到纯文本结果，与教师仓库 c_parser.go 的 Parse 方法同一套路（先 tree-sitter，
// 失败则退化为文本启发式）。
package cpp

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/Done-0/i18n-check/pkg/classify"
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// state 是扫描器状态机的当前状态
type state int

const (
	stateCode state = iota
	stateLineComment
	stateBlockComment
	stateStringLit
	stateCharLit
	stateRawString
	statePreprocessor
	stateAsmBlock
)

// Reviewer 扫描一个 C/C++ 文件，把发现项写入借用的 corereview.Core
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
	tree := parseWithTreeSitter(data)

	s := &scanner{
		data:        data,
		file:        fileName,
		core:        r.core,
		astRoot:     tree,
		atLineStart: true,
	}
	s.run()
	corereview.ScanLineChecks(r.core, data, fileName, corereview.DefaultMaxLineWidth)
	return nil
}

// parseWithTreeSitter 尝试用 tree-sitter 解析整份源码，失败时返回 nil 根节点
func parseWithTreeSitter(data []byte) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, data)
	if err != nil || tree == nil {
		return nil
	}
	return tree.RootNode()
}

type scanner struct {
	data []byte
	file string
	core *corereview.Core

	astRoot *sitter.Node

	i           int
	line        int
	col         int
	atLineStart bool // 自上一个换行符以来是否只见过空白，决定 # 是否开始预处理指令
}

func (s *scanner) run() {
	s.line = 1
	s.col = 1
	for s.i < len(s.data) {
		s.stepCode()
	}
}

// stepCode 处理 Code 状态下的一步；子状态（注释、字符串、预处理、asm 块）各自
// 消费到自己的结束定界符后返回，调用者总是在顶层 Code 状态重新进入
func (s *scanner) stepCode() {
	b := s.data[s.i]

	switch {
	case b == '\n':
		s.advance(1)
		s.atLineStart = true
		return
	case b == ' ' || b == '\t' || b == '\r':
		s.advance(1)
		return
	case b == '#' && s.atLineStart:
		s.scanPreprocessor()
		return
	case b == '/' && s.peek(1) == '/':
		s.scanLineComment()
		return
	case b == '/' && s.peek(1) == '*':
		s.scanBlockComment()
		return
	case s.matchesAsmKeyword():
		s.scanAsmBlock()
		return
	case s.matchesRawStringPrefix():
		s.scanRawString()
		return
	case isStringLitStart(s.data, s.i):
		s.scanStringLiteral(stateStringLit)
		return
	case b == '\'':
		s.scanCharLiteral()
		return
	default:
		s.atLineStart = false
		s.advance(1)
	}
}

// matchesAsmKeyword 判断当前位置是否是 asm/__asm__/__asm 后跟空白或 "("
func (s *scanner) matchesAsmKeyword() bool {
	for _, kw := range []string{"__asm__", "__asm", "asm"} {
		if s.hasWordAt(kw) {
			after := s.i + len(kw)
			if after < len(s.data) && (s.data[after] == ' ' || s.data[after] == '\t' || s.data[after] == '(') {
				return true
			}
		}
	}
	return false
}

func (s *scanner) hasWordAt(word string) bool {
	if s.i+len(word) > len(s.data) {
		return false
	}
	if string(s.data[s.i:s.i+len(word)]) != word {
		return false
	}
	if s.i > 0 && isIdentByte(s.data[s.i-1]) {
		return false
	}
	return true
}

// scanAsmBlock 跳过整个内联汇编块，不提取任何字符串（spec §4.4）
func (s *scanner) scanAsmBlock() {
	for s.i < len(s.data) && s.data[s.i] != '(' && s.data[s.i] != '{' {
		s.advance(1)
	}
	if s.i >= len(s.data) {
		return
	}
	open := s.data[s.i]
	close := byte('}')
	if open == '(' {
		close = ')'
	}
	depth := 1
	s.advance(1)
	for s.i < len(s.data) && depth > 0 {
		switch s.data[s.i] {
		case open:
			depth++
		case close:
			depth--
		}
		s.advance(1)
	}
}

func (s *scanner) scanLineComment() {
	start := s.i
	for s.i < len(s.data) && s.data[s.i] != '\n' {
		if s.data[s.i] == '\\' && s.i+1 < len(s.data) && s.data[s.i+1] == '\n' {
			s.advance(2)
			continue
		}
		s.advance(1)
	}
	s.checkCommentSpacing(start, s.i)
}

func (s *scanner) scanBlockComment() {
	start := s.i
	s.advance(2)
	for s.i+1 < len(s.data) {
		if s.data[s.i] == '*' && s.data[s.i+1] == '/' {
			s.advance(2)
			s.checkCommentSpacing(start, s.i)
			return
		}
		s.advance(1)
	}
	s.i = len(s.data)
}

// checkCommentSpacing 实现 check_space_after_comment：注释定界符之后必须有一个空格
func (s *scanner) checkCommentSpacing(start, end int) {
	if !s.core.View.Style.Has(config.CheckSpaceAfterComment) {
		return
	}
	marker := 2
	if end-start <= marker {
		return
	}
	next := s.data[start+marker]
	if next == '\n' || next == ' ' || next == '\t' {
		return
	}
	if next == '/' || next == '!' {
		return // 常见的文档注释前缀 ///, //!
	}
	s.core.AddCommentMissingSpace(corereview.StringInfo{
		Text:       string(s.data[start:end]),
		File:       s.file,
		Line:       s.line,
		Column:     s.col,
		ByteOffset: start,
		WarningID:  warn.CommentMissingSpace,
		Severity:   corereview.SeverityInfo,
		Message:    "comment delimiter not followed by a space",
	})
}

// defineNumberPattern 识别 "#define IDENTIFIER 101" 这种把数字字面量直接赋给
// 符号 ID 的宏定义，用于 ids_assigned_number / ids_with_duplicate_value 检测
var defineNumberPattern = regexp.MustCompile(`^#\s*define\s+([A-Za-z_]\w*)\s+(-?\d+)\s*$`)

// joinedDirectiveLine 把从 start 开始到（未被反斜杠续行转义的）换行符为止的原始
// 字节拼接成单行文本，续行处用一个空格替代，供 defineNumberPattern 匹配
func joinedDirectiveLine(data []byte, start int) string {
	var b strings.Builder
	i := start
	for i < len(data) && data[i] != '\n' {
		if data[i] == '\\' && i+1 < len(data) && data[i+1] == '\n' {
			b.WriteByte(' ')
			i += 2
			continue
		}
		b.WriteByte(data[i])
		i++
	}
	return b.String()
}

func (s *scanner) scanPreprocessor() {
	directiveStart, directiveLine, directiveCol := s.i, s.line, s.col
	if s.core.View.Style.Has(config.CheckNumberAssignedToID) {
		if m := defineNumberPattern.FindStringSubmatch(joinedDirectiveLine(s.data, directiveStart)); m != nil {
			s.core.AddIDAssignedNumber(corereview.StringInfo{
				Text: m[1], File: s.file, Line: directiveLine, Column: directiveCol, ByteOffset: directiveStart,
				WarningID: warn.NumberAssignedToID, Message: m[2],
			})
		}
	}

	s.atLineStart = false
	for s.i < len(s.data) && s.data[s.i] != '\n' {
		if s.data[s.i] == '\\' && s.i+1 < len(s.data) && s.data[s.i+1] == '\n' {
			s.advance(2)
			continue
		}
		if isStringLitStart(s.data, s.i) {
			s.scanStringLiteral(statePreprocessor)
			continue
		}
		if s.data[s.i] == '\'' {
			s.scanCharLiteral()
			continue
		}
		if s.data[s.i] == '/' && s.peek(1) == '/' {
			s.scanLineComment()
			continue
		}
		if s.data[s.i] == '/' && s.peek(1) == '*' {
			s.scanBlockComment()
			continue
		}
		s.advance(1)
	}
}

// matchesRawStringPrefix 判断当前位置是否是 C++11 原始字符串 R"delim(
func (s *scanner) matchesRawStringPrefix() bool {
	i := s.i
	if i < len(s.data) && (s.data[i] == 'u' || s.data[i] == 'U' || s.data[i] == 'L') {
		i++
		if i < len(s.data) && s.data[i] == '8' {
			i++
		}
	}
	return i < len(s.data) && s.data[i] == 'R' && i+1 < len(s.data) && s.data[i+1] == '"'
}

// scanRawString 跳过 R"delim(...)delim"，转义不被解码，内容不参与分类
func (s *scanner) scanRawString() {
	start := s.i
	i := s.i
	if s.data[i] == 'u' || s.data[i] == 'U' || s.data[i] == 'L' {
		i++
		if i < len(s.data) && s.data[i] == '8' {
			i++
		}
	}
	i++ // 'R'
	i++ // '"'
	delimStart := i
	for i < len(s.data) && s.data[i] != '(' {
		i++
	}
	delim := string(s.data[delimStart:i])
	if i >= len(s.data) {
		s.advance(i - s.i)
		return
	}
	i++ // '('
	closer := ")" + delim + "\""
	idx := strings.Index(string(s.data[i:]), closer)
	if idx < 0 {
		s.advance(len(s.data) - s.i)
		s.emitMalformed(start)
		return
	}
	end := i + idx + len(closer)
	s.advance(end - s.i)
}

func (s *scanner) emitMalformed(start int) {
	if !s.core.View.Style.Has(config.CheckMalformedStrings) {
		return
	}
	line, col := 1, 1
	for _, b := range s.data[:start] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	s.core.AddMalformedString(corereview.StringInfo{
		Text:       string(s.data[start:]),
		File:       s.file,
		Line:       line,
		Column:     col,
		ByteOffset: start,
		WarningID:  warn.MalformedString,
		Severity:   corereview.SeverityWarning,
		Message:    "string literal truncated at end of file",
	})
}

func isStringLitStart(data []byte, i int) bool {
	j := i
	if j < len(data) && (data[j] == 'u' || data[j] == 'U' || data[j] == 'L') {
		j++
		if j < len(data) && data[j] == '8' {
			j++
		}
	}
	return j < len(data) && data[j] == '"'
}

func (s *scanner) scanCharLiteral() {
	end, _ := corereview.SkipStringLiteral(s.data, s.i, corereview.DialectCLike)
	s.advance(end - s.i)
}

func literalQuoteIndex(data []byte, i int) int {
	for data[i] != '\'' && data[i] != '"' {
		i++
	}
	return i
}

// scanStringLiteral 消费一个（可能跨多个相邻段的）字符串字面量，解码转义，
// 确立使用上下文并调用分类器，再把结果路由进相应的桶；preprocessor 状态下
// 使用上下文以宏名作为 function_call 名称的替代
func (s *scanner) scanStringLiteral(from state) {
	prefixStart := s.i
	quoteStart := literalQuoteIndex(s.data, s.i)
	if quoteStart > s.i {
		s.advance(quoteStart - s.i)
	}
	startLine, startCol := s.line, s.col
	var rawParts []string
	pos := s.i

	for {
		qi := literalQuoteIndex(s.data, pos)
		end, ok := corereview.SkipStringLiteral(s.data, qi, corereview.DialectCLike)
		rawParts = append(rawParts, string(s.data[qi+1:max(end-1, qi+1)]))
		if !ok {
			s.advance(end - s.i)
			s.emitMalformed(quoteStart)
			return
		}
		s.advance(end - s.i)
		pos = end

		// 相邻字面量之间只允许空白（不跨注释），否则结束拼接
		lookahead := pos
		for lookahead < len(s.data) && (s.data[lookahead] == ' ' || s.data[lookahead] == '\t' || s.data[lookahead] == '\n' || s.data[lookahead] == '\r') {
			lookahead++
		}
		if !isStringLitStart(s.data, lookahead) {
			break
		}
		s.advance(lookahead - pos)
		pos = s.i
	}

	raw := strings.Join(rawParts, "")
	decoded, _ := corereview.DecodeEscapes(raw)

	usage := s.usageContextFor(prefixStart, quoteStart, from)
	result := classify.Classify(decoded, usage, s.core.View)
	s.route(result, usage, decoded, quoteStart, startLine, startCol)
}

// usageContextFor 先尝试文本回扫启发式，回扫落空时借助 tree-sitter AST 精确定位。
// 回扫（FindEnclosingFunctionName/FindLHSAssignmentTarget）使用 prefixStart 而非
// quoteStart：L"..."/u8"..." 这类宽字符前缀会挡在赋值号或调用括号与引号之间，
// 从 quoteStart 往回扫只会先看到前缀字母本身。
func (s *scanner) usageContextFor(prefixStart, quoteStart int, from state) classify.UsageContext {
	if from == statePreprocessor {
		if name := macroNameForOffset(s.data, quoteStart); name != "" {
			return classify.FunctionCall(name)
		}
		return classify.Orphan(snippetAround(s.data, quoteStart))
	}

	if name := corereview.FindEnclosingFunctionName(s.data, prefixStart); name != "" {
		return classify.FunctionCall(name)
	}
	if name := astCallNameAt(s.astRoot, s.data, quoteStart); name != "" {
		return classify.FunctionCall(name)
	}
	if name := corereview.FindLHSAssignmentTarget(s.data, prefixStart); name != "" {
		return classify.VariableAssignment(name)
	}
	return classify.Orphan(snippetAround(s.data, quoteStart))
}

// astCallNameAt 在 tree-sitter AST 中找到包住 byteOffset 的最内层 call_expression
// 节点，返回其被调用者文本（已去除命名空间/模板装饰）；root 为 nil（解析失败）
// 或找不到这样的节点时返回空字符串
func astCallNameAt(root *sitter.Node, data []byte, byteOffset int) string {
	if root == nil {
		return ""
	}
	node := smallestCallContaining(root, uint32(byteOffset))
	if node == nil {
		return ""
	}
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	return stripCallDecorations(fn.Content(data))
}

// smallestCallContaining 深度优先查找包含 offset 的最内层 call_expression 节点
func smallestCallContaining(node *sitter.Node, offset uint32) *sitter.Node {
	if node == nil || offset < node.StartByte() || offset > node.EndByte() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := smallestCallContaining(node.Child(i), offset); found != nil {
			return found
		}
	}
	if node.Type() == "call_expression" {
		return node
	}
	return nil
}

func stripCallDecorations(name string) string {
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		name = name[idx+2:]
	}
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// macroNameForOffset 在预处理指令中找 #define NAME(...) 或 #define NAME 的宏名
func macroNameForOffset(data []byte, offset int) string {
	lineStart := offset
	for lineStart > 0 && data[lineStart-1] != '\n' {
		lineStart--
	}
	line := string(data[lineStart:offset])
	fields := strings.Fields(line)
	for idx, f := range fields {
		if f == "#define" || f == "#" {
			continue
		}
		if idx > 0 && (fields[idx-1] == "#define" || fields[idx-1] == "define") {
			name := f
			if p := strings.IndexByte(name, '('); p >= 0 {
				name = name[:p]
			}
			return name
		}
	}
	return ""
}

func snippetAround(data []byte, offset int) string {
	start := offset - 16
	if start < 0 {
		start = 0
	}
	end := offset + 16
	if end > len(data) {
		end = len(data)
	}
	return string(data[start:end])
}

// route 根据分类结果把 StringInfo 写入对应的桶，并执行附加的内容检查
func (s *scanner) route(result classify.Result, usage classify.UsageContext, text string, offset, line, col int) {
	info := corereview.StringInfo{
		Text:       text,
		File:       s.file,
		Line:       line,
		Column:     col,
		Usage:      usage,
		ByteOffset: offset,
	}

	switch result.Classification {
	case classify.Translatable:
		if s.core.View.Style.Has(config.CheckL10NStrings) {
			info.WarningID = result.WarningID
			s.core.AddLocalizable(info)
		}
	case classify.SuspiciousTranslatable:
		if s.core.View.Style.Has(config.CheckL10NStrings) && classify.StyleAllowsWarning(s.core.View.Style, result.WarningID) {
			info.WarningID = result.WarningID
			info.Message = result.Rule
			s.core.AddUnsafeLocalizable(info)
		}
	case classify.ShouldBeTranslatable:
		if s.core.View.Style.Has(config.CheckNotAvailableForL10N) {
			info.WarningID = result.WarningID
			s.core.AddNotAvailableForLocalization(info)
		}
	default:
		switch {
		case result.Rule == "rule2_internal_call_leak":
			if s.core.View.Style.Has(config.CheckSuspectL10NUsage) {
				info.WarningID = result.WarningID
				s.core.AddLocalizableInInternalCall(info)
			}
		case usage.Kind == classify.KindFunctionCall:
			s.core.AddMarkedAsNonLocalizable(info)
		}
	}

	if s.core.View.Style.Has(config.CheckUnencodedExtASCII) && classify.ContainsUnrecognizedExtendedASCII(text) {
		s.core.AddUnencodedExtASCII(corereview.StringInfo{
			Text: text, File: s.file, Line: line, Column: col, ByteOffset: offset, Usage: usage,
			WarningID: warn.UnencodedExtASCII, Message: "string contains an unencoded extended ASCII byte",
		})
	}
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

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
