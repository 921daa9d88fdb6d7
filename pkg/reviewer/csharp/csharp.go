// Package csharp 实现 C# 源码的字符串字面量扫描与分类，复用 cpp 审查器的状态机
// 外形，按 spec §4.5 的差异做调整：逐字字符串 @"…"、插值字符串 $"{expr}…"、
// 属性 [...] 声明上下文、以及预处理指令不参与字符串提取。
package csharp

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/Done-0/i18n-check/pkg/classify"
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Reviewer 扫描一个 C# 文件，把发现项写入借用的 corereview.Core
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
	s := &scanner{
		data:    data,
		file:    fileName,
		core:    r.core,
		astRoot: parseWithTreeSitter(data),
	}
	s.run()
	corereview.ScanLineChecks(r.core, data, fileName, corereview.DefaultMaxLineWidth)
	return nil
}

func parseWithTreeSitter(data []byte) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())
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

	i             int
	line          int
	col           int
	attributeDepth int // >0 当我们位于一个 [...] 特性声明内部
	atLineStart   bool // 自上一个换行符以来是否只见过空白，用于把 "[" 识别为特性而非数组下标
}

func (s *scanner) run() {
	s.line = 1
	s.col = 1
	s.atLineStart = true
	for s.i < len(s.data) {
		s.step()
	}
}

func (s *scanner) step() {
	b := s.data[s.i]

	switch {
	case b == '\n':
		s.advance(1)
		s.atLineStart = true
		return
	case b == ' ' || b == '\t' || b == '\r':
		s.advance(1)
		return
	case b == '/' && s.peek(1) == '/':
		s.atLineStart = false
		s.scanLineComment()
		return
	case b == '/' && s.peek(1) == '*':
		s.atLineStart = false
		s.scanBlockComment()
		return
	case b == '#' && s.atLineStart:
		for s.i < len(s.data) && s.data[s.i] != '\n' {
			s.advance(1)
		}
		return
	case b == '[' && s.atLineStart:
		s.attributeDepth++
		s.atLineStart = false
		s.advance(1)
		return
	case b == ']' && s.attributeDepth > 0:
		s.attributeDepth--
		s.advance(1)
		return
	case b == '@' && s.peek(1) == '"':
		s.atLineStart = false
		s.scanVerbatimString()
		return
	case b == '$' && s.peek(1) == '@' && s.peek(2) == '"':
		s.atLineStart = false
		s.scanVerbatimInterpolatedString()
		return
	case b == '$' && s.peek(1) == '"':
		s.atLineStart = false
		s.scanInterpolatedString()
		return
	case b == '"':
		s.atLineStart = false
		s.scanPlainString()
		return
	case b == '\'':
		s.atLineStart = false
		s.scanCharLiteral()
		return
	default:
		s.atLineStart = false
		s.advance(1)
	}
}

func (s *scanner) scanLineComment() {
	start := s.i
	for s.i < len(s.data) && s.data[s.i] != '\n' {
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

func (s *scanner) checkCommentSpacing(start, end int) {
	if !s.core.View.Style.Has(config.CheckSpaceAfterComment) {
		return
	}
	if end-start <= 2 {
		return
	}
	next := s.data[start+2]
	if next == '\n' || next == ' ' || next == '\t' || next == '/' {
		return
	}
	s.core.AddCommentMissingSpace(corereview.StringInfo{
		Text: string(s.data[start:end]), File: s.file, Line: s.line, Column: s.col, ByteOffset: start,
		WarningID: warn.CommentMissingSpace, Message: "comment delimiter not followed by a space",
	})
}

func (s *scanner) scanCharLiteral() {
	end, _ := corereview.SkipStringLiteral(s.data, s.i, corereview.DialectCLike)
	s.advance(end - s.i)
}

// scanPlainString 处理普通双引号字符串，反斜杠转义（spec §4.4 沿用到 C#）
func (s *scanner) scanPlainString() {
	quoteStart := s.i
	startLine, startCol := s.line, s.col
	end, ok := corereview.SkipStringLiteral(s.data, quoteStart, corereview.DialectCLike)
	if !ok {
		s.advance(end - s.i)
		s.emitMalformed(quoteStart)
		return
	}
	raw := string(s.data[quoteStart+1 : end-1])
	s.advance(end - s.i)
	decoded, _ := corereview.DecodeEscapes(raw)
	s.classifyAndRoute(decoded, quoteStart, quoteStart, startLine, startCol)
}

// scanVerbatimString 处理 @"..." 逐字字符串，"" 是唯一转义，可跨行。上下文回扫使用
// prefixStart（'@' 的位置）而非 quoteStart，否则 '@' 前缀会挡在赋值号/调用括号与
// 引号之间，导致 FindLHSAssignmentTarget/FindEnclosingFunctionName 永远看不到它们。
func (s *scanner) scanVerbatimString() {
	prefixStart := s.i
	quoteStart := s.i + 1
	startLine, startCol := s.line, s.col
	end, ok := corereview.SkipStringLiteral(s.data, quoteStart, corereview.DialectCSharpVerbatim)
	if !ok {
		s.advance(end - s.i)
		s.emitMalformed(quoteStart)
		return
	}
	raw := string(s.data[quoteStart+1 : end-1])
	s.advance(end - s.i)
	decoded := strings.ReplaceAll(raw, `""`, `"`)
	s.classifyAndRoute(decoded, quoteStart, prefixStart, startLine, startCol)
}

// scanInterpolatedString 处理 $"...{expr}..."，拆成若干字面量段，表达式段跳过不分类
func (s *scanner) scanInterpolatedString() {
	s.scanInterpolatedBody(s.i, s.i+1, false)
}

func (s *scanner) scanVerbatimInterpolatedString() {
	s.scanInterpolatedBody(s.i, s.i+2, true)
}

func (s *scanner) scanInterpolatedBody(prefixStart, quoteStart int, verbatim bool) {
	i := quoteStart + 1
	segStart := i
	startLine, startCol := s.line, s.col

	flushSegment := func(segEnd int) {
		if segEnd <= segStart {
			return
		}
		raw := string(s.data[segStart:segEnd])
		var decoded string
		if verbatim {
			decoded = strings.ReplaceAll(raw, `""`, `"`)
		} else {
			decoded, _ = corereview.DecodeEscapes(raw)
		}
		if strings.TrimSpace(decoded) != "" {
			s.classifyAndRoute(decoded, quoteStart, prefixStart, startLine, startCol)
		}
	}

	for i < len(s.data) {
		switch {
		case verbatim && s.data[i] == '"' && i+1 < len(s.data) && s.data[i+1] == '"':
			i += 2
		case s.data[i] == '"':
			flushSegment(i)
			s.advance(i + 1 - s.i)
			return
		case s.data[i] == '{' && i+1 < len(s.data) && s.data[i+1] == '{':
			i += 2
		case s.data[i] == '{':
			flushSegment(i)
			depth := 1
			i++
			for i < len(s.data) && depth > 0 {
				if s.data[i] == '{' {
					depth++
				} else if s.data[i] == '}' {
					depth--
				}
				i++
			}
			segStart = i
		default:
			i++
		}
	}
	s.advance(i - s.i)
	s.emitMalformed(quoteStart)
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
		Text: string(s.data[start:]), File: s.file, Line: line, Column: col, ByteOffset: start,
		WarningID: warn.MalformedString, Message: "string literal truncated at end of file",
	})
}

// classifyAndRoute 确立使用上下文（特性上下文优先于回扫），调用分类器并写入对应桶。
// offset 是字面量在报告中使用的位置（引号位置），contextOffset 是回扫使用的位置
// （对逐字/插值字符串是前缀字符的位置，跳过 @ / $ 前缀后才能看到赋值号或调用括号）。
func (s *scanner) classifyAndRoute(decoded string, offset, contextOffset, line, col int) {
	usage := s.usageContextFor(contextOffset)
	result := classify.Classify(decoded, usage, s.core.View)

	info := corereview.StringInfo{Text: decoded, File: s.file, Line: line, Column: col, Usage: usage, ByteOffset: offset}
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

	if s.core.View.Style.Has(config.CheckUnencodedExtASCII) && classify.ContainsUnrecognizedExtendedASCII(decoded) {
		s.core.AddUnencodedExtASCII(corereview.StringInfo{
			Text: decoded, File: s.file, Line: line, Column: col, ByteOffset: offset, Usage: usage,
			WarningID: warn.UnencodedExtASCII, Message: "string contains an unencoded extended ASCII byte",
		})
	}
}

// usageContextFor 特性声明内的字符串默认不可翻译（spec §4.5），否则与 cpp 审查器
// 同样优先用文本回扫，回扫落空时退回 tree-sitter AST
func (s *scanner) usageContextFor(offset int) classify.UsageContext {
	if s.attributeDepth > 0 {
		return classify.Parameter("attribute")
	}
	if name := corereview.FindEnclosingFunctionName(s.data, offset); name != "" {
		return classify.FunctionCall(name)
	}
	if name := astCallNameAt(s.astRoot, s.data, offset); name != "" {
		return classify.FunctionCall(name)
	}
	if name := corereview.FindLHSAssignmentTarget(s.data, offset); name != "" {
		return classify.VariableAssignment(name)
	}
	return classify.Orphan(snippetAround(s.data, offset))
}

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

func smallestCallContaining(node *sitter.Node, offset uint32) *sitter.Node {
	if node == nil || offset < node.StartByte() || offset > node.EndByte() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := smallestCallContaining(node.Child(i), offset); found != nil {
			return found
		}
	}
	if node.Type() == "invocation_expression" {
		return node
	}
	return nil
}

func stripCallDecorations(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		name = name[:idx]
	}
	return name
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
