package po

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/Done-0/i18n-check/pkg/corereview"
)

// poLexer 把一个 .po 文件切成注释、带引号字符串、msgstr[n] 关键词与普通标识符
// 四类 token；MsgStr 规则排在 Ident 之前，这样 "msgstr[0]" 这种带下标的写法
// 整体命中 MsgStr 而不会被拆成 Ident + 方括号碎片。
var poLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "MsgStr", Pattern: `msgstr(\[[0-9]+\])?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// QuotedSeq 是一个或多个相邻字符串字面量（.po 允许把一个逻辑值拆成多行），
// 解码时按顺序拼接
type QuotedSeq struct {
	Pos   lexer.Position
	Parts []string `parser:"@String+"`
}

// Decode 去掉每个片段的包围引号并还原转义，拼接成最终的逻辑字符串。对 nil
// 接收者返回空串，方便调用方对可选字段（Context/Plural）直接取值。
func (q *QuotedSeq) Decode() string {
	if q == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range q.Parts {
		inner := part
		if len(inner) >= 2 {
			inner = inner[1 : len(inner)-1]
		}
		decoded, _ := corereview.DecodeEscapes(inner)
		b.WriteString(decoded)
	}
	return b.String()
}

// MsgstrClause 是条目里的一个 msgstr 或 msgstr[n] 子句
type MsgstrClause struct {
	Pos     lexer.Position
	Keyword string     `parser:"@MsgStr"`
	Value   *QuotedSeq `parser:"@@"`
}

// Entry 是目录里的一条完整记录：注释块 + 可选上下文 + msgid(_plural) + 一个或多个 msgstr
type Entry struct {
	Pos      lexer.Position
	Comments []string        `parser:"@Comment*"`
	Context  *QuotedSeq      `parser:"( 'msgctxt' @@ )?"`
	ID       *QuotedSeq      `parser:"'msgid' @@"`
	Plural   *QuotedSeq      `parser:"( 'msgid_plural' @@ )?"`
	Strs     []*MsgstrClause `parser:"@@+"`
}

// Catalog 是整个 .po 文件：条目的重复序列
type Catalog struct {
	Entries []*Entry `parser:"@@*"`
}

var grammar = participle.MustBuild(
	&Catalog{},
	participle.Lexer(poLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse 把 .po 文件的完整内容解析为一个 Catalog，供 Reviewer 与 PseudoTranslate 共用
func Parse(filename, text string) (*Catalog, error) {
	var cat Catalog
	if err := grammar.ParseString(filename, text, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
