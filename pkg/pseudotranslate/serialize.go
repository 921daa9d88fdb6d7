package pseudotranslate

import (
	"strings"

	"github.com/Done-0/i18n-check/pkg/reviewer/po"
)

// encodeQuoted 把一个已解码的逻辑字符串重新编码为一个带引号的 .po 字符串字面量
func encodeQuoted(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// serializeCatalog 把一份已变形的目录重新写成 .po 文本。每个条目的原始注释与
// msgid(_plural)/msgctxt 原样保留，只有非空的 msgstr 值被 mangler 替换。
// 不保证保留原始文件逐字节的换行/多行拆分格式（spec §4.8 只要求"写回磁盘"，
// 不要求格式上的字节级往返）。
func serializeCatalog(cat *po.Catalog, m *mangler) string {
	var b strings.Builder
	for i, e := range cat.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, c := range e.Comments {
			b.WriteString(c)
			b.WriteString("\n")
		}
		if e.Context != nil {
			b.WriteString("msgctxt ")
			b.WriteString(encodeQuoted(e.Context.Decode()))
			b.WriteString("\n")
		}
		b.WriteString("msgid ")
		b.WriteString(encodeQuoted(e.ID.Decode()))
		b.WriteString("\n")
		if e.Plural != nil {
			b.WriteString("msgid_plural ")
			b.WriteString(encodeQuoted(e.Plural.Decode()))
			b.WriteString("\n")
		}
		for _, clause := range e.Strs {
			original := clause.Value.Decode()
			mangled := original
			if original != "" {
				mangled = m.mangle(original)
			}
			b.WriteString(clause.Keyword)
			b.WriteString(" ")
			b.WriteString(encodeQuoted(mangled))
			b.WriteString("\n")
		}
	}
	return b.String()
}
