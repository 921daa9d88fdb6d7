// Package po 实现 GNU gettext .po 目录的流式解析与条目一致性检查（spec §4.7）。
// 词法与条目结构用 participle/v2 声明式语法描述（grammar.go）；本文件负责把
// 解析树翻译成发现项并驱动借用的 corereview.Core。
package po

import (
	"fmt"
	"strings"

	"github.com/Done-0/i18n-check/pkg/classify"
	"github.com/Done-0/i18n-check/pkg/classify/formatspec"
	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Reviewer 扫描一个 .po 文件，把发现项写入借用的 corereview.Core
type Reviewer struct {
	core *corereview.Core
}

// New 创建一个借用给定 Core 的 Reviewer
func New(core *corereview.Core) *Reviewer {
	return &Reviewer{core: core}
}

// Process 实现 corereview.ScanDriver：解析整份目录，逐条目应用一致性检查
func (r *Reviewer) Process(text string, fileName string) error {
	cat, err := Parse(fileName, text)
	if err != nil {
		return fmt.Errorf("po: parsing %s: %w", fileName, err)
	}

	for _, e := range cat.Entries {
		r.reviewEntry(e, fileName)
	}
	return nil
}

// entryFlags 是条目 "#," 标记行声明的一组标志
type entryFlags struct {
	fuzzy      bool
	cFormat    bool
	noCFormat  bool
}

// parseFlags 扫描条目的注释行，收集以 "#," 开头的标志行声明的标志名集合
func parseFlags(comments []string) entryFlags {
	var flags entryFlags
	for _, c := range comments {
		if !strings.HasPrefix(c, "#,") {
			continue
		}
		for _, name := range strings.Split(c[len("#,"):], ",") {
			switch strings.TrimSpace(name) {
			case "fuzzy":
				flags.fuzzy = true
			case "c-format":
				flags.cFormat = true
			case "no-c-format":
				flags.noCFormat = true
			}
		}
	}
	return flags
}

// looksLikeCFormat 判断 msgid 是否含有 printf 风格占位符（用于未显式声明
// c-format/no-c-format 标志时的自动检测，spec §4.7 "auto-detected from msgid content"）
func looksLikeCFormat(id string) bool {
	placeholders, _ := formatspec.Parse(id, formatspec.Printf)
	return len(placeholders) > 0
}

func (r *Reviewer) reviewEntry(e *Entry, file string) {
	flags := parseFlags(e.Comments)
	id := e.ID.Decode()
	line, col := e.Pos.Line, e.Pos.Column
	offset := e.Pos.Offset

	if flags.fuzzy && r.core.View.Options.FuzzyTranslations && r.core.View.Style.Has(config.CheckConsistency) {
		r.core.AddTransInconsistency(corereview.StringInfo{
			Text: id, File: file, Line: line, Column: col, ByteOffset: offset,
			WarningID: warn.TransInconsistency, Message: "entry is marked fuzzy",
		})
	}

	if r.core.View.Style.Has(config.CheckNeedingContext) && e.Context == nil &&
		classify.CountNaturalLanguageWords(id) < 3 {
		r.core.AddNeedsContextString(corereview.StringInfo{
			Text: id, File: file, Line: line, Column: col, ByteOffset: offset,
			WarningID: warn.L10NStringNeedsContext, Message: "short string without msgctxt may be ambiguous to translators",
		})
	}

	isCFormat := flags.cFormat || (!flags.noCFormat && looksLikeCFormat(id))
	isPlural := e.Plural != nil

	for _, clause := range e.Strs {
		r.reviewClause(e, clause, id, isCFormat, isPlural, flags, file)
	}
}

func (r *Reviewer) reviewClause(e *Entry, clause *MsgstrClause, id string, isCFormat, isPlural bool, flags entryFlags, file string) {
	value := clause.Value.Decode()
	line, col, offset := clause.Pos.Line, clause.Pos.Column, clause.Pos.Offset

	if value == "" && !flags.fuzzy && !isPlural {
		// 未翻译的条目，目录仍在进行中（spec §4.7 最后一条规则），不报告
		return
	}

	if isCFormat && r.core.View.Style.Has(config.CheckMismatchingPrintfCommands) {
		srcPlaceholders, _ := formatspec.Parse(id, formatspec.Printf)
		dstPlaceholders, _ := formatspec.Parse(value, formatspec.Printf)
		if !formatspec.Compatible(srcPlaceholders, dstPlaceholders) {
			r.core.AddPrintfMismatch(corereview.StringInfo{
				Text: value, File: file, Line: line, Column: col, ByteOffset: offset,
				WarningID: warn.PrintfMismatch,
				Message:   fmt.Sprintf("msgstr format specifiers do not match msgid %q", id),
			})
		}
	}

	if r.core.View.Style.Has(config.CheckAccelerators) && classify.HasAccelerator(id) != classify.HasAccelerator(value) {
		r.core.AddAcceleratorMismatch(corereview.StringInfo{
			Text: value, File: file, Line: line, Column: col, ByteOffset: offset,
			WarningID: warn.AcceleratorMismatch,
			Message:   fmt.Sprintf("accelerator key presence differs between msgid %q and msgstr", id),
		})
	}

	if r.core.View.Style.Has(config.CheckConsistency) {
		if reason, mismatched := consistencyMismatch(id, value); mismatched {
			r.core.AddTransInconsistency(corereview.StringInfo{
				Text: value, File: file, Line: line, Column: col, ByteOffset: offset,
				WarningID: warn.TransInconsistency, Message: reason,
			})
		}
	}
}
