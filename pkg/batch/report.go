package batch

import (
	"github.com/Done-0/i18n-check/pkg/corelog"
	"github.com/Done-0/i18n-check/pkg/corereview"
	"github.com/Done-0/i18n-check/pkg/pseudotranslate"
	"github.com/Done-0/i18n-check/pkg/report"
)

var languageOrder = []string{"cpp", "csharp", "rc", "po"}

func (a *Analyzer) allFindings() []corereview.StringInfo {
	var all []corereview.StringInfo
	for _, lang := range []language{langCpp, langCsharp, langRc, langPo} {
		all = append(all, a.cores[lang].AllFindings()...)
	}
	return all
}

// FormatResults 把全部语言家族的发现项合并为一张制表符分隔表
// （spec §4.8 format_results）
func (a *Analyzer) FormatResults(includeSummaryHeader bool) string {
	return report.FormatResults(a.allFindings(), includeSummaryHeader)
}

// FormatSummary 统计全部语言家族发现项的分布（spec §4.8 format_summary）
func (a *Analyzer) FormatSummary(verbose bool) string {
	return report.FormatSummary(a.allFindings(), len(a.fileErrors), verbose)
}

// GetLogReport 拼接四个语言家族各自的日志环形缓冲快照（spec §4.8 get_log_report）
func (a *Analyzer) GetLogReport() string {
	sections := map[string][]corelog.Entry{
		"cpp":    a.cores[langCpp].Log.Snapshot(),
		"csharp": a.cores[langCsharp].Log.Snapshot(),
		"rc":     a.cores[langRc].Log.Snapshot(),
		"po":     a.cores[langPo].Log.Snapshot(),
	}
	return report.FormatLogReport(sections, languageOrder)
}

// PseudoTranslate 把目录级伪翻译重写委托给 pseudotranslate 包，复用同一套
// 取消回调契约（spec §4.8 pseudo_translate）
func (a *Analyzer) PseudoTranslate(
	fileList []string,
	opts pseudotranslate.Options,
	onStart func(total int),
	onProgress func(index int, path string) bool,
) bool {
	return pseudotranslate.PseudoTranslate(fileList, opts, onStart, onProgress, func(path string, err error) {
		a.cores[langPo].Log.Appendf("pseudo-translate failed for %s: %v", path, err)
	})
}
