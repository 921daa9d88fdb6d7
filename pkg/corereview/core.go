package corereview

import (
	"fmt"
	"sort"

	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corelog"
	"github.com/Done-0/i18n-check/pkg/warn"
)

// Core 持有一个语言审查器实例的全部可变状态：桶、配置视图、日志环形缓冲。
// 它由 BatchAnalyzer 按语言家族共享一个实例，文件在同一语言家族内顺序派发，
// 以保持状态单调性与确定性的桶排序（spec §5）。
type Core struct {
	View *config.View
	Log  *corelog.RingBuffer

	LocalizableStrings                 []StringInfo
	NotAvailableForLocalizationStrings []StringInfo
	UnsafeLocalizableStrings           []StringInfo
	LocalizableStringsInInternalCall   []StringInfo
	MarkedAsNonLocalizableStrings      []StringInfo
	DeprecatedMacros                   []StringInfo
	PrintfMismatches                   []StringInfo
	BadDialogFontSizes                 []StringInfo
	NonSystemDialogFonts               []StringInfo
	TrailingSpaces                      []StringInfo
	Tabs                                []StringInfo
	WideLines                           []StringInfo
	CommentsMissingSpace                []StringInfo
	IDsAssignedNumber                   []StringInfo
	IDsWithDuplicateValue               []StringInfo
	MalformedStrings                    []StringInfo
	UnencodedExtASCII                   []StringInfo
	AcceleratorMismatches               []StringInfo
	TransInconsistencies                []StringInfo
	NeedsContextStrings                 []StringInfo

	seen map[dedupKey]bool // (text, file, byte offset) 去重集合，spec §3 不变式
}

type dedupKey struct {
	text   string
	file   string
	offset int
}

// NewCore 创建一个绑定到给定配置视图的空 Core
func NewCore(view *config.View) *Core {
	return &Core{
		View: view,
		Log:  corelog.New(256),
		seen: map[dedupKey]bool{},
	}
}

// addUnique 在通过去重检查后把 info 追加到 *bucket，保证"同一位置的完全重复
// 字面量永不被发出"的不变式
func (c *Core) addUnique(bucket *[]StringInfo, info StringInfo) {
	key := dedupKey{text: info.Text, file: info.File, offset: info.ByteOffset}
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	*bucket = append(*bucket, info)
}

// AddLocalizable 把一个可翻译字符串加入 localizable_strings 桶
func (c *Core) AddLocalizable(info StringInfo) { c.addUnique(&c.LocalizableStrings, info) }

// AddNotAvailableForLocalization 把一个"应可翻译但未标记"字符串加入对应桶
func (c *Core) AddNotAvailableForLocalization(info StringInfo) {
	c.addUnique(&c.NotAvailableForLocalizationStrings, info)
}

// AddUnsafeLocalizable 把一个被标记翻译但内容可疑的字符串加入对应桶
func (c *Core) AddUnsafeLocalizable(info StringInfo) { c.addUnique(&c.UnsafeLocalizableStrings, info) }

// AddLocalizableInInternalCall 直接记录一个出现在已知非翻译调用里、但内容看起来
// 本该翻译的字符串（spec §4.2 规则2"looks translatable"分支）
func (c *Core) AddLocalizableInInternalCall(info StringInfo) {
	c.addUnique(&c.LocalizableStringsInInternalCall, info)
}

// AddMarkedAsNonLocalizable 记录一个被调用点标为非翻译的字符串（供交叉检查使用）
func (c *Core) AddMarkedAsNonLocalizable(info StringInfo) {
	c.addUnique(&c.MarkedAsNonLocalizableStrings, info)
}

// AddDeprecatedMacro 记录一次已弃用宏的使用
func (c *Core) AddDeprecatedMacro(info StringInfo) { c.addUnique(&c.DeprecatedMacros, info) }

// AddPrintfMismatch 记录一次 msgid/msgstr 格式说明符不匹配
func (c *Core) AddPrintfMismatch(info StringInfo) { c.addUnique(&c.PrintfMismatches, info) }

// AddBadDialogFontSize 记录一个非标准对话框字体大小
func (c *Core) AddBadDialogFontSize(info StringInfo) { c.addUnique(&c.BadDialogFontSizes, info) }

// AddNonSystemDialogFont 记录一个非推荐的对话框字体名
func (c *Core) AddNonSystemDialogFont(info StringInfo) { c.addUnique(&c.NonSystemDialogFonts, info) }

// AddTrailingSpace 记录一行的尾随空格问题
func (c *Core) AddTrailingSpace(info StringInfo) { c.addUnique(&c.TrailingSpaces, info) }

// AddTab 记录一处制表符使用
func (c *Core) AddTab(info StringInfo) { c.addUnique(&c.Tabs, info) }

// AddWideLine 记录一行超宽问题
func (c *Core) AddWideLine(info StringInfo) { c.addUnique(&c.WideLines, info) }

// AddCommentMissingSpace 记录一处注释缺少空格问题
func (c *Core) AddCommentMissingSpace(info StringInfo) { c.addUnique(&c.CommentsMissingSpace, info) }

// AddIDAssignedNumber 记录一个被直接赋予数字字面量的符号 ID
func (c *Core) AddIDAssignedNumber(info StringInfo) { c.addUnique(&c.IDsAssignedNumber, info) }

// AddIDWithDuplicateValue 记录一个与其他符号 ID 共享数值的符号 ID
func (c *Core) AddIDWithDuplicateValue(info StringInfo) { c.addUnique(&c.IDsWithDuplicateValue, info) }

// AddMalformedString 记录一个在文件末尾被截断或无法正常解析的字符串字面量
func (c *Core) AddMalformedString(info StringInfo) { c.addUnique(&c.MalformedStrings, info) }

// AddUnencodedExtASCII 记录一个含未编码扩展 ASCII 码点的字符串
func (c *Core) AddUnencodedExtASCII(info StringInfo) { c.addUnique(&c.UnencodedExtASCII, info) }

// AddAcceleratorMismatch 记录一个 msgid/msgstr 加速键出现情况不一致的 .po 条目
// （§4.7 未在 §3 的源审查器桶列表中，作为目录级跨字符串检查的结果单独分桶，见 DESIGN.md）
func (c *Core) AddAcceleratorMismatch(info StringInfo) { c.addUnique(&c.AcceleratorMismatches, info) }

// AddTransInconsistency 记录一个 .po 条目的翻译一致性问题（模糊标记、首尾空白、标点、URL 差异）
func (c *Core) AddTransInconsistency(info StringInfo) { c.addUnique(&c.TransInconsistencies, info) }

// AddNeedsContextString 记录一个缺少上下文且过短、需要翻译者上下文说明的 msgid
func (c *Core) AddNeedsContextString(info StringInfo) { c.addUnique(&c.NeedsContextStrings, info) }

// ReviewLocalizableStrings 是跨字符串的一遍检查（spec §4.1 review_localizable_strings）：
// 把同时出现在可翻译与不可翻译桶中的字符串重新归类到 localizable_strings_in_internal_call；
// 检测重复的数字 ID；折叠按 (text, file, position) 完全相同的重复项（已在写入时处理）。
func (c *Core) ReviewLocalizableStrings() {
	marked := map[string]StringInfo{}
	for _, info := range c.MarkedAsNonLocalizableStrings {
		marked[info.Text] = info
	}

	// 这里直接 append 而非走 addUnique：条目已经在首次写入 LocalizableStrings 时
	// 通过去重检查，这一步只是把它挪到另一个桶，不是一次新的发现
	var remaining []StringInfo
	for _, info := range c.LocalizableStrings {
		if _, leaked := marked[info.Text]; leaked {
			c.LocalizableStringsInInternalCall = append(c.LocalizableStringsInInternalCall, info)
			continue
		}
		remaining = append(remaining, info)
	}
	c.LocalizableStrings = remaining

	c.detectDuplicateIDValues()
	c.sortAllBuckets()
}

// detectDuplicateIDValues 在 IDsAssignedNumber 桶记录的 (name -> value) 对中
// 找出共享同一数值的多个符号名，登记进 IDsWithDuplicateValue
func (c *Core) detectDuplicateIDValues() {
	if !c.View.Style.Has(config.CheckDuplicateValueAssignedToIDs) {
		return
	}
	byValue := map[string][]StringInfo{}
	for _, info := range c.IDsAssignedNumber {
		byValue[info.Message] = append(byValue[info.Message], info)
	}
	for _, group := range byValue {
		if len(group) < 2 {
			continue
		}
		for _, info := range group {
			dup := info
			dup.WarningID = warn.DupValAssignedToIDs
			c.IDsWithDuplicateValue = append(c.IDsWithDuplicateValue, dup)
		}
	}
}

// sortAllBuckets 把每个桶按 (file, byte offset) 排序，满足 §3 的确定性不变式
func (c *Core) sortAllBuckets() {
	buckets := c.allBuckets()
	for _, bucket := range buckets {
		sortBucket(*bucket)
	}
}

func sortBucket(bucket []StringInfo) {
	sort.SliceStable(bucket, func(i, j int) bool {
		if bucket[i].File != bucket[j].File {
			return bucket[i].File < bucket[j].File
		}
		return bucket[i].ByteOffset < bucket[j].ByteOffset
	})
}

// allBuckets 返回全部桶的指针，供排序与诊断统计遍历
func (c *Core) allBuckets() []*[]StringInfo {
	return []*[]StringInfo{
		&c.LocalizableStrings,
		&c.NotAvailableForLocalizationStrings,
		&c.UnsafeLocalizableStrings,
		&c.LocalizableStringsInInternalCall,
		&c.MarkedAsNonLocalizableStrings,
		&c.DeprecatedMacros,
		&c.PrintfMismatches,
		&c.BadDialogFontSizes,
		&c.NonSystemDialogFonts,
		&c.TrailingSpaces,
		&c.Tabs,
		&c.WideLines,
		&c.CommentsMissingSpace,
		&c.IDsAssignedNumber,
		&c.IDsWithDuplicateValue,
		&c.MalformedStrings,
		&c.UnencodedExtASCII,
		&c.AcceleratorMismatches,
		&c.TransInconsistencies,
		&c.NeedsContextStrings,
	}
}

// RunDiagnostics 把内部计数器追加到日志环形缓冲（spec §4.1 run_diagnostics）
func (c *Core) RunDiagnostics() {
	total := 0
	for _, bucket := range c.allBuckets() {
		total += len(*bucket)
	}
	c.Log.Append(fmt.Sprintf("diagnostics: %d findings across %d buckets", total, len(c.allBuckets())))
}

// AllFindings 把全部桶的内容拼接成一个扁平列表，供 BatchAnalyzer 跨语言合并
// 报告使用（桶各自已按 file/byte offset 排序，但调用方通常还需要按
// file/line/column 再做一次稳定排序，见 spec §5 "results may be interleaved...
// but are sorted by (file, line, column) for output"）
func (c *Core) AllFindings() []StringInfo {
	var all []StringInfo
	for _, bucket := range c.allBuckets() {
		all = append(all, *bucket...)
	}
	return all
}
