package config

// IgnoreSets 保存进程级、只追加的忽略列表：字体名、翻译助手函数名、
// 非可翻译函数名与内部命名空间前缀。配置阶段写入，冻结后只读（spec §3）。
type IgnoreSets struct {
	frozen bool

	fontFaceNames          map[string]bool
	translatorHelperNames  map[string]bool
	nonTranslatableFuncs   map[string]bool
	internalNamespaceNames map[string]bool
}

// defaultTranslationFunctions 是 spec 4.2 规则1中列出的默认翻译调用集合
var defaultTranslationFunctions = []string{
	"_", "gettext", "ngettext", "pgettext", "dpgettext",
	"wxTRANSLATE", "QT_TR_NOOP", "tr", "wxGetTranslation", "_T",
}

// defaultNonTranslatableFunctions 是规则2中列出的典型标识符取值函数
var defaultNonTranslatableFunctions = []string{
	"SetName", "XRCID", "printf", "fprintf", "sprintf", "assert",
	"Debug", "DebugLog", "LogDebug", "Trace",
}

// defaultInternalPrefixes 是规则3中的内部前缀集合
var defaultInternalPrefixes = []string{"m_", "s_", "g_", "k"}

// NewIgnoreSets 创建一个预置默认值的忽略集合；调用方可在 Freeze 之前继续追加
func NewIgnoreSets() *IgnoreSets {
	sets := &IgnoreSets{
		fontFaceNames:          map[string]bool{},
		translatorHelperNames:  map[string]bool{},
		nonTranslatableFuncs:   map[string]bool{},
		internalNamespaceNames: map[string]bool{},
	}
	for _, name := range defaultTranslationFunctions {
		sets.translatorHelperNames[name] = true
	}
	for _, name := range defaultNonTranslatableFunctions {
		sets.nonTranslatableFuncs[name] = true
	}
	for _, prefix := range defaultInternalPrefixes {
		sets.internalNamespaceNames[prefix] = true
	}
	return sets
}

// mustNotBeFrozen 在冻结后任何写操作上触发违例 panic（spec §7 kind 5）
func (s *IgnoreSets) mustNotBeFrozen() {
	if s.frozen {
		panic("config: ignore-set invariant violated: mutation attempted after Freeze()")
	}
}

// AddFontFaceName 登记一个应跳过检测的字体名
func (s *IgnoreSets) AddFontFaceName(name string) {
	s.mustNotBeFrozen()
	s.fontFaceNames[name] = true
}

// AddTranslatorHelperName 登记一个应视为翻译调用的函数/宏名
func (s *IgnoreSets) AddTranslatorHelperName(name string) {
	s.mustNotBeFrozen()
	s.translatorHelperNames[name] = true
}

// AddNonTranslatableFunctionName 登记一个应视为非翻译调用的函数名
func (s *IgnoreSets) AddNonTranslatableFunctionName(name string) {
	s.mustNotBeFrozen()
	s.nonTranslatableFuncs[name] = true
}

// AddInternalNamespacePrefix 登记一个内部变量名前缀
func (s *IgnoreSets) AddInternalNamespacePrefix(prefix string) {
	s.mustNotBeFrozen()
	s.internalNamespaceNames[prefix] = true
}

// Freeze 冻结集合；此后任何 Add* 调用都会 panic
func (s *IgnoreSets) Freeze() {
	s.frozen = true
}

// IsFontFaceIgnored 判断字体名是否在忽略集合中
func (s *IgnoreSets) IsFontFaceIgnored(name string) bool {
	return s.fontFaceNames[name]
}

// IsTranslatorHelper 判断函数/宏名是否是已知的翻译调用
func (s *IgnoreSets) IsTranslatorHelper(name string) bool {
	return s.translatorHelperNames[name]
}

// IsNonTranslatableFunction 判断函数名是否是已知的非翻译调用
func (s *IgnoreSets) IsNonTranslatableFunction(name string) bool {
	return s.nonTranslatableFuncs[name]
}

// HasInternalNamespacePrefix 判断变量名是否以某个已登记的内部前缀开头
func (s *IgnoreSets) HasInternalNamespacePrefix(name string) bool {
	for prefix := range s.internalNamespaceNames {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
		if name == prefix {
			return true
		}
	}
	return false
}
