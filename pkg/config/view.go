package config

// View 是分类器看到的只读配置快照：选项 + 冻结后的忽略集合。
// 分类器（pkg/classify）借用该视图，不持有可变状态（DESIGN NOTES §9）。
type View struct {
	Options *ReviewOptions
	Ignores *IgnoreSets
	Style   ReviewStyle
}

// NewView 组装一个分类视图
func NewView(style ReviewStyle, options *ReviewOptions, ignores *IgnoreSets) *View {
	if options == nil {
		options = DefaultOptions()
	}
	if ignores == nil {
		ignores = NewIgnoreSets()
	}
	return &View{Options: options, Ignores: ignores, Style: style}
}
