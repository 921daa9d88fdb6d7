// Package classify 实现字符串可翻译性分类器与格式说明符比较（spec §4.2-4.3）
package classify

// UsageContextKind 标识字符串字面量的使用上下文种类（spec §3 StringInfo）
type UsageContextKind int

const (
	// KindFunctionCall 表示字符串作为某次函数/宏调用的实参出现
	KindFunctionCall UsageContextKind = iota
	// KindVariableAssignment 表示字符串被赋值给某个变量
	KindVariableAssignment
	// KindParameter 表示字符串作为某个声明的默认参数值出现
	KindParameter
	// KindOrphan 表示字符串既非调用实参也非赋值目标，仅记录周围原始文本
	KindOrphan
)

// UsageContext 描述一个字符串字面量被发现时所处的语法上下文
type UsageContext struct {
	Kind       UsageContextKind
	Name       string // 函数名/变量名/参数名，Orphan 时为空
	Surrounding string // Orphan 时记录周围原始文本，便于诊断
}

// FunctionCall 构造一个"作为函数调用实参"的使用上下文
func FunctionCall(name string) UsageContext {
	return UsageContext{Kind: KindFunctionCall, Name: name}
}

// VariableAssignment 构造一个"赋值给变量"的使用上下文
func VariableAssignment(name string) UsageContext {
	return UsageContext{Kind: KindVariableAssignment, Name: name}
}

// Parameter 构造一个"作为参数默认值"的使用上下文
func Parameter(name string) UsageContext {
	return UsageContext{Kind: KindParameter, Name: name}
}

// Orphan 构造一个既非调用也非赋值的孤立使用上下文
func Orphan(surrounding string) UsageContext {
	return UsageContext{Kind: KindOrphan, Surrounding: surrounding}
}
