package corereview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipLineComment(t *testing.T) {
	data := []byte("// hello world\nint x;")
	end := SkipLineComment(data, 0)
	assert.Equal(t, 14, end)
	assert.Equal(t, byte('\n'), data[end])
}

func TestSkipBlockComment(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		data := []byte("/* a\nb */rest")
		end := SkipBlockComment(data, 0)
		assert.Equal(t, "rest", string(data[end:]))
	})

	t.Run("unterminated", func(t *testing.T) {
		data := []byte("/* never closes")
		end := SkipBlockComment(data, 0)
		assert.Equal(t, len(data), end)
	})
}

func TestSkipStringLiteral(t *testing.T) {
	t.Run("c-like simple", func(t *testing.T) {
		data := []byte(`"hello" rest`)
		end, ok := SkipStringLiteral(data, 0, DialectCLike)
		assert.True(t, ok)
		assert.Equal(t, `"hello"`, string(data[:end]))
	})

	t.Run("c-like escaped quote", func(t *testing.T) {
		data := []byte(`"say \"hi\"" rest`)
		end, ok := SkipStringLiteral(data, 0, DialectCLike)
		assert.True(t, ok)
		assert.Equal(t, `"say \"hi\""`, string(data[:end]))
	})

	t.Run("c-like unterminated at newline is malformed", func(t *testing.T) {
		data := []byte("\"unterminated\nrest")
		_, ok := SkipStringLiteral(data, 0, DialectCLike)
		assert.False(t, ok)
	})

	t.Run("csharp verbatim doubled quote", func(t *testing.T) {
		data := []byte(`@"C:\path""quoted""end" rest`)
		end, ok := SkipStringLiteral(data, 1, DialectCSharpVerbatim)
		assert.True(t, ok)
		assert.Equal(t, `"C:\path""quoted""end"`, string(data[1:end]))
	})
}

func TestFindEnclosingFunctionName(t *testing.T) {
	t.Run("direct call argument", func(t *testing.T) {
		src := []byte(`void f(){ show("Please save your work before exiting."); }`)
		offset := len(`void f(){ show(`)
		name := FindEnclosingFunctionName(src, offset)
		assert.Equal(t, "show", name)
	})

	t.Run("namespace qualified and templated call gets decorations stripped", func(t *testing.T) {
		src := []byte(`MyNamespace::Widget::Compare<T>(a, "text")`)
		offset := len(`MyNamespace::Widget::Compare<T>(a, `)
		name := FindEnclosingFunctionName(src, offset)
		assert.Equal(t, "Compare", name)
	})

	t.Run("sibling argument after a nested call is skipped over", func(t *testing.T) {
		src := []byte(`foo(bar(1, 2), "text")`)
		offset := len(`foo(bar(1, 2), `)
		name := FindEnclosingFunctionName(src, offset)
		assert.Equal(t, "foo", name)
	})

	t.Run("global scope assignment returns empty", func(t *testing.T) {
		src := []byte(`const char* kMessage = "hello";`)
		offset := len(`const char* kMessage = `)
		name := FindEnclosingFunctionName(src, offset)
		assert.Equal(t, "", name)
	})

	t.Run("array index is not a call", func(t *testing.T) {
		src := []byte(`table["key"]`)
		offset := len(`table[`)
		name := FindEnclosingFunctionName(src, offset)
		assert.Equal(t, "", name)
	})
}

func TestFindLHSAssignmentTarget(t *testing.T) {
	t.Run("simple assignment", func(t *testing.T) {
		src := []byte(`m_label = "Save As..."`)
		offset := len(`m_label = `)
		assert.Equal(t, "m_label", FindLHSAssignmentTarget(src, offset))
	})

	t.Run("no assignment present", func(t *testing.T) {
		src := []byte(`Log("unassigned")`)
		assert.Equal(t, "", FindLHSAssignmentTarget(src, len(`Log(`)))
	})
}

func TestDecodeEscapes(t *testing.T) {
	t.Run("common escapes", func(t *testing.T) {
		decoded, offsets := DecodeEscapes(`hi\nthere\t\\end`)
		assert.Equal(t, "hi\nthere\t\\end", decoded)
		assert.Equal(t, len(decoded), len(offsets))
	})

	t.Run("hex escape", func(t *testing.T) {
		decoded, _ := DecodeEscapes(`\x41\x42`)
		assert.Equal(t, "AB", decoded)
	})

	t.Run("unicode escape", func(t *testing.T) {
		decoded, _ := DecodeEscapes(`\u00e9`)
		assert.Equal(t, "é", decoded)
	})

	t.Run("offsets map back into original bytes", func(t *testing.T) {
		raw := `a\nb`
		decoded, offsets := DecodeEscapes(raw)
		assert.Equal(t, "a\nb", decoded)
		assert.Equal(t, 0, offsets[0])
		assert.Equal(t, 1, offsets[1]) // \n decodes from the backslash position
		assert.Equal(t, 3, offsets[2])
	})
}
