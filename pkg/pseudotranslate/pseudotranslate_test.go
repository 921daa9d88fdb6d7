package pseudotranslate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Done-0/i18n-check/pkg/reviewer/po"
)

const samplePo = `msgid "Hello"
msgstr "Bonjour"

msgid "Goodbye"
msgstr "Au revoir"
`

func writeTempPo(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.po")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMangleUpperCaseMapsEveryLetter(t *testing.T) {
	m := newMangler(Options{Method: UpperCase}, 1)
	assert.Equal(t, "BONJOUR", m.mangle("Bonjour"))
}

func TestMangleFillReplacesEveryRuneWithX(t *testing.T) {
	m := newMangler(Options{Method: Fill}, 1)
	assert.Equal(t, "XXXXXXX", m.mangle("Bonjour"))
}

func TestMangleEuropeanAccentsMapsKnownLetters(t *testing.T) {
	m := newMangler(Options{Method: EuropeanAccents}, 1)
	out := m.mangle("ab")
	assert.Equal(t, europeanAccents["a"]+europeanAccents["b"], out)
}

func TestMangleWidthIncreasePadsToTarget(t *testing.T) {
	m := newMangler(Options{Method: Fill, WidthIncreasePercent: 50}, 1)
	out := m.mangle("abcd")
	// original len 4, target = ceil(4*1.5) = 6
	assert.Len(t, []rune(out), 6)
}

func TestMangleAddBracketsWrapsResult(t *testing.T) {
	m := newMangler(Options{Method: UpperCase, AddBrackets: true}, 1)
	out := m.mangle("hi")
	assert.True(t, strings.HasPrefix(out, "["))
	assert.True(t, strings.HasSuffix(out, "]"))
}

func TestMangleTrackIDsPrefixesIncrementingCounter(t *testing.T) {
	m := newMangler(Options{Method: UpperCase, TrackIDs: true}, 11)
	first := m.mangle("a")
	second := m.mangle("b")
	assert.True(t, strings.HasPrefix(first, "00 "))
	assert.True(t, strings.HasPrefix(second, "01 "))
}

func TestMangleOrderAppliesPaddingBeforeBracketsAndCounter(t *testing.T) {
	m := newMangler(Options{Method: Fill, WidthIncreasePercent: 100, AddBrackets: true, TrackIDs: true}, 1)
	out := m.mangle("ab")
	// padded target = ceil(2*2) = 4 X's, then bracketed, then "0 " prefix
	assert.Equal(t, "0 [XXXX]", out)
}

func TestEncodeQuotedEscapesSpecialCharacters(t *testing.T) {
	out := encodeQuoted("line1\nline2\t\"quoted\"\\end")
	assert.Equal(t, `"line1\nline2\t\"quoted\"\\end"`, out)
}

func TestPseudoTranslateRewritesMsgstrValues(t *testing.T) {
	path := writeTempPo(t, samplePo)

	partial := PseudoTranslate([]string{path}, Options{Method: UpperCase}, nil, nil, nil)
	assert.False(t, partial)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	cat, err := po.Parse(path, string(data))
	require.NoError(t, err)
	require.Len(t, cat.Entries, 2)

	assert.Equal(t, "Hello", cat.Entries[0].ID.Decode())
	assert.Equal(t, "BONJOUR", cat.Entries[0].Strs[0].Value.Decode())
	assert.Equal(t, "Goodbye", cat.Entries[1].ID.Decode())
	assert.Equal(t, "AU REVOIR", cat.Entries[1].Strs[0].Value.Decode())
}

func TestPseudoTranslateLeavesEmptyMsgstrEmpty(t *testing.T) {
	content := `msgid "Untranslated"
msgstr ""
`
	path := writeTempPo(t, content)

	PseudoTranslate([]string{path}, Options{Method: UpperCase}, nil, nil, nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cat, err := po.Parse(path, string(data))
	require.NoError(t, err)
	require.Len(t, cat.Entries, 1)
	assert.Equal(t, "", cat.Entries[0].Strs[0].Value.Decode())
}

func TestPseudoTranslateStopsWhenProgressCallbackReturnsFalse(t *testing.T) {
	pathA := writeTempPo(t, samplePo)
	pathB := writeTempPo(t, samplePo)

	var seen []string
	partial := PseudoTranslate([]string{pathA, pathB}, Options{Method: UpperCase},
		nil,
		func(index int, path string) bool {
			seen = append(seen, path)
			return index == 0
		},
		nil,
	)

	assert.True(t, partial)
	assert.Len(t, seen, 2)

	dataA, err := os.ReadFile(pathA)
	require.NoError(t, err)
	catA, err := po.Parse(pathA, string(dataA))
	require.NoError(t, err)
	assert.Equal(t, "BONJOUR", catA.Entries[0].Strs[0].Value.Decode())

	dataB, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, samplePo, string(dataB))
}

func TestPseudoTranslateReportsErrorForUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.po")

	var errPath string
	PseudoTranslate([]string{missing}, Options{Method: UpperCase}, nil, nil, func(path string, err error) {
		errPath = path
		assert.Error(t, err)
	})

	assert.Equal(t, missing, errPath)
}

func TestOnStartReceivesTotalFileCount(t *testing.T) {
	pathA := writeTempPo(t, samplePo)
	pathB := writeTempPo(t, samplePo)

	var total int
	PseudoTranslate([]string{pathA, pathB}, Options{Method: UpperCase}, func(n int) {
		total = n
	}, nil, nil)

	assert.Equal(t, 2, total)
}
