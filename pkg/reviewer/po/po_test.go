package po

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Done-0/i18n-check/pkg/config"
	"github.com/Done-0/i18n-check/pkg/corereview"
)

func newTestReviewer() (*Reviewer, *corereview.Core) {
	core := corereview.NewCore(config.NewView(config.AllL10NChecks, nil, nil))
	return New(core), core
}

func TestPoCleanEntryHasNoFindings(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Open the configuration file\"\nmsgstr \"Ouvrez le fichier de configuration\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Empty(t, core.TransInconsistencies)
	assert.Empty(t, core.PrintfMismatches)
	assert.Empty(t, core.AcceleratorMismatches)
	assert.Empty(t, core.NeedsContextStrings)
}

func TestPoFuzzyEntryIsFlagged(t *testing.T) {
	r, core := newTestReviewer()

	text := "#, fuzzy\nmsgid \"Open the configuration file\"\nmsgstr \"Ouvrez le fichier de configuration\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	if assert.Len(t, core.TransInconsistencies, 1) {
		assert.Contains(t, core.TransInconsistencies[0].Message, "fuzzy")
	}
}

func TestPoPrintfMismatchIsDetected(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Found %d files\"\nmsgstr \"Trouvé %s fichiers\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Len(t, core.PrintfMismatches, 1)
}

func TestPoPrintfMatchHasNoMismatch(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Found %d files\"\nmsgstr \"%d fichiers trouvés\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Empty(t, core.PrintfMismatches)
}

func TestPoAcceleratorMismatchIsDetected(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"&Open\"\nmsgstr \"Ouvrir\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Len(t, core.AcceleratorMismatches, 1)
}

func TestPoShortMsgidWithoutContextNeedsContext(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"OK\"\nmsgstr \"OK\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Len(t, core.NeedsContextStrings, 1)
}

func TestPoShortMsgidWithContextIsNotFlagged(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgctxt \"button label\"\nmsgid \"OK\"\nmsgstr \"OK\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Empty(t, core.NeedsContextStrings)
}

func TestPoEmptyMsgstrOnNonFuzzyEntryIsIgnored(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Please save your changes\"\nmsgstr \"\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Empty(t, core.TransInconsistencies)
	assert.Empty(t, core.PrintfMismatches)
	assert.Empty(t, core.AcceleratorMismatches)
}

func TestPoTrailingWhitespaceDiscrepancyIsFlagged(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Welcome \"\nmsgstr \"Bienvenue\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Len(t, core.TransInconsistencies, 1)
}

func TestPoDifferentURLsAreFlagged(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"See https://example.com/docs for more info\"\n" +
		"msgstr \"Voir https://example.org/docs pour plus d'infos\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	if assert.Len(t, core.TransInconsistencies, 1) {
		assert.Contains(t, core.TransInconsistencies[0].Message, "URL")
	}
}

func TestPoMultipleEntriesAreParsedIndependently(t *testing.T) {
	r, core := newTestReviewer()

	text := "msgid \"Open the configuration file\"\nmsgstr \"Ouvrez le fichier de configuration\"\n\n" +
		"#, fuzzy\nmsgid \"Close the application\"\nmsgstr \"Fermer l'application\"\n"
	err := r.Process(text, "messages.po")

	assert.NoError(t, err)
	assert.Len(t, core.TransInconsistencies, 1)
}
