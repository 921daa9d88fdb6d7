package cpp

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

func TestCppInternalPrefixAssignmentIsNotFlagged(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`const char* k_tag = "button_pressed";`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
}

func TestCppShouldBeTranslatable(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ show("Please save your work before exiting."); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	if assert.Len(t, core.NotAvailableForLocalizationStrings, 1) {
		finding := core.NotAvailableForLocalizationStrings[0]
		assert.Equal(t, "Please save your work before exiting.", finding.Text)
	}
}

func TestCppTranslationCallIsLocalizable(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ gettext("Open file"); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Len(t, core.LocalizableStrings, 1)
}

func TestCppDebugCallIsNotTranslatable(t *testing.T) {
	r, core := newTestReviewer()

	opts := config.DefaultOptions()
	opts.LogMessagesCanBeTranslatable = false
	core.View.Options = opts

	err := r.Process(`void f(){ Trace("entering f()"); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStrings)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
	assert.Len(t, core.LocalizableStringsInInternalCall, 1)
}

func TestCppMalformedStringAtEOF(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`const char* s = "unterminated`, "widget.cpp")

	assert.NoError(t, err)
	assert.Len(t, core.MalformedStrings, 1)
}

func TestCppAsmBlockIsSkipped(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ asm("mov %eax, \"nope\""); show("real string"); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	total := len(core.LocalizableStrings) + len(core.NotAvailableForLocalizationStrings) +
		len(core.UnsafeLocalizableStrings) + len(core.MarkedAsNonLocalizableStrings)
	assert.Equal(t, 1, total, "only the string outside the asm block should be classified")
}

func TestCppWideStringPrefixDoesNotHideAssignmentTarget(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`const wchar_t* k_tag = L"Please confirm before you continue.";`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.NotAvailableForLocalizationStrings,
		"k_ prefix should be recognized as an internal assignment target even behind the L prefix")
}

func TestCppDuplicateDefineValuesAreFlagged(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process("#define IDS_OK 101\n#define IDS_CANCEL 101\n#define IDS_HELP 102\n", "resource.h")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Len(t, core.IDsAssignedNumber, 3)
	if assert.Len(t, core.IDsWithDuplicateValue, 2) {
		names := []string{core.IDsWithDuplicateValue[0].Text, core.IDsWithDuplicateValue[1].Text}
		assert.ElementsMatch(t, []string{"IDS_OK", "IDS_CANCEL"}, names)
	}
}

func TestCppTrailingSpacesAndTabsDetected(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process("int x;  \n\tint y;\n", "widget.cpp")

	assert.NoError(t, err)
	assert.Len(t, core.TrailingSpaces, 1)
	assert.Len(t, core.Tabs, 1)
}

func TestCppShouldBeTranslatableRespectsCheckNotAvailableForL10NBit(t *testing.T) {
	style := config.AllL10NChecks.Without(config.CheckNotAvailableForL10N)
	core := corereview.NewCore(config.NewView(style, nil, nil))
	r := New(core)

	err := r.Process(`void f(){ show("Please save your work before exiting."); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
}

func TestCppTranslationCallRespectsCheckL10NStringsBit(t *testing.T) {
	style := config.AllL10NChecks.Without(config.CheckL10NStrings)
	core := corereview.NewCore(config.NewView(style, nil, nil))
	r := New(core)

	err := r.Process(`void f(){ gettext("Open file"); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStrings)
}

func TestCppInternalCallLeakRespectsCheckSuspectL10NUsageBit(t *testing.T) {
	style := config.AllL10NChecks.Without(config.CheckSuspectL10NUsage)
	core := corereview.NewCore(config.NewView(style, nil, nil))
	opts := config.DefaultOptions()
	opts.LogMessagesCanBeTranslatable = false
	core.View.Options = opts
	r := New(core)

	err := r.Process(`void f(){ Trace("entering f()"); }`, "widget.cpp")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStringsInInternalCall)
}
