package csharp

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

func TestCsharpShouldBeTranslatable(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ Show("Please save your work before exiting."); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	if assert.Len(t, core.NotAvailableForLocalizationStrings, 1) {
		assert.Equal(t, "Please save your work before exiting.", core.NotAvailableForLocalizationStrings[0].Text)
	}
}

func TestCsharpTranslationCallIsLocalizable(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ gettext("Open file"); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Len(t, core.LocalizableStrings, 1)
}

func TestCsharpDebugCallIsNotTranslatable(t *testing.T) {
	r, core := newTestReviewer()

	opts := config.DefaultOptions()
	opts.LogMessagesCanBeTranslatable = false
	core.View.Options = opts

	err := r.Process(`void f(){ Trace("entering f()"); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStrings)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
	assert.Len(t, core.LocalizableStringsInInternalCall, 1)
}

func TestCsharpVerbatimStringUnescapesDoubledQuotes(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`string p = @"She said ""hello"" to me.";`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	if assert.Len(t, core.NotAvailableForLocalizationStrings, 1) {
		assert.Equal(t, `She said "hello" to me.`, core.NotAvailableForLocalizationStrings[0].Text)
	}
}

func TestCsharpInterpolatedStringSplitsLiteralSegments(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(string name){ Show($"Please enter your name, {name}."); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	if assert.Len(t, core.NotAvailableForLocalizationStrings, 1) {
		assert.Equal(t, "Please enter your name, ", core.NotAvailableForLocalizationStrings[0].Text)
	}
}

func TestCsharpAttributeStringIsNotTranslatable(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process("[Obsolete(\"this method is deprecated, please migrate\")]\nvoid f(){}", "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStrings)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
	assert.Empty(t, core.LocalizableStringsInInternalCall)
}

func TestCsharpArrayIndexIsNotTreatedAsAttribute(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`void f(){ var x = table["Please save your work before exiting."]; }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Len(t, core.NotAvailableForLocalizationStrings, 1)
}

func TestCsharpMalformedStringAtEOF(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process(`string s = "unterminated`, "widget.cs")

	assert.NoError(t, err)
	assert.Len(t, core.MalformedStrings, 1)
}

func TestCsharpTrailingSpacesAndTabsDetected(t *testing.T) {
	r, core := newTestReviewer()

	err := r.Process("int x;  \n\tint y;\n", "widget.cs")

	assert.NoError(t, err)
	assert.Len(t, core.TrailingSpaces, 1)
	assert.Len(t, core.Tabs, 1)
}

func TestCsharpShouldBeTranslatableRespectsCheckNotAvailableForL10NBit(t *testing.T) {
	style := config.AllL10NChecks.Without(config.CheckNotAvailableForL10N)
	core := corereview.NewCore(config.NewView(style, nil, nil))
	r := New(core)

	err := r.Process(`void f(){ Show("Please save your work before exiting."); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.NotAvailableForLocalizationStrings)
}

func TestCsharpTranslationCallRespectsCheckL10NStringsBit(t *testing.T) {
	style := config.AllL10NChecks.Without(config.CheckL10NStrings)
	core := corereview.NewCore(config.NewView(style, nil, nil))
	r := New(core)

	err := r.Process(`void f(){ gettext("Open file"); }`, "widget.cs")
	core.ReviewLocalizableStrings()

	assert.NoError(t, err)
	assert.Empty(t, core.LocalizableStrings)
}
