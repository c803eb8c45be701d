package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabels(t *testing.T) {
	tests := []struct {
		lang string
		id   string
		want string
	}{
		{lang: "en", id: MsgThemeLight, want: "Light mode"},
		{lang: "en", id: MsgModeEnabled, want: "Mom mode"},
		{lang: "zh", id: MsgThemeLight, want: "浅色模式"},
		{lang: "zh", id: MsgThemeDark, want: "深色模式"},
		{lang: "zh", id: MsgModeEnabled, want: "妈妈模式"},
		{lang: "zh", id: MsgModeDisabled, want: "隐私模式"},
		{lang: "de", id: MsgModeDisabled, want: "Privacy mode"}, // no german locale, falls back
	}

	for _, tc := range tests {
		t.Run(tc.lang+"/"+tc.id, func(t *testing.T) {
			l, err := NewLabels(tc.lang)
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.Text(tc.id))
		})
	}
}

func TestNewLabels_InvalidLanguage(t *testing.T) {
	_, err := NewLabels("not a language!")
	require.Error(t, err)
}

func TestLabels_Fallbacks(t *testing.T) {
	l := DefaultLabels()
	assert.Equal(t, "en", l.Lang())
	assert.Equal(t, "Dark mode", l.Text(MsgThemeDark))
	assert.Equal(t, "UnknownID", l.Text("UnknownID"))
}
