package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Toggle(t *testing.T) {
	tests := []struct {
		current  Theme
		expected Theme
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
		{Theme{}, ThemeDark},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.Toggle())
		})
	}
}

func TestTheme_ToggleInvolution(t *testing.T) {
	for _, th := range ThemeValues {
		assert.Equal(t, th, th.Toggle().Toggle(), "toggle twice must restore %s", th)
	}
}

func TestTheme_IsDarkAndValid(t *testing.T) {
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, Theme{}.Valid())
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "light", want: ThemeLight},
		{in: "dark", want: ThemeDark},
		{in: "Dark", wantErr: true},
		{in: "blue", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTheme(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestView_Parse(t *testing.T) {
	for _, name := range ViewNames {
		v, err := ParseView(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
	_, err := ParseView("settings")
	require.Error(t, err)
}
