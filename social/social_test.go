package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHandleGitHub(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Handle
	}{
		{"url with extra path", "https://github.com/TamerOnLine/extra", Handle{"TamerOnLine", "https://github.com/TamerOnLine"}},
		{"plain handle", "TamerOnLine", Handle{"TamerOnLine", "https://github.com/TamerOnLine"}},
		{"at prefix", "@TamerOnLine", Handle{"TamerOnLine", "https://github.com/TamerOnLine"}},
		{"label prefix", "GitHub: TamerOnLine", Handle{"TamerOnLine", "https://github.com/TamerOnLine"}},
		{"www without scheme", "www.github.com/octo?tab=repositories", Handle{"octo", "https://github.com/octo"}},
		{"handle with path", "octo/repo", Handle{"octo", "https://github.com/octo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeHandle(GitHub, tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeHandleLinkedIn(t *testing.T) {
	got, ok := NormalizeHandle(LinkedIn, "https://www.linkedin.com/in/tamer-faour/")
	require.True(t, ok)
	assert.Equal(t, Handle{"tamer-faour", "https://www.linkedin.com/in/tamer-faour"}, got)

	got, ok = NormalizeHandle(LinkedIn, "linkedin.com/pub/old-profile/1/2")
	require.True(t, ok)
	assert.Equal(t, "old-profile", got.Display)

	got, ok = NormalizeHandle(LinkedIn, "LinkedIn: jane")
	require.True(t, ok)
	assert.Equal(t, "https://www.linkedin.com/in/jane", got.URL)
}

func TestNormalizeHandleRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "@", "https://", "GitHub:", "/repo"} {
		_, ok := NormalizeHandle(GitHub, raw)
		assert.False(t, ok, "raw %q", raw)
	}
	_, ok := NormalizeHandle(Kind("Mastodon"), "someone")
	assert.False(t, ok)
}

func TestLaxHandle(t *testing.T) {
	got, ok := LaxHandle(GitHub, "github: https://www.github.com/octo/x")
	require.True(t, ok)
	assert.Equal(t, Handle{"octo", "https://github.com/octo"}, got)

	got, ok = LaxHandle(LinkedIn, "https://linkedin.com/in/jane/details")
	require.True(t, ok)
	assert.Equal(t, Handle{"jane", "https://www.linkedin.com/in/jane"}, got)

	_, ok = LaxHandle(GitHub, "  @ ")
	assert.False(t, ok)
}
