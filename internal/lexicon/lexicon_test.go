package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one word per line",
			input: "cat\ndog\n",
			want:  []string{"CAT", "DOG"},
		},
		{
			name:  "trims and uppercases",
			input: "  Cat \r\n\tdOg\n",
			want:  []string{"CAT", "DOG"},
		},
		{
			name:  "skips blank lines and duplicates",
			input: "cat\n\n   \nCAT\ncat\n",
			want:  []string{"CAT"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lex, err := Load(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, len(tc.want), lex.Len())
			for _, w := range tc.want {
				assert.True(t, lex.Contains(w), "missing %s", w)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader("\n  \n"))
	assert.True(t, errors.Is(err, ErrEmpty), "expected ErrEmpty, got %v", err)

	_, err = Load(nil)
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	lex, err := FromWords("cat", "tea", "quit")
	require.NoError(t, err)

	tests := []struct {
		word string
		want bool
	}{
		{"CAT", true},
		{"cat", true},
		{" Cat ", true},
		{"QUIT", true},
		{"CA", false},
		{"CATS", false},
		{"", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, lex.Contains(tc.word), "Contains(%q)", tc.word)
	}

	var nilLex *Lexicon
	assert.False(t, nilLex.Contains("CAT"))
	assert.Zero(t, nilLex.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nbat\n"), 0o600))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, lex.Contains("BAT"))
	assert.False(t, lex.Contains("CAR"))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFileEmptyPathUsesEmbedded(t *testing.T) {
	lex, err := LoadFile("")
	require.NoError(t, err)
	assert.Same(t, Embedded(), lex)
}

func TestEmbedded(t *testing.T) {
	lex := Embedded()
	require.Greater(t, lex.Len(), 1000)
	for _, w := range []string{"CAT", "TEA", "STONE", "QUIT"} {
		assert.True(t, lex.Contains(w), "embedded list should contain %s", w)
	}
	for w := range lex.words {
		assert.Equal(t, strings.ToUpper(w), w)
	}
}
