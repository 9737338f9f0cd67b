package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildProfiles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "profiles",
		"User1#movies#politics\nUser2#politics#soccer\n\nUser3#politics\n")

	profiles, terms, err := BuildProfiles(path, "#")
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	require.Equal(t, "User1", profiles[0].Name)
	require.Equal(t, []string{"movies", "politics"}, profiles[0].Interests)
	require.Equal(t, "User2", profiles[1].Name)
	require.Equal(t, []string{"politics", "soccer"}, profiles[1].Interests)
	require.Equal(t, "User3", profiles[2].Name)

	// Union of stemmed interests across all profiles.
	require.ElementsMatch(t, []string{"movi", "politic", "soccer"}, terms)
}

func TestBuildProfilesMalformedLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "profiles", "User1#movies\nJustAName\n")

	_, _, err := BuildProfiles(path, "#")
	require.Error(t, err)
	require.Contains(t, err.Error(), ":2:")
}

func TestBuildProfilesMissingFile(t *testing.T) {
	_, _, err := BuildProfiles(filepath.Join(t.TempDir(), "nope"), "#")
	require.Error(t, err)
}

func TestBuildDictionary(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dictionary",
		"movies#classics#reviews\npolitics#media#voters\nsoccer#league#victory\n")

	dict, err := BuildDictionary(path, "#")
	require.NoError(t, err)

	for token, want := range map[string]string{
		"movi": "movi", "classic": "movi", "review": "movi",
		"politic": "politic", "media": "politic", "voter": "politic",
		"soccer": "soccer", "league": "soccer", "victory": "soccer",
	} {
		term, ok := dict.Lookup(token)
		require.True(t, ok, "token %q", token)
		require.Equal(t, want, term, "token %q", token)
	}
}

func TestBuildDictionaryMalformedLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dictionary", "lonely\n")

	_, err := BuildDictionary(path, "#")
	require.Error(t, err)
	require.Contains(t, err.Error(), ":1:")
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blade-runner.txt", "blade runner")
	writeFile(t, dir, "film-quiz.txt", "quiz about films")
	writeFile(t, dir, "notes.xml", "<ignored/>")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	corpus, err := LoadCorpus(dir, []string{".txt"})
	require.NoError(t, err)
	require.Len(t, corpus, 2)

	require.Equal(t, "blade-runner", corpus[0].ID)
	require.Equal(t, "blade runner", corpus[0].Content)
	require.Equal(t, filepath.Join(dir, "blade-runner.txt"), corpus[0].Path)
	require.Equal(t, "film-quiz", corpus[1].ID)
}

func TestLoadCorpusMissingDir(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "nope"), []string{".txt"})
	require.Error(t, err)
}
