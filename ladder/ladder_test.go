package ladder_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordset"
)

// mixedList combines the canonical 4-letter vocabulary with a 3-letter one;
// "ape" reaches "man" in five steps through the 3-letter bucket.
var mixedList = []string{
	"bird", "bind", "bord", "bond", "bong", "song",
	"man", "apt", "oat", "mat", "ape", "opt",
}

//----------------------------------------------------------------------------//
// Construction tests
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		words []string
		err   error
	}{
		{"EmptyList", nil, wordset.ErrEmptyInput},
		{"NonAlphabetic", []string{"man", "b4d"}, wordset.ErrNonAlphabetic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ladder.New(tc.words)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.words, err, tc.err)
			}
		})
	}
}

func TestNew_Lengths(t *testing.T) {
	ix, err := ladder.New(mixedList)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4}, ix.Lengths())
	assert.NotNil(t, ix.Graph(3))
	assert.NotNil(t, ix.Graph(4))
	assert.Nil(t, ix.Graph(5))
}

//----------------------------------------------------------------------------//
// Query tests
//----------------------------------------------------------------------------//

// TestQuery_DispatchesPerLength verifies each bucket answers its own
// queries independently.
func TestQuery_DispatchesPerLength(t *testing.T) {
	ix, err := ladder.New(mixedList)
	require.NoError(t, err)

	// 3-letter bucket: single six-word ladder ape→man.
	chain, err := ix.Query("ape", "man")
	require.NoError(t, err)
	require.Equal(t, 1, chain.PathCount())
	assert.True(t, chain.Contains([]string{"ape", "apt", "opt", "oat", "mat", "man"}))

	// 4-letter bucket: the canonical two-ladder answer.
	chain, err = ix.Query("bird", "song")
	require.NoError(t, err)
	assert.Equal(t, 2, chain.PathCount())
}

// TestQuery_CrossLength verifies a start/end length mismatch is an empty
// outcome, never an error.
func TestQuery_CrossLength(t *testing.T) {
	ix, err := ladder.New(mixedList)
	require.NoError(t, err)

	chain, err := ix.Query("man", "bird")
	require.NoError(t, err)
	assert.Equal(t, 0, chain.PathCount())
}

// TestQuery_NoBucket verifies a length with no bucket comes back empty.
func TestQuery_NoBucket(t *testing.T) {
	ix, err := ladder.New(mixedList)
	require.NoError(t, err)

	chain, err := ix.Query("bride", "groom")
	require.NoError(t, err)
	assert.Equal(t, 0, chain.PathCount())
}

// TestQuery_AbsentWord verifies vocabulary misses inside an existing bucket
// are empty outcomes too.
func TestQuery_AbsentWord(t *testing.T) {
	ix, err := ladder.New(mixedList)
	require.NoError(t, err)

	chain, err := ix.Query("bird", "zeta")
	require.NoError(t, err)
	assert.Equal(t, 0, chain.PathCount())
}

//----------------------------------------------------------------------------//
// FromFile tests
//----------------------------------------------------------------------------//

// writeVocabulary drops contents into a temp file and returns its path.
func writeVocabulary(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestFromFile(t *testing.T) {
	path := writeVocabulary(t, "bird\nbind\n  bord\n\nbond\nbong\nsong\n")
	ix, err := ladder.FromFile(path)
	require.NoError(t, err)

	chain, err := ix.Query("bird", "song")
	require.NoError(t, err)
	assert.Equal(t, 2, chain.PathCount())
}

func TestFromFile_Missing(t *testing.T) {
	_, err := ladder.FromFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "want wrapped os.ErrNotExist, got %v", err)
}

func TestFromFile_BlankFile(t *testing.T) {
	path := writeVocabulary(t, "\n\n  \n")
	_, err := ladder.FromFile(path)
	assert.True(t, errors.Is(err, wordset.ErrEmptyInput), "want ErrEmptyInput, got %v", err)
}

func TestFromFile_MalformedWord(t *testing.T) {
	path := writeVocabulary(t, "bird\nb1rd\n")
	_, err := ladder.FromFile(path)
	assert.True(t, errors.Is(err, wordset.ErrNonAlphabetic), "want ErrNonAlphabetic, got %v", err)
}
