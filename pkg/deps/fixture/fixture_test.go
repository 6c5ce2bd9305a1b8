package fixture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/depvis/pkg/deps"
)

func TestParse(t *testing.T) {
	content := `# Test repository
A: B C
B: C

C:
  D :   E   F  
`
	repo, err := Parse(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, repo.Packages())

	ctx := context.Background()
	tests := []struct {
		pkg  string
		want []string
	}{
		{"A", []string{"B", "C"}},
		{"B", []string{"C"}},
		{"C", []string{}},
		{"D", []string{"E", "F"}},
	}
	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			got, err := repo.FetchDirect(ctx, tt.pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("A: B\nB C\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedLine))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_LaterLineWins(t *testing.T) {
	repo, err := Parse(strings.NewReader("A: B\nA: C D\n"))
	require.NoError(t, err)

	got, err := repo.FetchDirect(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, got)
	assert.Equal(t, 1, repo.Len())
}

func TestParse_CaseSensitive(t *testing.T) {
	repo, err := Parse(strings.NewReader("a: b\nA: B\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "A"}, repo.Packages())
}

func TestFetchDirect_MissIsEmpty(t *testing.T) {
	repo := New(map[string][]string{"A": {"B"}})

	got, err := repo.FetchDirect(context.Background(), "Z")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchDirect_ReturnsCopy(t *testing.T) {
	repo := New(map[string][]string{"A": {"B"}})

	got, _ := repo.FetchDirect(context.Background(), "A")
	got[0] = "X"

	again, _ := repo.FetchDirect(context.Background(), "A")
	assert.Equal(t, []string{"B"}, again)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repo.txt")
	require.NoError(t, os.WriteFile(path, []byte("A: B\n"), 0o644))

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, repo.Packages())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("no separator\n"), 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "missing.txt"), ErrMissingFile},
		{"malformed", bad, ErrMalformedLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var se *deps.SourceError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "fixture", se.Source)
		})
	}
}

func TestNew_SortedOrder(t *testing.T) {
	repo := New(map[string][]string{"C": nil, "A": {"C"}, "B": {"C"}})
	assert.Equal(t, []string{"A", "B", "C"}, repo.Packages())
}
