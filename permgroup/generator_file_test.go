package permgroup

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGeneratorSetYAML(t *testing.T) {
	doc := `
degree: 5
generators:
  - "(0 1 2)"
  - [0, 1, 3, 4, 2]
`
	set, err := ParseGeneratorSet([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 5, set.Degree)
	require.Equal(t, a5Generators(), set.Generators)
	require.Equal(t, big.NewInt(60), Order(set.Degree, set.Generators))
}

func TestParseGeneratorSetJSON(t *testing.T) {
	doc := `{"degree": 4, "generators": ["(0 1 2 3)", [2, 1, 0, 3]]}`
	set, err := ParseGeneratorSet([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, d8Generators(), set.Generators)
}

func TestParseGeneratorSetErrors(t *testing.T) {
	cases := map[string]error{
		"degree: [1":                               ErrInvalidGeneratorFile,
		"degree: -1":                               ErrInvalidGeneratorFile,
		"degree: 3\ngenerators: [{a: 1}]":          ErrInvalidGeneratorFile,
		"degree: 3\ngenerators: [[0, 0, 1]]":       ErrNotBijection,
		"degree: 3\ngenerators: [[1, 0]]":          ErrDegreeMismatch,
		"degree: 3\ngenerators: [\"(0 3)\"]":       ErrInvalidCycle,
		"degree: 3\ngenerators: [[\"a\", 0, 1]]":   ErrInvalidGeneratorFile,
		"degree: 3\ngenerators: [\"(0 1)\", \"(\"]": ErrInvalidCycle,
	}
	for doc, want := range cases {
		_, err := ParseGeneratorSet([]byte(doc))
		require.True(t, errors.Is(err, want), "document %q gave %v", doc, err)
	}

	set, err := ParseGeneratorSet([]byte("degree: 3"))
	require.NoError(t, err)
	require.Empty(t, set.Generators)
}

func TestLoadGeneratorSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m12.yaml")
	doc := "degree: 12\ngenerators:\n  - \"(0 3)(2 9)(4 10)(5 11)\"\n  - \"(0 7 8)(1 2 3)(4 11 10)(5 9 6)\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	set, err := LoadGeneratorSet(path)
	require.NoError(t, err)
	_, want := Mathieu12Generators()
	require.Equal(t, want, set.Generators)

	_, err = LoadGeneratorSet(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
