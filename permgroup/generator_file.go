package permgroup

import (
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"gopkg.in/yaml.v3"
)

// A GeneratorSet is a list of generators of a common
// degree, as read from a generator file.
type GeneratorSet struct {
	Degree     int
	Generators []Perm
}

type generatorFile struct {
	Degree     int         `yaml:"degree"`
	Generators []yaml.Node `yaml:"generators"`
}

// LoadGeneratorSet reads a generator file from disk.
//
// See ParseGeneratorSet for the format.
func LoadGeneratorSet(path string) (*GeneratorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, essentials.AddCtx("load generator set", err)
	}
	res, err := ParseGeneratorSet(data)
	if err != nil {
		return nil, essentials.AddCtx("load generator set "+path, err)
	}
	return res, nil
}

// ParseGeneratorSet decodes a YAML (or JSON) document of
// the form
//
//	degree: 5
//	generators:
//	  - "(0 1 2)"
//	  - [0, 1, 3, 4, 2]
//
// where every generator is either cycle notation or a list
// of images.
func ParseGeneratorSet(data []byte) (*GeneratorSet, error) {
	var raw generatorFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeneratorFile, err)
	}
	if raw.Degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", ErrInvalidGeneratorFile, raw.Degree)
	}
	res := &GeneratorSet{Degree: raw.Degree}
	for i := range raw.Generators {
		gen, err := decodeGenerator(raw.Degree, &raw.Generators[i])
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		res.Generators = append(res.Generators, gen)
	}
	return res, nil
}

func decodeGenerator(n int, node *yaml.Node) (Perm, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseCycles(n, node.Value)
	case yaml.SequenceNode:
		var images []int
		if err := node.Decode(&images); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeneratorFile, err)
		}
		if len(images) != n {
			return nil, fmt.Errorf("%w: %d images for degree %d", ErrDegreeMismatch,
				len(images), n)
		}
		return NewPerm(images)
	default:
		return nil, fmt.Errorf("%w: generator must be a string or a list (line %d)",
			ErrInvalidGeneratorFile, node.Line)
	}
}
