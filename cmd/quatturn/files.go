package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"quaternion"
)

type scene struct {
	Axis          [3]float64 `toml:"axis"`
	Angle         float64    `toml:"angle"`
	Vector        [3]float64 `toml:"vector"`
	Steps         int        `toml:"steps"`
	NormalizeAxis bool       `toml:"normalize_axis"`
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

func loadScene(path string) (scene, error) {
	var s scene
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return scene{}, fmt.Errorf("failed to read scene file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return scene{}, fmt.Errorf("unknown scene keys: %s", strings.Join(keys, ", "))
	}
	if s.Steps <= 0 {
		return scene{}, fmt.Errorf("steps must be greater than 0, got %d", s.Steps)
	}
	if s.Axis == [3]float64{} {
		return scene{}, fmt.Errorf("axis cannot be the zero vector")
	}
	return s, nil
}

// axis returns the rotation axis as a pure quaternion, normalized when the
// scene asks for it.
func (s scene) axis() (quaternion.Quaternion[float64], error) {
	a := quaternion.FromVector(s.Axis[0], s.Axis[1], s.Axis[2])
	if !s.NormalizeAxis {
		return a, nil
	}
	return quaternion.Normalize(a)
}

func (s scene) vector() quaternion.Quaternion[float64] {
	return quaternion.FromVector(s.Vector[0], s.Vector[1], s.Vector[2])
}
