package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type flags struct {
	scene   string
	out     string
	width   int
	ar      float64
	verbose bool
}

func NewFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	scene := fs.String("scene", "", "Path to the rotation scene file. This argument is REQUIRED.")
	out := fs.String("out", "", "Path of the trajectory plot (.png or .svg). No plot is written when empty")
	width := fs.Int("width", 640, "Plot width in pixels (default 640)")
	ar := fs.String("ar", "16:9", "Plot aspect ratio in width:height format (default \"16:9\")")
	verbose := fs.Bool("v", false, "If provided, every rotation step is logged")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *scene == "" {
		return nil, fmt.Errorf("error: Scene file not provided")
	}

	if sceneExists, err := exists(*scene); !sceneExists {
		return nil, fmt.Errorf("error: Scene file not found:\n\t%s", err.Error())
	}

	if filepath.Ext(*scene) != ".toml" {
		return nil, fmt.Errorf("error: Scene file must have a .toml extension")
	}

	if ext := filepath.Ext(*out); *out != "" && ext != ".png" && ext != ".svg" {
		return nil, fmt.Errorf("error: Plot file must have a .png or .svg extension")
	}

	if *width <= 0 {
		return nil, fmt.Errorf("error: Plot width must be greater than 0")
	}

	parsedAspectRatio, err := parseAspectRatio(*ar)
	if err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%s", err.Error())
	}

	return &flags{
		scene:   *scene,
		out:     *out,
		width:   *width,
		ar:      parsedAspectRatio,
		verbose: *verbose,
	}, nil
}

func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if height == 0 {
		return 0, fmt.Errorf("error: Height cannot be zero")
	}

	return width / height, nil
}

func (f flags) Scene() string {
	return f.scene
}

func (f flags) Out() string {
	return f.out
}

func (f flags) Width() int {
	return f.width
}

func (f flags) Height() int {
	return int(1. / f.ar * float64(f.width))
}

func (f flags) Verbose() bool {
	return f.verbose
}
