package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"quaternion"
)

// trajectory applies the per-step rotation of s to its vector s.Steps times.
// The returned slice holds the starting vector followed by every step.
func trajectory(s scene) ([]quaternion.Quaternion[float64], error) {
	axis, err := s.axis()
	if err != nil {
		return nil, fmt.Errorf("invalid axis: %w", err)
	}
	step := quaternion.PolarTurn(axis.I, axis.J, axis.K, s.Angle/float64(s.Steps))

	points := make([]quaternion.Quaternion[float64], 0, s.Steps+1)
	v := s.vector()
	points = append(points, v)
	for i := 0; i < s.Steps; i++ {
		v = quaternion.Turn3DVec(v, step)
		points = append(points, v)
	}
	return points, nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	flags, err := NewFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		os.Exit(2)
	}
	log := newLogger(flags.Verbose())

	s, err := loadScene(flags.Scene())
	if err != nil {
		log.Fatal().Err(err).Str("scene", flags.Scene()).Msg("load scene")
	}

	points, err := trajectory(s)
	if err != nil {
		log.Fatal().Err(err).Str("scene", flags.Scene()).Msg("rotate")
	}

	start := quaternion.Norm(points[0])
	for i, p := range points {
		log.Debug().
			Int("step", i).
			Stringer("vector", p).
			Float64("drift", quaternion.Norm(p)-start).
			Msg("turn")
	}
	last := points[len(points)-1]
	log.Info().
		Int("steps", s.Steps).
		Float64("angle", s.Angle).
		Stringer("from", points[0]).
		Stringer("to", last).
		Msg("rotated")

	if flags.Out() == "" {
		return
	}
	if err := plotTrajectory(points, flags.Out(), flags.Width(), flags.Height()); err != nil {
		log.Fatal().Err(err).Str("out", flags.Out()).Msg("plot trajectory")
	}
	log.Info().Str("out", flags.Out()).Msg("plot written")
}
