package main

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/johnxnguyen/Newton/common/geometry"
)

const configEnv = "NEWTON_CONFIG"

var lookupEnv = os.LookupEnv

// populationPath takes the population file from the first argument, falling
// back to $NEWTON_CONFIG.
func populationPath(args cli.Args) (string, error) {
	if args.Present() {
		return args.First(), nil
	}

	path, exists := lookupEnv(configEnv)
	if !exists || strings.TrimSpace(path) == "" {
		return "", errors.Errorf("missing population file; pass it as an argument or set %s", configEnv)
	}

	return path, nil
}

func parseFloats(value string, expected int) ([]float32, error) {
	parts := strings.Split(value, ",")
	if len(parts) != expected {
		return nil, errors.Errorf("expected %d comma separated numbers, got %q", expected, value)
	}

	res := make([]float32, expected)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number in %q", value)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.Errorf("%q is not a finite number", part)
		}
		res[i] = float32(f)
	}

	return res, nil
}

// parseRect reads "x,y,width,height". The size and the quadrant size are
// validated so a bad flag does not reach MakeRect or Quadrants.
func parseRect(value string) (geometry.Rect, error) {
	f, err := parseFloats(value, 4)
	if err != nil {
		return geometry.Rect{}, errors.Wrap(err, "invalid --rect")
	}

	if err := geometry.ValidateSize(f[2], f[3]); err != nil {
		return geometry.Rect{}, errors.Wrap(err, "invalid --rect")
	}

	// Quadrants halve the size again.
	if err := geometry.ValidateSize(f[2]/2, f[3]/2); err != nil {
		return geometry.Rect{}, errors.Wrap(err, "--rect is too small to split")
	}

	return geometry.MakeRect(f[0], f[1], f[2], f[3]), nil
}

// parsePoint reads "x,y".
func parsePoint(value string) (geometry.Point, error) {
	f, err := parseFloats(value, 2)
	if err != nil {
		return geometry.Point{}, errors.Wrap(err, "invalid --point")
	}

	return geometry.MakePoint(f[0], f[1]), nil
}
