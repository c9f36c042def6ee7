package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/johnxnguyen/Newton/common/distribution"
	"github.com/johnxnguyen/Newton/common/types"
	"github.com/johnxnguyen/Newton/common/utils"
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Spawn body populations and sort them into quadrants"
	app.Name = "newton"
	app.Usage = "planar geometry toolbox"

	populationFlags := []cli.Flag{
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 picks one from the clock"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging on stderr"},
	}

	app.Commands = []cli.Command{
		{
			Name:      "spawn",
			Aliases:   []string{"s"},
			Usage:     "Spawn the bodies of a population file",
			ArgsUsage: "[population.yaml]",
			Flags: append([]cli.Flag{
				cli.BoolFlag{Name: "dump", Usage: "Print a Go dump instead of JSON"},
			}, populationFlags...),
			Action: func(c *cli.Context) error {
				bodies, err := spawnFromContext(c)
				if err != nil {
					return err
				}

				return spawnAction(c.App.Writer, bodies, c.Bool("dump"))
			},
		},
		{
			Name:      "census",
			Aliases:   []string{"c"},
			Usage:     "Count the spawned bodies per quadrant of their bounding rect",
			ArgsUsage: "[population.yaml]",
			Flags:     populationFlags,
			Action: func(c *cli.Context) error {
				bodies, err := spawnFromContext(c)
				if err != nil {
					return err
				}

				return censusAction(c.App.Writer, bodies)
			},
		},
		{
			Name:    "quadrant",
			Aliases: []string{"q"},
			Usage:   "Tell which quadrant of a rect holds a point",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "rect", Value: "", Usage: "x,y,width,height; required"},
				cli.StringFlag{Name: "point", Value: "", Usage: "x,y; required"},
			},
			Action: func(c *cli.Context) error {
				return quadrantAction(c.App.Writer, c.String("rect"), c.String("point"))
			},
		},
	}

	return app
}

func spawnFromContext(c *cli.Context) ([]types.Body, error) {
	path, err := populationPath(c.Args())
	if err != nil {
		return nil, err
	}

	isDebug := c.Bool("debug")
	if isDebug {
		utils.SetDebugOutput(os.Stderr)
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if isDebug {
		utils.DebugWith("newton", "spawning", utils.Context{"population": path, "seed": seed})
	}

	return spawn(path, seed, isDebug)
}

func spawn(path string, seed int64, isDebug bool) ([]types.Body, error) {
	population, err := distribution.NewLoader(isDebug).Load(path)
	if err != nil {
		return nil, err
	}

	bodies, err := population.Spawn(rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, errors.Wrapf(err, "could not spawn population %s", path)
	}

	return bodies, nil
}

func spawnAction(w io.Writer, bodies []types.Body, dump bool) error {
	if dump {
		_, err := fmt.Fprint(w, spew.Sdump(bodies))
		return err
	}

	data, err := json.MarshalIndent(bodies, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode bodies")
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func censusAction(w io.Writer, bodies []types.Body) error {
	census, ok := distribution.TakeCensus(bodies)
	if !ok {
		log.Println(chalk.Yellow, "Population is empty; nothing to count", chalk.Reset)
		return nil
	}

	fmt.Fprintf(w, "bounds  %s\n", census.Bounds)
	for _, quadrant := range census.Bounds.Subspaces() {
		fmt.Fprintf(w, "%-7s %d\n", quadrant.Kind, census.Counts[quadrant.Kind])
	}

	if census.Outside > 0 {
		utils.WarnWith(errors.Errorf("%d bodies fell outside every quadrant of %s", census.Outside, census.Bounds))
	}

	fmt.Fprintf(w, "total   %d\n", census.Total())
	return nil
}

func quadrantAction(w io.Writer, rectFlag, pointFlag string) error {
	if rectFlag == "" || pointFlag == "" {
		return errors.New("both --rect and --point are required")
	}

	rect, err := parseRect(rectFlag)
	if err != nil {
		return err
	}

	point, err := parsePoint(pointFlag)
	if err != nil {
		return err
	}

	quadrant, ok := rect.WhichQuadrant(point)
	if !ok {
		fmt.Fprintf(w, "%s is outside %s\n", point, rect)
		return nil
	}

	fmt.Fprintln(w, quadrant)
	return nil
}
