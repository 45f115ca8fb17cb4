package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli"

	"github.com/bytearena/stagelimits/common/assert"
	"github.com/bytearena/stagelimits/common/boundary"
	"github.com/bytearena/stagelimits/common/config"
	"github.com/bytearena/stagelimits/common/utils"
	"github.com/bytearena/stagelimits/common/utils/number"
	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/bytearena/stagelimits/limitserver"
	"github.com/pkg/errors"
)

func main() {
	app := makeapp(os.Stdin, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp(in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "stagelimits"
	app.Usage = "Find where a move first crosses the stage limits"
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "", Usage: "JSON file overriding epsilon and rayLength"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
	}

	app.Before = func(c *cli.Context) error {
		utils.SetDebug(c.GlobalBool("debug"))
		return nil
	}

	polygonFlag := cli.StringFlag{Name: "polygon", Usage: "Boundary vertices, as \"x,y x,y x,y ...\"; required"}
	radiansFlag := cli.BoolFlag{Name: "radians", Usage: "Read --angle in radians instead of degrees"}

	app.Commands = []cli.Command{
		{
			Name:    "ray",
			Aliases: []string{"r"},
			Usage:   "Cast a ray against the boundary",
			Flags: []cli.Flag{
				polygonFlag,
				cli.StringFlag{Name: "origin", Usage: "Ray origin, as \"x,y\"; required"},
				cli.Float64Flag{Name: "angle", Value: 0, Usage: "Ray direction, counter-clockwise from +x"},
				radiansFlag,
			},
			Action: func(c *cli.Context) error {
				caster, err := loadCaster(c.GlobalString("config"))
				if err != nil {
					return err
				}

				polygon, err := readPolygon(c)
				if err != nil {
					return err
				}

				origin, err := parsePoint(c.String("origin"))
				if err != nil {
					return errors.Wrap(err, "Invalid --origin")
				}

				angle := readAngle(c.Float64("angle"), c.Bool("radians"))
				caster.CheckReach(polygon, origin)

				hit, ok := caster.FirstRayHit(origin, angle, polygon)
				printHit(out, hit, ok)

				return nil
			},
		},
		{
			Name:    "segment",
			Aliases: []string{"s"},
			Usage:   "Test a finite move against the boundary",
			Flags: []cli.Flag{
				polygonFlag,
				cli.StringFlag{Name: "from", Usage: "Segment start, as \"x,y\"; required"},
				cli.StringFlag{Name: "to", Usage: "Segment end, as \"x,y\"; required"},
			},
			Action: func(c *cli.Context) error {
				caster, err := loadCaster(c.GlobalString("config"))
				if err != nil {
					return err
				}

				polygon, err := readPolygon(c)
				if err != nil {
					return err
				}

				from, err := parsePoint(c.String("from"))
				if err != nil {
					return errors.Wrap(err, "Invalid --from")
				}

				to, err := parsePoint(c.String("to"))
				if err != nil {
					return errors.Wrap(err, "Invalid --to")
				}

				hit, ok := caster.FirstHit(vector.MakeSegment2(from, to), polygon)
				printHit(out, hit, ok)

				return nil
			},
		},
		{
			Name:  "batch",
			Usage: "Read \"x,y angle\" ray queries from stdin, one per line",
			Flags: []cli.Flag{
				polygonFlag,
				radiansFlag,
			},
			Action: func(c *cli.Context) error {
				caster, err := loadCaster(c.GlobalString("config"))
				if err != nil {
					return err
				}

				polygon, err := readPolygon(c)
				if err != nil {
					return err
				}

				index, err := boundary.NewIndex(polygon, caster)
				if err != nil {
					return err
				}

				return batchAction(bufio.NewReader(in), out, index, c.Bool("radians"))
			},
		},
		{
			Name:  "serve",
			Usage: "Serve boundary queries over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "host", Value: "", Usage: "Interface to listen on"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port to listen on"},
			},
			Action: func(c *cli.Context) error {
				caster, err := loadCaster(c.GlobalString("config"))
				if err != nil {
					return err
				}

				port := c.Int("port")
				assert.Assert(port > 0 && port < 65536, fmt.Sprintf("Invalid --port %d", port))

				addr := fmt.Sprintf("%s:%d", c.String("host"), port)
				return limitserver.NewLimitService(addr, caster).ListenAndServe()
			},
		},
	}

	return app
}

func loadCaster(configpath string) (*boundary.Caster, error) {
	if configpath == "" {
		return boundary.DefaultCaster, nil
	}

	conf, err := config.LoadConfig(configpath)
	if err != nil {
		return nil, err
	}

	utils.Debug("stagelimits", fmt.Sprintf("Loaded config %s: epsilon=%v rayLength=%v", configpath, conf.Epsilon, conf.RayLength))

	return boundary.NewCaster(conf)
}

func readPolygon(c *cli.Context) (boundary.Polygon, error) {
	str := c.String("polygon")
	if strings.TrimSpace(str) == "" {
		return boundary.Polygon{}, errors.New("Please, specify the boundary using --polygon")
	}

	polygon, err := parsePolygon(str)
	if err != nil {
		return boundary.Polygon{}, errors.Wrap(err, "Invalid --polygon")
	}

	if utils.IsDebug() {
		spew.Fdump(os.Stderr, polygon.Points())
	}

	return polygon, nil
}

func readAngle(angle float64, radians bool) float64 {
	if radians {
		return angle
	}

	return number.DegreesToRadians(angle)
}

func batchAction(in *bufio.Reader, out io.Writer, index *boundary.Index, radians bool) error {
	for lineNumber := 1; ; lineNumber++ {
		line, err := utils.ReadFullLine(in)
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return errors.Wrap(err, "Could not read queries")
		}

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		origin, angle, err := parseRayQuery(line)
		if err != nil {
			return errors.Wrapf(err, "Line %d", lineNumber)
		}

		hit, ok := index.FirstRayHit(origin, readAngle(angle, radians))
		printHit(out, hit, ok)
	}
}

func printHit(out io.Writer, hit boundary.Hit, ok bool) {
	if !ok {
		fmt.Fprintln(out, "no intersection")
		return
	}

	x, y := hit.Point.Get()
	fmt.Fprintf(out, "%s %s edge %d\n", number.FloatToStr(x, 4), number.FloatToStr(y, 4), hit.Edge)
}
