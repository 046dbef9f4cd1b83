// Package main is a command that reports the distance between a point and
// the origin.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/edaniels/golog"
	goutils "go.viam.com/utils"

	"github.com/pelikhan/planar/planemath"
)

var logger = golog.NewDevelopmentLogger("distance")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	cmd := flag.NewFlagSet(args[0], flag.ContinueOnError)
	x := cmd.Float64("x", 3, "x coordinate of the point")
	y := cmd.Float64("y", 4, "y coordinate of the point")
	if err := cmd.Parse(args[1:]); err != nil {
		return err
	}

	p, err := planemath.NewFinitePoint(*x, *y)
	if err != nil {
		return err
	}
	origin := planemath.NewOriginPoint()
	logger.Debugw("measuring", "from", p, "to", origin)

	fmt.Printf("Distance: %v\n", planemath.CalculateDistance(p, origin))
	return nil
}
