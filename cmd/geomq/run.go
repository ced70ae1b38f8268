package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/geom"
	"honnef.co/go/geom/internal/query"
)

func runQueries(w io.Writer, path string, asJSON bool) error {
	f, err := query.Load(path)
	if err != nil {
		return err
	}
	failed := 0
	enc := json.NewEncoder(w)
	for _, res := range f.Run() {
		if res.Err != nil {
			failed++
		}
		if asJSON {
			if err := enc.Encode(res); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(w, res)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(f.Queries))
	}
	return nil
}

type rayOptions struct {
	origin   string
	angle    float64
	hasAngle bool
	through  string
	point    string
}

func describeRay(w io.Writer, opts rayOptions) error {
	origin, err := parsePoint(opts.origin)
	if err != nil {
		return fmt.Errorf("--origin: %w", err)
	}
	var r geom.Ray
	if opts.hasAngle {
		r = geom.NewRay(origin, opts.angle)
	} else {
		through, err := parsePoint(opts.through)
		if err != nil {
			return fmt.Errorf("--through: %w", err)
		}
		r = geom.RayThrough(origin, through)
	}

	fmt.Fprintf(w, "ray:     %s\n", r)
	if r.IsDegenerate() {
		fmt.Fprintln(w, "warning: degenerate ray, origin and through point coincide")
	}
	fmt.Fprintf(w, "angle:   %g (%g°)\n", r.Angle(), r.Angle()*180/math.Pi)
	fmt.Fprintf(w, "reverse: %s\n", r.Reverse())

	if opts.point == "" {
		return nil
	}
	pt, err := parsePoint(opts.point)
	if err != nil {
		return fmt.Errorf("--point: %w", err)
	}
	_, t := r.Nearest(pt)
	fmt.Fprintf(w, "nearest: %s at t=%g\n", r.Eval(t), t)
	fmt.Fprintf(w, "distance: %g\n", geom.DistanceToRay(pt, r))
	return nil
}

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}
