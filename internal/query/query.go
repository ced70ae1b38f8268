// Package query evaluates batches of ray queries described in YAML, TOML or
// JSON files. It drives the geom kernel from the geomq command.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"honnef.co/go/geom"
)

var (
	ErrUnknownRay = errors.New("unknown ray")
	ErrUnknownOp  = errors.New("unknown op")
	ErrBadQuery   = errors.New("malformed query")
)

// File is a named set of rays and the queries to run against them.
type File struct {
	// Tolerance for the near and same ops. Zero means geom.DefaultEpsilon.
	Epsilon float64            `yaml:"epsilon" toml:"epsilon" json:"epsilon"`
	Rays    map[string]RaySpec `yaml:"rays" toml:"rays" json:"rays"`
	Queries []Query            `yaml:"queries" toml:"queries" json:"queries"`
}

// RaySpec describes a ray by its origin and exactly one of Angle, in radians,
// or a point Through which it passes.
type RaySpec struct {
	Origin  [2]float64  `yaml:"origin" toml:"origin" json:"origin"`
	Angle   *float64    `yaml:"angle,omitempty" toml:"angle,omitempty" json:"angle,omitempty"`
	Through *[2]float64 `yaml:"through,omitempty" toml:"through,omitempty" json:"through,omitempty"`
}

// Ray builds the ray. A Through point equal to the origin yields a
// degenerate ray, which is not an error.
func (s RaySpec) Ray() (geom.Ray, error) {
	origin := geom.Pt(s.Origin[0], s.Origin[1])
	switch {
	case s.Angle != nil && s.Through != nil:
		return geom.Ray{}, fmt.Errorf("%w: ray has both angle and through", ErrBadQuery)
	case s.Angle != nil:
		return geom.NewRay(origin, *s.Angle), nil
	case s.Through != nil:
		return geom.RayThrough(origin, geom.Pt(s.Through[0], s.Through[1])), nil
	default:
		return geom.Ray{}, fmt.Errorf("%w: ray needs angle or through", ErrBadQuery)
	}
}

// Query is a single operation. Which fields are used depends on Op:
//
//	eval           Ray, T
//	nearest        Ray, Point
//	distance       Ray, Point
//	near           Ray, Point
//	roots          Ray, Value, Dim
//	angle          Ray
//	angle_between  Ray, Ray2, Clockwise
//	bisector       Ray, Ray2
//	reverse        Ray
//	portion        Ray, From, To
//	same           Ray, Ray2
//	intersect      Ray, Ray2
//	transform      Ray, Aff3
//
// Aff3 is a row-major 2×3 matrix, as used by golang.org/x/image.
type Query struct {
	Op        string      `yaml:"op" toml:"op" json:"op"`
	Ray       string      `yaml:"ray" toml:"ray" json:"ray"`
	Ray2      string      `yaml:"ray2,omitempty" toml:"ray2,omitempty" json:"ray2,omitempty"`
	Point     *[2]float64 `yaml:"point,omitempty" toml:"point,omitempty" json:"point,omitempty"`
	Value     float64     `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	Dim       string      `yaml:"dim,omitempty" toml:"dim,omitempty" json:"dim,omitempty"`
	From      float64     `yaml:"from,omitempty" toml:"from,omitempty" json:"from,omitempty"`
	To        float64     `yaml:"to,omitempty" toml:"to,omitempty" json:"to,omitempty"`
	Clockwise bool        `yaml:"clockwise,omitempty" toml:"clockwise,omitempty" json:"clockwise,omitempty"`
	T         float64     `yaml:"t,omitempty" toml:"t,omitempty" json:"t,omitempty"`
	Aff3      *f64.Aff3   `yaml:"aff3,omitempty" toml:"aff3,omitempty" json:"aff3,omitempty"`
}

// Result is the outcome of one query. Only the fields produced by the query's
// op are set. A failed query has Err set and may still carry partial results.
type Result struct {
	Query Query

	Point  *geom.Point
	Number *float64
	Bool   *bool
	Ray    *geom.Ray
	Curve  *geom.Curve
	Params []float64
	Hits   []geom.Intersection
	Err    error
}

// Load reads a query file. The format is chosen by the file extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	f, err := Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a query file in the given format: "yaml", "yml", "toml" or
// "json".
func Decode(data []byte, format string) (*File, error) {
	var f File
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	case "json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported query file format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", format, err)
	}
	return &f, nil
}

func (f *File) epsilon() float64 {
	if f.Epsilon > 0 {
		return f.Epsilon
	}
	return geom.DefaultEpsilon
}

func (f *File) ray(name string) (geom.Ray, error) {
	rs, ok := f.Rays[name]
	if !ok {
		return geom.Ray{}, fmt.Errorf("%w %q", ErrUnknownRay, name)
	}
	r, err := rs.Ray()
	if err != nil {
		return geom.Ray{}, fmt.Errorf("ray %q: %w", name, err)
	}
	return r, nil
}

// Run evaluates all queries in order. Failing queries don't stop the batch.
func (f *File) Run() []Result {
	out := make([]Result, len(f.Queries))
	for i, q := range f.Queries {
		out[i] = f.run(q)
		geom.Logger().Debug("query", "index", i, "op", q.Op, "err", out[i].Err)
	}
	return out
}

func (f *File) run(q Query) (res Result) {
	res.Query = q

	r, err := f.ray(q.Ray)
	if err != nil {
		res.Err = err
		return res
	}
	// Ops taking a second ray.
	var r2 geom.Ray
	switch q.Op {
	case "angle_between", "bisector", "same", "intersect":
		r2, err = f.ray(q.Ray2)
		if err != nil {
			res.Err = err
			return res
		}
	}
	var pt geom.Point
	switch q.Op {
	case "nearest", "distance", "near":
		if q.Point == nil {
			res.Err = fmt.Errorf("%w: %s needs a point", ErrBadQuery, q.Op)
			return res
		}
		pt = geom.PointFromF64(f64.Vec2(*q.Point))
	}

	switch q.Op {
	case "eval":
		res.Point = ptr(r.Eval(q.T))
	case "nearest":
		_, t := r.Nearest(pt)
		res.Point = ptr(r.Eval(t))
		res.Number = ptr(t)
	case "distance":
		res.Number = ptr(geom.DistanceToRay(pt, r))
	case "near":
		res.Bool = ptr(geom.NearRay(pt, r, f.epsilon()))
	case "roots":
		dim, err := parseDim(q.Dim)
		if err != nil {
			res.Err = err
			return res
		}
		res.Params, res.Err = r.Roots(q.Value, dim)
	case "angle":
		res.Number = ptr(r.Angle())
	case "angle_between":
		res.Number = ptr(geom.AngleBetween(r, r2, q.Clockwise))
	case "bisector":
		b, err := geom.AngleBisector(r, r2)
		if err != nil {
			res.Err = err
			return res
		}
		res.Ray = &b
	case "reverse":
		res.Ray = ptr(r.Reverse())
	case "portion":
		res.Curve = ptr(r.Portion(q.From, q.To))
	case "same":
		res.Bool = ptr(geom.SameRays(r, r2, f.epsilon()))
	case "intersect":
		res.Hits, res.Err = geom.IntersectRays(r, r2)
	case "transform":
		if q.Aff3 == nil {
			res.Err = fmt.Errorf("%w: transform needs aff3", ErrBadQuery)
			return res
		}
		res.Ray = ptr(r.Transform(geom.AffineFromAff3(*q.Aff3)))
	default:
		res.Err = fmt.Errorf("%w %q", ErrUnknownOp, q.Op)
	}
	return res
}

func parseDim(s string) (geom.Dim, error) {
	switch strings.ToLower(s) {
	case "x":
		return geom.X, nil
	case "y":
		return geom.Y, nil
	default:
		return 0, fmt.Errorf("%w: dim must be x or y, got %q", ErrBadQuery, s)
	}
}

func ptr[T any](v T) *T { return &v }

// String formats the result on a single line.
func (res Result) String() string {
	var sb strings.Builder
	sb.WriteString(res.Query.Op)
	if res.Query.Ray != "" {
		fmt.Fprintf(&sb, " %s", res.Query.Ray)
	}
	if res.Query.Ray2 != "" {
		fmt.Fprintf(&sb, " %s", res.Query.Ray2)
	}
	sb.WriteString(":")
	if res.Point != nil {
		fmt.Fprintf(&sb, " %s", *res.Point)
	}
	if res.Number != nil {
		fmt.Fprintf(&sb, " %g", *res.Number)
	}
	if res.Bool != nil {
		fmt.Fprintf(&sb, " %t", *res.Bool)
	}
	if res.Ray != nil {
		fmt.Fprintf(&sb, " %s", *res.Ray)
	}
	if res.Curve != nil {
		fmt.Fprintf(&sb, " %s", res.Curve.Segment())
	}
	if res.Query.Op == "roots" && res.Err == nil {
		fmt.Fprintf(&sb, " %v", res.Params)
	}
	if res.Query.Op == "intersect" && res.Err == nil {
		if len(res.Hits) == 0 {
			sb.WriteString(" none")
		}
		for _, h := range res.Hits {
			fmt.Fprintf(&sb, " t0=%g t1=%g", h.T0, h.T1)
		}
	}
	if res.Err != nil {
		fmt.Fprintf(&sb, " error: %s", res.Err)
	}
	return sb.String()
}

type jsonRay struct {
	Origin [2]float64 `json:"origin"`
	Versor [2]float64 `json:"versor"`
	Angle  float64    `json:"angle"`
}

type jsonResult struct {
	Op     string              `json:"op"`
	Point  *[2]float64         `json:"point,omitempty"`
	Number *float64            `json:"number,omitempty"`
	Bool   *bool               `json:"bool,omitempty"`
	Ray    *jsonRay            `json:"ray,omitempty"`
	Curve  *[][2]float64       `json:"curve,omitempty"`
	Params []float64           `json:"params,omitempty"`
	Hits   []geom.Intersection `json:"hits,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (res Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Op:     res.Query.Op,
		Number: res.Number,
		Bool:   res.Bool,
		Params: res.Params,
		Hits:   res.Hits,
	}
	if res.Point != nil {
		out.Point = ptr([2]float64(res.Point.F64()))
	}
	if res.Ray != nil {
		o, v := res.Ray.Origin(), res.Ray.Versor()
		out.Ray = &jsonRay{
			Origin: [2]float64{o.X, o.Y},
			Versor: [2]float64{v.X, v.Y},
			Angle:  res.Ray.Angle(),
		}
	}
	if res.Curve != nil {
		s := res.Curve.Segment()
		out.Curve = &[][2]float64{{s.P0.X, s.P0.Y}, {s.P1.X, s.P1.Y}}
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return json.Marshal(out)
}
