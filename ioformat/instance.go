package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
)

// RawPoint is a single coordinate pair as it appears in a CG:SHOP instance
// or solution document, before number parsing.
type RawPoint struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

func (p RawPoint) toPoint() (point.Point, error) {
	x, err := ParseNumber(p.X)
	if err != nil {
		return point.Point{}, fmt.Errorf("ioformat: x coordinate: %w", err)
	}
	y, err := ParseNumber(p.Y)
	if err != nil {
		return point.Point{}, fmt.Errorf("ioformat: y coordinate: %w", err)
	}
	return point.New(x, y), nil
}

func toPoints(raw []RawPoint) ([]point.Point, error) {
	out := make([]point.Point, 0, len(raw))
	for i, rp := range raw {
		p, err := rp.toPoint()
		if err != nil {
			return nil, fmt.Errorf("ioformat: point %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

type rawInstance struct {
	Type          string       `json:"type"`
	Name          string       `json:"name"`
	OuterBoundary []RawPoint   `json:"outer_boundary"`
	Holes         [][]RawPoint `json:"holes"`
}

// Instance is a named instance domain: the polygon-with-holes the solution
// must cover, along with the instance's declared name.
type Instance struct {
	Name   string
	Region polygon.PolygonWithHoles
}

const instanceDocumentType = "CGSHOP2023_Instance"

// ReadInstance decodes a CG:SHOP instance document from r.
func ReadInstance(r io.Reader) (Instance, error) {
	var raw rawInstance
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Instance{}, fmt.Errorf("ioformat: decoding instance: %w", err)
	}

	if raw.Type != instanceDocumentType {
		return Instance{}, &WrongTypeError{Expected: instanceDocumentType, Got: raw.Type}
	}
	if raw.Name == "" {
		return Instance{}, &MissingFieldError{Field: "name"}
	}
	if len(raw.OuterBoundary) < 3 {
		return Instance{}, &BadPolygonError{Index: -1, Msg: "outer boundary must have at least three points"}
	}

	outerPts, err := toPoints(raw.OuterBoundary)
	if err != nil {
		return Instance{}, err
	}
	outer := polygon.New(outerPts)

	holes := make([]polygon.Polygon, 0, len(raw.Holes))
	for i, h := range raw.Holes {
		pts, err := toPoints(h)
		if err != nil {
			return Instance{}, fmt.Errorf("ioformat: hole %d: %w", i, err)
		}
		holes = append(holes, polygon.New(pts))
	}

	return Instance{
		Name:   raw.Name,
		Region: polygon.NewPolygonWithHoles(outer, holes),
	}, nil
}

// ReadInstanceFile opens path and decodes it as a CG:SHOP instance
// document.
func ReadInstanceFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("ioformat: %w", err)
	}
	defer f.Close()
	return ReadInstance(f)
}
