package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cgshop2023/verifier/polygon"
)

type rawSolution struct {
	Type     string       `json:"type"`
	Instance string       `json:"instance"`
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Polygons [][]RawPoint `json:"polygons"`
}

// Solution is a named candidate cover: the instance name it claims to
// solve, and its list of polygons.
type Solution struct {
	InstanceName string
	Polygons     []polygon.Polygon
}

const solutionDocumentType = "CGSHOP2023_Solution"

// ReadSolution decodes a CG:SHOP solution document from r.
//
// A solution's instance name may be given as "instance", "id", or "name"
// (in that preference order); whichever is present is normalized to its
// final path segment with any extension stripped, so
// "instances/foo.instance.json" and "foo" both resolve to "foo". Polygon
// entries that are empty lists are placeholders for a skipped index and
// are dropped before the at-least-one-polygon check.
func ReadSolution(r io.Reader) (Solution, error) {
	var raw rawSolution
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Solution{}, fmt.Errorf("ioformat: decoding solution: %w", err)
	}

	if raw.Type != solutionDocumentType {
		return Solution{}, &WrongTypeError{Expected: solutionDocumentType, Got: raw.Type}
	}

	name := raw.Instance
	if name == "" {
		name = raw.ID
	}
	if name == "" {
		name = raw.Name
	}
	if name == "" {
		return Solution{}, &MissingFieldError{Field: "instance"}
	}
	name = normalizeInstanceName(name)

	nonEmpty := make([][]RawPoint, 0, len(raw.Polygons))
	for _, p := range raw.Polygons {
		if len(p) > 0 {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return Solution{}, &EmptyPolygonsError{}
	}

	polys := make([]polygon.Polygon, 0, len(nonEmpty))
	for i, p := range nonEmpty {
		if len(p) < 3 {
			return Solution{}, &BadPolygonError{Index: i, Msg: "must consist of at least three distinct points"}
		}
		pts, err := toPoints(p)
		if err != nil {
			return Solution{}, fmt.Errorf("ioformat: polygon %d: %w", i, err)
		}
		polys = append(polys, polygon.New(pts))
	}

	return Solution{InstanceName: name, Polygons: polys}, nil
}

// ReadSolutionFile opens path and decodes it as a CG:SHOP solution
// document.
func ReadSolutionFile(path string) (Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Solution{}, fmt.Errorf("ioformat: %w", err)
	}
	defer f.Close()
	return ReadSolution(f)
}

// normalizeInstanceName strips any directory prefix and any extension from
// name, matching how solution files name their target instance by
// basename rather than full path.
func normalizeInstanceName(name string) string {
	if idx := strings.LastIndexByte(name, '/'); idx != -1 {
		name = name[idx+1:]
	}
	if idx := strings.IndexByte(name, '.'); idx != -1 {
		name = name[:idx]
	}
	return name
}
