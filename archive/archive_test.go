package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareSolutionJSON = `{
  "type": "CGSHOP2023_Solution",
  "instance": "square",
  "polygons": [
    [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}]
  ]
}`

const squareInstanceJSON = `{
  "type": "CGSHOP2023_Instance",
  "name": "square",
  "outer_boundary": [
    {"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}
  ],
  "holes": []
}`

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "archive.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return zipPath
}

// zipEntry is one name/content pair for [writeOrderedZip], which (unlike
// [writeZip]'s map) writes entries in the given slice order.
type zipEntry struct {
	name    string
	content string
}

func writeOrderedZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "archive.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return zipPath
}

func TestScanSolutions_SingleSolution(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"solutions/square.solution.json": squareSolutionJSON,
	})

	var results []Result
	var errs []error
	for r, err := range ScanSolutions(zipPath) {
		results = append(results, r)
		errs = append(errs, err)
	}

	require.Len(t, results, 1)
	assert.NoError(t, errs[0])
	assert.Equal(t, "square", results[0].Solution.InstanceName)
}

func TestScanSolutions_SkipsWrongType(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"square.instance.json":           squareInstanceJSON,
		"solutions/square.solution.json": squareSolutionJSON,
	})

	var results []Result
	for r, err := range ScanSolutions(zipPath) {
		require.NoError(t, err)
		results = append(results, r)
	}
	require.Len(t, results, 1)
	assert.Equal(t, "square", results[0].Solution.InstanceName)
}

func TestScanSolutions_SkipsHiddenEntries(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"__MACOSX/square.solution.json":  squareSolutionJSON,
		"solutions/square.solution.json": squareSolutionJSON,
	})

	var results []Result
	for r, err := range ScanSolutions(zipPath) {
		require.NoError(t, err)
		results = append(results, r)
	}
	require.Len(t, results, 1)
}

func TestScanSolutions_NoSolutions(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"readme.txt": "nothing to see here",
	})

	var errs []error
	for _, err := range ScanSolutions(zipPath) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var nse *NoSolutionsError
	assert.ErrorAs(t, errs[0], &nse)
}

func TestScanSolutions_InvalidFileName(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"../escape.solution.json": squareSolutionJSON,
	})

	var errs []error
	for _, err := range ScanSolutions(zipPath) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var ife *InvalidFileNameError
	assert.ErrorAs(t, errs[0], &ife)
}

func TestScanSolutions_FileTooLarge(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"solutions/square.solution.json": squareSolutionJSON,
	})

	var errs []error
	for _, err := range ScanSolutions(zipPath, WithFileSizeLimit(4)) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var ftl *FileTooLargeError
	assert.ErrorAs(t, errs[0], &ftl)
}

func TestScanSolutions_BadPolygonAborts(t *testing.T) {
	zipPath := writeOrderedZip(t, []zipEntry{
		{"solutions/a-bad.solution.json", `{"type": "CGSHOP2023_Solution", "instance": "square", "polygons": [[{"x":0,"y":0},{"x":1,"y":0}]]}`},
		{"solutions/z-good.solution.json", squareSolutionJSON},
	})

	var results []Result
	var errs []error
	for r, err := range ScanSolutions(zipPath) {
		results = append(results, r)
		errs = append(errs, err)
	}
	require.Len(t, results, 1, "the scan must stop at the malformed entry and never reach the valid one after it")
	require.Len(t, errs, 1)
	assert.Error(t, errs[0])
	assert.Empty(t, results[0].FileName, "the malformed entry must not produce a usable result")
}
