package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Score(t *testing.T) {
	code, out, _ := runArgs("-score", "170")
	assert.Zero(t, code)
	assert.True(t, strings.HasPrefix(out, "170: T20 T20 Bull (3 darts)\n"))
	assert.Contains(t, out, "  Bull -> 0\n")
	assert.Contains(t, out, "SCENARIO: S20 INSTEAD OF T20")
}

func TestRun_Setup(t *testing.T) {
	code, out, _ := runArgs("-score", "150", "-darts", "2")
	assert.Zero(t, code)
	assert.True(t, strings.HasPrefix(out, "150: setup T20 T20\n"))
}

func TestRun_Impossible(t *testing.T) {
	code, out, _ := runArgs("-score", "169")
	assert.Equal(t, 1, code)
	assert.Equal(t, "169: Bogey number - no finish possible.\n", out)
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runArgs("-score", "32", "-doubles", "d8", "-json")
	assert.Zero(t, code)
	assert.Contains(t, out, `"label": "D16"`)
}

func TestRun_BadInput(t *testing.T) {
	code, _, errOut := runArgs("-score", "40", "-doubles", "T20")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid preferences")

	code, _, _ = runArgs()
	assert.Equal(t, 2, code, "nothing to do")

	code, _, _ = runArgs("-bogus")
	assert.Equal(t, 2, code)

	code, _, errOut = runArgs("-chart", "pdf")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown format")
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runArgs("-version")
	assert.Zero(t, code)
	assert.Equal(t, "checkout version dev\n", out)
}

func TestRun_ChartFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.csv")
	code, _, _ := runArgs("-chart", "csv", "-out", path)
	require.Zero(t, code)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 170)
	assert.Equal(t, "170", recs[169][0])
}

func TestRun_ServeConfigError(t *testing.T) {
	code, _, errOut := runArgs("-serve", "-darts", "5")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "max_darts")
}
