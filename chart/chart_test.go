package chart_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/checkout/chart"
	"github.com/katalvlaran/checkout/checkout"
)

func buildDefault(t *testing.T, opts ...chart.Option) *chart.Chart {
	t.Helper()
	c, err := chart.Build(context.Background(), checkout.DefaultPreferences(), opts...)
	require.NoError(t, err)
	return c
}

func TestBuild_MatchesSequential(t *testing.T) {
	prefs := checkout.DefaultPreferences()
	for _, darts := range []int{1, 2, 3} {
		for _, workers := range []int{1, 4, 32} {
			got, err := chart.Build(context.Background(), prefs, chart.WithMaxDarts(darts), chart.WithWorkers(workers))
			require.NoError(t, err)
			want := chart.BuildSequential(prefs, chart.WithMaxDarts(darts))
			assert.Equal(t, want, got, "darts %d workers %d", darts, workers)
		}
	}
}

func TestBuild_Rows(t *testing.T) {
	c := buildDefault(t)
	require.Len(t, c.Rows, 169)
	for i, r := range c.Rows {
		assert.Equal(t, checkout.MinScore+i, r.Score)
		assert.Equal(t, r.Score, r.Result.Score)
	}
	assert.Equal(t, 3, c.MaxDarts)

	r, ok := c.Row(170)
	require.True(t, ok)
	assert.Equal(t, "T20 T20 Bull", r.Route())
	assert.Equal(t, chart.StatusFinish, r.Status())
	assert.Equal(t, "S20: T20 T20 (setup)", r.PlanB())

	r, _ = c.Row(99)
	assert.Equal(t, "T18 S5 D20", r.Route())
	assert.Equal(t, "S18: T15 D18", r.PlanB())

	r, _ = c.Row(40)
	assert.Equal(t, "D20", r.Route())
	assert.Empty(t, r.PlanB())

	r, _ = c.Row(169)
	assert.Equal(t, chart.StatusBogey, r.Status())
	assert.Equal(t, "-", r.Route())

	_, ok = c.Row(1)
	assert.False(t, ok)
	_, ok = c.Row(171)
	assert.False(t, ok)
}

func TestChart_Counts(t *testing.T) {
	counts := buildDefault(t).Counts()
	assert.Equal(t, 7, counts[chart.StatusBogey])
	assert.Equal(t, 162, counts[chart.StatusFinish])
	assert.Zero(t, counts[chart.StatusSetup])

	counts = buildDefault(t, chart.WithMaxDarts(2)).Counts()
	assert.Equal(t, 7, counts[chart.StatusBogey])
	assert.Positive(t, counts[chart.StatusSetup])
	assert.Equal(t, 169, counts[chart.StatusBogey]+counts[chart.StatusFinish]+counts[chart.StatusSetup])

	counts = buildDefault(t, chart.WithMaxDarts(5)).Counts()
	assert.Equal(t, 162, counts[chart.StatusImpossible], "every non-bogey row rejects the budget")
}

func TestBuild_Errors(t *testing.T) {
	_, err := chart.Build(context.Background(), checkout.Preferences{}, chart.WithWorkers(0))
	assert.ErrorIs(t, err, chart.ErrWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, err := chart.Build(ctx, checkout.Preferences{}, chart.WithWorkers(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, c)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildDefault(t).WriteText(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+169)
	assert.True(t, strings.HasPrefix(lines[0], "Score | Route"))
	assert.Equal(t, "  170 | T20 T20 Bull     |     3 | finish     | S20: T20 T20 (setup)", lines[len(lines)-1])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildDefault(t).WriteCSV(&buf))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1+169)
	assert.Equal(t, chart.CSVHeader, recs[0])
	assert.Equal(t, []string{"2", "D1", "1", "finish", ""}, recs[1])
	assert.Equal(t, []string{"169", "-", "0", "bogey", ""}, recs[168])
	assert.Equal(t, []string{"170", "T20 T20 Bull", "3", "finish", "S20: T20 T20 (setup)"}, recs[169])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildDefault(t).WriteHTML(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, 169, doc.Find("#chart tbody tr").Length())
	assert.Equal(t, 7, doc.Find("#chart tr.bogey").Length())
	assert.Equal(t, "T20 T20 Bull", doc.Find(`tr[data-score="170"] td.route`).Text())
	assert.Equal(t, "S20: T20 T20 (setup)", doc.Find(`tr[data-score="170"] td.planb`).Text())
	title, ok := doc.Find(`tr[data-score="170"] td.planb`).Attr("title")
	require.True(t, ok)
	assert.Contains(t, title, "SCENARIO: S20 INSTEAD OF T20")
	assert.Equal(t, "D20, D16, D10, D8", doc.Find("#settings .doubles").Text())
}

// failWriter fails every write after the first n bytes.
type failWriter struct{ n int }

var errSink = errors.New("sink closed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errSink
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriters_PropagateErrors(t *testing.T) {
	c := buildDefault(t)
	assert.Error(t, c.WriteText(&failWriter{n: 0}))
	assert.Error(t, c.WriteText(&failWriter{n: 500}))
	assert.Error(t, c.WriteCSV(&failWriter{n: 0}))
	assert.Error(t, c.WriteHTML(&failWriter{n: 0}))
}
