// SPDX-License-Identifier: MIT

package chart

import (
	"embed"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

//go:embed templates/*.tmpl
var templates embed.FS

var pageTmpl = template.Must(template.New("chart.html.tmpl").
	Funcs(template.FuncMap{"join": func(ls []string) string { return strings.Join(ls, ", ") }}).
	ParseFS(templates, "templates/chart.html.tmpl"))

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"score", "route", "darts", "status", "planB"}

// WriteText prints the chart as a fixed-width table.
func (c *Chart) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%5s | %-16s | %-5s | %-10s | %s\n", "Score", "Route", "Darts", "Status", "Plan B"); err != nil {
		return eris.Wrap(err, "chart: writing header")
	}
	if _, err := fmt.Fprintf(w, "%s-+-%s-+-%s-+-%s-+-%s\n",
		strings.Repeat("-", 5), strings.Repeat("-", 16), strings.Repeat("-", 5),
		strings.Repeat("-", 10), strings.Repeat("-", 20)); err != nil {
		return eris.Wrap(err, "chart: writing header")
	}
	for _, r := range c.Rows {
		_, err := fmt.Fprintf(w, "%5d | %-16s | %5d | %-10s | %s\n",
			r.Score, r.Route(), r.Result.DartsUsed, r.Status(), r.PlanB())
		if err != nil {
			return eris.Wrapf(err, "chart: writing score %d", r.Score)
		}
	}
	return nil
}

// WriteCSV writes CSVHeader followed by one record per row.
func (c *Chart) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return eris.Wrap(err, "chart: writing header")
	}
	for _, r := range c.Rows {
		rec := []string{strconv.Itoa(r.Score), r.Route(), strconv.Itoa(r.Result.DartsUsed), r.Status(), r.PlanB()}
		if err := cw.Write(rec); err != nil {
			return eris.Wrapf(err, "chart: writing score %d", r.Score)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "chart: flushing csv")
	}
	return nil
}

// WriteHTML renders the chart as a standalone HTML page.
func (c *Chart) WriteHTML(w io.Writer) error {
	if err := pageTmpl.Execute(w, c); err != nil {
		return eris.Wrap(err, "chart: rendering html")
	}
	return nil
}
