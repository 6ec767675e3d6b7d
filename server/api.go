// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	qr "github.com/skip2/go-qrcode"

	"github.com/katalvlaran/checkout/chart"
	"github.com/katalvlaran/checkout/checkout"
)

// checkoutReq is the body of POST /api/checkout and of WebSocket "solve"
// messages. Nil Doubles or Triples fall back to the server defaults.
type checkoutReq struct {
	Score   *int     `json:"score"`
	Doubles []string `json:"doubles,omitempty"`
	Triples []string `json:"triples,omitempty"`
	Darts   int      `json:"darts,omitempty"`
}

type checkoutResp struct {
	*checkout.Result
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

// errScoreRequired is returned for a request without a score.
var errScoreRequired = errors.New("score is required")

// settings applies the server defaults to the request's preferences and
// budget, and validates the labels.
func (s *Server) settings(req checkoutReq) (checkout.Preferences, int, error) {
	prefs := s.cfg.Preferences
	if req.Doubles != nil {
		prefs.FavoriteDoubles = req.Doubles
	}
	if req.Triples != nil {
		prefs.FavoriteTriples = req.Triples
	}
	if err := prefs.Validate(); err != nil {
		return checkout.Preferences{}, 0, err
	}
	darts := req.Darts
	if darts == 0 {
		darts = s.cfg.MaxDarts
	}
	return prefs, darts, nil
}

func (s *Server) solve(req checkoutReq) (checkoutResp, error) {
	if req.Score == nil {
		return checkoutResp{}, errScoreRequired
	}
	prefs, darts, err := s.settings(req)
	if err != nil {
		return checkoutResp{}, err
	}
	res := checkout.Solve(*req.Score, prefs, checkout.WithMaxDarts(darts), checkout.WithLogger(s.logger))
	out := checkoutResp{Result: &res}
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}
	return out, nil
}

// labelsParam reads a comma-separated label list. A present but empty
// parameter yields an empty, non-nil list.
func labelsParam(q map[string][]string, key string) []string {
	vs, ok := q[key]
	if !ok {
		return nil
	}
	out := checkout.ParseLabels(strings.Join(vs, ","))
	if out == nil {
		out = []string{}
	}
	return out
}

// queryReq builds a checkoutReq from URL query parameters.
func queryReq(r *http.Request) (checkoutReq, error) {
	q := r.URL.Query()
	req := checkoutReq{
		Doubles: labelsParam(q, "doubles"),
		Triples: labelsParam(q, "triples"),
	}
	if v := q.Get("score"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return req, errors.New("score must be an integer")
		}
		req.Score = &n
	}
	if v := q.Get("darts"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return req, errors.New("darts must be an integer")
		}
		req.Darts = n
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	switch r.Method {
	case http.MethodGet:
		var err error
		if req, err = queryReq(r); err != nil {
			writeJSON(w, http.StatusBadRequest, checkoutResp{Error: err.Error()})
			return
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, checkoutResp{Error: "invalid JSON: " + err.Error()})
			return
		}
	default:
		writeJSON(w, http.StatusMethodNotAllowed, checkoutResp{Error: "method not allowed"})
		return
	}

	resp, err := s.solve(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, checkoutResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, checkoutResp{Error: "method not allowed"})
		return
	}
	req, err := queryReq(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, checkoutResp{Error: err.Error()})
		return
	}
	prefs, darts, err := s.settings(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, checkoutResp{Error: err.Error()})
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "", "json", "csv", "text", "html":
	default:
		writeJSON(w, http.StatusBadRequest, checkoutResp{Error: "format must be json, csv, text or html"})
		return
	}

	c, err := chart.Build(r.Context(), prefs, chart.WithMaxDarts(darts), chart.WithLogger(s.logger))
	if err != nil {
		s.logger.Warn("chart build aborted", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, checkoutResp{Error: err.Error()})
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		err = c.WriteCSV(w)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		err = c.WriteText(w)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = c.WriteHTML(w)
	default:
		writeJSON(w, http.StatusOK, c)
	}
	if err != nil {
		s.logger.Error("chart write", "format", format, "err", err)
	}
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	url := s.cfg.PublicURL
	if url == "" {
		url = "http://" + r.Host + "/"
	}
	if score := r.URL.Query().Get("score"); score != "" {
		if _, err := strconv.Atoi(score); err != nil {
			http.Error(w, "score must be an integer", http.StatusBadRequest)
			return
		}
		url += "?score=" + score
	}
	png, err := qr.Encode(url, qr.Medium, 256)
	if err != nil {
		s.logger.Error("qr encode", "url", url, "err", err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
