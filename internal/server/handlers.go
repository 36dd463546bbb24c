// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/graphio"
	"github.com/katalvlaran/zagreb/network"
)

// ConnectivityResponse is the body of /v1/connectivity.
type ConnectivityResponse struct {
	K            int               `json:"k"`
	Mode         connectivity.Mode `json:"mode"`
	Connected    bool              `json:"connected"`
	Connectivity int               `json:"connectivity"`
}

// LowConnectivityResponse is the body of /v1/low-connectivity.
type LowConnectivityResponse struct {
	Vertices []int `json:"vertices"`
}

// FamilyResponse is the body of /v1/families/{name}.
type FamilyResponse struct {
	Family   string                `json:"family"`
	Graph    graphio.GraphDoc      `json:"graph"`
	Analysis zagreb.AnalysisResult `json:"analysis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	g, mode, err := s.graphAndMode(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var res zagreb.AnalysisResult
	s.timed(mode, func() { res = zagreb.Analyze(g, zagreb.WithMode(mode)) })
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleConnectivity(w http.ResponseWriter, r *http.Request) {
	k, err := intParam(r, "k", -1)
	if err == nil && k < 0 {
		err = fmt.Errorf("k is required and must be ≥ 0: %w", errBadParam)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	g, mode, err := s.graphAndMode(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := ConnectivityResponse{K: k, Mode: mode}
	s.timed(mode, func() {
		resp.Connected = connectivity.IsKConnected(g, k, mode)
		resp.Connectivity = connectivity.VertexConnectivity(g, mode)
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	g, mode, err := s.graphAndMode(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var c zagreb.Classification
	s.timed(mode, func() { c = zagreb.Classify(g, mode) })
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleLowConnectivity(w http.ResponseWriter, r *http.Request) {
	g, err := s.readGraph(w, r, connectivity.ModeApprox)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	vs := zagreb.LowConnectivityVertices(g)
	if vs == nil {
		vs = []int{}
	}
	writeJSON(w, http.StatusOK, LowConnectivityResponse{Vertices: vs})
}

func (s *Server) handleFamily(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	p, opts, err := familyParams(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	mode, err := s.modeParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err = s.admitParams(p); err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := builder.ByName(name, p, opts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err = s.admit(g.VertexCount(), mode); err != nil {
		s.fail(w, r, err)
		return
	}
	resp := FamilyResponse{Family: name, Graph: graphio.FromGraph(g)}
	s.timed(mode, func() { resp.Analysis = zagreb.Analyze(g, zagreb.WithMode(mode)) })
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNetworkReport(w http.ResponseWriter, r *http.Request) {
	mode, err := s.modeParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	raw, f, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dump, err := graphio.ReadDump(bytes.NewReader(raw), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err = s.admit(len(dump.Validators), mode); err != nil {
		s.fail(w, r, err)
		return
	}
	var rep network.Report
	s.timed(mode, func() { rep, err = network.Build(r.Context(), dump, network.WithMode(mode)) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// timed runs fn and records its duration under the mode label.
func (s *Server) timed(mode connectivity.Mode, fn func()) {
	start := time.Now()
	fn()
	s.metrics.analysisDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
}

// graphAndMode reads the mode query parameter and the admitted graph body.
func (s *Server) graphAndMode(w http.ResponseWriter, r *http.Request) (*core.Graph, connectivity.Mode, error) {
	mode, err := s.modeParam(r)
	if err != nil {
		return nil, mode, err
	}
	g, err := s.readGraph(w, r, mode)
	if err != nil {
		return nil, mode, err
	}

	return g, mode, nil
}

// admit enforces MaxVertices and the exhaustive-mode order limit.
func (s *Server) admit(n int, mode connectivity.Mode) error {
	s.metrics.graphVertices.Observe(float64(n))
	if n > s.cfg.Analysis.MaxVertices {
		return fmt.Errorf("%d vertices > %d: %w", n, s.cfg.Analysis.MaxVertices, errTooLarge)
	}
	if mode == connectivity.ModeExhaustive && n > s.cfg.Analysis.ExhaustiveVertexLimit {
		return fmt.Errorf("%d vertices > %d: %w", n, s.cfg.Analysis.ExhaustiveVertexLimit, errExhaustiveLimit)
	}

	return nil
}

// admitParams bounds the order a family request could produce before any
// allocation happens. Grid and sharded orders are products of N and M.
func (s *Server) admitParams(p builder.Params) error {
	limit := s.cfg.Analysis.MaxVertices
	for _, v := range []int{p.N, p.M, p.K} {
		if v > limit {
			return fmt.Errorf("parameter %d > %d: %w", v, limit, errTooLarge)
		}
	}
	if order := max(p.N+p.M+p.K, p.N*p.M); order > limit {
		return fmt.Errorf("order up to %d > %d: %w", order, limit, errTooLarge)
	}

	return nil
}

func (s *Server) modeParam(r *http.Request) (connectivity.Mode, error) {
	v := r.URL.Query().Get("mode")
	if v == "" {
		return s.cfg.Analysis.Mode, nil
	}

	return connectivity.ParseMode(v)
}

// readBody reads the capped body and picks the format from Content-Type.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, graphio.Format, error) {
	f := graphio.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, f, fmt.Errorf("content type %q: %w", ct, graphio.ErrUnknownFormat)
		}
		switch mt {
		case "application/json":
		case "application/yaml", "application/x-yaml", "text/yaml":
			f = graphio.FormatYAML
		default:
			return nil, f, fmt.Errorf("content type %q: %w", mt, graphio.ErrUnknownFormat)
		}
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		return nil, f, err
	}

	return raw, f, nil
}

// readGraph decodes a GraphDoc body; JSON bodies pass the schema first.
// The declared order is admitted before the graph is allocated.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request, mode connectivity.Mode) (*core.Graph, error) {
	raw, f, err := s.readBody(w, r)
	if err != nil {
		return nil, err
	}
	if f == graphio.FormatJSON {
		if err = graphio.ValidateJSON(raw); err != nil {
			return nil, err
		}
	}
	doc, err := graphio.ReadGraphDoc(bytes.NewReader(raw), f)
	if err != nil {
		return nil, err
	}
	if err = s.admit(doc.Vertices, mode); err != nil {
		return nil, err
	}

	return doc.ToGraph()
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, v, errBadParam)
	}

	return n, nil
}

func floatParam(r *http.Request, name string) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, v, errBadParam)
	}

	return x, nil
}

// familyParams reads n, m, k, p, q and seed. Randomized families only get
// an RNG when seed is present.
func familyParams(r *http.Request) (builder.Params, []builder.BuilderOption, error) {
	var (
		p   builder.Params
		err error
	)
	if p.N, err = intParam(r, "n", 0); err != nil {
		return p, nil, err
	}
	if p.M, err = intParam(r, "m", 0); err != nil {
		return p, nil, err
	}
	if p.K, err = intParam(r, "k", 0); err != nil {
		return p, nil, err
	}
	if p.P, err = floatParam(r, "p"); err != nil {
		return p, nil, err
	}
	if p.Q, err = floatParam(r, "q"); err != nil {
		return p, nil, err
	}

	var opts []builder.BuilderOption
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return p, nil, fmt.Errorf("seed=%q: %w", v, errBadParam)
		}
		opts = append(opts, builder.WithSeed(seed))
	}

	return p, opts, nil
}
