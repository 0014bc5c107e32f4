package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/katalvlaran/roadtime/bfs"
	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/dijkstra"
	"github.com/katalvlaran/roadtime/logging"
)

// PlacesResponse is returned by GET /api/places.
type PlacesResponse struct {
	Name   string   `json:"name"`
	Places []string `json:"places"`
	Roads  int      `json:"roads"`
}

// RouteResponse is returned by the route endpoints. Cost is null when the
// destination cannot be reached.
type RouteResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Path      []string `json:"path"`
	Cost      *float64 `json:"cost"`
	Reachable bool     `json:"reachable"`
}

// TrafficRequest adds Delay minutes to the road between From and To.
type TrafficRequest struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Delay float64 `json:"delay"`
}

// TrafficResponse reports the road's travel time after the update.
type TrafficResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Delay   float64 `json:"delay"`
	Minutes float64 `json:"minutes"`
}

// WhatIfRequest asks for a route as if the listed delays had been applied.
type WhatIfRequest struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Delays []TrafficRequest `json:"delays"`
}

// ReachableResponse is returned by GET /api/reachable.
type ReachableResponse struct {
	From   string   `json:"from"`
	Places []string `json:"places"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := PlacesResponse{
		Name:   s.name,
		Places: s.graph.Vertices(),
		Roads:  s.graph.EdgeCount(),
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}

	var opts []dijkstra.Option
	if raw := q.Get("max_road"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(limit > 0) {
			writeError(w, r, http.StatusBadRequest, errors.New("max_road must be a positive number of minutes"))
			return
		}
		opts = append(opts, dijkstra.WithInfEdgeThreshold(limit))
	}

	s.mu.RLock()
	res, err := dijkstra.Find(s.graph, from, to, opts...)
	s.mu.RUnlock()
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	logging.DebugContext(r.Context(), "route computed", "from", from, "to", to, "cost", res.Cost)
	writeJSON(w, http.StatusOK, routeResponse(from, to, res))
}

func (s *Server) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var req WhatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}

	s.mu.RLock()
	g := s.graph.Clone()
	s.mu.RUnlock()

	for _, d := range req.Delays {
		if err := g.UpdateWeight(d.From, d.To, d.Delay); err != nil {
			writeError(w, r, statusFor(err), err)
			return
		}
	}
	res, err := dijkstra.Find(g, req.From, req.To)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, routeResponse(req.From, req.To, res))
}

func (s *Server) handleTraffic(w http.ResponseWriter, r *http.Request) {
	var req TrafficRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err := s.graph.UpdateWeight(req.From, req.To, req.Delay)
	var minutes float64
	if err == nil {
		minutes, err = s.graph.Weight(req.From, req.To)
	}
	s.mu.Unlock()
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	logging.InfoContext(r.Context(), "traffic updated",
		"from", req.From, "to", req.To, "delay", req.Delay, "minutes", minutes)
	writeJSON(w, http.StatusOK, TrafficResponse{
		From:    req.From,
		To:      req.To,
		Delay:   req.Delay,
		Minutes: minutes,
	})
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	if from == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("from is required"))
		return
	}

	var opts []bfs.Option
	if raw := q.Get("hops"); raw != "" {
		hops, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, errors.New("hops must be an integer"))
			return
		}
		opts = append(opts, bfs.WithMaxDepth(hops))
	}

	s.mu.RLock()
	places, err := bfs.Reachable(s.graph, from, opts...)
	s.mu.RUnlock()
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, ReachableResponse{From: from, Places: places})
}

func routeResponse(from, to string, res dijkstra.Result) RouteResponse {
	resp := RouteResponse{
		From:      from,
		To:        to,
		Path:      []string{},
		Reachable: res.Reachable(),
	}
	if resp.Reachable {
		cost := res.Cost
		resp.Path = res.Path
		resp.Cost = &cost
	}
	return resp
}

// statusFor maps library sentinels onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrVertexNotFound),
		errors.Is(err, core.ErrEdgeNotFound),
		errors.Is(err, bfs.ErrStartVertexNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidWeight),
		errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, bfs.ErrOptionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.DebugContext(r.Context(), "request error", "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
