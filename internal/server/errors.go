// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/graphio"
)

var (
	errTooLarge        = errors.New("server: graph exceeds the configured vertex limit")
	errExhaustiveLimit = errors.New("server: exhaustive mode refused for this graph order")
	errBadParam        = errors.New("server: invalid query parameter")
)

// problem is the JSON error body.
type problem struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusOf maps domain sentinels to HTTP status codes.
func statusOf(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errExhaustiveLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, builder.ErrUnknownFamily):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidSize),
		errors.Is(err, core.ErrVertexOutOfRange),
		errors.Is(err, core.ErrSelfLoop),
		errors.Is(err, core.ErrDuplicateEdge),
		errors.Is(err, graphio.ErrInvalidDocument),
		errors.Is(err, graphio.ErrUnknownFormat),
		errors.Is(err, connectivity.ErrUnknownMode),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrNeedRandSource),
		errors.Is(err, builder.ErrConstructFailed),
		errors.Is(err, errBadParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, problem{Status: status, Error: msg, RequestID: requestIDFrom(r.Context())})
}

// fail logs err and writes the mapped problem response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("request_id", requestIDFrom(r.Context())), zap.Error(err))
	} else {
		s.log.Debug("request rejected", zap.String("request_id", requestIDFrom(r.Context())), zap.Error(err))
	}
	writeProblem(w, r, status, err.Error())
}
