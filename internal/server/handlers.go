package server

import (
	"encoding/json"
	"net/http"

	"github.com/tableplan/tableplan/pkg/cache"
	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/pipeline"
	"github.com/tableplan/tableplan/pkg/viewport"
)

// maxRequestBody caps request bodies at 4 MiB; charts are small.
const maxRequestBody = 4 << 20

// =============================================================================
// Layout
// =============================================================================

type layoutRequest struct {
	Chart   chart.Chart      `json:"chart"`
	Options pipeline.Options `json:"options"`
}

type layoutResponse struct {
	Layout    chart.Layout `json:"layout"`
	ChartHash string       `json:"chart_hash,omitempty"`
	Cached    bool         `json:"cached"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Chart.Validate(); err != nil {
		writeError(w, err)
		return
	}

	layout, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), req.Chart, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	var hash string
	if data, err := json.Marshal(req.Chart); err == nil {
		hash = cache.Hash(data)
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: layout, ChartHash: hash, Cached: hit})
}

// =============================================================================
// Render
// =============================================================================

type renderRequest struct {
	Chart   chart.Chart      `json:"chart"`
	Options pipeline.Options `json:"options"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Chart.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := pipeline.ValidateFormats(req.Options.Formats); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid render options"))
		return
	}
	if req.Options.Style != "" {
		if err := pipeline.ValidateStyle(req.Options.Style); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid render options"))
			return
		}
	}

	result, err := s.runner.Execute(r.Context(), req.Chart, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	// A single requested format is returned raw with its content type; the
	// default is SVG.
	format := pipeline.FormatSVG
	if len(req.Options.Formats) == 1 {
		format = req.Options.Formats[0]
	}
	data, ok := result.Artifacts[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "no artifact for format %q", format))
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentTypeFor(format string) string {
	if format == pipeline.FormatSVG {
		return "image/svg+xml"
	}
	return "application/json"
}

// =============================================================================
// Fit
// =============================================================================

type fitRequest struct {
	Min      geom.Vec2         `json:"min"`
	Max      geom.Vec2         `json:"max"`
	Viewport viewport.Viewport `json:"viewport"`
	Padding  float64           `json:"padding"`
}

type fitResponse struct {
	Transform viewport.Transform `json:"transform"`
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Viewport.Width <= 0 || req.Viewport.Height <= 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "viewport dimensions must be positive"))
		return
	}
	if req.Padding == 0 {
		req.Padding = viewport.DefaultFitPadding
	}

	tr := viewport.FitTransform(req.Min, req.Max, req.Viewport, req.Padding)
	writeJSON(w, http.StatusOK, fitResponse{Transform: tr})
}

// =============================================================================
// Helpers
// =============================================================================

// decode reads a JSON request body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidShape, errors.ErrCodeInvalidChart,
		errors.ErrCodeInvalidTable, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeRoomNotFound,
		errors.ErrCodeTableNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
