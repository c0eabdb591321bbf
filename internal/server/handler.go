package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/goifd/internal/diagram"
	"github.com/alexiusacademia/goifd/internal/export"
	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/alexiusacademia/goifd/internal/version"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Input is the request body of POST /api/diagram. Missing fields take the
// default geometry.
type Input struct {
	L1      *float64 `json:"l1"`
	Angle   *float64 `json:"angle"`
	L3      *float64 `json:"l3"`
	Samples *int     `json:"samples"`
}

// Handler answers the API routes. Every request computes from scratch.
type Handler struct {
	Samples    int // used when the request does not say
	MaxSamples int
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// requestError marks malformed parameters, answered with 400
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// Health reports that the service is up and which version it runs
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version, "commit": version.GitCommit})
}

// Limits answers the L1 and L3 ranges for the angle in the query,
// the default angle when it is missing
func (h *Handler) Limits(w http.ResponseWriter, r *http.Request) {
	angle, err := queryFloat(r, "angle", loads.DefaultAngle)
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := frame.LimitsFor(angle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Diagram answers the sampled forces as JSON. Parameters come from the
// query on GET and from a JSON Input body on POST.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	d, err := h.compute(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Image renders the stacked charts in the png, svg or pdf format named
// by the route
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	d, err := h.compute(r)
	if err != nil {
		writeError(w, err)
		return
	}

	format := mux.Vars(r)["format"]
	var buf bytes.Buffer
	if err := diagram.WriteDiagram(d, &buf, format); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Kind: "render"})
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Write(buf.Bytes())
}

// Table answers the sampled forces as a csv or xlsx download
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	d, err := h.compute(r)
	if err != nil {
		writeError(w, err)
		return
	}

	format := mux.Vars(r)["format"]
	write := export.WriteCSV
	if format == "xlsx" {
		write = export.WriteXLSX
	}

	var buf bytes.Buffer
	if err := write(d, &buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Kind: "render"})
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"forces.%s\"", format))
	w.Write(buf.Bytes())
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"csv":  "text/csv",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func (h *Handler) compute(r *http.Request) (*frame.Diagram, error) {
	in, err := h.input(r)
	if err != nil {
		return nil, err
	}

	g := frame.DefaultGeometry()
	if in.L1 != nil {
		g.L1 = *in.L1
	}
	if in.Angle != nil {
		g.Angle = *in.Angle
	}
	if in.L3 != nil {
		g.L3 = *in.L3
	}

	n := h.Samples
	if in.Samples != nil {
		n = *in.Samples
	}
	if n < 2 || (h.MaxSamples > 0 && n > h.MaxSamples) {
		return nil, badRequest("samples must lie between 2 and %d, got %d", h.MaxSamples, n)
	}

	return frame.Compute(g, n)
}

// input reads the parameters from a JSON body on POST, the query otherwise
func (h *Handler) input(r *http.Request) (Input, error) {
	var in Input
	if r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
		if err != nil {
			return in, badRequest("could not read body: %v", err)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return in, nil
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return in, badRequest("invalid request payload: %v", err)
		}
		return in, nil
	}

	for _, p := range []struct {
		name string
		dst  **float64
	}{{"l1", &in.L1}, {"angle", &in.Angle}, {"l3", &in.L3}} {
		if r.URL.Query().Get(p.name) == "" {
			continue
		}
		v, err := queryFloat(r, p.name, 0)
		if err != nil {
			return in, err
		}
		*p.dst = &v
	}

	if s := r.URL.Query().Get("samples"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, badRequest("samples: %q is not an integer", s)
		}
		in.Samples = &n
	}
	return in, nil
}

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, badRequest("%s: %q is not a number", name, s)
	}
	return v, nil
}

func writeError(w http.ResponseWriter, err error) {
	var (
		de *frame.DomainError
		ce *frame.ConstraintError
		re *requestError
	)
	switch {
	case errors.As(err, &de):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Kind: de.Kind()})
	case errors.As(err, &ce):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Kind: ce.Kind()})
	case errors.As(err, &re):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "request"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Kind: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
