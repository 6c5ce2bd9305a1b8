package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/pipeline"
)

// Handler serves the API over one runner.
type Handler struct {
	Runner       *pipeline.Runner
	Logger       *log.Logger
	DefaultDepth int // Depth bound when the request has no depth parameter
	Concurrency  int // Parallel fetches per BFS level
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) direct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	deps, err := h.Runner.Direct(r.Context(), name)
	if err != nil {
		h.fail(w, r, name, err)
		return
	}
	writeJSON(w, http.StatusOK, directResponse{Package: name, Dependencies: orEmpty(deps)})
}

func (h *Handler) graph(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if !graphFormats[format] {
		h.fail(w, r, "", errors.New(errors.ErrCodeInvalidFormat, "format must be json, dot or tree, got %q", format))
		return
	}

	res, ok := h.analyze(w, r)
	if !ok {
		return
	}
	out, err := pipeline.Render(r.Context(), res, format)
	if err != nil {
		h.fail(w, r, res.Graph.Root, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (h *Handler) cycles(w http.ResponseWriter, r *http.Request) {
	res, ok := h.analyze(w, r)
	if !ok {
		return
	}
	cycles := make([][]string, len(res.Cycles))
	for i, c := range res.Cycles {
		cycles[i] = c
	}
	writeJSON(w, http.StatusOK, cyclesResponse{Root: res.Graph.Root, Cycles: cycles})
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	res, ok := h.analyze(w, r)
	if !ok {
		return
	}
	root := res.Graph.Root
	writeJSON(w, http.StatusOK, reverseResponse{Package: root, Dependents: orEmpty(res.Dependents(root))})
}

// analyze builds the graph of the {name} parameter, writing the error
// response itself when it fails.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	name := chi.URLParam(r, "name")

	depth := h.DefaultDepth
	if s := r.URL.Query().Get("depth"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.fail(w, r, name, errors.New(errors.ErrCodeInvalidInput, "depth must be a non-negative integer, got %q", s))
			return nil, false
		}
		depth = n
	}

	res, err := h.Runner.Analyze(r.Context(), name, pipeline.Options{
		MaxDepth:    depth,
		Concurrency: h.Concurrency,
	})
	if err != nil {
		h.fail(w, r, name, err)
		return nil, false
	}
	return res, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, pkg string, err error) {
	status := statusFor(err, pkg)
	if status >= http.StatusInternalServerError {
		loggerFromContext(r.Context()).Error("request failed", "package", pkg, "status", status, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: string(code), Error: errors.UserMessage(err)})
}

var graphFormats = map[string]bool{
	pipeline.FormatJSON: true,
	pipeline.FormatDOT:  true,
	pipeline.FormatTree: true,
}

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatTree: "text/plain; charset=utf-8",
}

type directResponse struct {
	Package      string   `json:"package"`
	Dependencies []string `json:"dependencies"`
}

type cyclesResponse struct {
	Root   string     `json:"root"`
	Cycles [][]string `json:"cycles"`
}

type reverseResponse struct {
	Package    string   `json:"package"`
	Dependents []string `json:"dependents"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
