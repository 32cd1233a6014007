package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tagsheet/pkg/buildinfo"
	"github.com/matzehuels/tagsheet/pkg/catalog"
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/pipeline"
	"github.com/matzehuels/tagsheet/pkg/render/sink"
	"github.com/matzehuels/tagsheet/pkg/suggest"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// request is the body of plan and render calls.
type request struct {
	Products []tag.Product `json:"products"`
	pipeline.Options
}

type sizeEntry struct {
	tag.TagSize
	Suggested bool `json:"suggested"`
}

type sizesResponse struct {
	Content []tag.Content `json:"content"`
	Sizes   []sizeEntry   `json:"sizes"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	content := s.defaults.Content
	if content == nil {
		content = pipeline.DefaultContent
	}
	if r.URL.Query().Has("content") {
		parsed, err := tag.ParseContentList(r.URL.Query().Get("content"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		content = append([]tag.Content{}, parsed...)
	}

	catalogue := tag.Sizes()
	suggested := suggest.Sizes(content, catalogue)
	resp := sizesResponse{Content: content, Sizes: make([]sizeEntry, len(catalogue))}
	for i, size := range catalogue {
		resp.Sizes[i] = sizeEntry{TagSize: size, Suggested: suggest.IsSuggested(size.ID, suggested)}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]tag.Paper{"papers": tag.Papers()})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Plan(r.Context(), req.Products, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var opts []sink.JSONOption
	if req.Faces || r.URL.Query().Get("faces") == "true" {
		opts = append(opts, sink.WithJSONFaces(), sink.WithJSONCurrency(req.Currency))
	}
	data, err := sink.RenderJSON(res.Sheet, req.Content, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	req, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	req.Formats = []string{format}

	res, err := s.runner.Render(r.Context(), req.Products, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	files := res.Artifacts[format]
	if len(files) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 1 || page > len(files) {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "page must be between 1 and %d", len(files)))
			return
		}
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Tagsheet-Pages", strconv.Itoa(res.Stats.Pages))
	w.Header().Set("X-Tagsheet-Documents", strconv.Itoa(len(files)))
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Tagsheet-Cache", "hit")
	} else {
		w.Header().Set("X-Tagsheet-Cache", "miss")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="tags-%d.%s"`, page, format))
	w.WriteHeader(http.StatusOK)
	w.Write(files[page-1])
}

// decode reads a request body, fills in server defaults and assigns stable
// positional IDs to products that have none.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, error) {
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}

	d := s.defaults
	if req.Paper == "" {
		req.Paper = d.Paper
	}
	if req.SizeID == 0 {
		req.SizeID = d.SizeID
	}
	if req.Content == nil {
		req.Content = d.Content
	}
	if req.Content == nil {
		req.Content = pipeline.DefaultContent
	}
	if req.Currency == "" {
		req.Currency = d.Currency
	}
	if req.Scale == 0 {
		req.Scale = d.Scale
	}

	for i := range req.Products {
		if req.Products[i].ID == "" {
			req.Products[i].ID = fmt.Sprintf("item-%d", i+1)
		}
	}
	if err := catalog.ValidateAll(req.Products); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errors.ErrCodeZeroCapacity):
		return http.StatusUnprocessableEntity
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
