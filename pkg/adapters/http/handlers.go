package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/schema"
)

var errNoStore = errors.New("record store not configured")

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var contentTypes = map[schema.Format]string{
	schema.FormatJSON: "application/json",
	schema.FormatYAML: "application/yaml",
	schema.FormatTOML: "application/toml",
}

// GetDocument handles the GET /document request.
// The optional format query parameter selects yaml, json or toml; JSON is the default.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		writeJSON(w, http.StatusOK, s.Engine.Document())
		return
	}
	format, err := schema.ParseFormat(name)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	data, err := schema.Encode(s.Engine.Document(), format)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, fmt.Errorf("failed to encode document: %w", err))
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ValidateDocument handles the POST /validate request.
// The body is a pipeline document; it is checked without replacing the active one.
func (s *Server) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	doc, err := schema.FromMap(raw)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := schema.Validate(doc); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Errors: validationMessages(err)})
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:       true,
		Name:        doc.Name,
		Variables:   len(doc.Variables),
		Controllers: len(doc.Controllers),
		Stages:      len(doc.Stages),
	})
}

func validationMessages(err error) []string {
	errs := schema.ValidationErrors(err)
	if len(errs) == 0 {
		errs = []error{err}
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}

// ListVariables handles the GET /variables request.
func (s *Server) ListVariables(w http.ResponseWriter, r *http.Request) {
	doc := s.Engine.Document()
	out := make([]VariableResponse, len(doc.Variables))
	for i, v := range doc.Variables {
		out[i] = variableResponse(v)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetVariable handles the GET /variables/{name} request.
func (s *Server) GetVariable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, ok := s.Engine.Document().Variable(name)
	if !ok {
		s.fail(w, r, fmt.Errorf("%w: variable %q", domain.ErrNotFound, name))
		return
	}
	writeJSON(w, http.StatusOK, variableResponse(spec))
}

// Fuzzify handles the POST /fuzzify request.
func (s *Server) Fuzzify(w http.ResponseWriter, r *http.Request) {
	var body FuzzifyRequest
	if !s.decode(w, r, &body) {
		return
	}

	m, err := s.Engine.Fuzzify(r.Context(), body.Variable, *body.Value)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FuzzifyResponse{Variable: body.Variable, Value: *body.Value, Membership: m})
}

// Defuzzify handles the POST /defuzzify request.
func (s *Server) Defuzzify(w http.ResponseWriter, r *http.Request) {
	var body DefuzzifyRequest
	if !s.decode(w, r, &body) {
		return
	}

	crisp, err := s.Engine.Defuzzify(r.Context(), body.Variable, body.Membership, body.Interval)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DefuzzifyResponse{Variable: body.Variable, Crisp: crisp})
}

// Infer handles the POST /infer request.
func (s *Server) Infer(w http.ResponseWriter, r *http.Request) {
	var body InferRequest
	if !s.decode(w, r, &body) {
		return
	}

	m, err := s.Engine.Infer(r.Context(), body.Controller, *body.A, *body.B)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := InferResponse{Controller: body.Controller, Membership: m}
	if body.Explain {
		resp.Activations, err = s.Engine.Explain(r.Context(), body.Controller, *body.A, *body.B)
		if err != nil {
			s.fail(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Evaluate handles the POST /evaluate request.
// Persisting the record is the engine's concern; Store only serves reads.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if !s.decode(w, r, &body) {
		return
	}

	rec, err := s.Engine.Evaluate(r.Context(), body.Inputs)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// ListRecords handles the GET /records request.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, r, http.StatusNotImplemented, errNoStore)
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, RecordList{Records: ids})
}

// GetRecord handles the GET /records/{id} request.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, r, http.StatusNotImplemented, errNoStore)
		return
	}
	rec, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
