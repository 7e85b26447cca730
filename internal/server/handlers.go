package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jonathan/voice-onboarding/internal/types"
)

// maxBodyBytes bounds request bodies; answers are short transcripts.
const maxBodyBytes = 1 << 20

// QuestionsResponse lists the onboarding prompts in one locale.
type QuestionsResponse struct {
	Locale    types.Locale     `json:"locale"`
	Questions []types.Question `json:"questions"`
}

// decodeJSON reads a JSON request body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// locale returns the requested locale or the server default.
func (s *Server) locale(requested string) string {
	if requested == "" {
		return s.defaultLocale
	}
	return requested
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleValidate validates one onboarding answer
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	req.Locale = s.locale(req.Locale)
	if err := req.Validate(); err != nil {
		s.errorFrom(w, err)
		return
	}

	result, err := s.engine.Validate(req.FieldKey, req.Text, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	resp, err := s.validateResponse(req.FieldKey, result, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleValidateBatch validates a whole answer set against one snapshot of reference data
func (s *Server) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchValidateRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	req.Locale = s.locale(req.Locale)
	if err := req.Validate(); err != nil {
		s.errorFrom(w, err)
		return
	}

	results, err := s.engine.ValidateAll(r.Context(), req.Answers, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	resp := types.BatchValidateResponse{
		Results:  make(map[string]types.ValidateResponse, len(results)),
		AllValid: true,
	}
	for key, result := range results {
		item, err := s.validateResponse(key, result, req.Locale)
		if err != nil {
			s.errorFrom(w, err)
			return
		}
		resp.Results[key] = item
		resp.AllValid = resp.AllValid && result.Valid
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) validateResponse(fieldKey string, result types.ValidationResult, locale string) (types.ValidateResponse, error) {
	resp := types.ValidateResponse{FieldKey: fieldKey, ValidationResult: result}
	if result.Valid {
		return resp, nil
	}
	msg, err := s.engine.Message(fieldKey, result.ErrorCode, locale)
	if err != nil {
		return types.ValidateResponse{}, err
	}
	resp.ErrorMessage = msg
	return resp, nil
}

// handleIntent classifies the user's declared goal
func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	var req types.IntentRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, err)
		return
	}
	req.Locale = s.locale(req.Locale)
	if err := req.Validate(); err != nil {
		s.errorFrom(w, err)
		return
	}

	result, err := s.engine.ClassifyIntentDetailed(req.Text, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	msg, err := s.engine.IntentMessage(result.Intent, req.Locale)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.IntentResponse{IntentResult: result, Message: msg})
}

// handleQuestions lists every onboarding prompt
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	requested := s.locale(r.URL.Query().Get("locale"))
	loc, err := types.ParseLocale(requested)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	questions, err := s.engine.Questions(requested)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, QuestionsResponse{Locale: loc, Questions: questions})
}

// handleQuestion returns the prompt for one field
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	q, err := s.engine.Question(key, s.locale(r.URL.Query().Get("locale")))
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, q)
}

// handleInfo describes the reference data in use
func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Info())
}

// handleReload rebuilds reference data from the configured catalog files
func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	if err := s.reload(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Info())
}
