package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quizforge/quizforge-core/internal/core/domain"
	"github.com/quizforge/quizforge-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks the backing store)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Backing store unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// User endpoints

// handleUpsertMe godoc
// @Summary      Upsert current user
// @Description  Creates the user record on first login, refreshes last login otherwise
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /users/me [post]
func (s *Server) handleUpsertMe(w http.ResponseWriter, r *http.Request) {
	identity := GetIdentity(r.Context())

	user, err := s.userService.GetOrCreate(r.Context(), identity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Document endpoints

// handleUpload godoc
// @Summary      Upload handwritten notes
// @Description  Accepts an image under the multipart field "file", runs text extraction, and returns the new document ID with the extracted text
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image of handwritten notes"
// @Success      200  {object}  driving.UploadResult
// @Failure      400  {object}  ErrorResponse  "Missing or empty file"
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      502  {object}  ErrorResponse  "Extraction model unavailable"
// @Router       /upload [post]
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	identity := GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	result, err := s.documentService.Upload(r.Context(), identity, driving.UploadRequest{
		Filename:  header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Data:      data,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGetResult godoc
// @Summary      Get document state
// @Description  Returns the full document: extracted text, review state, edit history, and generated questions
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        doc_id  path  string  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Document owned by another user"
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /result/{doc_id} [get]
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	identity := GetIdentity(r.Context())
	docID := r.PathValue("doc_id")

	doc, err := s.documentService.Get(r.Context(), identity, docID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleReview godoc
// @Summary      Review extracted text
// @Description  Stores a human correction of the extracted text and appends to the document's edit history
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        doc_id   path  string                 true  "Document ID"
// @Param        request  body  driving.ReviewRequest  true  "Corrected text"
// @Success      200  {object}  driving.ReviewResult
// @Failure      400  {object}  ErrorResponse  "Invalid request body"
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Document owned by another user"
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /result/{doc_id} [put]
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	identity := GetIdentity(r.Context())
	docID := r.PathValue("doc_id")

	var req driving.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.documentService.Review(r.Context(), identity, docID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGenerate godoc
// @Summary      Generate study questions
// @Description  Produces categorized study questions from the document's best available text and replaces any previous question set
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  driving.GenerateRequest  true  "Document ID, optional text override, and per-category counts"
// @Success      200  {object}  driving.GenerateResult
// @Failure      400  {object}  ErrorResponse  "Invalid counts or no usable text"
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Document owned by another user"
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Failure      502  {object}  ErrorResponse  "Generation model unavailable"
// @Router       /generate [post]
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	identity := GetIdentity(r.Context())

	var req driving.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.documentService.Generate(r.Context(), identity, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Helpers

// writeServiceError maps domain errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "document not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoSourceText):
		writeError(w, http.StatusBadRequest, "document has no usable text")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "access denied")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrModelUnavailable):
		writeError(w, http.StatusBadGateway, "model unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
