package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	definitions "github.com/jonathan/resume-screener/schemas"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// ExtractRequest is the JSON body for /extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse represents the response for /extract
type ExtractResponse struct {
	Fields   extraction.Fields   `json:"fields"`
	Document *ingestion.Metadata `json:"document,omitempty"`
}

// ScoreRequest is the body for /score. Parts are kept raw so they can be schema-checked.
type ScoreRequest struct {
	Job       json.RawMessage `json:"job"`
	Candidate json.RawMessage `json:"candidate"`
}

// RankRequest is the body for /jobs/{id}/rankings.
type RankRequest struct {
	Job        json.RawMessage `json:"job"`
	Candidates json.RawMessage `json:"candidates"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract derives structured fields from an uploaded document or a JSON text body.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+1<<20)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		doc, err := s.readUpload(r)
		if err != nil {
			s.errResponse(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, ExtractResponse{
			Fields:   s.extractor.Extract(doc.Text),
			Document: doc.Metadata,
		})
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.errResponse(w, &ErrValidation{Field: "text", Message: "is required"})
		return
	}
	s.jsonResponse(w, http.StatusOK, ExtractResponse{Fields: s.extractor.Extract(req.Text)})
}

// readUpload decodes the "file" part of a multipart upload.
func (s *Server) readUpload(r *http.Request) (*ingestion.Document, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ingestion.DecodeError{Cause: ingestion.ErrTooLarge}
		}
		return nil, &ErrValidation{Field: "file", Message: err.Error()}
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, &ErrValidation{Field: "file", Message: "is required"}
	}
	defer file.Close()

	if header.Size > s.maxUploadBytes {
		return nil, &ingestion.DecodeError{FileName: header.Filename, Cause: ingestion.ErrTooLarge}
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return ingestion.DecodeBytes(header.Filename, data)
}

// handleScore scores one candidate against one job without storing anything.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	job, err := decodeJob(req.Job)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if len(req.Candidate) == 0 {
		s.errResponse(w, &ErrValidation{Field: "candidate", Message: "is required"})
		return
	}
	candidates, err := decodeCandidates(wrapArray(req.Candidate))
	if err != nil {
		s.errResponse(w, err)
		return
	}

	entry, err := s.engine.Evaluate(job, candidates[0])
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleRank ranks candidates for a job, reusing stored scores.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	s.rank(w, r, false)
}

// handleRecompute drops stored scores for a job and ranks afresh.
func (s *Server) handleRecompute(w http.ResponseWriter, r *http.Request) {
	s.rank(w, r, true)
}

func (s *Server) rank(w http.ResponseWriter, r *http.Request, recompute bool) {
	jobID, ok := s.jobID(w, r)
	if !ok {
		return
	}

	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	job, err := decodeJob(req.Job)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	// The path identifies the job; a conflicting body id is an error.
	if job.ID != 0 && job.ID != jobID {
		s.errResponse(w, &ErrValidation{Field: "job.id", Message: fmt.Sprintf("does not match path id %d", jobID)})
		return
	}
	job.ID = jobID

	if len(req.Candidates) == 0 {
		s.errResponse(w, &ErrValidation{Field: "candidates", Message: "is required"})
		return
	}
	candidates, err := decodeCandidates(req.Candidates)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	var ranking *types.Ranking
	if recompute {
		ranking, err = s.engine.Recompute(r.Context(), s.store, job, candidates)
	} else {
		ranking, err = s.engine.RankCandidates(r.Context(), job, candidates)
	}
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ranking)
}

// handleListScores returns the stored scores of a job.
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.jobID(w, r)
	if !ok {
		return
	}
	records, err := s.store.ListScores(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if records == nil {
		records = []types.ScoreRecord{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id": jobID,
		"scores": records,
		"total":  len(records),
	})
}

// handleDeleteScores invalidates every stored score of a job.
func (s *Server) handleDeleteScores(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.jobID(w, r)
	if !ok {
		return
	}
	n, err := s.store.DeleteScoresForJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.logger.Info("invalidated scores",
		zap.Int64("job_id", jobID),
		zap.Int64("deleted", n),
		zap.String("client", middleware.Client(r)),
	)
	s.jsonResponse(w, http.StatusOK, map[string]any{"job_id": jobID, "deleted": n})
}

// jobID parses the {id} path value, writing a 400 when it is not a non-negative integer.
func (s *Server) jobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return 0, false
	}
	return id, true
}

func decodeJob(raw json.RawMessage) (*types.JobRequirement, error) {
	if len(raw) == 0 {
		return nil, &ErrValidation{Field: "job", Message: "is required"}
	}
	if err := schemas.Validate(definitions.JobRequirement, raw); err != nil {
		return nil, err
	}
	var job types.JobRequirement
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, &ErrValidation{Field: "job", Message: err.Error()}
	}
	return &job, nil
}

func decodeCandidates(raw json.RawMessage) ([]*types.CandidateProfile, error) {
	if err := schemas.Validate(definitions.Candidates, raw); err != nil {
		return nil, err
	}
	var candidates []*types.CandidateProfile
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, &ErrValidation{Field: "candidates", Message: err.Error()}
	}
	return candidates, nil
}

// wrapArray turns a single JSON document into a one-element array.
func wrapArray(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.Grow(len(raw) + 2)
	buf.WriteByte('[')
	buf.Write(raw)
	buf.WriteByte(']')
	return buf.Bytes()
}
