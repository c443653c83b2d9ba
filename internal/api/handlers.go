package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/subsetsum"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/trie"
)

// maxBodyBytes bounds request bodies for POST /trie and POST /subsetsum
const maxBodyBytes = 1 << 20

// WordResponse is returned by the word endpoints
type WordResponse struct {
	Word    string `json:"word"`
	Found   bool   `json:"found"`
	Created bool   `json:"created,omitempty"`
}

// PrefixResponse is returned by GET /prefixes/{prefix}
type PrefixResponse struct {
	Prefix string   `json:"prefix"`
	Exists bool     `json:"exists"`
	Words  []string `json:"words"`
}

// WordsResponse is returned by GET /words
type WordsResponse struct {
	Prefix string   `json:"prefix,omitempty"`
	Words  []string `json:"words"`
}

// SubsetSumRequest is the body of POST /subsetsum.
// The limits keep the solver tables within a few tens of megabytes.
type SubsetSumRequest struct {
	Sequence []int  `json:"sequence" validate:"required,max=200,dive,gt=0,lte=1000"`
	Target   int    `json:"target" validate:"gte=0,lte=200000"`
	Method   string `json:"method" validate:"omitempty,oneof=bottom-up top-down"`
}

// SubsetSumResponse is returned by POST /subsetsum
type SubsetSumResponse struct {
	Found  bool  `json:"found"`
	Subset []int `json:"subset"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	existed := s.dict.Lookup(word)
	err := s.dict.Insert(word)
	s.mu.Unlock()

	if err != nil {
		s.metrics.count("insert", "invalid")
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if existed {
		s.metrics.count("insert", "exists")
		s.writeJSON(w, http.StatusOK, WordResponse{Word: word, Found: true})
		return
	}
	s.metrics.count("insert", "created")
	s.logger.Debug().Str("word", word).Msg("Inserted word")
	s.writeJSON(w, http.StatusCreated, WordResponse{Word: word, Found: true, Created: true})
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	found := s.dict.Lookup(word)
	s.mu.RUnlock()

	if !found {
		s.metrics.count("lookup", "miss")
		s.writeJSON(w, http.StatusNotFound, WordResponse{Word: word})
		return
	}
	s.metrics.count("lookup", "hit")
	s.writeJSON(w, http.StatusOK, WordResponse{Word: word, Found: true})
}

func (s *Server) getPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]

	s.mu.RLock()
	exists := s.dict.HasPrefix(prefix)
	words := s.dict.Words(prefix)
	s.mu.RUnlock()

	result := "miss"
	if exists {
		result = "hit"
	}
	s.metrics.count("prefix", result)
	s.writeJSON(w, http.StatusOK, PrefixResponse{Prefix: prefix, Exists: exists, Words: words})
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	s.mu.RLock()
	words := s.dict.Words(prefix)
	s.mu.RUnlock()

	s.metrics.count("words", "ok")
	s.writeJSON(w, http.StatusOK, WordsResponse{Prefix: prefix, Words: words})
}

func (s *Server) getTrie(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	serialized := s.dict.String()
	s.mu.RUnlock()

	s.metrics.count("serialize", "ok")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, serialized); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write trie")
	}
}

// replaceTrie swaps the served trie for the one parsed from the request body
func (s *Server) replaceTrie(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, status, fmt.Errorf("failed to read body: %w", err))
		return
	}

	parsed, err := trie.Parse(strings.TrimSpace(string(body)))
	if err != nil {
		s.metrics.count("parse", "invalid")
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.dict = parsed
	s.mu.Unlock()

	s.metrics.count("parse", "ok")
	s.logger.Info().Int("words", parsed.Len()).Msg("Replaced trie")
	s.writeJSON(w, http.StatusOK, WordsResponse{Words: parsed.Words("")})
}

func (s *Server) subsetSum(w http.ResponseWriter, r *http.Request) {
	var req SubsetSumRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			err = errors.New(strings.Join(msgs, "; "))
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	method := subsetsum.Method(req.Method)
	if method == "" {
		method = subsetsum.MethodBottomUp
	}
	solver, err := subsetsum.NewSolver(method, req.Sequence)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	subset, found := solver.CheckSum(req.Target)
	result := "unreachable"
	if found {
		result = "found"
	} else {
		subset = []int{}
	}
	s.metrics.count("subsetsum", result)
	s.writeJSON(w, http.StatusOK, SubsetSumResponse{Found: found, Subset: subset})
}
