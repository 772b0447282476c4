package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"textstat/analyzer"
)

// maxBodySize limits analysis request bodies to 10 MiB.
const maxBodySize = 10 << 20

// Analysis is a stored analysis result, addressable by ID.
type Analysis struct {
	ID    string                      `json:"id"`
	Stats analyzer.TextAnalysisResult `json:"stats"`
}

// Store keeps completed analyses in memory.
type Store struct {
	mu       sync.RWMutex
	analyses map[string]Analysis
}

func NewStore() *Store {
	return &Store{
		analyses: make(map[string]Analysis),
	}
}

func (s *Store) Put(a Analysis) {
	s.mu.Lock()
	s.analyses[a.ID] = a
	s.mu.Unlock()
}

func (s *Store) Get(id string) (Analysis, bool) {
	s.mu.RLock()
	a, ok := s.analyses[id]
	s.mu.RUnlock()
	return a, ok
}

// newHTTPHandler builds the analysis API routes.
func newHTTPHandler(store *Store, cfg *Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analyze", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
		if err != nil {
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}
		if len(body) > maxBodySize {
			http.Error(w, "Text too large", http.StatusRequestEntityTooLarge)
			return
		}

		topN := cfg.TopN
		if v := r.URL.Query().Get("top"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "Invalid 'top' parameter", http.StatusBadRequest)
				return
			}
			topN = n
		}

		stats := analyzer.AnalyzeTopN(string(body), topN)
		topWords := stats.TopWords
		if topWords == nil {
			topWords = []analyzer.WordCount{}
		}
		a := Analysis{
			ID: uuid.New().String(),
			Stats: analyzer.TextAnalysisResult{
				Words:              stats.WordCount,
				Characters:         stats.CharacterCount,
				CharactersNoSpaces: stats.CharacterCountNoSpaces,
				Sentences:          stats.SentenceCount,
				TopN:               len(topWords),
				TopWords:           topWords,
			},
		}
		store.Put(a)
		log.Printf("Stored analysis %s: %d words, %d sentences", a.ID, stats.WordCount, stats.SentenceCount)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id": a.ID,
		})
	})

	mux.HandleFunc("GET /api/analysis/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		a, ok := store.Get(id)
		if !ok {
			http.Error(w, "Analysis not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a)
	})

	return mux
}
