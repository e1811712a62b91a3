// Package httpx serves the local spell-check API used by tooling and by
// host applications that talk to the daemon over loopback instead of
// linking the library.
package httpx

import (
	"encoding/json"
	"expvar"
	"net/http"
	"strings"
	"time"

	spellcheck "github.com/kepka-app/lib-spellcheck"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
)

type Router struct {
	checker *spellcheck.Checker
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type checkResponse struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

type suggestResponse struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type dictionaryResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

type rangesResponse struct {
	Text       string                      `json:"text"`
	Misspelled []spellcheck.MisspelledWord `json:"misspelled"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(checker *spellcheck.Checker, log *observability.Logger) http.Handler {
	r := &Router{checker: checker}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", r.handleHealth)
	mux.HandleFunc("/languages", r.handleLanguages)
	mux.HandleFunc("/check", r.handleCheck)
	mux.HandleFunc("/suggest", r.handleSuggest)
	mux.HandleFunc("/text", r.handleText)
	mux.HandleFunc("/dictionary", r.handleDictionary)
	mux.Handle("/debug/vars", expvar.Handler())

	h := observability.RequestIDMiddleware(mux)
	h = observability.RecoveryMiddleware(log)(h)
	h = observability.LoggingMiddleware(log)(h)
	return h
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: time.Now().UTC()})
}

func (r *Router) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	langs := r.checker.ActiveLanguages()
	writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
}

func (r *Router) handleCheck(w http.ResponseWriter, req *http.Request) {
	word := strings.TrimSpace(req.URL.Query().Get("q"))
	if word == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing q"})
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{
		Word:    word,
		Correct: r.checker.CheckSpelling(word),
	})
}

func (r *Router) handleSuggest(w http.ResponseWriter, req *http.Request) {
	word := strings.TrimSpace(req.URL.Query().Get("q"))
	if word == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing q"})
		return
	}
	limit := observability.ParseLimit(req.URL.Query().Get("limit"), 0)
	var suggestions []string
	r.checker.FillSuggestionList(word, &suggestions)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	writeJSON(w, http.StatusOK, suggestResponse{
		Word:        word,
		Suggestions: suggestions,
		Count:       len(suggestions),
	})
}

func (r *Router) handleText(w http.ResponseWriter, req *http.Request) {
	text := req.URL.Query().Get("q")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing q"})
		return
	}
	writeJSON(w, http.StatusOK, rangesResponse{
		Text:       text,
		Misspelled: r.checker.CheckSpellingText(text),
	})
}

func (r *Router) handleDictionary(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		words := r.checker.Service().CustomWords()
		writeJSON(w, http.StatusOK, dictionaryResponse{Words: words, Count: len(words)})
	case http.MethodPost, http.MethodDelete:
		word := strings.TrimSpace(req.URL.Query().Get("word"))
		if word == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
			return
		}
		if req.Method == http.MethodPost {
			r.checker.AddWord(word)
		} else {
			r.checker.RemoveWord(word)
		}
		w.WriteHeader(http.StatusAccepted)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(payload)
}
