package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	spellcheck "github.com/kepka-app/lib-spellcheck"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
)

func setupRouter(t *testing.T) (http.Handler, *spellcheck.Checker) {
	t.Helper()
	tmp := t.TempDir()
	langDir := filepath.Join(tmp, "en_US")
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(langDir, "en_US.aff"), []byte("SET UTF-8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(langDir, "en_US.dic"), []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	checker := spellcheck.New(spellcheck.Options{WorkingDir: tmp})
	checker.UpdateLanguageTags([]string{"en_US"})
	t.Cleanup(checker.Close)

	log := observability.New("error")
	return NewRouter(checker, log), checker
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestLanguages(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Languages []string `json:"languages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Languages) != 1 || resp.Languages[0] != "en_US" {
		t.Fatalf("unexpected languages: %v", resp.Languages)
	}
}

func TestCheck(t *testing.T) {
	r, _ := setupRouter(t)

	for _, tc := range []struct {
		word    string
		correct bool
	}{
		{"hello", true},
		{"helo", false},
	} {
		req := httptest.NewRequest(http.MethodGet, "/check?q="+tc.word, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var resp struct {
			Word    string `json:"word"`
			Correct bool   `json:"correct"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Word != tc.word || resp.Correct != tc.correct {
			t.Fatalf("unexpected response: %+v", resp)
		}
	}
}

func TestCheckMissingQuery(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSuggest(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/suggest?q=helo&limit=1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Word        string   `json:"word"`
		Suggestions []string `json:"suggestions"`
		Count       int      `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || len(resp.Suggestions) != 1 || resp.Suggestions[0] != "hello" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestText(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/text?q=helo+world", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Misspelled []struct {
			Offset int `json:"Offset"`
			Length int `json:"Length"`
		} `json:"misspelled"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Misspelled) != 1 || resp.Misspelled[0].Offset != 0 || resp.Misspelled[0].Length != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDictionary(t *testing.T) {
	r, checker := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/dictionary?word=kludge", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	checker.Sync()

	req = httptest.NewRequest(http.MethodGet, "/dictionary", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Words []string `json:"words"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Words[0] != "kludge" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	req = httptest.NewRequest(http.MethodDelete, "/dictionary?word=kludge", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	checker.Sync()

	if checker.IsWordInDictionary("kludge") {
		t.Fatal("word not removed")
	}
}

func TestDictionaryMissingWord(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/dictionary", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
