package custom

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/kepka-app/lib-spellcheck/internal/locale"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
)

// FileName is the custom dictionary file under the working directory.
const FileName = "custom"

// lineBreak is fixed at build time, matching the platform the binary is
// built for.
var lineBreak = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// FileStore persists the added words as UTF-8, one word per line, grouped
// in contiguous same-script runs. All failures are absorbed: the in-memory
// dictionary stays authoritative until the next restart.
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(workingDir string, log *slog.Logger) *FileStore {
	return &FileStore{
		path: filepath.Join(workingDir, FileName),
		log:  log,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func encode(buckets *Buckets) string {
	var b strings.Builder
	buckets.Each(func(_ locale.Script, words []string) {
		for _, w := range words {
			b.WriteString(w)
			b.WriteString(lineBreak)
		}
	})
	return b.String()
}

func (s *FileStore) Write(buckets *Buckets) {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(encode(buckets)), 0o644); err != nil {
		observability.PersistFailures.Add(1)
		s.log.Debug("custom dictionary write failed", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		observability.PersistFailures.Add(1)
		s.log.Debug("custom dictionary rename failed", "path", s.path, "error", err)
		_ = os.Remove(tmp)
	}
}

// Read loads the file and canonicalises it: sort, drop duplicates and
// unsuitable words, cap, group into script runs. The canonical form is
// written back so the on-disk file matches what was loaded.
func (s *FileStore) Read() *Buckets {
	buckets := NewBuckets()
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return buckets
	}

	words := strings.Split(string(data), lineBreak)
	for i, w := range words {
		// Tolerate a file written with the other platform's terminator.
		words[i] = strings.TrimSuffix(strings.TrimSuffix(w, "\n"), "\r")
	}
	sort.Strings(words)

	survivors := make([]string, 0, len(words))
	prev := ""
	for _, w := range words {
		if w == "" || (len(survivors) > 0 && w == prev) {
			continue
		}
		if locale.IsWordSkippable(w, false) {
			continue
		}
		survivors = append(survivors, w)
		prev = w
		if len(survivors) == MaxWords {
			break
		}
	}

	// Lexicographic order clusters scripts into contiguous code-point
	// ranges, so equal-script runs are already adjacent.
	for start := 0; start < len(survivors); {
		script := locale.WordScript(survivors[start])
		end := start + 1
		for end < len(survivors) && locale.WordScript(survivors[end]) == script {
			end++
		}
		run := make([]string, end-start)
		copy(run, survivors[start:end])
		buckets.SetRun(script, run)
		start = end
	}

	// Rewrite so the on-disk form matches what was loaded, unless it
	// already does; skipping the no-op write keeps file watchers quiet.
	if canonical := encode(buckets); canonical != string(data) {
		s.Write(buckets)
	}
	return buckets
}
