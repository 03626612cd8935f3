// Package preview serves a live tabular preview of a converted
// specification: an HTML table view of the CSV artifact with the required
// column highlighted, refreshed over SSE whenever the watched input file
// changes.
package preview

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/masnyjimmy/specsheet/convert"
	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/validation"
	"github.com/rs/cors"
)

//go:embed preview.html
var previewPageBase string

func buildPreviewPage(csvUrl, eventsUrl string) []byte {
	replacer := strings.NewReplacer(
		"%CSV_URL%", csvUrl,
		"%EVENTS_URL%", eventsUrl,
	)

	return []byte(replacer.Replace(previewPageBase))
}

type Options struct {
	DebounceTime time.Duration
	BaseUrl      string
	Mode         convert.Mode
}

func DefaultOptions() Options {
	return Options{
		DebounceTime: DEFAULT_DEBOUNCE_TIME,
		BaseUrl:      "/",
		Mode:         convert.ModeSchemas,
	}
}

type urls struct {
	UI      string
	CSV     string
	Events  string
	Convert string
}

func makeUrls(base string) urls {
	return urls{
		UI:      path.Clean(base),
		CSV:     path.Join(base, "spec.csv"),
		Events:  path.Join(base, "events"),
		Convert: path.Join(base, "convert"),
	}
}

type Preview struct {
	options Options

	broadcaster *broadcaster
	urls        urls
	mu          sync.RWMutex
	artifact    []byte
}

// New builds a preview server around an already-rendered CSV artifact.
func New(artifact []byte, opt Options) *Preview {
	return &Preview{
		options:     opt,
		broadcaster: NewBroadcaster(),
		urls:        makeUrls(opt.BaseUrl),
		artifact:    artifact,
	}
}

// Handler routes the preview endpoints and falls back to h for anything
// else. The result is CORS-wrapped so the CSV and events endpoints can be
// consumed from other origins.
func (p *Preview) Handler(h http.Handler) http.Handler {

	page := buildPreviewPage(p.urls.CSV, p.urls.Events)

	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case p.urls.UI:
			w.Header().Set("Content-Type", "text/html")
			w.Write(page)
		case p.urls.CSV:
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			p.mu.RLock()
			defer p.mu.RUnlock()
			w.Write(p.artifact)
		case p.urls.Events:
			p.broadcaster.ServeHTTP(w, r)
		case p.urls.Convert:
			p.handleConvert(w, r)
		default:
			if h != nil {
				h.ServeHTTP(w, r)
			} else {
				http.NotFound(w, r)
			}
		}
	})

	return cors.Default().Handler(mux)
}

// SetArtifact swaps the served CSV and tells connected clients to reload.
func (p *Preview) SetArtifact(artifact []byte) {
	p.mu.Lock()
	p.artifact = slices.Clone(artifact)
	p.mu.Unlock()
	p.broadcaster.Broadcast("reload")
}

// convertRequest is the upload envelope for one-shot conversions. The
// envelope shape is schema-validated before the core runs; the specification
// document inside it is not.
type convertRequest struct {
	Format  string `json:"format"`
	Mode    string `json:"mode"`
	Content string `json:"content"`
}

func (p *Preview) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := http.MaxBytesReader(w, r.Body, 10<<20)
	raw := json.RawMessage{}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validation.Validate(raw); err != nil {
		http.Error(w, fmt.Sprintf("invalid conversion request: %v", err), http.StatusBadRequest)
		return
	}

	var req convertRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	format, err := document.ParseFormat(req.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode := p.options.Mode
	if req.Mode != "" {
		if mode, err = convert.ParseMode(req.Mode); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	artifact, err := convert.Render([]byte(req.Content), format, mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Write(artifact)
}
