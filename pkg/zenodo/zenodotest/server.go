// Package zenodotest provides an in-process fake of the Zenodo deposition
// API for tests and offline development.
//
// The fake keeps depositions in memory and mimics the server-side rules the
// real client deliberately does not enforce: token authentication, the
// published-deposition deletion block, and the draft/published lifecycle.
// Start one with [NewServer] and point a client at [Server.BaseURL].
package zenodotest

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// Server is a fake deposition API backed by an in-memory store.
type Server struct {
	srv   *httptest.Server
	token string

	mu       sync.Mutex
	deps     map[string]*deposition
	nextID   int
	requests []string
}

type deposition struct {
	resource zenodo.Deposition
	bucketID string
	files    []*file
}

type file struct {
	id       string
	filename string
	size     int64
	checksum string
}

// NewServer starts a fake API that accepts the given access token.
// Callers must Close the server when done.
func NewServer(token string) *Server {
	s := &Server{
		token:  token,
		deps:   make(map[string]*deposition),
		nextID: 1000,
	}

	r := chi.NewRouter()
	r.Use(s.recordRequest)
	r.Use(s.requireToken)

	r.Route("/api/deposit/depositions", func(r chi.Router) {
		r.Get("/", s.listDepositions)
		r.Post("/", s.createDeposition)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getDeposition)
			r.Put("/", s.updateDeposition)
			r.Delete("/", s.deleteDeposition)
			r.Get("/files", s.listFiles)
			r.Put("/files", s.sortFiles)
			r.Get("/files/{fileID}", s.getFile)
			r.Put("/files/{fileID}", s.renameFile)
			r.Delete("/files/{fileID}", s.deleteFile)
			r.Post("/actions/{action}", s.depositionAction)
		})
	})
	r.Put("/files/{bucketID}/{filename}", s.uploadToBucket)

	s.srv = httptest.NewServer(r)
	return s
}

// Close shuts the fake server down.
func (s *Server) Close() {
	s.srv.Close()
}

// BaseURL returns the API base URL for client configuration, including the
// trailing slash the client requires.
func (s *Server) BaseURL() string {
	return s.srv.URL + "/api/"
}

// Requests returns every request seen so far as "METHOD /path" strings.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// CreateDeposition seeds a draft deposition directly, bypassing HTTP.
// Returns its id for use in client calls.
func (s *Server) CreateDeposition() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.newDeposition()
	return strconv.Itoa(d.resource.ID)
}

// Deposition returns a copy of the stored resource, or false if absent.
func (s *Server) Deposition(id string) (zenodo.Deposition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deps[id]
	if !ok {
		return zenodo.Deposition{}, false
	}
	return s.render(d), true
}

// =============================================================================
// Middleware
// =============================================================================

func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != s.token {
			writeError(w, http.StatusUnauthorized, "invalid or missing access token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Deposition handlers
// =============================================================================

func (s *Server) listDepositions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]zenodo.Deposition, 0, len(s.deps))
	for _, d := range s.deps {
		out = append(out, s.render(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createDeposition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.newDeposition()
	writeJSON(w, http.StatusCreated, s.render(d))
}

func (s *Server) getDeposition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}
	writeJSON(w, http.StatusOK, s.render(d))
}

func (s *Server) updateDeposition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}

	var req struct {
		Metadata zenodo.DepositionMetadata `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed metadata body")
		return
	}
	d.resource.Metadata = req.Metadata
	d.resource.Title = req.Metadata.Title
	writeJSON(w, http.StatusOK, s.render(d))
}

func (s *Server) deleteDeposition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	d, ok := s.deps[id]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}
	if d.resource.Submitted {
		writeError(w, http.StatusForbidden, "published depositions cannot be deleted")
		return
	}
	delete(s.deps, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) depositionAction(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}

	switch chi.URLParam(r, "action") {
	case "publish":
		d.resource.Submitted = true
		d.resource.State = "done"
		writeJSON(w, http.StatusAccepted, s.render(d))
	case "edit":
		if !d.resource.Submitted {
			writeError(w, http.StatusBadRequest, "deposition is not published")
			return
		}
		d.resource.State = "inprogress"
		writeJSON(w, http.StatusCreated, s.render(d))
	case "discard":
		if d.resource.State != "inprogress" {
			writeError(w, http.StatusBadRequest, "no editing session to discard")
			return
		}
		d.resource.State = "done"
		writeJSON(w, http.StatusCreated, s.render(d))
	case "newversion":
		if !d.resource.Submitted {
			writeError(w, http.StatusBadRequest, "deposition is not published")
			return
		}
		draft := s.newDeposition()
		draft.resource.ConceptID = d.resource.ConceptID
		draft.resource.Metadata = d.resource.Metadata
		draft.resource.Title = d.resource.Title
		resp := s.render(d)
		resp.Links.Latest = s.srv.URL + "/api/deposit/depositions/" + strconv.Itoa(draft.resource.ID)
		writeJSON(w, http.StatusCreated, resp)
	default:
		writeError(w, http.StatusNotFound, "unknown action")
	}
}

// =============================================================================
// File handlers
// =============================================================================

func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}
	writeJSON(w, http.StatusOK, renderFiles(d))
}

func (s *Server) sortFiles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "deposition not found")
		return
	}

	var order []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "malformed file order body")
		return
	}

	byID := make(map[string]*file, len(d.files))
	for _, f := range d.files {
		byID[f.id] = f
	}
	sorted := make([]*file, 0, len(d.files))
	for _, entry := range order {
		f, ok := byID[entry.ID]
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown file id "+entry.ID)
			return
		}
		sorted = append(sorted, f)
		delete(byID, entry.ID)
	}
	for _, f := range d.files {
		if _, remaining := byID[f.id]; remaining {
			sorted = append(sorted, f)
		}
	}
	d.files = sorted
	writeJSON(w, http.StatusOK, renderFiles(d))
}

func (s *Server) getFile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, f, status := s.lookupFile(r)
	if status != 0 {
		writeError(w, status, "file not found")
		return
	}
	writeJSON(w, http.StatusOK, renderFile(f))
}

func (s *Server) renameFile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, f, status := s.lookupFile(r)
	if status != 0 {
		writeError(w, status, "file not found")
		return
	}

	var req struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "malformed rename body")
		return
	}
	f.filename = req.Filename
	writeJSON(w, http.StatusOK, renderFile(f))
}

func (s *Server) deleteFile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, f, status := s.lookupFile(r)
	if status != 0 {
		writeError(w, status, "file not found")
		return
	}
	if d.resource.Submitted {
		writeError(w, http.StatusForbidden, "files of published depositions cannot be deleted")
		return
	}
	for i, existing := range d.files {
		if existing == f {
			d.files = append(d.files[:i], d.files[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) uploadToBucket(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/octet-stream" {
		writeError(w, http.StatusUnsupportedMediaType, "bucket uploads must be application/octet-stream")
		return
	}

	hash := md5.New()
	size, err := io.Copy(hash, r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucketID := chi.URLParam(r, "bucketID")
	var d *deposition
	for _, candidate := range s.deps {
		if candidate.bucketID == bucketID {
			d = candidate
			break
		}
	}
	if d == nil {
		writeError(w, http.StatusNotFound, "bucket not found")
		return
	}

	f := &file{
		id:       uuid.NewString(),
		filename: chi.URLParam(r, "filename"),
		size:     size,
		checksum: "md5:" + hex.EncodeToString(hash.Sum(nil)),
	}
	d.files = append(d.files, f)
	writeJSON(w, http.StatusCreated, renderFile(f))
}

// =============================================================================
// Helpers
// =============================================================================

// newDeposition allocates a draft deposition. Caller holds the lock.
func (s *Server) newDeposition() *deposition {
	id := s.nextID
	s.nextID++
	d := &deposition{
		resource: zenodo.Deposition{
			ID:        id,
			ConceptID: uuid.NewString(),
			State:     "unsubmitted",
		},
		bucketID: uuid.NewString(),
	}
	s.deps[strconv.Itoa(id)] = d
	return d
}

// lookupFile resolves the deposition and file addressed by the request.
// Returns a non-zero status when either is missing. Caller holds the lock.
func (s *Server) lookupFile(r *http.Request) (*deposition, *file, int) {
	d, ok := s.deps[chi.URLParam(r, "id")]
	if !ok {
		return nil, nil, http.StatusNotFound
	}
	fileID := chi.URLParam(r, "fileID")
	for _, f := range d.files {
		if f.id == fileID {
			return d, f, 0
		}
	}
	return nil, nil, http.StatusNotFound
}

func (s *Server) render(d *deposition) zenodo.Deposition {
	out := d.resource
	id := strconv.Itoa(d.resource.ID)
	out.Links = zenodo.Links{
		Self:   s.srv.URL + "/api/deposit/depositions/" + id,
		Bucket: s.srv.URL + "/files/" + d.bucketID,
		Files:  s.srv.URL + "/api/deposit/depositions/" + id + "/files",
	}
	out.Files = renderFiles(d)
	return out
}

func renderFiles(d *deposition) []zenodo.DepositionFile {
	out := make([]zenodo.DepositionFile, 0, len(d.files))
	for _, f := range d.files {
		out = append(out, renderFile(f))
	}
	return out
}

func renderFile(f *file) zenodo.DepositionFile {
	return zenodo.DepositionFile{
		ID:       f.id,
		Filename: f.filename,
		Filesize: f.size,
		Checksum: f.checksum,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"status": %d, "message": %q}`, status, message)
}
