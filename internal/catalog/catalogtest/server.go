// Package catalogtest provides an in-memory catalog API for tests.
package catalogtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/rshade/pokecatch/internal/catalog"
)

// Server is an httptest server speaking the catalog API for a fixed roster.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	roster     []catalog.Pokemon
	listLimits []int
	detailHits map[string]int
	failDetail map[string]int
	malformed  map[string]bool
	failList   bool
	userAgent  string
}

// NewServer starts a server serving roster in order. Close it when done.
func NewServer(roster []catalog.Pokemon) *Server {
	s := &Server{
		roster:     roster,
		detailHits: map[string]int{},
		failDetail: map[string]int{},
		malformed:  map[string]bool{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Roster builds n valid records named "mon-001"... with a fire or water type.
func Roster(n int) []catalog.Pokemon {
	out := make([]catalog.Pokemon, n)
	for i := range out {
		out[i] = Record(i+1, fmt.Sprintf("mon-%03d", i+1))
	}
	return out
}

// Record builds a single valid record.
func Record(id int, name string) catalog.Pokemon {
	typeName := "fire"
	if id%2 == 0 {
		typeName = "water"
	}
	return catalog.Pokemon{
		ID:             id,
		Name:           name,
		Height:         id,
		Weight:         id * 10,
		BaseExperience: 50 + id,
		Abilities: []catalog.AbilitySlot{
			{Ability: catalog.NamedResource{Name: "blaze"}, Slot: 1},
		},
		Stats: []catalog.StatEntry{
			{BaseStat: 40 + id, Stat: catalog.NamedResource{Name: "hp"}},
			{BaseStat: 60 + id, Stat: catalog.NamedResource{Name: catalog.StatAttack}},
		},
		Types: []catalog.TypeSlot{{Slot: 1, Type: catalog.NamedResource{Name: typeName}}},
		Sprites: catalog.Sprites{Other: map[string]catalog.SpriteSet{
			catalog.ArtworkOfficial: {FrontDefault: fmt.Sprintf("https://img.example/%d.png", id)},
		}},
	}
}

// FailDetail makes the detail endpoint for name answer with status.
func (s *Server) FailDetail(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDetail[name] = status
}

// MalformDetail makes the detail endpoint for name omit the attack stat.
func (s *Server) MalformDetail(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.malformed[name] = true
}

// FailList makes the list endpoint answer 500.
func (s *Server) FailList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failList = true
}

// BaseURL returns the API root to configure a catalog.Client with.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v2"
}

// ListLimits returns the limit of every list request received, in order.
func (s *Server) ListLimits() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.listLimits...)
}

// DetailRequests returns the total number of detail requests received.
func (s *Server) DetailRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.detailHits {
		total += n
	}
	return total
}

// UserAgent returns the User-Agent header of the most recent request.
func (s *Server) UserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.userAgent = r.Header.Get("User-Agent")
	s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/v2")

	switch {
	case path == "/pokemon":
		s.handleList(w, r)
	case strings.HasPrefix(path, "/pokemon/"):
		s.handleDetail(w, strings.TrimPrefix(path, "/pokemon/"))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		http.Error(w, "bad limit", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.listLimits = append(s.listLimits, limit)
	fail := s.failList
	s.mu.Unlock()

	if fail {
		http.Error(w, "list unavailable", http.StatusInternalServerError)
		return
	}

	n := min(limit, len(s.roster))
	page := catalog.ListPage{Count: len(s.roster), Results: make([]catalog.SummaryRef, n)}
	for i := range n {
		page.Results[i] = catalog.SummaryRef{
			Name: s.roster[i].Name,
			URL:  fmt.Sprintf("%s/pokemon/%s", s.BaseURL(), s.roster[i].Name),
		}
	}
	writeJSON(w, page)
}

func (s *Server) handleDetail(w http.ResponseWriter, name string) {
	s.mu.Lock()
	s.detailHits[name]++
	status := s.failDetail[name]
	malformed := s.malformed[name]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, "detail unavailable", status)
		return
	}

	for _, p := range s.roster {
		if p.Name != name {
			continue
		}
		if malformed {
			p.Stats = p.Stats[:1]
		}
		writeJSON(w, p)
		return
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
