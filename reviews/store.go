// Package reviews holds the in-memory review collection: it loads a
// tab-separated table, keeps the sanitized text column, and hands out
// uniformly random picks.
package reviews

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const textColumn = "text"

// Store owns the review collection. Load replaces it wholesale; everything
// else only reads. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	reviews []string
	status  string

	httpClient *http.Client
}

func NewStore() *Store {
	return &Store{
		status:     "no reviews loaded",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load fetches the TSV resource at source (URL or local path), parses it and
// replaces the current collection with the sanitized text column. On any
// error the previous collection stays in place. Returns the new count.
func (s *Store) Load(ctx context.Context, source string) (int, error) {
	body, err := s.open(ctx, source)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	loaded, err := parseReviews(body)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.reviews = loaded
	s.status = fmt.Sprintf("%d reviews loaded from %s", len(loaded), source)
	s.mu.Unlock()

	return len(loaded), nil
}

func (s *Store) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, &TransportError{Message: err.Error()}
		}
		// Always revalidate from origin, the dataset may be replaced in place.
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, &TransportError{Message: err.Error()}
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, &TransportError{StatusCode: resp.StatusCode}
		}
		return resp.Body, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}
	return f, nil
}

// parseReviews reads a tab-delimited table with a header row and returns the
// sanitized values of the "text" column in row order. A header without a
// "text" column yields an empty collection, not an error.
func parseReviews(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true // review text may contain stray quotes

	header, err := cr.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, &MalformedInputError{Message: err.Error()}
	}

	textIdx := -1
	for i, name := range header {
		if name == textColumn {
			textIdx = i
			break
		}
	}
	if textIdx == -1 {
		return []string{}, nil
	}

	loaded := []string{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedInputError{Message: err.Error()}
		}
		if textIdx >= len(rec) {
			continue
		}
		if review := sanitize(rec[textIdx]); review != "" {
			loaded = append(loaded, review)
		}
	}
	return loaded, nil
}

// sanitize strips non-printable ASCII and surrounding whitespace.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// PickRandom returns one review chosen uniformly at random, sampling with
// replacement across calls. Fails with ErrEmptyCollection when nothing is
// loaded; callers are expected to handle that and leave state alone.
func (s *Store) PickRandom() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reviews) == 0 {
		return "", ErrEmptyCollection
	}
	idx := int(math.Floor(rand.Float64() * float64(len(s.reviews))))
	return s.reviews[idx], nil
}

// Count reports the size of the current collection.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// Status is the human-readable load state for the status endpoint.
func (s *Store) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
