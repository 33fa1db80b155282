package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveTSV(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/tab-separated-values")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadSanitizesTextColumn(t *testing.T) {
	srv := serveTSV(t, "text\n  Great!  \n\nBad.\x07\n")
	store := NewStore()

	count, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"Great!", "Bad."}, store.reviews)
	assert.Contains(t, store.Status(), "2 reviews loaded")
}

func TestLoadIgnoresOtherColumns(t *testing.T) {
	srv := serveTSV(t, "id\ttext\tstars\n1\t  Solid product  \t5\n2\t\t1\n")
	store := NewStore()

	count, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Solid product"}, store.reviews)
}

func TestLoadWithoutTextColumnYieldsEmptyCollection(t *testing.T) {
	srv := serveTSV(t, "id\tbody\n1\tnot a review column\n")
	store := NewStore()

	count, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.PickRandom()
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestLoadEmptyBody(t *testing.T) {
	srv := serveTSV(t, "")
	store := NewStore()

	count, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLoadReportsTransportErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewStore()
	_, err := store.Load(context.Background(), srv.URL)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusNotFound, terr.StatusCode)
}

func TestLoadReportsTransportErrorWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	store := NewStore()
	_, err := store.Load(context.Background(), srv.URL)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.StatusCode)
	assert.NotEmpty(t, terr.Message)
}

func TestLoadReportsFirstParseError(t *testing.T) {
	// Header promises two columns, second data row only has one.
	srv := serveTSV(t, "text\tstars\ngood\t5\nmissing-stars\n")
	store := NewStore()

	_, err := store.Load(context.Background(), srv.URL)

	var merr *MalformedInputError
	require.ErrorAs(t, err, &merr)
	assert.NotEmpty(t, merr.Message)
}

func TestLoadKeepsPriorCollectionOnFailure(t *testing.T) {
	good := serveTSV(t, "text\nfirst\nsecond\n")
	store := NewStore()

	_, err := store.Load(context.Background(), good.URL)
	require.NoError(t, err)
	require.Equal(t, 2, store.Count())

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	_, err = store.Load(context.Background(), bad.URL)
	require.Error(t, err)
	assert.Equal(t, 2, store.Count(), "failed reload must not clobber prior data")
}

func TestLoadFromLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.tsv")
	require.NoError(t, os.WriteFile(path, []byte("id\ttext\n1\t  Works offline  \n2\t\n"), 0o644))

	store := NewStore()
	count, err := store.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Works offline"}, store.reviews)
	assert.Contains(t, store.Status(), path)
}

func TestLoadFromLocalFileMissing(t *testing.T) {
	store := NewStore()
	_, err := store.Load(context.Background(), "/does/not/exist.tsv")

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestPickRandomEmpty(t *testing.T) {
	store := NewStore()
	_, err := store.PickRandom()
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestPickRandomSingleElement(t *testing.T) {
	srv := serveTSV(t, "text\nonly one\n")
	store := NewStore()

	_, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		got, err := store.PickRandom()
		require.NoError(t, err)
		assert.Equal(t, "only one", got)
	}
}

func TestPickRandomStaysInBounds(t *testing.T) {
	srv := serveTSV(t, "text\na\nb\nc\n")
	store := NewStore()

	_, err := store.Load(context.Background(), srv.URL)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, err := store.PickRandom()
		require.NoError(t, err)
		seen[got] = true
	}
	assert.Subset(t, []string{"a", "b", "c"}, keys(seen))
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Great!  ", "Great!"},
		{"Bad.\x07", "Bad."},
		{"\x00\x1f\x7f", ""},
		{"line\x0awrapped", "linewrapped"},
		{"plain", "plain"},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitize(tc.in), "sanitize(%q)", tc.in)
	}
}
