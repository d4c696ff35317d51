package batchdl

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fileBody is the deterministic content served for /files/<name>.
func fileBody(name string) []byte {
	return bytes.Repeat([]byte(name+"\n"), 4096)
}

// newTestServer serves:
//
//	/files/<name>    fileBody(name) with a Content-Length
//	/chunked/<name>  fileBody(name) without a Content-Length
//	/redirect/<name> 302 to /files/<name>
//	/missing/...     404
//	/broken/...      500
//	/                a short index page
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		body := fileBody(strings.TrimPrefix(r.URL.Path, "/files/"))
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Write(body)
	})
	mux.HandleFunc("/chunked/", func(w http.ResponseWriter, r *http.Request) {
		body := fileBody(strings.TrimPrefix(r.URL.Path, "/chunked/"))
		for len(body) > 0 {
			n := 1024
			if n > len(body) {
				n = len(body)
			}
			w.Write(body[:n])
			w.(http.Flusher).Flush()
			body = body[n:]
		}
	})
	mux.HandleFunc("/redirect/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/files/"+strings.TrimPrefix(r.URL.Path, "/redirect/"), http.StatusFound)
	})
	mux.HandleFunc("/missing/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>index</html>")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// fakeTransport writes "body of <url>" and counts calls per URL.
type fakeTransport struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		calls: make(map[string]int),
		fail:  make(map[string]error),
	}
}

func (f *fakeTransport) Perform(ctx context.Context, url string, w io.Writer, progress ProgressFunc) error {
	f.mu.Lock()
	f.calls[url]++
	err := f.fail[url]
	f.mu.Unlock()

	if err != nil {
		return err
	}

	body := []byte("body of " + url)
	if _, err := w.Write(body); err != nil {
		return err
	}
	if progress != nil {
		progress(int64(len(body)), int64(len(body)))
	}
	return nil
}

func (f *fakeTransport) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// panicTransport panics on every request.
type panicTransport struct{}

func (panicTransport) Perform(ctx context.Context, url string, w io.Writer, progress ProgressFunc) error {
	panic("transport exploded")
}

// testConsole returns a Console writing into two buffers.
func testConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewConsole(out, errOut), out, errOut
}
