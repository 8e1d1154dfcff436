package ally

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/ally-invest/src/responses"
)

const testAccountID = "12345678"

var testCredentials = Credentials{
	ConsumerKey:    "consumer-key",
	ConsumerSecret: "consumer-secret",
	Token:          "oauth-token",
	TokenSecret:    "oauth-secret",
}

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// fakeAlly is an httptest server answering canned bodies on mux routes and recording
// every request it receives.
type fakeAlly struct {
	router   *mux.Router
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeAlly(t *testing.T) *fakeAlly {
	t.Helper()

	f := &fakeAlly{router: mux.NewRouter()}
	f.server = httptest.NewServer(f.router)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeAlly) handle(method, path string, status int, body string) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   string(data),
		})
		f.mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte(body))
	}).Methods(method)
}

func (f *fakeAlly) received() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeAlly) client(t *testing.T, format responses.Format) *Client {
	t.Helper()

	urls, err := NewURLs(f.server.URL+"/v1/", format)
	require.NoError(t, err)

	return NewClientWithTransport(urls, NewHTTPTransport(testCredentials, format), testAccountID)
}
