package hygraph

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBodyBytes bounds how much of a failed response body is kept in the error.
const maxErrorBodyBytes = 512

// statusTransport fails any response outside 2xx before its body reaches the GraphQL
// decoder, which otherwise accepts a JSON body from a non-200 response as data.
type statusTransport struct {
	next http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
