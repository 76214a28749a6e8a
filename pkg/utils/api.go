package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type API struct {
	client  *http.Client
	baseURL string
	header  http.Header
}

func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL, header: http.Header{}}
}

// WithHeader adds a header sent on every request, e.g. an auth credential.
func (a *API) WithHeader(key, value string) *API {
	a.header.Set(key, value)
	return a
}

// GetJSON issues a GET against the API base URL and decodes the body into v.
// The body is only decoded on a 2xx status; the status code is returned
// either way so callers can map it to their own error types.
func (a *API) GetJSON(path string, params url.Values, v any) (int, error) {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	for key := range a.header {
		req.Header.Set(key, a.header.Get(key))
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(v)
}

// GetRaw fetches an absolute URL and returns the body verbatim. Used for
// direct-content URLs that live outside the API base.
func (a *API) GetRaw(rawURL string) ([]byte, int, error) {
	resp, err := a.client.Get(rawURL)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
