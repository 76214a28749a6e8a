package sources

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/yomu-reader/yomu/pkg/cache"
	"github.com/yomu-reader/yomu/pkg/manifest"
	"github.com/yomu-reader/yomu/pkg/utils"
)

const gistBaseURL = "https://api.github.com"

// KindGist is the cache key prefix for gist-backed manifests.
const KindGist = "gist"

type gistFile struct {
	Filename string `json:"filename"`
	RawURL   string `json:"raw_url"`
	Content  string `json:"content"`
}

type gistResponse struct {
	Files map[string]gistFile `json:"files"`
}

// Gist fetches content manifests hosted as GitHub gists: the gist's first
// .json file is read, parsed and validated into a Manifest.
type Gist struct {
	api   *utils.API
	store *cache.Store
}

func NewGist(store *cache.Store) *Gist {
	return &Gist{api: utils.NewAPI(gistBaseURL), store: store}
}

// FetchManifest returns the validated manifest for a gist id, cache-first.
// Failures are never cached, so a retry always re-fetches.
func (g *Gist) FetchManifest(id string) (*manifest.Manifest, error) {
	key := cache.Key(KindGist, id)
	if cached, ok := g.store.Get(key); ok {
		return cached.(*manifest.Manifest), nil
	}

	var gist gistResponse
	status, err := g.api.GetJSON("/gists/"+id, nil, &gist)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{ID: id}
	}
	if status < 200 || status > 299 {
		return nil, &RemoteError{Status: status}
	}

	file, ok := firstJSONFile(gist.Files)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	raw, err := g.fileText(file)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	m, err := manifest.Validate(doc)
	if err != nil {
		return nil, err
	}

	g.store.Set(key, m)
	return m, nil
}

// fileText prefers the direct raw_url and falls back to the inline content
// the gist API already returned.
func (g *Gist) fileText(file gistFile) ([]byte, error) {
	if file.RawURL != "" {
		body, status, err := g.api.GetRaw(file.RawURL)
		if err != nil {
			return nil, err
		}
		if status < 200 || status > 299 {
			return nil, &RemoteError{Status: status}
		}
		return body, nil
	}
	return []byte(file.Content), nil
}

func firstJSONFile(files map[string]gistFile) (gistFile, bool) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.HasSuffix(name, ".json") {
			return files[name], true
		}
	}
	return gistFile{}, false
}
