package sources

import (
	"encoding/json"
	"strings"

	"github.com/yomu-reader/yomu/pkg/cache"
	"github.com/yomu-reader/yomu/pkg/utils"
)

const imgurBaseURL = "https://api.imgur.com"

// KindImgur is the cache key prefix for imgur-backed page lists.
const KindImgur = "imgur"

type imgurImage struct {
	Type string `json:"type"`
	Link string `json:"link"`
}

type imgurResponse struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
}

// Imgur fetches the image pages of a public album. Requests carry a Client-ID
// credential; without one no network call is attempted.
type Imgur struct {
	api      *utils.API
	store    *cache.Store
	clientID string
}

func NewImgur(clientID string, store *cache.Store) *Imgur {
	api := utils.NewAPI(imgurBaseURL)
	if clientID != "" {
		api.WithHeader("Authorization", "Client-ID "+clientID)
	}
	return &Imgur{api: api, store: store, clientID: clientID}
}

// FetchAlbum returns the album's image links in source order, cache-first.
// Only a non-empty result is cached; empty and failed fetches retry the
// network on the next call.
func (im *Imgur) FetchAlbum(id string) ([]string, error) {
	key := cache.Key(KindImgur, id)
	if cached, ok := im.store.Get(key); ok {
		return cached.([]string), nil
	}

	if im.clientID == "" {
		return nil, &AuthError{Credential: "IMGUR_CLIENT_ID"}
	}

	var album imgurResponse
	status, err := im.api.GetJSON("/3/album/"+id+"/images", nil, &album)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &RemoteError{Status: status}
	}
	if !album.Success {
		return nil, &RemoteError{Reason: "api-rejected"}
	}

	if len(album.Data) == 0 {
		return nil, &FormatError{Field: "data"}
	}
	var images []imgurImage
	if err := json.Unmarshal(album.Data, &images); err != nil {
		return nil, &FormatError{Field: "data"}
	}

	pages := make([]string, 0, len(images))
	for _, img := range images {
		if strings.HasPrefix(img.Type, "image/") {
			pages = append(pages, img.Link)
		}
	}
	if len(pages) == 0 {
		return nil, &EmptyResultError{ID: id}
	}

	im.store.Set(key, pages)
	return pages, nil
}
