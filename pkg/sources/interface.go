package sources

import (
	"github.com/yomu-reader/yomu/pkg/manifest"
)

// ManifestSource fetches and validates a content manifest for an id.
type ManifestSource interface {
	FetchManifest(id string) (*manifest.Manifest, error)
}

// AlbumSource fetches an ordered image page list for an album id.
type AlbumSource interface {
	FetchAlbum(id string) ([]string, error)
}
