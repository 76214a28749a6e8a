package services

import (
	"fmt"
	"sort"

	"github.com/yomu-reader/yomu/pkg/manifest"
	"github.com/yomu-reader/yomu/pkg/session"
	"github.com/yomu-reader/yomu/pkg/sources"
)

// LoadedChapter is a chapter resolved all the way down to its ordered page
// URLs, plus the identity a reading session persists progress under. An empty
// Pages slice is a valid "no pages" outcome for manifest chapters.
type LoadedChapter struct {
	Source     string
	SourceID   string
	ChapterKey string

	Title  string
	Volume string
	Group  string
	Pages  []string
}

// Reader turns user-supplied identifiers into loaded chapters: it fetches
// manifests, picks the chapter's group, and routes descriptor-backed groups
// through the source resolver. Literal URL lists bypass the resolver.
type Reader struct {
	gist     sources.ManifestSource
	resolver *sources.Resolver
}

func NewReader(gist sources.ManifestSource, resolver *sources.Resolver) *Reader {
	return &Reader{gist: gist, resolver: resolver}
}

// Manifest fetches the validated manifest for a gist id.
func (r *Reader) Manifest(gistID string) (*manifest.Manifest, error) {
	return r.gist.FetchManifest(gistID)
}

// ChapterKeys returns the manifest's chapter keys in reading order.
func (r *Reader) ChapterKeys(m *manifest.Manifest) []string {
	keys := make([]string, 0, len(m.Chapters))
	for key := range m.Chapters {
		keys = append(keys, key)
	}
	return session.SortChapterKeys(keys)
}

// LoadChapter resolves one chapter of a gist-hosted manifest to its pages.
// Only the first group (by name) is consumed. A chapter with no groups or an
// empty page list loads as zero pages, which the session treats as a normal
// display state rather than an error.
func (r *Reader) LoadChapter(gistID, chapterKey string) (*LoadedChapter, error) {
	m, err := r.gist.FetchManifest(gistID)
	if err != nil {
		return nil, err
	}

	ch, ok := m.Chapters[chapterKey]
	if !ok {
		return nil, fmt.Errorf("chapter %q not in manifest %q", chapterKey, gistID)
	}

	loaded := &LoadedChapter{
		Source:     sources.KindGist,
		SourceID:   gistID,
		ChapterKey: chapterKey,
		Title:      ch.Title,
		Volume:     ch.Volume,
		Pages:      []string{},
	}

	name, group, ok := firstGroup(ch)
	if !ok {
		return loaded, nil
	}
	loaded.Group = name

	if group.IsDescriptor() {
		pages, err := r.resolver.Resolve(group.Descriptor)
		if err != nil {
			return nil, err
		}
		loaded.Pages = pages
		return loaded, nil
	}

	loaded.Pages = group.Pages
	return loaded, nil
}

// LoadAlbum resolves a bare album id through the resolver's album rule.
func (r *Reader) LoadAlbum(albumID string) (*LoadedChapter, error) {
	pages, err := r.resolver.Resolve(sources.AlbumDescriptor(albumID))
	if err != nil {
		return nil, err
	}
	return &LoadedChapter{
		Source:   sources.KindImgur,
		SourceID: albumID,
		Title:    "Album " + albumID,
		Pages:    pages,
	}, nil
}

// firstGroup picks the group consumed for reading. Group names sort so the
// choice is stable across runs.
func firstGroup(ch manifest.Chapter) (string, manifest.Group, bool) {
	if len(ch.Groups) == 0 {
		return "", manifest.Group{}, false
	}
	names := make([]string, 0, len(ch.Groups))
	for name := range ch.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], ch.Groups[names[0]], true
}
