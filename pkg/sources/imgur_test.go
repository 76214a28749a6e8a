package sources

import (
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/yomu-reader/yomu/pkg/cache"
)

type imgurSuite struct {
	suite.Suite

	store *cache.Store
	imgur *Imgur
}

func TestImgurSuite(t *testing.T) {
	suite.Run(t, new(imgurSuite))
}

func (s *imgurSuite) SetupTest() {
	s.store = cache.New(time.Hour)
	s.imgur = NewImgur("test-client-id", s.store)
}

func (s *imgurSuite) TearDownTest() {
	gock.Off()
}

func (s *imgurSuite) gockAlbum(id string, body map[string]any) {
	gock.New(imgurBaseURL).
		Get("/3/album/" + id + "/images").
		MatchHeader("Authorization", "Client-ID test-client-id").
		Reply(200).
		JSON(body)
}

func (s *imgurSuite) Test_FetchAlbum_FiltersImages() {
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
		"data": []map[string]any{
			{"type": "image/png", "link": "https://i.imgur.com/1.png"},
			{"type": "video/mp4", "link": "https://i.imgur.com/clip.mp4"},
			{"type": "image/jpeg", "link": "https://i.imgur.com/2.jpg"},
		},
	})

	pages, err := s.imgur.FetchAlbum("abc123")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []string{
		"https://i.imgur.com/1.png",
		"https://i.imgur.com/2.jpg",
	}, pages)
	assert.True(s.T(), gock.IsDone())
}

func (s *imgurSuite) Test_FetchAlbum_MissingCredential() {
	imgur := NewImgur("", s.store)

	_, err := imgur.FetchAlbum("abc123")

	var authErr *AuthError
	assert.ErrorAs(s.T(), err, &authErr)
	// No intercept was registered: any network call would have errored
	// differently, so reaching AuthError proves none was attempted.
}

func (s *imgurSuite) Test_FetchAlbum_HTTPError() {
	gock.New(imgurBaseURL).
		Get("/3/album/abc123/images").
		Reply(429)

	_, err := s.imgur.FetchAlbum("abc123")

	var remoteErr *RemoteError
	assert.ErrorAs(s.T(), err, &remoteErr)
	assert.Equal(s.T(), 429, remoteErr.Status)
}

func (s *imgurSuite) Test_FetchAlbum_APIRejected() {
	s.gockAlbum("abc123", map[string]any{
		"success": false,
		"status":  400,
		"data":    []map[string]any{},
	})

	_, err := s.imgur.FetchAlbum("abc123")

	var remoteErr *RemoteError
	assert.ErrorAs(s.T(), err, &remoteErr)
	assert.Equal(s.T(), "api-rejected", remoteErr.Reason)
}

func (s *imgurSuite) Test_FetchAlbum_BadShape() {
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
		"data":    map[string]any{"unexpected": "object"},
	})

	_, err := s.imgur.FetchAlbum("abc123")

	var formatErr *FormatError
	assert.ErrorAs(s.T(), err, &formatErr)
}

func (s *imgurSuite) Test_FetchAlbum_MissingData() {
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
	})

	_, err := s.imgur.FetchAlbum("abc123")

	var formatErr *FormatError
	assert.ErrorAs(s.T(), err, &formatErr)
}

func (s *imgurSuite) Test_FetchAlbum_EmptyNotCached() {
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
		"data": []map[string]any{
			{"type": "video/mp4", "link": "https://i.imgur.com/clip.mp4"},
		},
	})

	_, err := s.imgur.FetchAlbum("abc123")
	var emptyErr *EmptyResultError
	assert.ErrorAs(s.T(), err, &emptyErr)
	assert.Equal(s.T(), "abc123", emptyErr.ID)
	assert.True(s.T(), gock.IsDone())

	// The immediate retry must hit the network again.
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
		"data": []map[string]any{
			{"type": "image/png", "link": "https://i.imgur.com/1.png"},
		},
	})

	pages, err := s.imgur.FetchAlbum("abc123")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), pages, 1)
	assert.True(s.T(), gock.IsDone())
}

func (s *imgurSuite) Test_FetchAlbum_CacheHitSkipsNetwork() {
	s.gockAlbum("abc123", map[string]any{
		"success": true,
		"status":  200,
		"data": []map[string]any{
			{"type": "image/png", "link": "https://i.imgur.com/1.png"},
		},
	})

	first, err := s.imgur.FetchAlbum("abc123")
	assert.NoError(s.T(), err)
	assert.True(s.T(), gock.IsDone())

	second, err := s.imgur.FetchAlbum("abc123")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), first, second)
}
