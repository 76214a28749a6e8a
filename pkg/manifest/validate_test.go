package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
	"title": "Oyasumi Punpun",
	"description": "Punpun is a normal kid.",
	"author": "Asano Inio",
	"artist": "Asano Inio",
	"cover": "https://example.com/cover.png",
	"tracking_id": "xyz-123",
	"chapters": {
		"1": {
			"title": "Chapter 1",
			"volume": "1",
			"release_date": 1500000000,
			"groups": {
				"scans": [
					"https://example.com/1/01.png",
					"https://example.com/1/02.png"
				]
			}
		},
		"2": {
			"title": "Chapter 2",
			"groups": {
				"scans": "/album/chapter/abc123/"
			}
		}
	}
}`

func TestParse_ValidManifest(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "Oyasumi Punpun", m.Title)
	assert.Equal(t, "Asano Inio", m.Author)
	assert.Equal(t, "https://example.com/cover.png", m.Cover)
	assert.Len(t, m.Chapters, 2)

	ch := m.Chapters["1"]
	assert.Equal(t, "Chapter 1", ch.Title)
	assert.Equal(t, "1", ch.Volume)
	assert.Equal(t, []string{
		"https://example.com/1/01.png",
		"https://example.com/1/02.png",
	}, ch.Groups["scans"].Pages)

	// Descriptor groups delegate to the resolver instead of listing pages.
	assert.True(t, m.Chapters["2"].Groups["scans"].IsDescriptor())
	assert.Equal(t, "/album/chapter/abc123/", m.Chapters["2"].Groups["scans"].Descriptor)
}

func TestParse_UnknownFieldsPreserved(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "xyz-123", m.Extra["tracking_id"])
	assert.Equal(t, float64(1500000000), m.Chapters["1"].Extra["release_date"])
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	second, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_MissingTitle(t *testing.T) {
	_, err := Parse([]byte(`{"chapters": {}}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "title", schemaErr.Field)
}

func TestValidate_EmptyTitle(t *testing.T) {
	_, err := Parse([]byte(`{"title": "", "chapters": {}}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestValidate_WrongTypes(t *testing.T) {
	cases := map[string]string{
		"title not string":     `{"title": 42}`,
		"chapters not object":  `{"title": "x", "chapters": []}`,
		"chapter not object":   `{"title": "x", "chapters": {"1": 7}}`,
		"groups not object":    `{"title": "x", "chapters": {"1": {"title": "c", "groups": 7}}}`,
		"group value not list": `{"title": "x", "chapters": {"1": {"title": "c", "groups": {"g": 7}}}}`,
		"page not string":      `{"title": "x", "chapters": {"1": {"title": "c", "groups": {"g": [1]}}}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr, "expected SchemaError, got %v", err)
		})
	}
}

func TestValidate_RelativePageURL(t *testing.T) {
	raw := `{"title": "x", "chapters": {"1": {"title": "c", "groups": {"g": ["not-a-url"]}}}}`
	_, err := Parse([]byte(raw))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Reason, "absolute URL")
}

func TestValidate_ChapterTitleRequired(t *testing.T) {
	raw := `{"title": "x", "chapters": {"1": {"groups": {}}}}`
	_, err := Parse([]byte(raw))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "chapters.1.title", schemaErr.Field)
}

func TestValidate_EmptyGroupsTolerated(t *testing.T) {
	// A chapter with zero groups is a resolution-time problem, not a schema one.
	raw := `{"title": "x", "chapters": {"1": {"title": "c"}}}`
	m, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, m.Chapters["1"].Groups)
}
