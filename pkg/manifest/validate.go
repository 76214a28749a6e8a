package manifest

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// SchemaError names the first structural violation found while validating a
// manifest. Field is a dotted path into the document.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("manifest schema: %s: %s", e.Field, e.Reason)
}

func schemaErr(field, reason string) error {
	return &SchemaError{Field: field, Reason: reason}
}

// Validate checks a decoded JSON document against the manifest shape and
// returns the typed manifest. Required fields must be present with the right
// primitive type; unknown fields are preserved in Extra, never rejected.
// Validation is pure: no network, no disk.
func Validate(doc map[string]any) (*Manifest, error) {
	if doc == nil {
		return nil, schemaErr("$", "document is not an object")
	}

	m := &Manifest{
		Chapters: map[string]Chapter{},
		Extra:    map[string]any{},
	}

	for key, value := range doc {
		switch key {
		case "title":
			s, ok := value.(string)
			if !ok {
				return nil, schemaErr("title", "must be a string")
			}
			m.Title = s
		case "description":
			s, ok := value.(string)
			if !ok {
				return nil, schemaErr("description", "must be a string")
			}
			m.Description = s
		case "artist":
			s, ok := value.(string)
			if !ok {
				return nil, schemaErr("artist", "must be a string")
			}
			m.Artist = s
		case "author":
			s, ok := value.(string)
			if !ok {
				return nil, schemaErr("author", "must be a string")
			}
			m.Author = s
		case "cover":
			s, ok := value.(string)
			if !ok {
				return nil, schemaErr("cover", "must be a string")
			}
			if err := checkURL("cover", s); err != nil {
				return nil, err
			}
			m.Cover = s
		case "chapters":
			chapters, err := validateChapters(value)
			if err != nil {
				return nil, err
			}
			m.Chapters = chapters
		default:
			m.Extra[key] = value
		}
	}

	if m.Title == "" {
		return nil, schemaErr("title", "required and must be non-empty")
	}

	return m, nil
}

// Parse decodes raw JSON and validates it in one step.
func Parse(raw []byte) (*Manifest, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return Validate(doc)
}

func validateChapters(value any) (map[string]Chapter, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, schemaErr("chapters", "must be an object")
	}

	chapters := make(map[string]Chapter, len(obj))
	for key, raw := range obj {
		chapter, err := validateChapter(key, raw)
		if err != nil {
			return nil, err
		}
		chapters[key] = chapter
	}
	return chapters, nil
}

func validateChapter(key string, value any) (Chapter, error) {
	field := "chapters." + key

	obj, ok := value.(map[string]any)
	if !ok {
		return Chapter{}, schemaErr(field, "must be an object")
	}

	ch := Chapter{
		Groups: map[string]Group{},
		Extra:  map[string]any{},
	}

	titleSeen := false
	for k, v := range obj {
		switch k {
		case "title":
			s, ok := v.(string)
			if !ok {
				return Chapter{}, schemaErr(field+".title", "must be a string")
			}
			ch.Title = s
			titleSeen = true
		case "volume":
			s, ok := v.(string)
			if !ok {
				return Chapter{}, schemaErr(field+".volume", "must be a string")
			}
			ch.Volume = s
		case "groups":
			groups, err := validateGroups(field, v)
			if err != nil {
				return Chapter{}, err
			}
			ch.Groups = groups
		default:
			ch.Extra[k] = v
		}
	}

	if !titleSeen {
		return Chapter{}, schemaErr(field+".title", "required")
	}
	return ch, nil
}

// validateGroups accepts both shapes a group value can take: an array of page
// URLs, or a single descriptor string delegated to the source resolver.
// Whether a group is empty is a resolution-time concern, not a schema one.
func validateGroups(field string, value any) (map[string]Group, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, schemaErr(field+".groups", "must be an object")
	}

	groups := make(map[string]Group, len(obj))
	for name, raw := range obj {
		gf := field + ".groups." + name
		switch v := raw.(type) {
		case string:
			groups[name] = Group{Descriptor: v}
		case []any:
			pages := make([]string, 0, len(v))
			for i, entry := range v {
				s, ok := entry.(string)
				if !ok {
					return nil, schemaErr(fmt.Sprintf("%s[%d]", gf, i), "must be a string")
				}
				if err := checkURL(fmt.Sprintf("%s[%d]", gf, i), s); err != nil {
					return nil, err
				}
				pages = append(pages, s)
			}
			groups[name] = Group{Pages: pages}
		default:
			return nil, schemaErr(gf, "must be an array of URLs or a descriptor string")
		}
	}
	return groups, nil
}

func checkURL(field, s string) error {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return schemaErr(field, "must be an absolute URL")
	}
	return nil
}
