// package models defines the data model for the library sync service
package models

import "strings"

// ISBN is a normalized book identifier.
//
// Separator hyphens and surrounding whitespace are stripped on construction,
// so "978-0-13-468599-1" and "9780134685991" compare equal.
type ISBN struct {
	Value string `json:"value"`
}

// NewISBN normalizes raw input into an [ISBN].
func NewISBN(raw string) ISBN {
	return ISBN{Value: strings.ReplaceAll(strings.TrimSpace(raw), "-", "")}
}

// ParseISBNs normalizes every non-blank element of raw.
func ParseISBNs(raw []string) []ISBN {
	isbns := make([]ISBN, 0, len(raw))
	for _, r := range raw {
		isbn := NewISBN(r)
		if isbn.IsEmpty() {
			continue
		}
		isbns = append(isbns, isbn)
	}
	return isbns
}

// ParseISBNText splits text on lines and spaces and normalizes every token.
func ParseISBNText(text string) []ISBN {
	return ParseISBNs(strings.Fields(text))
}

func (i ISBN) String() string {
	return i.Value
}

// MarshalYAML writes the identifier as a plain scalar.
func (i ISBN) MarshalYAML() (any, error) {
	return i.Value, nil
}

// IsEmpty reports whether the identifier has no characters after normalization.
func (i ISBN) IsEmpty() bool {
	return i.Value == ""
}

// Volume represents a book resolved from the lookup service.
type Volume struct {
	ISBN          ISBN     `json:"isbn" yaml:"isbn"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description,omitempty"`
	Publisher     string   `json:"publisher" yaml:"publisher,omitempty"`
	PublishedDate string   `json:"published_date" yaml:"published_date,omitempty"`
	Image         string   `json:"image" yaml:"image,omitempty"`
	Language      string   `json:"language" yaml:"language,omitempty"`
	Authors       []string `json:"authors" yaml:"authors"`
	Pages         int64    `json:"pages" yaml:"pages"`
}

// Library is the ordered collection of downloaded volumes.
type Library struct {
	Volumes []Volume `json:"volumes" yaml:"volumes"`
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{Volumes: []Volume{}}
}

// Len returns the number of volumes in the library.
func (l *Library) Len() int {
	return len(l.Volumes)
}

// Append adds volumes at the end of the library, preserving their order.
func (l *Library) Append(volumes ...Volume) {
	l.Volumes = append(l.Volumes, volumes...)
}

// Contains reports whether any volume in the library has the given ISBN.
func (l *Library) Contains(isbn ISBN) bool {
	for _, v := range l.Volumes {
		if v.ISBN == isbn {
			return true
		}
	}
	return false
}

// ISBNSet returns the set of identifiers currently in the library.
func (l *Library) ISBNSet() map[ISBN]struct{} {
	set := make(map[ISBN]struct{}, len(l.Volumes))
	for _, v := range l.Volumes {
		set[v.ISBN] = struct{}{}
	}
	return set
}

// AppendStats reports the outcome of a sync.
//
// InputList is the size of the requested list and NewVolumes the number of
// volumes actually appended. They differ when requested ISBNs are already in
// the library or fail to resolve.
type AppendStats struct {
	InputList  int `json:"input_list"`
	NewVolumes int `json:"new_volumes"`
}

// Skipped returns how many requested ISBNs did not produce a new volume.
func (s AppendStats) Skipped() int {
	return s.InputList - s.NewVolumes
}
