package http

import (
	"fmt"
	"strings"
)

// ContentType is the declared payload format of a request.
// The zero value, ContentNone, means no content type was given.
type ContentType int

const (
	ContentNone ContentType = iota
	ContentJSON
	ContentMarkdown
	ContentText
	ContentFile
	ContentFormData
)

// contentTypes maps each tag to its canonical name and header value.
// ContentFile has no fixed header value; it comes from the first file.
var contentTypes = map[ContentType]struct {
	tag  string
	mime string
}{
	ContentJSON:     {"json", "application/json"},
	ContentMarkdown: {"markdown", "text/markdown"},
	ContentText:     {"text", "text/plain"},
	ContentFile:     {"file", ""},
	ContentFormData: {"form-data", "multipart/form-data"},
}

// ParseContentType resolves a tag such as "json" or "Form-Data".
// Matching is case-insensitive.
func ParseContentType(tag string) (ContentType, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ContentNone, &ValidationError{Op: "parse", Kind: ErrMissingContentType}
	}
	for ct, info := range contentTypes {
		if info.tag == tag {
			return ct, nil
		}
	}
	return ContentNone, &ValidationError{Op: "parse", Kind: ErrUnknownContentType, Err: fmt.Errorf("%q", tag)}
}

// ContentTypes returns the known tags in declaration order.
func ContentTypes() []string {
	tags := make([]string, 0, len(contentTypes))
	for ct := ContentJSON; ct <= ContentFormData; ct++ {
		tags = append(tags, ct.String())
	}
	return tags
}

// Valid reports whether ct is one of the declared content types.
func (ct ContentType) Valid() bool {
	_, ok := contentTypes[ct]
	return ok
}

func (ct ContentType) String() string {
	if info, ok := contentTypes[ct]; ok {
		return info.tag
	}
	if ct == ContentNone {
		return "none"
	}
	return "unknown"
}

// MIME returns the Content-Type header value for ct. It is empty for
// ContentFile, ContentNone and unknown values.
func (ct ContentType) MIME() string {
	return contentTypes[ct].mime
}
