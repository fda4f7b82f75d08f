package http

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// Headers maps header names to values. A Headers returned by
// BuildHeaders always carries Content-Type.
type Headers map[string]string

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
)

// BuildHeaders produces the request headers for ct. A non-empty token
// becomes a bearer Authorization header. For ContentFile the
// Content-Type is taken from the first file.
func BuildHeaders(ct ContentType, token string, files ...File) (Headers, error) {
	if ct == ContentNone {
		return nil, headerError(ErrMissingContentType)
	}
	if token != "" && !validToken(token) {
		return nil, headerError(ErrInvalidToken)
	}

	headers := make(Headers, 2)
	if token != "" {
		headers[HeaderAuthorization] = "Bearer " + token
	}

	switch ct {
	case ContentFile:
		if len(files) == 0 || files[0].Type == "" {
			return nil, headerError(ErrMissingFileType)
		}
		headers[HeaderContentType] = files[0].Type
	case ContentJSON, ContentMarkdown, ContentText, ContentFormData:
		headers[HeaderContentType] = ct.MIME()
	default:
		return nil, headerError(ErrUnknownContentType)
	}

	return headers, nil
}

// TokenFromValue converts a loosely typed value, as decoded from a
// config file, into a token. Anything other than a string is rejected.
func TokenFromValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		if t != "" && !validToken(t) {
			return "", headerError(ErrInvalidToken)
		}
		return t, nil
	default:
		return "", &ValidationError{Op: "headers", Kind: ErrInvalidToken, Err: fmt.Errorf("got %T", v)}
	}
}

// validToken rejects values that cannot follow "Bearer " in a header:
// control characters, CR and LF.
func validToken(token string) bool {
	return httpguts.ValidHeaderFieldValue(token)
}
