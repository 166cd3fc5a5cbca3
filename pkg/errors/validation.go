package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// fragmentForbidden lists characters that may not appear unescaped in a URL
// fragment (RFC 3986 excludes them from the fragment production).
const fragmentForbidden = "#%\"<>\\^`{|}"

// ValidateFragmentID checks that id can be used verbatim as an in-page anchor
// target, i.e. as the part after '#' in an href.
//
// Rules:
//   - Not empty
//   - Maximum length of 128 characters
//   - No whitespace or control characters
//   - None of #%"<>\^`{|}
func ValidateFragmentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCatalog, "scene id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidCatalog, "scene id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "scene id %q contains whitespace or control characters", id)
		}
	}
	if i := strings.IndexAny(id, fragmentForbidden); i >= 0 {
		return New(ErrCodeInvalidCatalog, "scene id %q contains invalid character %q", id, id[i])
	}
	return nil
}

// ValidateImageRef validates an optional image reference.
// An empty reference is valid (the panel shows a placeholder). Otherwise the
// reference must parse as a URL and, when absolute, use http or https.
func ValidateImageRef(ref string) error {
	if ref == "" {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil {
		return Wrap(ErrCodeInvalidCatalog, err, "invalid image reference %q", ref)
	}
	if u.IsAbs() && u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidCatalog, "image reference must use http or https scheme: %q", ref)
	}
	return nil
}
