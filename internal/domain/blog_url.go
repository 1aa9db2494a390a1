package domain

import (
	"net/url"
	"strings"
)

// BlogURL is an absolute http(s) URL pointing at a member's blog post.
type BlogURL struct {
	value string
}

// NewBlogURL validates raw and wraps it. Surrounding whitespace is dropped,
// the rest of the string is kept as-is.
func NewBlogURL(raw string) (BlogURL, error) {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return BlogURL{}, newDomainError(CodeInvalidBlogURL, "invalid blog url: %q", raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return BlogURL{}, newDomainError(CodeInvalidBlogURL, "invalid blog url: %q", raw)
	}
	return BlogURL{value: trimmed}, nil
}

func (b BlogURL) String() string { return b.value }

func (b BlogURL) Equals(other BlogURL) bool { return b.value == other.value }
