package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogURL_Valid(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/post/1",
		"http://blog.example.org",
		"https://velog.io/@someone/week-1?draft=false#top",
		"HTTPS://EXAMPLE.COM/x",
	} {
		b, err := NewBlogURL(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, b.String())
	}
}

func TestNewBlogURL_TrimsSurroundingWhitespace(t *testing.T) {
	b, err := NewBlogURL(" https://x.dev/p\n")
	require.NoError(t, err)
	assert.Equal(t, "https://x.dev/p", b.String())

	plain, err := NewBlogURL("https://x.dev/p")
	require.NoError(t, err)
	assert.True(t, b.Equals(plain))
}

func TestNewBlogURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"/relative/path",
		"example.com/post",
		"ftp://example.com/file",
		"mailto:someone@example.com",
		"https://",
		"http://exa mple.com",
		"://missing-scheme",
		"   ",
		"http:x.dev/p",
	} {
		_, err := NewBlogURL(raw)
		require.Error(t, err, raw)
		assert.True(t, HasCode(err, CodeInvalidBlogURL), raw)
		assert.Contains(t, err.Error(), raw)
	}
}

func TestBlogURL_Equals(t *testing.T) {
	a, err := NewBlogURL("https://example.com/a")
	require.NoError(t, err)
	b, err := NewBlogURL("https://example.com/a")
	require.NoError(t, err)
	c, err := NewBlogURL("https://example.com/c")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNewGithubCommentID(t *testing.T) {
	id, err := NewGithubCommentID("1234567")
	require.NoError(t, err)
	assert.Equal(t, "1234567", id.String())

	fromInt, err := GithubCommentIDFromInt(1234567)
	require.NoError(t, err)
	assert.True(t, id.Equals(fromInt))

	for _, raw := range []string{"", " ", "\t\n"} {
		_, err := NewGithubCommentID(raw)
		assert.True(t, HasCode(err, CodeInvalidGithubCommentID), "%q", raw)
	}
}

func TestIdentifiers_Equals(t *testing.T) {
	assert.True(t, CycleID(3).Equals(CycleID(3)))
	assert.False(t, MemberID(3).Equals(MemberID(4)))
	assert.Equal(t, "42", GenerationID(42).String())
	assert.Equal(t, "7", SubmissionID(7).String())
}

func TestAsDomainError_Wrapped(t *testing.T) {
	_, err := NewBlogURL("nope")
	wrapped := fmtWrap(err)

	de, ok := AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidBlogURL, de.Code)
}
