package shorturl

import (
	"net/url"
	"strings"
)

// ShortCode returns the last path segment of shortUrl, unescaped.
// A URL without a path, or whose path ends with "/", has no short code and yields "".
// An escaped slash stays part of the segment, so ".../a%2Fb" yields "a/b".
func ShortCode(shortUrl string) string {
	u, err := url.Parse(shortUrl)
	if err != nil {
		return ""
	}

	path := u.EscapedPath()
	segment := path[strings.LastIndex(path, "/")+1:]
	code, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return code
}
