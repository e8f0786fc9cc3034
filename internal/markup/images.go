// Package markup rewrites image references inside trusted bio markup.
//
// Only the src attribute of img tags is touched. Every other token is copied
// through byte-for-byte, so the editor's markup survives a rewrite unchanged.
package markup

import (
	"errors"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// RewriteFunc receives the src of each img tag in document order and returns
// the replacement. Returning the same value leaves the tag untouched.
type RewriteFunc func(src string) (string, error)

// RewriteImageSources applies fn to every img src in fragment
func RewriteImageSources(fragment string, fn RewriteFunc) (string, error) {
	if fragment == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(fragment))

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", z.Err()
		}

		// Raw is invalidated by Token, copy it first.
		raw := string(z.Raw())

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.WriteString(raw)
			continue
		}

		tok := z.Token()
		if tok.Data != "img" {
			out.WriteString(raw)
			continue
		}

		changed := false
		for i, attr := range tok.Attr {
			if attr.Namespace != "" || attr.Key != "src" {
				continue
			}
			replacement, err := fn(attr.Val)
			if err != nil {
				return "", err
			}
			if replacement != attr.Val {
				tok.Attr[i].Val = replacement
				changed = true
			}
		}

		if changed {
			out.WriteString(tok.String())
		} else {
			out.WriteString(raw)
		}
	}
}

// IsInlineSource reports whether src carries its payload inline (a data: URL)
func IsInlineSource(src string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(src)), "data:")
}

// IsLocalSource reports whether src is a same-folder reference such as "team.gif".
// Absolute paths, scheme-relative and schemed URLs are not local.
func IsLocalSource(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" || IsInlineSource(src) || strings.HasPrefix(src, "/") {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
