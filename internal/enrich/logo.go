package enrich

import (
	"net/url"
	"strings"
)

// FallbackLogo is the last-resort logo reference, relative to the site root.
const FallbackLogo = "logo.png"

// ResolveLogo picks the project's display logo by strict precedence:
//
//  1. explicit frontmatter value
//  2. hosting-API owner avatar
//  3. favicon-service URL derived from the link's domain (non-platform links)
//  4. the fixed fallback image
//
// Exactly one tier wins; the function is total and always returns a value.
func ResolveLogo(explicit, ownerAvatar, link string) string {
	if explicit != "" {
		return explicit
	}
	if ownerAvatar != "" {
		return ownerAvatar
	}
	if link != "" && !strings.Contains(link, "github.com") {
		if u, err := url.Parse(link); err == nil && u.Hostname() != "" {
			return "https://www.google.com/s2/favicons?domain=" + u.Hostname() + "&sz=128"
		}
	}
	return FallbackLogo
}
