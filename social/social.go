// Package social turns user supplied GitHub/LinkedIn handles or profile URLs into a
// display handle plus a canonical profile URL.
package social

import (
	"regexp"
	"strings"
)

// Kind names a supported platform.
type Kind string

const (
	GitHub   Kind = "GitHub"
	LinkedIn Kind = "LinkedIn"
)

// Handle is a normalized social profile reference.
type Handle struct {
	Display string `json:"display"`
	URL     string `json:"url"`
}

var (
	schemePrefix   = regexp.MustCompile(`(?i)^(https?://)?(www\.)?`)
	labelPrefix    = regexp.MustCompile(`(?i)^\s*(GitHub|LinkedIn)\s*:\s*`)
	githubPath     = regexp.MustCompile(`(?i)^github\.com/([^/?#]+)`)
	linkedinPath   = regexp.MustCompile(`(?i)^linkedin\.com/(?:in|pub)/([^/?#]+)`)
	profilePrefix  = map[Kind]string{GitHub: "https://github.com/", LinkedIn: "https://www.linkedin.com/in/"}
	profilePattern = map[Kind]*regexp.Regexp{GitHub: githubPath, LinkedIn: linkedinPath}
)

// NormalizeHandle extracts the handle from raw input such as "TamerOnLine",
// "@TamerOnLine", "GitHub: TamerOnLine" or "https://github.com/TamerOnLine/repo".
// It reports false when nothing usable remains or kind is unknown.
func NormalizeHandle(kind Kind, raw string) (Handle, bool) {
	pattern, ok := profilePattern[kind]
	if !ok {
		return Handle{}, false
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		return Handle{}, false
	}
	v = strings.TrimSpace(schemePrefix.ReplaceAllString(v, ""))
	v = strings.TrimSpace(labelPrefix.ReplaceAllString(v, ""))

	handle := v
	if m := pattern.FindStringSubmatch(v); m != nil {
		handle = m[1]
	}
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	handle = firstSegment(handle)
	return build(kind, handle)
}

// LaxHandle is the looser fallback used when NormalizeHandle finds nothing: it strips
// a label, scheme, "www." and "@", then keeps the first path segment after the host.
func LaxHandle(kind Kind, raw string) (Handle, bool) {
	if _, ok := profilePattern[kind]; !ok {
		return Handle{}, false
	}
	v := strings.TrimSpace(raw)
	lower := strings.ToLower(v)
	for _, label := range []string{"github:", "linkedin:"} {
		if strings.HasPrefix(lower, label) {
			v = strings.TrimSpace(v[len(label):])
			break
		}
	}
	lower = strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		_, v, _ = strings.Cut(v, "://")
	}
	v = strings.TrimPrefix(v, "www.")
	v = strings.TrimSpace(strings.TrimLeft(v, "@"))

	lower = strings.ToLower(v)
	switch kind {
	case GitHub:
		if strings.HasPrefix(lower, "github.com/") {
			_, v, _ = strings.Cut(v, "/")
		}
	case LinkedIn:
		if strings.HasPrefix(lower, "linkedin.com/") {
			if parts := strings.SplitN(v, "/", 3); len(parts) == 3 {
				v = parts[2]
			}
		}
	}
	return build(kind, firstSegment(v))
}

func build(kind Kind, handle string) (Handle, bool) {
	if handle == "" {
		return Handle{}, false
	}
	return Handle{Display: handle, URL: profilePrefix[kind] + handle}, true
}

func firstSegment(s string) string {
	head, _, _ := strings.Cut(s, "/")
	return head
}
