package newsroom

import "strings"

// Slugify lowercases a title and collapses every run of non-alphanumeric
// characters into a single hyphen. Used as the fallback when the model omits
// a slug; it is always applied to the angle's original title so the dedupe
// key does not drift with model phrasing.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
