// Package textutil provides owned-copy helpers for strings and byte
// slices. Results never alias the input's backing storage, so a copy
// is safe to retain or mutate after the source is gone.
package textutil

import "strings"

// Clone returns a copy of s backed by freshly allocated storage.
// Cloning the empty string returns "" without allocating.
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s)
	return sb.String()
}

// CloneBytes returns a copy of b in a freshly allocated slice. A nil
// input yields an empty, non-nil slice.
func CloneBytes(b []byte) []byte {
	dest := make([]byte, len(b))
	copy(dest, b)
	return dest
}
