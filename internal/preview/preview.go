// Package preview renders short base64 previews of generated documents
// for display on the console.
package preview

import "encoding/base64"

// DefaultLen is the number of base64 characters shown by default.
const DefaultLen = 100

// Encode returns the base64 encoding of doc cut to its first n characters.
// n <= 0 disables truncation.
func Encode(doc string, n int) string {
	enc := base64.StdEncoding.EncodeToString([]byte(doc))
	if n > 0 && len(enc) > n {
		return enc[:n]
	}
	return enc
}

// DataURL returns an SVG data URL for doc. Truncated previews end in "...".
func DataURL(doc string, n int) string {
	enc := Encode(doc, n)
	url := "data:image/svg+xml;base64," + enc
	if n > 0 && base64.StdEncoding.EncodedLen(len(doc)) > n {
		url += "..."
	}
	return url
}
