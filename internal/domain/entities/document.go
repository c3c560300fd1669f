package entities

import "encoding/base64"

// HTMLContentType is the content type of every rendered status page.
const HTMLContentType = "text/html; charset=utf-8"

// Document is a fully rendered page ready to be written to a response or file.
type Document struct {
	ContentType string
	Body        []byte
}

// Badge is a rendered status badge image.
type Badge struct {
	SVG []byte
}

// SVGDataURI embeds the badge so a page can show it without a second request.
func (b Badge) SVGDataURI() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(b.SVG)
}
