package model

import (
	"encoding/base64"
	"fmt"
)

// ResultDetails is what a caller shows after a creation: the link and, once fetched, its QR image.
type ResultDetails struct {
	ShortUrl string
	QrImage  []byte
}

// ImageDataURI encodes the QR image as a PNG data URI, or returns "" without an image.
func (d ResultDetails) ImageDataURI() string {
	if len(d.QrImage) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(d.QrImage)
}

// Markdown renders the QR image followed by a link to the short URL. Nothing is rendered until the image is available.
func (d ResultDetails) Markdown() string {
	image := d.ImageDataURI()
	if image == "" {
		return ""
	}
	return fmt.Sprintf("![QR Code](%s)\n\n[Visit Short URL](%s)", image, d.ShortUrl)
}
