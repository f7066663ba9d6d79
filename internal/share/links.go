package share

import (
	"fmt"
	"net/url"
)

type Links struct {
	WhatsApp string `json:"whatsapp"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	CopyText string `json:"copy_text"`
}

func Text(quote, reference string) string {
	return fmt.Sprintf("“%s” — %s", quote, reference)
}

func NewLinks(quote, reference, pageURL string) Links {
	text := Text(quote, reference)
	return Links{
		WhatsApp: "https://api.whatsapp.com/send?text=" + url.QueryEscape(text+" "+pageURL),
		Twitter:  "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) + "&url=" + url.QueryEscape(pageURL),
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL),
		CopyText: text + "\n" + pageURL,
	}
}

// PostURL is the reader page for the given calendar date.
func PostURL(baseURL, date string) string {
	return baseURL + "/?date=" + date
}
