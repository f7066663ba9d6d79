package share

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinks(t *testing.T) {
	page := PostURL("https://dailylight.blog", "2024-01-01")
	links := NewLinks("In the beginning", "Genesis 1:1", page)

	assert.Equal(t, "https://dailylight.blog/?date=2024-01-01", page)
	assert.Equal(t, "“In the beginning” — Genesis 1:1\n"+page, links.CopyText)

	tw, err := url.Parse(links.Twitter)
	require.NoError(t, err)
	assert.Equal(t, "twitter.com", tw.Host)
	assert.Equal(t, Text("In the beginning", "Genesis 1:1"), tw.Query().Get("text"))
	assert.Equal(t, page, tw.Query().Get("url"))

	wa, err := url.Parse(links.WhatsApp)
	require.NoError(t, err)
	assert.Equal(t, Text("In the beginning", "Genesis 1:1")+" "+page, wa.Query().Get("text"))

	fb, err := url.Parse(links.Facebook)
	require.NoError(t, err)
	assert.Equal(t, page, fb.Query().Get("u"))
}
