package redisrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerseKey(t *testing.T) {
	assert.Equal(t, "verse:kjv:john 3:16", VerseKey("KJV", "John  3:16"))
	assert.Equal(t, VerseKey("web", "Psalm 23:1-6"), VerseKey("WEB", " psalm 23:1-6 "))
}
