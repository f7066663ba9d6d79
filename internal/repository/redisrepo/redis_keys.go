package redisrepo

import (
	"fmt"
	"strings"
)

const (
	VERSE_KEY = "verse:%s:%s" // <translation>:<reference>
)

func VerseKey(translation string, reference string) string {
	return fmt.Sprintf(VERSE_KEY, strings.ToLower(translation), strings.ToLower(strings.Join(strings.Fields(reference), " ")))
}
