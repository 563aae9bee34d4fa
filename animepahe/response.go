package animepahe

import (
	"regexp"
	"strconv"

	"github.com/anisan-cli/anisan-sources/util"
)

// Upstream response shapes for the search and release endpoints.

type searchResponse struct {
	Data []searchEntry `json:"data"`
}

type searchEntry struct {
	Session  string `json:"session"`
	Title    string `json:"title"`
	Episodes int    `json:"episodes"`
	Year     int    `json:"year"`
}

type releaseResponse struct {
	Data []releaseEntry `json:"data"`
}

type releaseEntry struct {
	Session string `json:"session"`
	Episode string `json:"episode"`
}

var episodeLabelRe = regexp.MustCompile(`Episode (?P<num>\d+)`)

// number parses the logical episode number out of the entry's human-readable
// label ("Episode 12" → 12). ok is false for unparsable upstream labels.
func (e releaseEntry) number() (int, bool) {
	groups := util.ReGroups(episodeLabelRe, e.Episode)
	raw, ok := groups["num"]
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
