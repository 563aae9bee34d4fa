package hianime

import (
	"github.com/anisan-cli/anisan-sources/scraper"
	"github.com/samber/mo"
)

// Upstream response shapes. Data envelopes are pointers so a missing "data"
// key is distinguishable from an empty one; every access below goes through
// an absence-aware helper rather than an unchecked index.

type searchResponse struct {
	Data *struct {
		Animes []searchAnime `json:"animes"`
	} `json:"data"`
}

type searchAnime struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Episodes struct {
		Sub int `json:"sub"`
	} `json:"episodes"`
}

func (r searchResponse) animes() []searchAnime {
	if r.Data == nil {
		return nil
	}
	return r.Data.Animes
}

type episodesResponse struct {
	Data *struct {
		Episodes []episodeEntry `json:"episodes"`
	} `json:"data"`
}

type episodeEntry struct {
	Number    int    `json:"number"`
	EpisodeID string `json:"episodeId"`
}

func (r episodesResponse) episodes() ([]episodeEntry, bool) {
	if r.Data == nil || r.Data.Episodes == nil {
		return nil, false
	}
	return r.Data.Episodes, true
}

type sourcesResponse struct {
	Data *struct {
		Sources []struct {
			URL string `json:"url"`
		} `json:"sources"`
		Tracks []struct {
			Kind  string `json:"kind"`
			Label string `json:"label"`
			File  string `json:"file"`
		} `json:"tracks"`
	} `json:"data"`
}

// firstSource returns the primary media URL when the response carries one.
func (r sourcesResponse) firstSource() mo.Option[string] {
	if r.Data == nil || len(r.Data.Sources) == 0 {
		return mo.None[string]()
	}
	return mo.Some(r.Data.Sources[0].URL)
}

// captions collects the subtitle tracks whose kind marks them as captions.
// The result is never nil.
func (r sourcesResponse) captions() scraper.SubtitleTracks {
	subtitles := scraper.SubtitleTracks{}
	if r.Data == nil {
		return subtitles
	}
	for _, track := range r.Data.Tracks {
		if track.Kind == "captions" {
			subtitles[track.Label] = track.File
		}
	}
	return subtitles
}
