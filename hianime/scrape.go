package hianime

import (
	"fmt"

	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// Scrape resolves a playable source for the selected episode.
//
// Every failure exit returns a kind-matched placeholder descriptor with a nil
// error: degradation is visible to the host through the resolution status,
// never through a raised error.
func (s *Scraper) Scrape(meta scraper.Metadata, selector scraper.EpisodeSelector) (scraper.Resolution, error) {
	episodes, ok := s.episodeListing(meta.ID)
	if !ok {
		log.Errorf("hianime: failed to fetch episodes for anime %s", meta.ID)
		return scraper.TransportError(scraper.PlaceholderFor(meta, selector)), nil
	}

	target, found := locate(episodes, meta.Kind, selector)
	if !found {
		log.Errorf("hianime: episode %d not found for anime %s", selector.Number(), meta.ID)
		return scraper.NotFound(scraper.PlaceholderFor(meta, selector)), nil
	}

	var resp sourcesResponse
	if !s.request(s.cfg.BaseURL+"/episode/sources", map[string]string{"animeEpisodeId": target.EpisodeID}, &resp) {
		log.Errorf("hianime: failed to fetch sources for episode %s", target.EpisodeID)
		return scraper.TransportError(scraper.PlaceholderFor(meta, selector)), nil
	}

	videoURL, ok := resp.firstSource().Get()
	if !ok {
		log.Errorf("hianime: no sources listed for episode %s", target.EpisodeID)
		return scraper.NotFound(scraper.PlaceholderFor(meta, selector)), nil
	}

	if meta.Kind == scraper.Multi {
		title := fmt.Sprintf("%s - Episode %d", meta.Title, target.Number)
		return scraper.Found(scraper.NewMulti(videoURL, title, s.cfg.Referrer, selector, resp.captions())), nil
	}
	return scraper.Found(scraper.NewSingle(videoURL, meta.Title, s.cfg.Referrer, meta.Year)), nil
}

// locate picks the target episode from a listing. Multi entries are matched
// by episode number, first occurrence winning on upstream duplicates; Single
// entries unconditionally target the first listing element.
func locate(episodes []episodeEntry, kind scraper.Kind, selector scraper.EpisodeSelector) (episodeEntry, bool) {
	if kind == scraper.Multi {
		want := selector.Number()
		for _, ep := range episodes {
			if ep.Number == want {
				return ep, true
			}
		}
		return episodeEntry{}, false
	}

	if len(episodes) == 0 {
		return episodeEntry{}, false
	}
	return episodes[0], true
}
