package animepahe

import (
	"fmt"

	"github.com/anisan-cli/anisan-sources/dom"
	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// Scrape resolves a playable source for the selected episode.
//
// The listing is re-fetched, the target episode located, its play page
// scraped for the download and resolution menus, and the first download
// option handed to the kwik resolver. Failures on this path are hard errors;
// the returned resolution still carries a kind-matched placeholder so the
// host can display what was being resolved.
func (s *Scraper) Scrape(meta scraper.Metadata, selector scraper.EpisodeSelector) (scraper.Resolution, error) {
	entries, err := s.releaseListing(meta.ID)
	if err != nil {
		return scraper.TransportError(scraper.PlaceholderFor(meta, selector)), err
	}

	target, found := locate(entries, meta.Kind, selector)
	if !found {
		return scraper.NotFound(scraper.PlaceholderFor(meta, selector)),
			fmt.Errorf("%w: episode %d of %s", scraper.ErrEpisodeNotFound, selector.Number(), meta.Title)
	}

	page, err := s.requestHTML(s.cfg.playURL(meta.ID, target.Session))
	if err != nil {
		return scraper.TransportError(scraper.PlaceholderFor(meta, selector)), err
	}

	downloadLink, err := pickDownload(page)
	if err != nil {
		return scraper.NotFound(scraper.PlaceholderFor(meta, selector)), err
	}

	videoURL, err := s.resolver.Resolve(downloadLink)
	if err != nil {
		return scraper.NotFound(scraper.PlaceholderFor(meta, selector)),
			fmt.Errorf("%w: %s", scraper.ErrStreamExtraction, err)
	}

	if meta.Kind == scraper.Multi {
		title := fmt.Sprintf("%s - %s", meta.Title, episodeLabel(target, selector))
		return scraper.Found(scraper.NewMulti(videoURL, title, s.cfg.BaseURL, selector, scraper.SubtitleTracks{})), nil
	}
	return scraper.Found(scraper.NewSingle(videoURL, meta.Title, s.cfg.BaseURL, meta.Year)), nil
}

// locate picks the target release entry. Multi entries are matched by parsed
// episode number, first occurrence winning on upstream duplicates; Single
// entries unconditionally target the first listing element.
func locate(entries []releaseEntry, kind scraper.Kind, selector scraper.EpisodeSelector) (releaseEntry, bool) {
	if kind == scraper.Multi {
		want := selector.Number()
		for _, entry := range entries {
			if n, ok := entry.number(); ok && n == want {
				return entry, true
			}
		}
		return releaseEntry{}, false
	}

	if len(entries) == 0 {
		return releaseEntry{}, false
	}
	return entries[0], true
}

// pickDownload parses a play page and returns the href of the first download
// option. The resolution menu's first embed source is surfaced in the debug
// log only; the download path is what feeds the resolver.
func pickDownload(page string) (string, error) {
	doc, err := dom.Parse(page)
	if err != nil {
		return "", fmt.Errorf("parse play page: %w", err)
	}

	downloads, ok := doc.Find("div", map[string]string{"id": "pickDownload"})
	if !ok {
		return "", scraper.ErrNoDownloadOptions
	}

	anchors := downloads.FindAll("a")
	if len(anchors) == 0 {
		return "", scraper.ErrNoDownloadOptions
	}

	href, ok := anchors[0].Attr("href")
	if !ok || href == "" {
		return "", scraper.ErrNoDownloadOptions
	}

	if menu, ok := doc.Find("div", map[string]string{"id": "resolutionMenu"}); ok {
		if buttons := menu.FindAll("button"); len(buttons) > 0 {
			if src, ok := buttons[0].Attr("data-src"); ok {
				log.Debugf("animepahe: first embed source %s", src)
			}
		}
	}

	return href, nil
}

// episodeLabel prefers the upstream human-readable label, falling back to the
// selector when the label is empty.
func episodeLabel(entry releaseEntry, selector scraper.EpisodeSelector) string {
	if entry.Episode != "" {
		return entry.Episode
	}
	return fmt.Sprintf("Episode %d", selector.Number())
}
