package scraper

// SubtitleTracks maps a human-readable label to a caption file URL.
type SubtitleTracks map[string]string

// Media is the resolution result: a playable source descriptor.
//
// A placeholder variant (URL == "") is a valid terminal value signaling
// unresolved content to the host, distinct from an error.
type Media struct {
	// URL is the direct media URL, or "" for a placeholder.
	URL string
	// Title is the display title, optionally suffixed with an episode label.
	Title string
	// Referrer is the site-origin string downstream players must send to
	// satisfy hotlink protection.
	Referrer string
	// Kind matches the catalog entry the descriptor was resolved from.
	Kind Kind
	// Episode is the selector the descriptor answers; meaningful for Multi.
	Episode EpisodeSelector
	// Year of release; carried for Single only.
	Year string
	// Subtitles are attached for Multi only and may be empty.
	Subtitles SubtitleTracks
}

// NewSingle builds a standalone source descriptor.
func NewSingle(url, title, referrer, year string) Media {
	return Media{
		URL:      url,
		Title:    title,
		Referrer: referrer,
		Kind:     Single,
		Year:     year,
	}
}

// NewMulti builds a series-episode source descriptor.
func NewMulti(url, title, referrer string, selector EpisodeSelector, subtitles SubtitleTracks) Media {
	return Media{
		URL:       url,
		Title:     title,
		Referrer:  referrer,
		Kind:      Multi,
		Episode:   selector,
		Subtitles: subtitles,
	}
}

// PlaceholderFor builds the kind-matched empty-URL descriptor for an entry,
// carrying the title and selector through unchanged.
func PlaceholderFor(meta Metadata, selector EpisodeSelector) Media {
	if meta.Kind == Multi {
		return Media{Title: meta.Title, Kind: Multi, Episode: selector}
	}
	return Media{Title: meta.Title, Kind: Single, Year: meta.Year}
}

// Placeholder reports whether the descriptor signals unresolved content.
func (m Media) Placeholder() bool {
	return m.URL == ""
}
