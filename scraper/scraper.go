// Package scraper defines the contract every source adapter implements and the
// request-scoped value types flowing between the host and an adapter.
package scraper

import (
	"errors"
	"iter"
)

// Scraper is the capability set of one source adapter: discover catalog
// entries, enumerate their episodes, and resolve a playable source.
//
// All operations are synchronous and single-request; any timeout or retry
// behavior belongs to the transport collaborator.
type Scraper interface {
	// Name returns the unique identifier for the adapter.
	Name() string

	// Search performs one upstream lookup and lazily yields matching catalog
	// entries in upstream order, truncated to limit when limit > 0.
	// It never fails: an empty query or any transport/parse failure is logged
	// and yields nothing.
	Search(query string, limit int) iter.Seq[Metadata]

	// ScrapeEpisodes fetches the episode listing for a previously discovered
	// entry. The result is never empty: when no episodes are discoverable it
	// degrades to the sentinel index instead.
	ScrapeEpisodes(meta Metadata) EpisodeIndex

	// Scrape resolves the playable source for the selected episode.
	//
	// Adapters disagree on how hard failures surface, and the difference is
	// part of the contract: the hianime adapter always returns a nil error
	// and reports degradation through the Resolution status (placeholder
	// media); the animepahe adapter returns domain errors such as
	// ErrEpisodeNotFound for its hard-failure paths.
	Scrape(meta Metadata, selector EpisodeSelector) (Resolution, error)
}

// Domain errors raised by adapters that treat resolution failures as hard errors.
var (
	ErrEpisodeNotFound   = errors.New("episode not found")
	ErrNoDownloadOptions = errors.New("no download options found")
	ErrStreamExtraction  = errors.New("stream extraction failed")
)
