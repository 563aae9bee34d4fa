// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Scraper Selection - these keys manage which registered adapter serves a request.
const (
	DefaultScraper = "scrapers.default"
)

// Search Interaction - these keys define search discovery behavior.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// HiAnime Adapter - upstream endpoints for the JSON-API catalog.
const (
	HiAnimeBaseURL  = "hianime.base_url"
	HiAnimeReferrer = "hianime.referrer"
)

// AnimePahe Adapter - upstream endpoints for the HTML-scraping catalog.
const (
	AnimePaheBaseURL = "animepahe.base_url"
)

// Network Transport - these keys tune the outbound HTTP clients.
const (
	NetworkBrowserTLS = "network.browser_tls"
)

// Diagnostics - these keys configure the persistent logging sink.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Presentation.
const (
	CliColored = "cli.colored"
)
