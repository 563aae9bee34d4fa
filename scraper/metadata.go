package scraper

// Kind classifies a catalog entry by its episode-count signal at search time.
type Kind uint8

const (
	// Single is a standalone item (movie, special, one-episode entry).
	Single Kind = iota + 1
	// Multi is a series with more than one episode.
	Multi
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// KindOf derives the entry kind from an upstream episode count.
func KindOf(episodes int) Kind {
	if episodes > 1 {
		return Multi
	}
	return Single
}

// Metadata is a catalog entry discovered through an adapter search.
// ID is an opaque upstream-assigned token (session id or slug) and must be
// passed back to the same adapter unmodified. The value is immutable once
// constructed.
type Metadata struct {
	ID    string
	Title string
	Kind  Kind
	Year  string
}

func (m Metadata) String() string {
	return m.Title
}
