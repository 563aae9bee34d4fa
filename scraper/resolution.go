package scraper

// Status tags the outcome of a Scrape call.
type Status uint8

const (
	// StatusFound marks a fully resolved descriptor.
	StatusFound Status = iota
	// StatusNotFound marks a recoverable "nothing resolved" outcome: the
	// entry or episode was absent from an otherwise valid response.
	StatusNotFound
	// StatusTransportError marks an upstream fetch or decode failure.
	StatusTransportError
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusTransportError:
		return "transport error"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of a Scrape call: the outcome status plus
// the descriptor, which is a placeholder for every status except StatusFound.
type Resolution struct {
	Status Status
	Media  Media
}

// Found wraps a resolved descriptor.
func Found(m Media) Resolution {
	return Resolution{Status: StatusFound, Media: m}
}

// NotFound wraps a placeholder descriptor for an absent entry or episode.
func NotFound(m Media) Resolution {
	return Resolution{Status: StatusNotFound, Media: m}
}

// TransportError wraps a placeholder descriptor for an upstream failure.
func TransportError(m Media) Resolution {
	return Resolution{Status: StatusTransportError, Media: m}
}
