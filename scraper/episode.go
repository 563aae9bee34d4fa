package scraper

import "golang.org/x/exp/slices"

// EpisodeSelector is the caller-supplied request for a specific episode.
// The zero value selects episode 1.
type EpisodeSelector struct {
	Episode int
}

// Number returns the requested episode number, defaulting to 1 when the
// selector is absent or zero.
func (s EpisodeSelector) Number() int {
	if s.Episode <= 0 {
		return 1
	}
	return s.Episode
}

// AbsentEpisode is the sentinel key marking an unknown episode count.
const AbsentEpisode = 0

// EpisodeIndex maps a logical episode number to its season/group number.
//
// Invariant: the index is never empty. When no episodes are discoverable it
// holds exactly the sentinel entry {AbsentEpisode: 1}.
type EpisodeIndex map[int]int

// SentinelEpisodes returns the "episode count unknown" fallback index.
func SentinelEpisodes() EpisodeIndex {
	return EpisodeIndex{AbsentEpisode: 1}
}

// Unknown reports whether the index carries only the sentinel entry.
func (i EpisodeIndex) Unknown() bool {
	_, ok := i[AbsentEpisode]
	return len(i) == 1 && ok
}

// Numbers returns the known episode numbers in ascending order,
// excluding the sentinel.
func (i EpisodeIndex) Numbers() []int {
	numbers := make([]int, 0, len(i))
	for n := range i {
		if n != AbsentEpisode {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)
	return numbers
}
