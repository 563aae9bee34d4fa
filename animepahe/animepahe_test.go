package animepahe

import (
	"errors"
	"strings"
	"testing"

	"github.com/anisan-cli/anisan-sources/scraper"
	. "github.com/smartystreets/goconvey/convey"
)

// getterFunc adapts a closure to the network.Getter interface.
type getterFunc func(url string, headers, params map[string]string) (string, error)

func (f getterFunc) Get(url string, headers, params map[string]string) (string, error) {
	return f(url, headers, params)
}

// resolverFunc adapts a closure to the kwik.Resolver interface.
type resolverFunc func(link string) (string, error)

func (f resolverFunc) Resolve(link string) (string, error) {
	return f(link)
}

func testConfig() Config {
	return Config{BaseURL: "https://pahe.test"}
}

func collect(seq func(yield func(scraper.Metadata) bool)) []scraper.Metadata {
	var out []scraper.Metadata
	seq(func(m scraper.Metadata) bool {
		out = append(out, m)
		return true
	})
	return out
}

const playPage = `
<html><body>
  <div id="resolutionMenu">
    <button data-src="https://kwik.si/e/embed1">720p</button>
  </div>
  <div id="pickDownload">
    <a href="https://pahe.win/dl1">SubsPlease &middot; 720p</a>
    <a href="https://pahe.win/dl2">SubsPlease &middot; 1080p</a>
  </div>
</body></html>`

func TestSearch(t *testing.T) {
	Convey("Given a search endpoint", t, func() {
		const body = `{"data":[
			{"session":"sess-1","title":"Frieren","episodes":28,"year":2023},
			{"session":"sess-2","title":"Akira","episodes":1,"year":1988}
		]}`

		s := New(testConfig(), getterFunc(func(url string, headers, params map[string]string) (string, error) {
			So(url, ShouldEqual, "https://pahe.test/api")
			So(headers["Referer"], ShouldEqual, "https://pahe.test")
			So(params["m"], ShouldEqual, "search")
			So(params["q"], ShouldEqual, "frieren")
			return body, nil
		}))

		Convey("Kind and year should be derived from the entry", func() {
			results := collect(s.Search("frieren", 0))
			So(results, ShouldHaveLength, 2)
			So(results[0].ID, ShouldEqual, "sess-1")
			So(results[0].Kind, ShouldEqual, scraper.Multi)
			So(results[1].Kind, ShouldEqual, scraper.Single)
			So(results[1].Year, ShouldEqual, "1988")
		})

		Convey("Limit should truncate in upstream order", func() {
			results := collect(s.Search("frieren", 1))
			So(results, ShouldHaveLength, 1)
			So(results[0].Title, ShouldEqual, "Frieren")
		})
	})

	Convey("An empty query should yield nothing without a request", t, func() {
		s := New(testConfig(), getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			t.Fatal("unexpected request")
			return "", nil
		}))
		So(collect(s.Search("", 0)), ShouldBeEmpty)
	})

	Convey("Lookup failures should yield an empty sequence", t, func() {
		s := New(testConfig(), getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return "", errors.New("ddos-guard challenge")
		}))
		So(collect(s.Search("frieren", 0)), ShouldBeEmpty)
	})
}

func TestScrapeEpisodes(t *testing.T) {
	frieren := scraper.Metadata{ID: "sess-1", Title: "Frieren", Kind: scraper.Multi}

	Convey("Parsable labels should map episode numbers to group 1", t, func() {
		s := New(testConfig(), getterFunc(func(_ string, _, params map[string]string) (string, error) {
			So(params["m"], ShouldEqual, "release")
			So(params["id"], ShouldEqual, "sess-1")
			So(params["sort"], ShouldEqual, "episode_asc")
			So(params["page"], ShouldEqual, "1")
			return `{"data":[
				{"session":"ep-1","episode":"Episode 1"},
				{"session":"ep-2","episode":"Episode 2"},
				{"session":"ep-x","episode":"Special"}
			]}`, nil
		}))

		So(s.ScrapeEpisodes(frieren), ShouldResemble, scraper.EpisodeIndex{1: 1, 2: 1})
	})

	Convey("An empty listing should degrade to the sentinel index", t, func() {
		s := New(testConfig(), getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return `{"data":[]}`, nil
		}))
		So(s.ScrapeEpisodes(frieren), ShouldResemble, scraper.SentinelEpisodes())
	})

	Convey("A fetch failure should degrade to the sentinel index", t, func() {
		s := New(testConfig(), getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return "", errors.New("timeout")
		}))
		So(s.ScrapeEpisodes(frieren), ShouldResemble, scraper.SentinelEpisodes())
	})
}

func TestScrape(t *testing.T) {
	frieren := scraper.Metadata{ID: "sess-1", Title: "Frieren", Kind: scraper.Multi}
	listing := `{"data":[
		{"session":"ep-1","episode":"Episode 1"},
		{"session":"ep-2","episode":"Episode 2"}
	]}`

	upstream := func(url string, _, params map[string]string) (string, error) {
		if params["m"] == "release" {
			return listing, nil
		}
		if strings.HasPrefix(url, "https://pahe.test/play/sess-1/") {
			return playPage, nil
		}
		return "", errors.New("unexpected url " + url)
	}

	Convey("Resolving an existing episode should return a full descriptor", t, func() {
		var resolved string
		s := New(testConfig(), getterFunc(upstream), WithResolver(resolverFunc(func(link string) (string, error) {
			resolved = link
			return "https://vault.kwik.si/stream.mp4", nil
		})))

		res, err := s.Scrape(frieren, scraper.EpisodeSelector{Episode: 2})
		So(err, ShouldBeNil)
		So(res.Status, ShouldEqual, scraper.StatusFound)
		So(resolved, ShouldEqual, "https://pahe.win/dl1")
		So(res.Media.URL, ShouldEqual, "https://vault.kwik.si/stream.mp4")
		So(res.Media.Title, ShouldEqual, "Frieren - Episode 2")
		So(res.Media.Referrer, ShouldEqual, "https://pahe.test")
		So(res.Media.Subtitles, ShouldResemble, scraper.SubtitleTracks{})
	})

	Convey("A missing episode should raise ErrEpisodeNotFound", t, func() {
		s := New(testConfig(), getterFunc(upstream))

		sel := scraper.EpisodeSelector{Episode: 99}
		res, err := s.Scrape(frieren, sel)
		So(errors.Is(err, scraper.ErrEpisodeNotFound), ShouldBeTrue)
		So(res.Status, ShouldEqual, scraper.StatusNotFound)
		So(res.Media.Placeholder(), ShouldBeTrue)
		So(res.Media.Title, ShouldEqual, "Frieren")
		So(res.Media.Episode, ShouldResemble, sel)
	})

	Convey("A play page without download options should raise ErrNoDownloadOptions", t, func() {
		s := New(testConfig(), getterFunc(func(url string, _, params map[string]string) (string, error) {
			if params["m"] == "release" {
				return listing, nil
			}
			return `<html><body><div id="pickDownload"></div></body></html>`, nil
		}))

		res, err := s.Scrape(frieren, scraper.EpisodeSelector{Episode: 1})
		So(errors.Is(err, scraper.ErrNoDownloadOptions), ShouldBeTrue)
		So(res.Media.Placeholder(), ShouldBeTrue)
	})

	Convey("A resolver failure should raise ErrStreamExtraction", t, func() {
		s := New(testConfig(), getterFunc(upstream), WithResolver(resolverFunc(func(string) (string, error) {
			return "", errors.New("obfuscation scheme changed")
		})))

		_, err := s.Scrape(frieren, scraper.EpisodeSelector{Episode: 1})
		So(errors.Is(err, scraper.ErrStreamExtraction), ShouldBeTrue)
	})

	Convey("Listing fetch failures should propagate", t, func() {
		s := New(testConfig(), getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return "", errors.New("connection reset")
		}))

		res, err := s.Scrape(frieren, scraper.EpisodeSelector{Episode: 1})
		So(err, ShouldNotBeNil)
		So(res.Status, ShouldEqual, scraper.StatusTransportError)
		So(res.Media.Placeholder(), ShouldBeTrue)
	})

	Convey("A Single entry should target the first listing element regardless of the selector", t, func() {
		akira := scraper.Metadata{ID: "sess-2", Title: "Akira", Kind: scraper.Single, Year: "1988"}

		s := New(testConfig(), getterFunc(func(url string, _, params map[string]string) (string, error) {
			if params["m"] == "release" {
				return `{"data":[{"session":"ep-only","episode":"Episode 1"}]}`, nil
			}
			So(url, ShouldEqual, "https://pahe.test/play/sess-2/ep-only")
			return playPage, nil
		}), WithResolver(resolverFunc(func(string) (string, error) {
			return "https://vault.kwik.si/movie.mp4", nil
		})))

		res, err := s.Scrape(akira, scraper.EpisodeSelector{Episode: 5})
		So(err, ShouldBeNil)
		So(res.Media.Kind, ShouldEqual, scraper.Single)
		So(res.Media.Title, ShouldEqual, "Akira")
		So(res.Media.Year, ShouldEqual, "1988")
	})
}
