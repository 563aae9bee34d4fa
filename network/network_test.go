package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given an upstream server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/echo":
				w.Write([]byte(r.URL.Query().Get("q") + "|" + r.Header.Get("Referer")))
			case "/missing":
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		c := New()

		Convey("Query parameters and headers should reach the server", func() {
			body, err := c.Get(srv.URL+"/echo",
				map[string]string{"Referer": "https://animepahe.ru"},
				map[string]string{"q": "naruto"},
			)
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "naruto|https://animepahe.ru")
		})

		Convey("Non-2xx statuses should surface as transport errors", func() {
			_, err := c.Get(srv.URL+"/missing", nil, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
