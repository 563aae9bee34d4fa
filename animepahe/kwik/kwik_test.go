package kwik

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type getterFunc func(url string, headers, params map[string]string) (string, error)

func (f getterFunc) Get(url string, headers, params map[string]string) (string, error) {
	return f(url, headers, params)
}

func TestLinkScanner(t *testing.T) {
	Convey("Given a download page with an embedded kwik link", t, func() {
		scanner := NewLinkScanner(getterFunc(func(url string, headers, _ map[string]string) (string, error) {
			So(url, ShouldEqual, "https://pahe.win/dl1")
			So(headers["Referer"], ShouldEqual, "https://pahe.test")
			return `<html><head><script>window.open("https://kwik.si/f/Ab3dE9", "_self");</script></head></html>`, nil
		}), "https://pahe.test")

		link, err := scanner.Resolve("https://pahe.win/dl1")
		So(err, ShouldBeNil)
		So(link, ShouldEqual, "https://kwik.si/f/Ab3dE9")
	})

	Convey("A page without a kwik link should report ErrNoLink", t, func() {
		scanner := NewLinkScanner(getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return `<html><head><script>redirect();</script></head></html>`, nil
		}), "https://pahe.test")

		_, err := scanner.Resolve("https://pahe.win/dl1")
		So(errors.Is(err, ErrNoLink), ShouldBeTrue)
	})

	Convey("A page without scripts should report ErrNoLink", t, func() {
		scanner := NewLinkScanner(getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return `<html><body>nothing here</body></html>`, nil
		}), "https://pahe.test")

		_, err := scanner.Resolve("https://pahe.win/dl1")
		So(errors.Is(err, ErrNoLink), ShouldBeTrue)
	})

	Convey("Transport failures should propagate", t, func() {
		scanner := NewLinkScanner(getterFunc(func(string, map[string]string, map[string]string) (string, error) {
			return "", errors.New("forbidden")
		}), "https://pahe.test")

		_, err := scanner.Resolve("https://pahe.win/dl1")
		So(err, ShouldNotBeNil)
	})
}
