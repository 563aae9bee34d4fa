package dom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const page = `
<html><body>
  <div id="pickDownload">
    <a href="https://pahe.win/abc">SubsPlease &middot; 720p</a>
    <a href="https://pahe.win/def">SubsPlease &middot; 1080p</a>
  </div>
  <div id="resolutionMenu">
    <button data-src="https://kwik.si/e/xyz">720p</button>
  </div>
</body></html>`

func TestDom(t *testing.T) {
	Convey("Given a parsed document", t, func() {
		doc, err := Parse(page)
		So(err, ShouldBeNil)

		Convey("Find by tag and attribute should return the matching element", func() {
			div, ok := doc.Find("div", map[string]string{"id": "pickDownload"})
			So(ok, ShouldBeTrue)

			Convey("FindAll should list children in document order", func() {
				anchors := div.FindAll("a")
				So(anchors, ShouldHaveLength, 2)

				href, ok := anchors[0].Attr("href")
				So(ok, ShouldBeTrue)
				So(href, ShouldEqual, "https://pahe.win/abc")
			})
		})

		Convey("Attr should report absent attributes", func() {
			menu, ok := doc.Find("div", map[string]string{"id": "resolutionMenu"})
			So(ok, ShouldBeTrue)

			buttons := menu.FindAll("button")
			So(buttons, ShouldHaveLength, 1)

			_, ok = buttons[0].Attr("href")
			So(ok, ShouldBeFalse)

			src, ok := buttons[0].Attr("data-src")
			So(ok, ShouldBeTrue)
			So(src, ShouldEqual, "https://kwik.si/e/xyz")
		})

		Convey("Find should report false for absent elements", func() {
			_, ok := doc.Find("div", map[string]string{"id": "nope"})
			So(ok, ShouldBeFalse)
		})
	})
}
