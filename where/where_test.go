package where

import (
	"os"
	"strings"
	"testing"

	"github.com/anisan-cli/anisan-sources/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestWhere(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		Convey("Config should resolve to the override", func() {
			So(Config(), ShouldEqual, "/custom/config")
		})

		Convey("Logs should nest under the override", func() {
			So(Logs(), ShouldEqual, "/custom/config/logs")
		})
	})

	Convey("Queries should point at a json file inside the cache directory", t, func() {
		So(strings.HasSuffix(Queries(), "queries.json"), ShouldBeTrue)
		So(strings.HasPrefix(Queries(), Cache()), ShouldBeTrue)
	})
}
