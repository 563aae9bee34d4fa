package config

import (
	"testing"

	"github.com/anisan-cli/anisan-sources/filesystem"
	"github.com/anisan-cli/anisan-sources/key"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestConfig(t *testing.T) {
	Convey("Given the registered defaults", t, func() {
		Convey("Every adapter endpoint should have a default", func() {
			So(Default, ShouldContainKey, key.HiAnimeBaseURL)
			So(Default, ShouldContainKey, key.HiAnimeReferrer)
			So(Default, ShouldContainKey, key.AnimePaheBaseURL)
		})

		Convey("Env names should carry the application prefix", func() {
			f := Default[key.LogsLevel]
			So(f.Env(), ShouldEqual, "ANISAN_SOURCES_LOGS_LEVEL")
		})

		Convey("Setup should succeed without a config file present", func() {
			So(Setup(), ShouldBeNil)
		})
	})
}
