package config

import (
	"testing"

	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Thresholds should default to WCAG AA", func() {
			_ = Setup()
			So(viper.GetFloat64(key.ThresholdsBody), ShouldEqual, 4.5)
			So(viper.GetFloat64(key.ThresholdsLarge), ShouldEqual, 3.0)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("thresholds.body")
			So(result, ShouldEqual, "thresholds_body")
		})
	})
}
