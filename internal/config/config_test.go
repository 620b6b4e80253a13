package config_test

import (
	"errors"
	"testing"

	"github.com/okian/judgeboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.DatasetPath, convey.ShouldBeEmpty)
			convey.So(cfg.Locale, convey.ShouldEqual, "en-US")
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			convey.So(cfg.CriteriaWeights, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Location(t *testing.T) {
	convey.Convey("Given timezone settings", t, func() {
		cfg := config.New()

		convey.Convey("When the zone is UTC", func() {
			cfg.Timezone = "UTC"
			loc, err := cfg.Location()

			convey.Convey("Then it resolves", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(loc.String(), convey.ShouldEqual, "UTC")
			})
		})

		convey.Convey("When the zone is unknown", func() {
			cfg.Timezone = "Mars/Olympus_Mons"

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a weight is negative", func() {
			cfg.CriteriaWeights = map[string]float64{"innovation_creativity": -1}

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
