package format

import (
	"math"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimestamp(t *testing.T) {
	Convey("Given a formatter in UTC", t, func() {
		Convey("When the locale is en-US", func() {
			f := New(WithLocale("en-US"), WithLocation(time.UTC))

			Convey("Then timestamps use the US layout", func() {
				So(f.Timestamp(1745052000.5), ShouldEqual, "4/19/2025, 8:40:00 AM")
				So(f.Timestamp(0), ShouldEqual, "1/1/1970, 12:00:00 AM")
				So(f.Locale(), ShouldEqual, "en-US")
			})
		})

		Convey("When the locale is German", func() {
			f := New(WithLocale("de-DE"), WithLocation(time.UTC))

			Convey("Then the day comes first", func() {
				So(f.Timestamp(1745052000), ShouldEqual, "19.4.2025, 08:40:00")
			})
		})

		Convey("When the locale is unknown or malformed", func() {
			f := New(WithLocale("!!"), WithLocation(time.UTC))

			Convey("Then the default layout is kept", func() {
				So(f.Timestamp(0), ShouldEqual, "1/1/1970, 12:00:00 AM")
			})
		})

		Convey("When the timestamp is not finite", func() {
			f := New(WithLocation(time.UTC))

			Convey("Then it is reported as invalid", func() {
				So(f.Timestamp(math.NaN()), ShouldEqual, "Invalid Date")
				So(f.Timestamp(math.Inf(1)), ShouldEqual, "Invalid Date")
			})
		})

		Convey("When a different zone is set", func() {
			loc := time.FixedZone("X", 2*60*60)
			f := New(WithLocale("en-US"), WithLocation(loc))

			Convey("Then the wall clock shifts", func() {
				So(f.Timestamp(0), ShouldEqual, "1/1/1970, 2:00:00 AM")
			})
		})
	})
}

func TestNumbers(t *testing.T) {
	Convey("Given an en-US formatter", t, func() {
		f := New(WithLocale("en-US"))

		Convey("Then decimals show one place", func() {
			So(f.Decimal(7.8), ShouldEqual, "7.8")
			So(f.Decimal(8), ShouldEqual, "8.0")
			So(f.Seconds(31.44), ShouldEqual, "31.4s")
		})

		Convey("Then integers are grouped", func() {
			So(f.Integer(12), ShouldEqual, "12")
			So(f.Integer(1200), ShouldEqual, "1,200")
		})
	})
}

func TestModelName(t *testing.T) {
	Convey("Given model identifiers", t, func() {
		Convey("Then only the first two segments are kept", func() {
			So(ModelName("gemini-2.5-flash-preview-04-17"), ShouldEqual, "gemini-2.5")
			So(ModelName("gemini-1.5-pro"), ShouldEqual, "gemini-1.5")
		})

		Convey("Then short names are unchanged", func() {
			So(ModelName("gemini-pro"), ShouldEqual, "gemini-pro")
			So(ModelName("gpt"), ShouldEqual, "gpt")
			So(ModelName(""), ShouldEqual, "")
		})
	})
}

func TestLabels(t *testing.T) {
	Convey("Given labels with an override", t, func() {
		l := NewLabels(map[string]string{"impact_scalability": "Impact", "empty": " "}, nil)

		Convey("Then known keys use the defaults", func() {
			So(l.Criterion("innovation_creativity"), ShouldEqual, "Innovation & Creativity")
			So(l.Overall("consistency_score"), ShouldEqual, "Consistency Score")
		})

		Convey("Then overrides win", func() {
			So(l.Criterion("impact_scalability"), ShouldEqual, "Impact")
		})

		Convey("Then unknown keys are title-cased", func() {
			So(l.Criterion("team_spirit"), ShouldEqual, "Team Spirit")
			So(l.Criterion("empty"), ShouldEqual, "Empty")
			So(l.Overall("market-fit_score"), ShouldEqual, "Market Fit Score")
		})
	})
}

func TestFold(t *testing.T) {
	Convey("Given team names", t, func() {
		Convey("Then matching ignores case", func() {
			So(ContainsFold("Bazaar Bataye", "bazaar"), ShouldBeTrue)
			So(ContainsFold("Bazaar Bataye", "BATAYE"), ShouldBeTrue)
			So(ContainsFold("Bazaar Bataye", "zz-no-match"), ShouldBeFalse)
		})

		Convey("Then Unicode folding applies", func() {
			So(ContainsFold("Ｔｅａｍ Ｏｎｅ", "team"), ShouldBeTrue)
		})

		Convey("Then an empty needle matches", func() {
			So(ContainsFold("anything", ""), ShouldBeTrue)
		})
	})
}
