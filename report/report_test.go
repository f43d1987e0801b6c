package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/oklint-cli/oklint/palette"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func fixture() (*palette.Palette, []palette.Result) {
	p := palette.New()
	lo.Must0(p.Set("fg", lo.Must(oklch.Parse("#1a1a2e"))))
	lo.Must0(p.Set("bg", lo.Must(oklch.Parse("#f7f7f7"))))
	lo.Must0(p.Set("muted", lo.Must(oklch.Parse("#999999"))))
	lo.Must0(p.Set("loud", lo.Must(oklch.Parse("oklch(0.6 0.4 140)"))))

	rules := []palette.Rule{
		{FG: "fg", BG: "bg", Context: contrast.Body},
		{FG: "muted", BG: "bg", Context: contrast.Body},
	}
	results := lo.Must(palette.Validate(p, rules, contrast.DefaultPolicy()))
	return p, results
}

func TestReport(t *testing.T) {
	Convey("Report", t, func() {
		p, results := fixture()
		r := New("theme.json", p, results)

		Convey("Should count passes and failures", func() {
			So(r.Passed, ShouldEqual, 1)
			So(r.Failed, ShouldEqual, 1)
			So(r.AllPass(), ShouldBeFalse)
		})

		Convey("Should preserve rule order", func() {
			So(r.Records[0].FG, ShouldEqual, "fg")
			So(r.Records[1].FG, ShouldEqual, "muted")
		})

		Convey("Should collect gamut warnings", func() {
			So(r.GamutWarnings, ShouldHaveLength, 1)
			So(r.GamutWarnings[0].Role, ShouldEqual, "loud")
		})

		Convey("Exit code should follow the convention", func() {
			So(r.ExitCode(), ShouldEqual, ExitViolations)

			clean := New("", p, results[:1])
			So(clean.ExitCode(), ShouldEqual, ExitOK)
		})

		Convey("JSON output should round-trip", func() {
			var buf bytes.Buffer
			So(r.JSON(&buf), ShouldBeNil)

			var decoded Report
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Records, ShouldHaveLength, 2)
			So(decoded.Records[0].Pass, ShouldBeTrue)
			So(decoded.Source, ShouldEqual, "theme.json")
		})

		Convey("Text output should mention every pair and a summary", func() {
			var buf bytes.Buffer
			So(r.Text(&buf), ShouldBeNil)

			out := buf.String()
			So(out, ShouldContainSubstring, "fg")
			So(out, ShouldContainSubstring, "muted")
			So(out, ShouldContainSubstring, "failed")
			So(strings.Count(out, "\n"), ShouldBeGreaterThanOrEqualTo, 3)
		})
	})
}
