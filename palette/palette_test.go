package palette

import (
	"testing"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func tokens(pairs ...string) *Palette {
	p := New()
	for i := 0; i < len(pairs); i += 2 {
		lo.Must0(p.Set(pairs[i], lo.Must(oklch.Parse(pairs[i+1]))))
	}
	return p
}

func TestPalette(t *testing.T) {
	Convey("Palette", t, func() {
		Convey("Should preserve insertion order", func() {
			p := tokens("fg", "#000000", "bg", "#ffffff", "accent", "#cba6f7")
			So(p.Roles(), ShouldResemble, []string{"fg", "bg", "accent"})
			So(p.Len(), ShouldEqual, 3)
		})

		Convey("Should reject duplicate roles", func() {
			p := tokens("fg", "#000000")
			err := p.Set("fg", lo.Must(oklch.Parse("#ffffff")))
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
			So(err.Error(), ShouldContainSubstring, "fg")

			// The original binding survives the failed insert.
			c, ok := p.Get("fg")
			So(ok, ShouldBeTrue)
			So(c.RGB.Hex(), ShouldEqual, "#000000")
		})

		Convey("Should reject empty role names", func() {
			err := New().Set("", lo.Must(oklch.Parse("#ffffff")))
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		policy := contrast.DefaultPolicy()
		p := tokens(
			"fg", "oklch(0.30 0.03 260)",
			"bg", "oklch(0.97 0 0)",
			"muted", "#999999",
		)

		Convey("Should evaluate rules in input order", func() {
			rules := []Rule{
				{FG: "muted", BG: "bg", Context: contrast.Body},
				{FG: "fg", BG: "bg", Context: contrast.Body},
				{FG: "fg", BG: "bg", Context: contrast.Large},
			}

			results, err := Validate(p, rules, policy)
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 3)
			So(results[0].Rule.FG, ShouldEqual, "muted")
			So(results[1].Rule.FG, ShouldEqual, "fg")
			So(results[2].Context, ShouldEqual, contrast.Large)

			// #999999 on a near-white background does not reach 4.5.
			So(results[0].Pass, ShouldBeFalse)
			So(results[1].Pass, ShouldBeTrue)
			So(results[2].Pass, ShouldBeTrue)
		})

		Convey("Empty rule set should return an empty result and no error", func() {
			results, err := Validate(p, nil, policy)
			So(err, ShouldBeNil)
			So(results, ShouldNotBeNil)
			So(results, ShouldBeEmpty)
		})

		Convey("A missing role should fail the whole run naming the role", func() {
			rules := []Rule{
				{FG: "fg", BG: "bg", Context: contrast.Body},
				{FG: "accent", BG: "bg", Context: contrast.Large},
			}

			results, err := Validate(p, rules, policy)
			So(results, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
			So(err.Error(), ShouldContainSubstring, "accent")
		})

		Convey("A missing role error should suggest the closest registered role", func() {
			_, err := Validate(p, []Rule{{FG: "mutd", BG: "bg", Context: contrast.Body}}, policy)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "muted"`)
		})

		Convey("An invalid policy should abort before any evaluation", func() {
			_, err := Validate(p, nil, contrast.Policy{Body: -4.5, Large: 3})
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
		})
	})
}
