package tokens

import (
	"testing"

	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

const jsonTokens = `{
  "palette": {
    "fg": "oklch(0.30 0.03 260)",
    "bg": "#f7f7f7",
    "accent": "#cba6f7"
  },
  "rules": [
    {"fg": "fg", "bg": "bg", "context": "body"},
    {"fg": "accent", "bg": "bg", "context": "large"}
  ]
}`

const tomlTokens = `[palette]
fg = "oklch(0.30 0.03 260)"
bg = "#f7f7f7"

[[rules]]
fg = "fg"
bg = "bg"
context = "body"
`

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Should load a JSON token file", func() {
			So(fs.WriteFile("/theme.json", []byte(jsonTokens), 0644), ShouldBeNil)

			doc, err := Load("/theme.json")
			So(err, ShouldBeNil)
			So(doc.Palette.Len(), ShouldEqual, 3)
			So(doc.Rules, ShouldHaveLength, 2)
			So(doc.Rules[0].Context, ShouldEqual, contrast.Body)
			So(doc.Rules[1].Context, ShouldEqual, contrast.Large)

			// Lexical role ordering keeps listing deterministic.
			So(doc.Palette.Roles(), ShouldResemble, []string{"accent", "bg", "fg"})
		})

		Convey("Should load a TOML token file", func() {
			So(fs.WriteFile("/theme.toml", []byte(tomlTokens), 0644), ShouldBeNil)

			doc, err := Load("/theme.toml")
			So(err, ShouldBeNil)
			So(doc.Palette.Len(), ShouldEqual, 2)
			So(doc.Rules, ShouldHaveLength, 1)
		})

		Convey("Should reject unsupported extensions", func() {
			So(fs.WriteFile("/theme.yaml", []byte("{}"), 0644), ShouldBeNil)

			_, err := Load("/theme.yaml")
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
		})

		Convey("Should fail on a missing file", func() {
			_, err := Load("/nope.json")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Should reject an empty palette", func() {
			_, err := Decode(&File{})
			So(err, ShouldHaveSameTypeAs, &contrast.ConfigError{})
		})

		Convey("Should name the role on a bad color literal", func() {
			_, err := Decode(&File{Palette: map[string]string{"fg": "not-a-color"}})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"fg"`)
		})

		Convey("Should reject an unknown rule context", func() {
			_, err := Decode(&File{
				Palette: map[string]string{"fg": "#000", "bg": "#fff"},
				Rules:   []FileRule{{FG: "fg", BG: "bg", Context: "huge"}},
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "huge")
		})

		Convey("An empty rule list is valid", func() {
			doc, err := Decode(&File{Palette: map[string]string{"bg": "#fff"}})
			So(err, ShouldBeNil)
			So(doc.Rules, ShouldBeEmpty)
		})
	})
}
