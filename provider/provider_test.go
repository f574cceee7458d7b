package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	Convey("Given URLs of different shapes", t, func() {
		cases := map[string]Provider{
			"https://youtu.be/abc123XYZ9":                    YouTube,
			"https://www.youtube.com/watch?v=abc123XYZ9":     YouTube,
			"https://m.YouTube.com/shorts/abc123XYZ9":        YouTube,
			"https://yewtu.be/watch?v=abc123XYZ9":            YouTube,
			"https://pixeldrain.com/u/AbCd1234":              Pixeldrain,
			"https://PIXELDRAIN.COM/api/file/AbCd1234":       Pixeldrain,
			"https://www.facebook.com/watch/?v=1":            Facebook,
			"https://fb.watch/xyz/":                          Facebook,
			"not a url":                                      Unknown,
			"https://example.com":                            Unknown,
			"":                                               Unknown,
			"://broken":                                      Unknown,
			"https://notyoutu.be/abc":                        Unknown,
		}

		for raw, want := range cases {
			So(Detect(raw), ShouldEqual, want)
		}
	})

	Convey("Provider shape variations classify the same", t, func() {
		So(Detect("https://youtu.be/abc123XYZ9"), ShouldEqual, Detect("https://www.youtube.com/watch?v=abc123XYZ9"))
	})
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting a provider by name", t, func() {
		p, ok := Get(" YouTube ")
		So(ok, ShouldBeTrue)
		So(p, ShouldEqual, YouTube)
		So(p.Known(), ShouldBeTrue)
		So(Unknown.Known(), ShouldBeFalse)
	})
}
