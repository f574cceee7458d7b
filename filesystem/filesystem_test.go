package filesystem

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadInput(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/payload.json", []byte(`{"a":1}`), 0o644), ShouldBeNil)

		Convey("A path reads from the backend", func() {
			data, err := ReadInput("/payload.json", nil)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"a":1}`)
		})

		Convey("A dash reads from the provided stdin", func() {
			data, err := ReadInput("-", strings.NewReader(`[1,2]`))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `[1,2]`)
		})

		Convey("A missing file is an error", func() {
			_, err := ReadInput("/missing.json", nil)
			So(err, ShouldNotBeNil)
		})
	})
}
