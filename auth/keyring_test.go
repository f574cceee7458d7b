package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestAPIKey(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		_ = DeleteAPIKey()

		Convey("Nothing is found", func() {
			_, err := GetAPIKey()
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(ResolveAPIKey(""), ShouldBeEmpty)
		})

		Convey("Empty keys are rejected", func() {
			So(SetAPIKey("  "), ShouldNotBeNil)
		})

		Convey("When a key is stored", func() {
			So(SetAPIKey("secret"), ShouldBeNil)

			Convey("It can be read back", func() {
				got, err := GetAPIKey()
				So(err, ShouldBeNil)
				So(got, ShouldEqual, "secret")
			})

			Convey("A configured key takes precedence", func() {
				So(ResolveAPIKey("configured"), ShouldEqual, "configured")
				So(ResolveAPIKey(""), ShouldEqual, "secret")
			})

			Convey("It can be deleted", func() {
				So(DeleteAPIKey(), ShouldBeNil)
				So(ResolveAPIKey(""), ShouldBeEmpty)
			})
		})
	})
}
