package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Given an overridden config directory", t, func() {
		t.Setenv(EnvConfigPath, "/vidresolve-config")

		Convey("Config uses it and creates it", func() {
			So(Config(), ShouldEqual, "/vidresolve-config")
			So(lo.Must(filesystem.API().IsDir("/vidresolve-config")), ShouldBeTrue)
		})

		Convey("Logs live under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("/vidresolve-config", "logs"))
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})
	})

	Convey("Cache and Temp are app scoped directories", t, func() {
		for _, path := range []string{Cache(), Temp()} {
			So(filepath.Base(path), ShouldEqual, constant.App)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		}
	})
}
