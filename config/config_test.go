package config

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/filesystem"
	"github.com/vidresolve/vidresolve/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		t.Setenv("VIDRESOLVE_CONFIG_PATH", "/config")

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.YouTubeStrategy), ShouldEqual, StrategyDirect)
			So(viper.GetString(key.ProxyEndpoint), ShouldBeEmpty)
		})

		Convey("Should read values from vidresolve.toml", func() {
			So(filesystem.API().WriteFile("/config/vidresolve.toml", []byte("[proxy]\nendpoint = \"https://proxy.example.com/api/resolve\"\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ProxyEndpoint), ShouldEqual, "https://proxy.example.com/api/resolve")
			So(filesystem.API().Remove("/config/vidresolve.toml"), ShouldBeNil)
			viper.Set(key.ProxyEndpoint, "")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("server.youtube_api_key"), ShouldEqual, "server_youtube_api_key")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ServerYouTubeAPIKey]

		Convey("Env uses the application prefix", func() {
			So(field.Env(), ShouldEqual, "VIDRESOLVE_SERVER_YOUTUBE_API_KEY")
		})

		Convey("Pretty renders the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ServerYouTubeAPIKey)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		for name, field := range Default {
			viper.Set(name, field.Value)
		}

		Convey("It is valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("Every problem is reported", func() {
			viper.Set(key.YouTubeAPI, "not a url")
			viper.Set(key.YouTubeStrategy, "teleport")
			viper.Set(key.NetworkTimeout, 0)

			err := Validate()
			So(err, ShouldNotBeNil)

			merr, ok := err.(*multierror.Error)
			So(ok, ShouldBeTrue)
			So(merr.Errors, ShouldHaveLength, 3)
		})

		Convey("The proxy strategy needs an endpoint", func() {
			viper.Set(key.YouTubeStrategy, StrategyProxy)
			So(Validate(), ShouldNotBeNil)

			viper.Set(key.ProxyEndpoint, "https://proxy.example.com/api/resolve")
			So(Validate(), ShouldBeNil)
		})

		Reset(func() {
			for name, field := range Default {
				viper.Set(name, field.Value)
			}
		})
	})
}

func TestCoerce(t *testing.T) {
	Convey("Coerce converts raw values to the default's type", t, func() {
		Convey("Strings are taken as is", func() {
			v, err := Coerce(key.YouTubeStrategy, []string{"native"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "native")
		})

		Convey("Integers are parsed", func() {
			v, err := Coerce(key.NetworkTimeout, []string{"45"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 45)

			_, err = Coerce(key.NetworkTimeout, []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := Coerce(key.NetworkTLSFingerprint, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Lists keep every value", func() {
			v, err := Coerce(key.ExtractAllowedHosts, []string{"a.com", "b.com"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"a.com", "b.com"})
		})

		Convey("Unknown keys are rejected", func() {
			_, err := Coerce("youtube.apii", []string{"x"})
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
		})

		Convey("A missing value is rejected", func() {
			_, err := Coerce(key.YouTubeAPI, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAssign(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		for name, field := range Default {
			viper.Set(name, field.Value)
		}

		Convey("A valid change is kept", func() {
			So(Assign(map[string]any{key.YouTubeStrategy: StrategyNative}), ShouldBeNil)
			So(viper.GetString(key.YouTubeStrategy), ShouldEqual, StrategyNative)
		})

		Convey("An invalid change is rolled back", func() {
			So(Assign(map[string]any{key.YouTubeStrategy: StrategyProxy}), ShouldNotBeNil)
			So(viper.GetString(key.YouTubeStrategy), ShouldEqual, StrategyDirect)
		})

		Convey("Related keys can change together", func() {
			err := Assign(map[string]any{
				key.YouTubeStrategy: StrategyProxy,
				key.ProxyEndpoint:   "https://proxy.example.com/api/resolve",
			})
			So(err, ShouldBeNil)
		})

		Convey("A negative retention is rejected", func() {
			So(Assign(map[string]any{key.LogsRetentionDays: -1}), ShouldNotBeNil)
			So(viper.GetInt(key.LogsRetentionDays), ShouldEqual, 14)
		})

		Reset(func() {
			for name, field := range Default {
				viper.Set(name, field.Value)
			}
		})
	})
}

func TestPath(t *testing.T) {
	Convey("Path points at vidresolve.toml in the config directory", t, func() {
		t.Setenv("VIDRESOLVE_CONFIG_PATH", "/config")
		So(Path(), ShouldEqual, "/config/vidresolve.toml")
	})
}
