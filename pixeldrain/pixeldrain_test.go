package pixeldrain

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidresolve/vidresolve/source"
)

func TestFileID(t *testing.T) {
	Convey("Given the accepted URL shapes", t, func() {
		for _, raw := range []string{
			"https://pixeldrain.com/u/AbCd1234",
			"https://pixeldrain.com/api/file/AbCd1234",
			"https://pixeldrain.com/file/AbCd1234",
			"https://pixeldrain.com/api/file/AbCd1234/info",
		} {
			id, ok := FileID(raw)
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "AbCd1234")
		}
	})

	Convey("Given shapes without an identifier", t, func() {
		for _, raw := range []string{
			"https://pixeldrain.com/l/AbCd1234",
			"https://pixeldrain.com/",
			"://broken",
		} {
			_, ok := FileID(raw)
			So(ok, ShouldBeFalse)
		}
	})
}

func TestResolve(t *testing.T) {
	const want = "https://pixeldrain.com/api/file/AbCd1234/download"
	shapes := []string{
		"https://pixeldrain.com/u/AbCd1234",
		"https://pixeldrain.com/api/file/AbCd1234",
		"https://pixeldrain.com/file/AbCd1234",
	}

	Convey("Given a failing metadata endpoint", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		r := New(WithAPI(srv.URL), WithClient(srv.Client()))

		Convey("Every shape still yields the canonical download URL", func() {
			for _, raw := range shapes {
				file := r.Resolve(context.Background(), raw)
				So(file.DownloadURL, ShouldEqual, want)
				So(file.Name.IsAbsent(), ShouldBeTrue)
				So(file.Size.IsAbsent(), ShouldBeTrue)
			}
			So(atomic.LoadInt32(&calls), ShouldEqual, int32(3))
		})
	})

	Convey("Given an unreachable metadata endpoint", t, func() {
		r := New(WithAPI("http://127.0.0.1:1"))
		file := r.Resolve(context.Background(), shapes[0])
		So(file.DownloadURL, ShouldEqual, want)
		So(file.Name.IsAbsent(), ShouldBeTrue)
	})

	Convey("Given a working metadata endpoint", t, func() {
		var path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"AbCd1234","name":"movie.mkv","size":1048576,"views":3}`))
		}))
		defer srv.Close()

		file := New(WithAPI(srv.URL+"/")).Resolve(context.Background(), shapes[0])

		Convey("Name and size are populated", func() {
			So(path, ShouldEqual, "/file/AbCd1234/info")
			So(file.Name.MustGet(), ShouldEqual, "movie.mkv")
			So(file.Size.MustGet(), ShouldEqual, int64(1048576))
			So(file.DownloadURL, ShouldEqual, want)
		})
	})

	Convey("Given metadata with missing fields", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":""}`))
		}))
		defer srv.Close()

		file := New(WithAPI(srv.URL)).Resolve(context.Background(), shapes[1])
		So(file.Name.IsAbsent(), ShouldBeTrue)
		So(file.Size.IsAbsent(), ShouldBeTrue)
		So(file.DownloadURL, ShouldEqual, want)
	})

	Convey("Given a URL without an identifier", t, func() {
		raw := "https://pixeldrain.com/l/list01"
		file := New(WithAPI("http://127.0.0.1:1")).Resolve(context.Background(), raw)

		Convey("The original URL becomes the download target", func() {
			So(file.DownloadURL, ShouldEqual, raw)
		})
	})
}

func TestResolveURL(t *testing.T) {
	Convey("Given input that is not an absolute URL", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		r := New(WithAPI(srv.URL))

		Convey("It is rejected and never becomes a download URL", func() {
			for _, raw := range []string{"garbage", "/u", "/u/AbCd1234", "pixeldrain.com/u/AbCd1234", ""} {
				file, err := r.ResolveURL(context.Background(), raw)
				So(errors.Is(err, source.ErrInvalidInput), ShouldBeTrue)
				So(file, ShouldBeNil)
			}
			So(atomic.LoadInt32(&calls), ShouldEqual, int32(0))
		})
	})

	Convey("Given an absolute URL", t, func() {
		file, err := New(WithAPI("http://127.0.0.1:1")).ResolveURL(context.Background(), " https://pixeldrain.com/u/AbCd1234 ")

		Convey("It resolves like Resolve", func() {
			So(err, ShouldBeNil)
			So(file.DownloadURL, ShouldEqual, DownloadURL("AbCd1234"))
			So(source.IsAbsoluteURL(file.DownloadURL), ShouldBeTrue)
		})
	})
}
