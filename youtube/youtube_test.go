package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kkdai/youtube/v2"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidresolve/vidresolve/source"
)

func TestVideoID(t *testing.T) {
	Convey("Given supported URL shapes", t, func() {
		cases := map[string]string{
			"https://youtu.be/abc123XYZ9":                   "abc123XYZ9",
			"https://youtu.be/abc123XYZ9?t=42":              "abc123XYZ9",
			"https://www.youtube.com/watch?v=abc123XYZ9":    "abc123XYZ9",
			"https://m.youtube.com/watch?feature=x&v=a_b-c": "a_b-c",
			"https://youtube.com/shorts/abc123XYZ9":         "abc123XYZ9",
			"https://youtube.com/shorts/abc123XYZ9/":        "abc123XYZ9",
			"https://www.youtube.com/embed/abc123XYZ9":      "abc123XYZ9",
			"https://www.youtube.com/live/abc123XYZ9":       "abc123XYZ9",
			"https://www.youtube.com/v/abc123XYZ9":          "abc123XYZ9",
			"https://yewtu.be/watch?v=abc123XYZ9":           "abc123XYZ9",
		}

		for raw, want := range cases {
			id, err := VideoID(raw)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, want)
		}
	})

	Convey("Given URLs without an id", t, func() {
		for _, raw := range []string{
			"https://youtube.com/watch",
			"https://youtube.com/shorts/",
			"https://youtu.be/",
			"https://youtube.com/watch?v=<script>",
			"://broken",
		} {
			_, err := VideoID(raw)
			So(errors.Is(err, source.ErrInvalidInput), ShouldBeTrue)
		}
	})
}

func TestResolve(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		var calls int32
		var path string
		status := http.StatusOK
		body := `{
			"title": "x",
			"videoStreams": [
				{"url": "https://r1.googlevideo.com/v1", "quality": "1080p", "mimeType": "video/mp4", "contentLength": 1048576},
				{"url": "https://r1.googlevideo.com/v2", "qualityLabel": "720p", "type": "video/webm", "size": "2048"},
				{"quality": "480p"},
				{"url": "https://r1.googlevideo.com/v1", "quality": "dup"}
			],
			"audioStreams": [
				{"url": "https://r1.googlevideo.com/a1", "quality": "128 kbps", "mimeType": "audio/mp4"}
			]
		}`

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			path = r.URL.Path
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		defer srv.Close()

		r := New(WithAPI(srv.URL+"/"), WithClient(srv.Client()))

		Convey("Streams are normalized in order with audio tagged", func() {
			streams, err := r.Resolve(context.Background(), "https://youtu.be/abc123XYZ9")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/streams/abc123XYZ9")
			So(streams, ShouldHaveLength, 3)

			So(streams[0].URL, ShouldEqual, "https://r1.googlevideo.com/v1")
			So(streams[0].Quality, ShouldEqual, "1080p")
			So(streams[0].Mime, ShouldEqual, "video/mp4")
			So(streams[0].Size, ShouldEqual, "1048576")
			So(streams[0].AudioOnly, ShouldBeFalse)

			So(streams[1].Quality, ShouldEqual, "720p")
			So(streams[1].Mime, ShouldEqual, "video/webm")
			So(streams[1].Size, ShouldEqual, "2048")

			So(streams[2].URL, ShouldEqual, "https://r1.googlevideo.com/a1")
			So(streams[2].AudioOnly, ShouldBeTrue)
		})

		Convey("A missing id fails before any network call", func() {
			_, err := r.Resolve(context.Background(), "https://youtube.com/watch")
			So(errors.Is(err, source.ErrInvalidInput), ShouldBeTrue)
			So(atomic.LoadInt32(&calls), ShouldEqual, int32(0))
		})

		Convey("A non-success response fails as upstream unavailable", func() {
			status = http.StatusBadGateway
			body = `{"error":"down"}`

			_, err := r.Resolve(context.Background(), "https://youtu.be/abc123XYZ9")
			So(errors.Is(err, source.ErrUpstreamUnavailable), ShouldBeTrue)

			var upstream *source.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.StatusCode, ShouldEqual, http.StatusBadGateway)
		})

		Convey("A malformed success body degrades to no streams", func() {
			body = `<html>`

			streams, err := r.Resolve(context.Background(), "https://youtu.be/abc123XYZ9")
			So(err, ShouldBeNil)
			So(streams, ShouldBeEmpty)
		})
	})

	Convey("Given an unreachable aggregator", t, func() {
		_, err := New(WithAPI("http://127.0.0.1:1")).Resolve(context.Background(), "https://youtu.be/abc123XYZ9")
		So(errors.Is(err, source.ErrUpstreamUnavailable), ShouldBeTrue)
	})
}

func TestNative(t *testing.T) {
	Convey("Native satisfies StreamResolver", t, func() {
		var r source.StreamResolver = NewNative(nil)
		So(r, ShouldNotBeNil)
	})

	Convey("A missing id fails before any network call", t, func() {
		_, err := NewNative(nil).Resolve(context.Background(), "https://youtube.com/watch")
		So(errors.Is(err, source.ErrInvalidInput), ShouldBeTrue)
	})

	Convey("Formats are mapped onto streams", t, func() {
		video := fromFormat(&youtube.Format{
			MimeType:      `video/mp4; codecs="avc1"`,
			Quality:       "hd720",
			QualityLabel:  "720p",
			ContentLength: 4096,
		}, "https://r1.googlevideo.com/v")
		So(video.Quality, ShouldEqual, "720p")
		So(video.Size, ShouldEqual, "4096")
		So(video.AudioOnly, ShouldBeFalse)

		audio := fromFormat(&youtube.Format{
			MimeType: `audio/webm; codecs="opus"`,
			Quality:  "tiny",
		}, "https://r1.googlevideo.com/a")
		So(audio.Quality, ShouldEqual, "tiny")
		So(audio.Size, ShouldBeEmpty)
		So(audio.AudioOnly, ShouldBeTrue)
	})
}
