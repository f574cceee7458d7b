package network

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidresolve/vidresolve/constant"
)

func TestDo(t *testing.T) {
	Convey("Given an upstream server", t, func() {
		var gotAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			if r.URL.Path == "/missing" {
				http.Error(w, "nope", http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		}))
		defer srv.Close()

		client := New(5 * time.Second)

		Convey("Default headers are applied and the body is returned", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/ok", nil)
			status, body, err := Do(client, req)
			So(err, ShouldBeNil)
			So(status, ShouldEqual, http.StatusOK)
			So(body, ShouldHaveLength, 64)
			So(gotAgent, ShouldEqual, constant.UserAgent)
		})

		Convey("A non-2xx status is returned without error", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/missing", nil)
			status, body, err := Do(client, req)
			So(err, ShouldBeNil)
			So(OK(status), ShouldBeFalse)
			So(string(body), ShouldContainSubstring, "nope")
		})

		Convey("A transport failure is an error", func() {
			req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/", nil)
			_, _, err := Do(client, req)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Plain http requests bypass the TLS fingerprint", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
		status, body, err := Do(NewFingerprint(5*time.Second), req)
		So(err, ShouldBeNil)
		So(status, ShouldEqual, http.StatusOK)
		So(string(body), ShouldEqual, "ok")
	})
}
