package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidresolve/vidresolve/resolve"
	"github.com/vidresolve/vidresolve/source"
)

type resolverFunc func(ctx context.Context, raw string) (*source.Result, error)

func (f resolverFunc) Resolve(ctx context.Context, raw string) (*source.Result, error) {
	return f(ctx, raw)
}

func typeURL(b *bubble, raw string) {
	for _, r := range raw {
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble over a file resolver", t, func() {
		b := newBubble(context.Background(), &Options{
			Resolver: resolverFunc(func(_ context.Context, raw string) (*source.Result, error) {
				return source.NewFile("pixeldrain", &source.FileMetadata{
					Name:        mo.Some("clip.mp4"),
					Size:        mo.None[int64](),
					DownloadURL: "https://pixeldrain.com/api/file/abc/download",
				}), nil
			}),
		})

		Convey("Enter on an empty prompt does nothing", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldBeNil)
			So(b.loading(), ShouldBeFalse)
		})

		Convey("Enter submits the typed URL and clears the prompt", func() {
			typeURL(b, "https://pixeldrain.com/u/abc")
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			So(cmd, ShouldNotBeNil)
			So(b.pending, ShouldEqual, "https://pixeldrain.com/u/abc")
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.View(), ShouldContainSubstring, "Resolving")

			b.Update(b.resolve(b.pending)())
			So(b.loading(), ShouldBeFalse)
			So(b.resolved, ShouldEqual, "https://pixeldrain.com/u/abc")
			So(b.View(), ShouldContainSubstring, "clip.mp4")

			Convey("ctrl+l clears the result", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
				So(b.result, ShouldBeNil)
			})
		})

		Convey("Errors are shown in place of a result", func() {
			b.resolver = resolverFunc(func(context.Context, string) (*source.Result, error) {
				return nil, source.ErrInvalidInput
			})
			b.submit("garbage")
			b.Update(b.resolve("garbage")())

			So(b.err, ShouldEqual, source.ErrInvalidInput)
			So(b.View(), ShouldContainSubstring, source.ErrInvalidInput.Error())
		})

		Convey("Esc quits", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})
	})

	Convey("Given two submissions", t, func() {
		b := newBubble(context.Background(), &Options{
			Resolver: resolverFunc(func(_ context.Context, raw string) (*source.Result, error) {
				return source.NewUnsupported("unknown", raw), nil
			}),
		})

		b.submit("https://a.example.com")
		first := b.resolve("https://a.example.com")()

		b.submit("https://b.example.com")
		second := b.resolve("https://b.example.com")()

		Convey("A late answer for the older URL never replaces the newer one", func() {
			b.Update(second)
			b.Update(first)

			So(b.resolved, ShouldEqual, "https://b.example.com")
			So(b.result.Note, ShouldEqual, "https://b.example.com")
		})

		Convey("An older answer arriving first is ignored while the newer one is pending", func() {
			b.Update(first)
			So(b.result, ShouldBeNil)
			So(b.loading(), ShouldBeTrue)

			b.Update(second)
			So(b.resolved, ShouldEqual, "https://b.example.com")
		})
	})
}

func TestBubbleWithLatest(t *testing.T) {
	Convey("Given a slow aggregator behind resolve.Latest", t, func() {
		started := make(chan struct{}, 1)
		release := make(chan struct{})

		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started <- struct{}{}
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))
		defer slow.Close()
		defer close(release)

		b := newBubble(context.Background(), &Options{
			Resolver: resolve.NewLatest(resolve.New(resolve.Options{YouTubeAPI: slow.URL})),
		})

		Convey("Submitting a new URL cancels the one in flight", func() {
			const stale = "https://youtu.be/abc123XYZ9"
			b.submit(stale)

			first := make(chan tea.Msg, 1)
			go func() { first <- b.resolve(stale)() }()
			<-started

			b.submit("https://example.com")
			b.Update(b.resolve("https://example.com")())

			msg := (<-first).(resolvedMsg)
			So(errors.Is(msg.err, resolve.ErrSuperseded), ShouldBeTrue)

			b.Update(msg)
			So(b.err, ShouldBeNil)
			So(b.resolved, ShouldEqual, "https://example.com")
			So(b.result.Kind, ShouldEqual, source.KindUnsupported)
		})
	})
}
