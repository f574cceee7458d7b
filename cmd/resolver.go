package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/resolve"
	"github.com/vidresolve/vidresolve/source"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/util"
)

// httpClient builds the upstream client from the network settings.
func httpClient() *http.Client {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return network.NewFingerprint(timeout)
	}
	return network.New(timeout)
}

// newResolver is the only place where configuration reaches the resolution facade.
func newResolver() *resolve.Resolver {
	handleErr(config.Validate())

	return resolve.New(resolve.Options{
		Strategy:      resolve.Strategy(viper.GetString(key.YouTubeStrategy)),
		Client:        httpClient(),
		YouTubeAPI:    viper.GetString(key.YouTubeAPI),
		PixeldrainAPI: viper.GetString(key.PixeldrainAPI),
		ProxyEndpoint: viper.GetString(key.ProxyEndpoint),
	})
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printResult(w io.Writer, result *source.Result) {
	tag := style.ProviderTag(result.Provider)

	switch result.Kind {
	case source.KindFile:
		printFile(w, tag, result.File)
	case source.KindStreams:
		_, _ = fmt.Fprintf(w, "%s %s\n", tag, style.Faint(util.Quantify(len(result.Streams), "stream", "streams")))
		printStreams(w, result.Streams)
		if result.Note != "" {
			_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), style.Italic(util.Wrap(result.Note, util.TerminalWidth(80)-2)))
		}
	default:
		_, _ = fmt.Fprintf(w, "%s %s %s\n", tag, icon.Get(icon.Warn), style.Fg(color.Yellow)(result.Note))
	}
}

func printFile(w io.Writer, tag string, file *source.FileMetadata) {
	name := style.Faint("unknown name")
	if n, ok := file.Name.Get(); ok {
		name = style.Bold(util.Truncate(n, util.TerminalWidth(80)/2))
	}
	size := style.Faint("unknown size")
	if bytes, ok := file.Size.Get(); ok {
		size = humanize.Bytes(uint64(bytes))
	}

	_, _ = fmt.Fprintf(w, "%s %s %s %s\n", tag, icon.Get(icon.File), name, style.Fg(color.Gray)(size))
	_, _ = fmt.Fprintln(w, file.DownloadURL)
}

func printStreams(w io.Writer, streams []*source.StreamInfo) {
	for _, s := range streams {
		marker := icon.Get(icon.Stream)
		if s.AudioOnly {
			marker = icon.Get(icon.Audio)
		}

		var details []string
		if s.Quality != "" {
			details = append(details, style.Bold(s.Quality))
		}
		if s.Mime != "" {
			details = append(details, style.Fg(color.Gray)(s.Mime))
		}
		if size, err := cast.ToUint64E(s.Size); err == nil && size > 0 {
			details = append(details, style.Fg(color.Gray)(humanize.Bytes(size)))
		}

		line := strings.TrimSpace(marker + " " + strings.Join(details, " "))
		_, _ = fmt.Fprintln(w, line)
		_, _ = fmt.Fprintln(w, "  "+s.URL)
	}
}
