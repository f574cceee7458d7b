package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/network"
	"github.com/vidresolve/vidresolve/source"
)

// Native resolves streams by talking to YouTube itself instead of an aggregator.
type Native struct {
	client *youtube.Client
}

// NewNative returns a Native resolver. A nil client means network.Client.
func NewNative(c *http.Client) *Native {
	if c == nil {
		c = network.Client
	}

	return &Native{client: &youtube.Client{HTTPClient: c}}
}

// Resolve lists every format of the video. Ciphered formats whose URL cannot be
// recovered are skipped.
func (n *Native) Resolve(ctx context.Context, raw string) ([]*source.StreamInfo, error) {
	id, err := VideoID(raw)
	if err != nil {
		return nil, err
	}

	video, err := n.client.GetVideoContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("youtube: %w: %v", source.ErrUpstreamUnavailable, err)
	}

	logger := log.WithFields(logrus.Fields{"provider": "youtube", "id": id, "strategy": "native"})

	streams := make([]*source.StreamInfo, 0, len(video.Formats))
	for i := range video.Formats {
		format := &video.Formats[i]

		link := format.URL
		if link == "" {
			link, err = n.client.GetStreamURLContext(ctx, video, format)
			if err != nil {
				logger.Warnf("itag %d: %v", format.ItagNo, err)
				continue
			}
		}

		streams = append(streams, fromFormat(format, link))
	}

	return source.Dedupe(streams), nil
}

func fromFormat(format *youtube.Format, link string) *source.StreamInfo {
	stream := &source.StreamInfo{
		URL:       link,
		Quality:   format.QualityLabel,
		Mime:      format.MimeType,
		AudioOnly: strings.HasPrefix(format.MimeType, "audio/"),
	}

	if stream.Quality == "" {
		stream.Quality = format.Quality
	}

	if format.ContentLength > 0 {
		stream.Size = strconv.FormatInt(format.ContentLength, 10)
	}

	return stream
}
