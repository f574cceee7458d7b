package config

import (
	"fmt"
	"net/url"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/key"
)

// YouTube strategies selectable through key.YouTubeStrategy.
const (
	StrategyDirect = "direct"
	StrategyProxy  = "proxy"
	StrategyNative = "native"
)

// Strategies lists every accepted value of key.YouTubeStrategy.
var Strategies = []string{StrategyDirect, StrategyProxy, StrategyNative}

// Validate reports every invalid setting at once.
func Validate() error {
	var result error

	for _, k := range []string{key.YouTubeAPI, key.PixeldrainAPI, key.ServerYouTubeAPIURL} {
		if err := checkURL(viper.GetString(k)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", k, err))
		}
	}

	if endpoint := viper.GetString(key.ProxyEndpoint); endpoint != "" {
		if err := checkURL(endpoint); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", key.ProxyEndpoint, err))
		}
	}

	if strategy := viper.GetString(key.YouTubeStrategy); !lo.Contains(Strategies, strategy) {
		result = multierror.Append(result, fmt.Errorf("%s: unknown strategy %q (valid: %v)", key.YouTubeStrategy, strategy, Strategies))
	}

	if viper.GetString(key.YouTubeStrategy) == StrategyProxy && viper.GetString(key.ProxyEndpoint) == "" {
		result = multierror.Append(result, fmt.Errorf("%s: proxy strategy requires %s", key.YouTubeStrategy, key.ProxyEndpoint))
	}

	if viper.GetInt(key.NetworkTimeout) <= 0 {
		result = multierror.Append(result, fmt.Errorf("%s: must be positive", key.NetworkTimeout))
	}

	if viper.GetInt(key.LogsRetentionDays) < 0 {
		result = multierror.Append(result, fmt.Errorf("%s: must not be negative", key.LogsRetentionDays))
	}

	return result
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("expected an http(s) URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}
