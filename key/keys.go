// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// YouTube Resolution - these keys select and configure the client-side YouTube strategy.
const (
	YouTubeAPI      = "youtube.api"
	YouTubeStrategy = "youtube.strategy"
)

// Pixeldrain Resolution - these keys configure the file metadata lookup.
const (
	PixeldrainAPI = "pixeldrain.api"
)

// Proxy Client - these keys configure the server-mediated path as seen from the client.
const (
	ProxyEndpoint = "proxy.endpoint"
)

// Proxy Server - these keys configure the server-mediated resolution endpoint.
const (
	ServerAddr          = "server.addr"
	ServerYouTubeAPIKey = "server.youtube_api_key"
	ServerYouTubeAPIURL = "server.youtube_api_url"
)

// Stream Extraction - these keys govern which hosts are accepted as media sources.
const (
	ExtractAllowedHosts = "extract.allowed_hosts"
)

// Network Transport - these keys tune the shared HTTP client.
const (
	NetworkTimeout        = "network.timeout_seconds"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite         = "logs.write"
	LogsLevel         = "logs.level"
	LogsJson          = "logs.json"
	LogsRetentionDays = "logs.retention_days"
)

// CLI Execution Environment - these settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
