package constant

// Upstream endpoints used when the configuration does not override them.
const (
	PixeldrainAPI       = "https://pixeldrain.com/api"
	PipedAPI            = "https://pipedapi.kavin.rocks"
	KeyedMediaAPI       = "https://youtube-video-and-shorts-downloader1.p.rapidapi.com/api/getYTVideo"
	DefaultServerAddr   = ":8080"
	DefaultTimeoutInSec = 30
)

// Size limits applied to request and response bodies.
const (
	MaxRequestBody  = 1 << 20
	MaxResponseBody = 10 << 20
)
