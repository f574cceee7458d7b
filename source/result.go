package source

// Kind tags which branch of a Result is populated.
type Kind string

const (
	KindStreams     Kind = "streams"
	KindFile        Kind = "file"
	KindUnsupported Kind = "unsupported"
)

// Result is the normalized outcome of a resolution.
// Exactly one of Streams, File or Note is meaningful, selected by Kind.
type Result struct {
	Kind     Kind          `json:"kind" jsonschema:"enum=streams,enum=file,enum=unsupported"`
	Provider string        `json:"provider"`
	Streams  []*StreamInfo `json:"streams,omitempty"`
	File     *FileMetadata `json:"file,omitempty"`
	Note     string        `json:"note,omitempty"`
}

// NewStreams returns a streams result. The list is deduplicated and never nil.
func NewStreams(provider string, streams []*StreamInfo) *Result {
	streams = Dedupe(streams)
	if streams == nil {
		streams = []*StreamInfo{}
	}

	return &Result{
		Kind:     KindStreams,
		Provider: provider,
		Streams:  streams,
	}
}

// NewFile returns a file result.
func NewFile(provider string, file *FileMetadata) *Result {
	return &Result{
		Kind:     KindFile,
		Provider: provider,
		File:     file,
	}
}

// NewUnsupported returns a result carrying only a note.
func NewUnsupported(provider, note string) *Result {
	return &Result{
		Kind:     KindUnsupported,
		Provider: provider,
		Note:     note,
	}
}
