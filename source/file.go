package source

import "github.com/samber/mo"

// FileMetadata describes a single hosted file.
// Name and Size are best-effort; DownloadURL is always set.
type FileMetadata struct {
	Name        mo.Option[string] `json:"name"`
	Size        mo.Option[int64]  `json:"size"`
	DownloadURL string            `json:"downloadUrl"`
}

// String returns the file name if known, otherwise the download URL.
func (f *FileMetadata) String() string {
	return f.Name.OrElse(f.DownloadURL)
}
