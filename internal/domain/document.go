package domain

// Document is advisory file metadata only; no byte content is stored.
type Document struct {
	ID            string `json:"id,omitempty"`
	EventID       string `json:"event_id,omitempty"`
	Name          string `json:"name"`
	FilePath      string `json:"file_path"`
	FileSize      int64  `json:"file_size"`
	MimeType      string `json:"mime_type"`
	Version       string `json:"version"`
	SharedWithAll bool   `json:"shared_with_all"`
}

const DefaultDocumentVersion = "1.0"
