package models

// FileMeta is the metadata of a file within a dataset version. It doubles
// as the jsonData payload of upload and replace calls.
type FileMeta struct {
	Label          string    `json:"label,omitempty"`
	Description    string    `json:"description,omitempty"`
	DirectoryLabel string    `json:"directoryLabel,omitempty"`
	Restrict       bool      `json:"restrict,omitempty"`
	Categories     []string  `json:"categories,omitempty"`
	DataFile       *DataFile `json:"dataFile,omitempty"`
}

// DataFile is the stored file behind a FileMeta.
type DataFile struct {
	ID           int64  `json:"id"`
	PersistentID string `json:"persistentId,omitempty"`
	Filename     string `json:"filename"`
	ContentType  string `json:"contentType,omitempty"`
	Filesize     int64  `json:"filesize,omitempty"`
	MD5          string `json:"md5,omitempty"`
	StorageID    string `json:"storageIdentifier,omitempty"`
}

// FileList is the payload of add and replace calls: the files affected.
type FileList struct {
	Files []FileMeta `json:"files"`
}
