package models

// DatasetCreated is the payload returned when a dataset is created: the new
// database id and its persistent identifier.
type DatasetCreated struct {
	ID           int64  `json:"id"`
	PersistentID string `json:"persistentId"`
}

// Dataset is a dataset with its latest version.
type Dataset struct {
	ID            int64           `json:"id"`
	Identifier    string          `json:"identifier,omitempty"`
	Protocol      string          `json:"protocol,omitempty"`
	Authority     string          `json:"authority,omitempty"`
	PersistentURL string          `json:"persistentUrl,omitempty"`
	LatestVersion *DatasetVersion `json:"latestVersion,omitempty"`
}

// DatasetVersion is one version of a dataset.
type DatasetVersion struct {
	ID                  int64                    `json:"id,omitempty"`
	VersionNumber       int64                    `json:"versionNumber,omitempty"`
	VersionMinorNumber  int64                    `json:"versionMinorNumber,omitempty"`
	VersionState        string                   `json:"versionState,omitempty"`
	DatasetPersistentID string                   `json:"datasetPersistentId,omitempty"`
	MetadataBlocks      map[string]MetadataBlock `json:"metadataBlocks,omitempty"`
	Files               []FileMeta               `json:"files,omitempty"`
}

// MetadataBlock is a named group of metadata fields.
type MetadataBlock struct {
	DisplayName string          `json:"displayName,omitempty"`
	Fields      []MetadataField `json:"fields"`
}

// MetadataField is one field of a metadata block. Value is left generic:
// its shape depends on TypeClass (primitive, controlledVocabulary,
// compound).
type MetadataField struct {
	TypeName  string `json:"typeName"`
	TypeClass string `json:"typeClass,omitempty"`
	Multiple  bool   `json:"multiple,omitempty"`
	Value     any    `json:"value"`
}

// Lock is a server-side hold on a dataset during background processing.
type Lock struct {
	LockType string `json:"lockType"`
	Date     string `json:"date,omitempty"`
	User     string `json:"user,omitempty"`
	Dataset  string `json:"dataset,omitempty"`
	Message  string `json:"message,omitempty"`
}
