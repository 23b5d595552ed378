package models

// Dataverse is a dataverse collection.
type Dataverse struct {
	ID          int64     `json:"id,omitempty"`
	Alias       string    `json:"alias"`
	Name        string    `json:"name"`
	Affiliation string    `json:"affiliation,omitempty"`
	Description string    `json:"description,omitempty"`
	Contacts    []Contact `json:"dataverseContacts,omitempty"`
	Type        string    `json:"dataverseType,omitempty"`
}

// Contact is a dataverse contact address.
type Contact struct {
	ContactEmail string `json:"contactEmail"`
}

// DataverseItem is one entry in a dataverse's contents listing; Type is
// "dataverse" or "dataset".
type DataverseItem struct {
	Type          string `json:"type"`
	ID            int64  `json:"id"`
	Title         string `json:"title,omitempty"`
	Identifier    string `json:"identifier,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
	Authority     string `json:"authority,omitempty"`
	PersistentURL string `json:"persistentUrl,omitempty"`
}

// DataMessage is the one-field object some endpoints wrap informational
// text in instead of using the envelope's message field.
type DataMessage struct {
	Message string `json:"message"`
}
