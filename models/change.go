package models

// LocalChange describes an edit made in the app that must be written back to
// the remote catalog. Object carries only the fields the user actually
// changed; the update builder merges them onto the freshly fetched remote
// representation so unrelated remote-side fields survive the write.
//
// An empty Object.ID (or a "#..." placeholder) creates a new object: its
// version is omitted and the remote assigns both id and version.
type LocalChange struct {
	Object CatalogObject `json:"object"`
}

// IsCreate reports whether the change creates a new object rather than
// updating an existing one.
func (c LocalChange) IsCreate() bool {
	return c.Object.ID == "" || c.Object.ID[0] == '#'
}
