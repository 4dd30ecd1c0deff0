package models

import "encoding/json"

// Material is the merged view the UI renders for a course's content: folders
// from the upstream folder resource and files from the documents resource.
type Material struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"` // "folder" | "document"
	Name     string `json:"name"`
	FolderID string `json:"folder_id,omitempty"`
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

type rawFolder struct {
	ID   upstreamID `json:"id"`
	Name string     `json:"name"`
	Tag  string     `json:"title"`
}

type rawDocument struct {
	ID       upstreamID `json:"id"`
	Name     string     `json:"name"`
	FileName string     `json:"filename"`
	FolderID upstreamID `json:"folderId"`
	Folder   upstreamID `json:"folder_id"`
	URL      string     `json:"url"`
	Link     string     `json:"file_url"`
	MimeType string     `json:"mime_type"`
}

// ParseMaterials merges the two upstream listings into one UI payload,
// folders first so the client can build the tree in a single pass.
func ParseMaterials(folderData, documentData []byte) ([]Material, error) {
	var folders []rawFolder
	if err := json.Unmarshal(folderData, &folders); err != nil {
		return nil, err
	}
	var documents []rawDocument
	if err := json.Unmarshal(documentData, &documents); err != nil {
		return nil, err
	}

	out := make([]Material, 0, len(folders)+len(documents))
	for _, f := range folders {
		out = append(out, Material{
			ID:   f.ID.String(),
			Kind: "folder",
			Name: firstNonEmpty(f.Name, f.Tag),
		})
	}
	for _, d := range documents {
		out = append(out, Material{
			ID:       d.ID.String(),
			Kind:     "document",
			Name:     firstNonEmpty(d.Name, d.FileName),
			FolderID: firstNonEmpty(d.FolderID.String(), d.Folder.String()),
			URL:      firstNonEmpty(d.URL, d.Link),
			MimeType: d.MimeType,
		})
	}
	return out, nil
}
