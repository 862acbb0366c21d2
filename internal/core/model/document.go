package model

import "time"

type DocumentID string

type DocumentType string

const (
	DocumentTypeManifesto   DocumentType = "manifesto"
	DocumentTypeDeclaration DocumentType = "declaration"
	DocumentTypeReport      DocumentType = "report"
	DocumentTypeSpeech      DocumentType = "speech"
	DocumentTypeOther       DocumentType = "other"
)

var DocumentTypes = []DocumentType{
	DocumentTypeManifesto,
	DocumentTypeDeclaration,
	DocumentTypeReport,
	DocumentTypeSpeech,
	DocumentTypeOther,
}

// Document is a file attached to a politician profile.
type Document struct {
	ID           DocumentID   `json:"id,omitempty" yaml:"id,omitempty"`
	PoliticianID PoliticianID `json:"politicianId" yaml:"politicianId"`
	Title        string       `json:"title" yaml:"title"`
	Type         DocumentType `json:"type" yaml:"type"`
	URL          string       `json:"url,omitempty" yaml:"url,omitempty"`
	FileName     string       `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	MimeType     string       `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Size         int64        `json:"size,omitempty" yaml:"size,omitempty"`
	UploadedAt   time.Time    `json:"uploadedAt,omitzero" yaml:"uploadedAt,omitempty"`
}
