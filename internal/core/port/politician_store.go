package port

import (
	"context"
	"io"

	"github.com/bornholm/civicadmin/internal/core/model"
)

// PoliticianStore is the admin API surface for politician profiles.
type PoliticianStore interface {
	ListPoliticians(ctx context.Context) ([]model.Politician, error)
	GetPolitician(ctx context.Context, id model.PoliticianID) (*model.Politician, error)
	CreatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error)
	UpdatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error)
	DeletePolitician(ctx context.Context, id model.PoliticianID) error

	// SetPoliticianPublished toggles the public visibility of a profile
	SetPoliticianPublished(ctx context.Context, id model.PoliticianID, published bool) (*model.Politician, error)
	// SetPoliticianFeatured toggles the "featured" highlight of a profile
	SetPoliticianFeatured(ctx context.Context, id model.PoliticianID, featured bool) (*model.Politician, error)
}

type CommitmentStore interface {
	ListCommitments(ctx context.Context, politicianID model.PoliticianID) ([]model.Commitment, error)
	CreateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error)
	UpdateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error)
	DeleteCommitment(ctx context.Context, id model.CommitmentID) error
}

type TimelineStore interface {
	ListTimelineEvents(ctx context.Context, politicianID model.PoliticianID) ([]model.TimelineEvent, error)
	CreateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error)
	UpdateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error)
	DeleteTimelineEvent(ctx context.Context, id model.TimelineEventID) error
}

type VotingRecordStore interface {
	ListVotingRecords(ctx context.Context, politicianID model.PoliticianID) ([]model.VotingRecord, error)
	CreateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error)
	UpdateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error)
	DeleteVotingRecord(ctx context.Context, id model.VotingRecordID) error
}

type DocumentUpload struct {
	Title    string
	Type     model.DocumentType
	FileName string
	MimeType string
	Content  io.Reader
}

type DocumentStore interface {
	ListDocuments(ctx context.Context, politicianID model.PoliticianID) ([]model.Document, error)
	UploadDocument(ctx context.Context, politicianID model.PoliticianID, upload DocumentUpload) (*model.Document, error)
	DeleteDocument(ctx context.Context, id model.DocumentID) error
}

// AdminAPI groups every politician-related store exposed by the admin backend.
type AdminAPI interface {
	PoliticianStore
	CommitmentStore
	TimelineStore
	VotingRecordStore
	DocumentStore
}
