package service

import (
	"context"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

type PoliticianManager struct {
	*ResourceManager[model.Politician, model.PoliticianID]

	api     port.AdminAPI
	alerter port.Alerter
	uploads DocumentUploadOptions

	mutex       sync.Mutex
	commitments map[model.PoliticianID]*ResourceManager[model.Commitment, model.CommitmentID]
	timeline    map[model.PoliticianID]*ResourceManager[model.TimelineEvent, model.TimelineEventID]
	votes       map[model.PoliticianID]*ResourceManager[model.VotingRecord, model.VotingRecordID]
	documents   map[model.PoliticianID]*DocumentManager
}

// PoliticianFilter narrows the politician list. Nil flags are ignored.
type PoliticianFilter struct {
	Party     string
	Published *bool
	Featured  *bool
}

func (f PoliticianFilter) Predicates() []listing.Predicate[model.Politician] {
	predicates := []listing.Predicate[model.Politician]{
		listing.Search(f.Party, func(p model.Politician) string { return p.Party }),
	}

	if f.Published != nil {
		published := *f.Published
		predicates = append(predicates, func(p model.Politician) bool { return p.IsPublished == published })
	}

	if f.Featured != nil {
		featured := *f.Featured
		predicates = append(predicates, func(p model.Politician) bool { return p.IsFeatured == featured })
	}

	return predicates
}

func (m *PoliticianManager) Get(ctx context.Context, id model.PoliticianID) (*model.Politician, error) {
	politician, err := m.api.GetPolitician(ctx, id)
	if err != nil {
		return nil, m.fail(ctx, "Load politician", errors.WithStack(err))
	}

	return politician, nil
}

// Name returns the display name of a politician, or its identifier when
// it cannot be resolved.
func (m *PoliticianManager) Name(ctx context.Context, id model.PoliticianID) string {
	politician, err := m.api.GetPolitician(ctx, id)
	if err != nil {
		return string(id)
	}

	return politician.Name
}

func (m *PoliticianManager) SetPublished(ctx context.Context, id model.PoliticianID, published bool) (*model.Politician, error) {
	title, success := "Unpublish politician", "Politician unpublished successfully."
	if published {
		title, success = "Publish politician", "Politician published successfully."
	}

	var updated *model.Politician

	err := m.Perform(ctx, title, success, nil, func(ctx context.Context) error {
		var err error
		updated, err = m.api.SetPoliticianPublished(ctx, id, published)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

func (m *PoliticianManager) SetFeatured(ctx context.Context, id model.PoliticianID, featured bool) (*model.Politician, error) {
	title, success := "Unfeature politician", "Politician removed from featured."
	if featured {
		title, success = "Feature politician", "Politician featured successfully."
	}

	var updated *model.Politician

	err := m.Perform(ctx, title, success, nil, func(ctx context.Context) error {
		var err error
		updated, err = m.api.SetPoliticianFeatured(ctx, id, featured)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

// ToggleFeatured flips the featured flag based on the held list.
func (m *PoliticianManager) ToggleFeatured(ctx context.Context, id model.PoliticianID) (*model.Politician, error) {
	politicians, err := m.Items(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, p := range politicians {
		if p.ID == id {
			return m.SetFeatured(ctx, id, !p.IsFeatured)
		}
	}

	return nil, m.fail(ctx, "Feature politician", errors.Wrapf(port.ErrNotFound, "politician '%s'", id))
}

func (m *PoliticianManager) Commitments(politicianID model.PoliticianID) *ResourceManager[model.Commitment, model.CommitmentID] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if manager, exists := m.commitments[politicianID]; exists {
		return manager
	}

	manager := NewResourceManager(m.alerter, Resource[model.Commitment, model.CommitmentID]{
		Name: "commitment",
		List: func(ctx context.Context) ([]model.Commitment, error) {
			return m.api.ListCommitments(ctx, politicianID)
		},
		Create:   m.api.CreateCommitment,
		Update:   m.api.UpdateCommitment,
		Delete:   m.api.DeleteCommitment,
		SortKeys: listing.CommitmentSortKeys,
		Normalize: func(c *model.Commitment) {
			c.PoliticianID = politicianID
			validate.NormalizeCommitment(c)
		},
		Validate: validate.Commitment,
		SearchFields: []func(model.Commitment) string{
			func(c model.Commitment) string { return c.Title },
			func(c model.Commitment) string { return c.Description },
			func(c model.Commitment) string { return c.Category },
		},
		GlobField: func(c model.Commitment) string { return c.Title },
	})

	m.commitments[politicianID] = manager

	return manager
}

func (m *PoliticianManager) Timeline(politicianID model.PoliticianID) *ResourceManager[model.TimelineEvent, model.TimelineEventID] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if manager, exists := m.timeline[politicianID]; exists {
		return manager
	}

	manager := NewResourceManager(m.alerter, Resource[model.TimelineEvent, model.TimelineEventID]{
		Name: "timeline event",
		List: func(ctx context.Context) ([]model.TimelineEvent, error) {
			return m.api.ListTimelineEvents(ctx, politicianID)
		},
		Create:   m.api.CreateTimelineEvent,
		Update:   m.api.UpdateTimelineEvent,
		Delete:   m.api.DeleteTimelineEvent,
		SortKeys: listing.TimelineSortKeys,
		Normalize: func(e *model.TimelineEvent) {
			e.PoliticianID = politicianID
			validate.NormalizeTimelineEvent(e)
		},
		Validate: validate.TimelineEvent,
		SearchFields: []func(model.TimelineEvent) string{
			func(e model.TimelineEvent) string { return e.Title },
			func(e model.TimelineEvent) string { return e.Description },
			func(e model.TimelineEvent) string { return string(e.Type) },
		},
		GlobField: func(e model.TimelineEvent) string { return e.Title },
	})

	m.timeline[politicianID] = manager

	return manager
}

func (m *PoliticianManager) Votes(politicianID model.PoliticianID) *ResourceManager[model.VotingRecord, model.VotingRecordID] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if manager, exists := m.votes[politicianID]; exists {
		return manager
	}

	manager := NewResourceManager(m.alerter, Resource[model.VotingRecord, model.VotingRecordID]{
		Name: "voting record",
		List: func(ctx context.Context) ([]model.VotingRecord, error) {
			return m.api.ListVotingRecords(ctx, politicianID)
		},
		Create:   m.api.CreateVotingRecord,
		Update:   m.api.UpdateVotingRecord,
		Delete:   m.api.DeleteVotingRecord,
		SortKeys: listing.VotingRecordSortKeys,
		Normalize: func(v *model.VotingRecord) {
			v.PoliticianID = politicianID
		},
		Validate: validate.VotingRecord,
		SearchFields: []func(model.VotingRecord) string{
			func(v model.VotingRecord) string { return v.BillName },
			func(v model.VotingRecord) string { return v.BillNumber },
			func(v model.VotingRecord) string { return v.Category },
		},
		GlobField: func(v model.VotingRecord) string { return v.BillName },
	})

	m.votes[politicianID] = manager

	return manager
}

func (m *PoliticianManager) Documents(politicianID model.PoliticianID) *DocumentManager {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if manager, exists := m.documents[politicianID]; exists {
		return manager
	}

	manager := newDocumentManager(m.api, m.alerter, politicianID, m.uploads)

	m.documents[politicianID] = manager

	return manager
}

func NewPoliticianManager(api port.AdminAPI, alerter port.Alerter, funcs ...DocumentUploadOptionFunc) *PoliticianManager {
	return &PoliticianManager{
		ResourceManager: NewResourceManager(alerter, Resource[model.Politician, model.PoliticianID]{
			Name:     "politician",
			List:     api.ListPoliticians,
			Create:   api.CreatePolitician,
			Update:   api.UpdatePolitician,
			Delete:   api.DeletePolitician,
			Validate: validate.Politician,
			SortKeys: listing.PoliticianSortKeys,
			SearchFields: []func(model.Politician) string{
				func(p model.Politician) string { return p.Name },
				func(p model.Politician) string { return p.Party },
				func(p model.Politician) string { return p.Position },
				func(p model.Politician) string { return p.Constituency },
				func(p model.Politician) string { return p.Region },
			},
			GlobField: func(p model.Politician) string { return p.Name },
		}),
		api:         api,
		alerter:     alerter,
		uploads:     *NewDocumentUploadOptions(funcs...),
		commitments: make(map[model.PoliticianID]*ResourceManager[model.Commitment, model.CommitmentID]),
		timeline:    make(map[model.PoliticianID]*ResourceManager[model.TimelineEvent, model.TimelineEventID]),
		votes:       make(map[model.PoliticianID]*ResourceManager[model.VotingRecord, model.VotingRecordID]),
		documents:   make(map[model.PoliticianID]*DocumentManager),
	}
}
