package model

type TimelineEventID string

type TimelineEventType string

const (
	TimelineEventTypeElection    TimelineEventType = "election"
	TimelineEventTypeAppointment TimelineEventType = "appointment"
	TimelineEventTypeLegislation TimelineEventType = "legislation"
	TimelineEventTypeStatement   TimelineEventType = "statement"
	TimelineEventTypeControversy TimelineEventType = "controversy"
	TimelineEventTypeOther       TimelineEventType = "other"
)

var TimelineEventTypes = []TimelineEventType{
	TimelineEventTypeElection,
	TimelineEventTypeAppointment,
	TimelineEventTypeLegislation,
	TimelineEventTypeStatement,
	TimelineEventTypeControversy,
	TimelineEventTypeOther,
}

type TimelineEvent struct {
	ID           TimelineEventID   `json:"id,omitempty" yaml:"id,omitempty"`
	PoliticianID PoliticianID      `json:"politicianId" yaml:"politicianId"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Type         TimelineEventType `json:"type" yaml:"type"`
	Date         Date              `json:"date" yaml:"date"`
	SourceURL    string            `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
}
