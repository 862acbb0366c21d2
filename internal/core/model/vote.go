package model

type VotingRecordID string

type VoteChoice string

const (
	VoteYes     VoteChoice = "yes"
	VoteNo      VoteChoice = "no"
	VoteAbstain VoteChoice = "abstain"
	VoteAbsent  VoteChoice = "absent"
)

var VoteChoices = []VoteChoice{
	VoteYes,
	VoteNo,
	VoteAbstain,
	VoteAbsent,
}

type VotingRecord struct {
	ID           VotingRecordID `json:"id,omitempty" yaml:"id,omitempty"`
	PoliticianID PoliticianID   `json:"politicianId" yaml:"politicianId"`
	BillName     string         `json:"billName" yaml:"billName"`
	BillNumber   string         `json:"billNumber,omitempty" yaml:"billNumber,omitempty"`
	Vote         VoteChoice     `json:"vote" yaml:"vote"`
	Date         Date           `json:"date" yaml:"date"`
	Category     string         `json:"category,omitempty" yaml:"category,omitempty"`
	Summary      string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	SourceURL    string         `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
}
