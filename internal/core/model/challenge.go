package model

type ChallengeID string

type ChallengeType string

const (
	ChallengeTypeDaily   ChallengeType = "daily"
	ChallengeTypeWeekly  ChallengeType = "weekly"
	ChallengeTypeSpecial ChallengeType = "special"
)

var ChallengeTypes = []ChallengeType{
	ChallengeTypeDaily,
	ChallengeTypeWeekly,
	ChallengeTypeSpecial,
}

type Challenge struct {
	ID          ChallengeID   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Type        ChallengeType `json:"type" yaml:"type"`
	ModuleID    ModuleID      `json:"moduleId,omitempty" yaml:"moduleId,omitempty"`
	Points      int           `json:"points" yaml:"points"`
	StartDate   Date          `json:"startDate" yaml:"startDate,omitempty"`
	EndDate     Date          `json:"endDate" yaml:"endDate,omitempty"`
	IsActive    bool          `json:"isActive" yaml:"isActive"`
}
