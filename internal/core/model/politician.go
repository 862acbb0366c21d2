package model

import "time"

type PoliticianID string

type Politician struct {
	ID           PoliticianID `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string       `json:"name" yaml:"name"`
	Party        string       `json:"party" yaml:"party"`
	Position     string       `json:"position" yaml:"position"`
	Constituency string       `json:"constituency,omitempty" yaml:"constituency,omitempty"`
	Region       string       `json:"region,omitempty" yaml:"region,omitempty"`
	Bio          string       `json:"bio,omitempty" yaml:"bio,omitempty"`
	PhotoURL     string       `json:"photoUrl,omitempty" yaml:"photoUrl,omitempty"`
	Email        string       `json:"email,omitempty" yaml:"email,omitempty"`
	Phone        string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website      string       `json:"website,omitempty" yaml:"website,omitempty"`
	Social       SocialLinks  `json:"social" yaml:"social,omitempty"`
	DateOfBirth  Date         `json:"dateOfBirth" yaml:"dateOfBirth,omitempty"`
	TermStart    Date         `json:"termStart" yaml:"termStart,omitempty"`
	TermEnd      Date         `json:"termEnd" yaml:"termEnd,omitempty"`
	IsPublished  bool         `json:"isPublished" yaml:"isPublished"`
	IsFeatured   bool         `json:"isFeatured" yaml:"isFeatured"`
	CreatedAt    time.Time    `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt    time.Time    `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
}
