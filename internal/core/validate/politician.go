package validate

import "github.com/bornholm/civicadmin/internal/core/model"

const (
	FieldName         = "name"
	FieldParty        = "party"
	FieldPosition     = "position"
	FieldConstituency = "constituency"
	FieldRegion       = "region"
	FieldBio          = "bio"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldWebsite      = "website"
	FieldDateOfBirth  = "dateOfBirth"
	FieldTermStart    = "termStart"
	FieldTermEnd      = "termEnd"
	FieldPhotoURL     = "photoUrl"
	FieldTwitter      = "social.twitter"
	FieldFacebook     = "social.facebook"
	FieldInstagram    = "social.instagram"
)

func PoliticianBasicInfo(p *model.Politician) Errors {
	errs := Errors{}
	Required(errs, FieldName, p.Name)
	Required(errs, FieldParty, p.Party)
	Required(errs, FieldPosition, p.Position)
	return errs
}

func PoliticianContact(p *model.Politician) Errors {
	errs := Errors{}
	Email(errs, FieldEmail, p.Email)
	Phone(errs, FieldPhone, p.Phone)
	URL(errs, FieldWebsite, p.Website)
	DateOrder(errs, FieldTermEnd, p.TermStart, p.TermEnd)
	return errs
}

func PoliticianMedia(p *model.Politician) Errors {
	errs := Errors{}
	URL(errs, FieldPhotoURL, p.PhotoURL)
	URL(errs, FieldTwitter, p.Social.Twitter)
	URL(errs, FieldFacebook, p.Social.Facebook)
	URL(errs, FieldInstagram, p.Social.Instagram)
	return errs
}

func Politician(p *model.Politician) Errors {
	errs := PoliticianBasicInfo(p)
	errs.Merge(PoliticianContact(p))
	errs.Merge(PoliticianMedia(p))
	return errs
}

func Commitment(c *model.Commitment) Errors {
	errs := Errors{}
	Required(errs, "politicianId", string(c.PoliticianID))
	Required(errs, "title", c.Title)
	OneOf(errs, "status", c.Status, model.CommitmentStatuses)
	IntRange(errs, "progress", c.Progress, 0, 100)
	URL(errs, "sourceUrl", c.SourceURL)
	DateOrder(errs, "deadline", c.PromisedAt, c.Deadline)
	return errs
}

// NormalizeCommitment fills derived defaults before validation.
func NormalizeCommitment(c *model.Commitment) {
	if c.Status == "" {
		c.Status = model.CommitmentStatusNotStarted
	}
	if c.Status == model.CommitmentStatusFulfilled {
		c.Progress = 100
	}
}

func TimelineEvent(e *model.TimelineEvent) Errors {
	errs := Errors{}
	Required(errs, "politicianId", string(e.PoliticianID))
	Required(errs, "title", e.Title)
	RequiredDate(errs, "date", e.Date)
	OneOf(errs, "type", e.Type, model.TimelineEventTypes)
	URL(errs, "sourceUrl", e.SourceURL)
	return errs
}

func NormalizeTimelineEvent(e *model.TimelineEvent) {
	if e.Type == "" {
		e.Type = model.TimelineEventTypeOther
	}
}

func VotingRecord(v *model.VotingRecord) Errors {
	errs := Errors{}
	Required(errs, "politicianId", string(v.PoliticianID))
	Required(errs, "billName", v.BillName)
	RequiredDate(errs, "date", v.Date)
	OneOf(errs, "vote", v.Vote, model.VoteChoices)
	URL(errs, "sourceUrl", v.SourceURL)
	return errs
}

func DocumentUpload(title string, docType model.DocumentType) Errors {
	errs := Errors{}
	Required(errs, "title", title)
	OneOf(errs, "type", docType, model.DocumentTypes)
	return errs
}
