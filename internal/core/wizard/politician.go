package wizard

import (
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/validate"
)

const (
	StepBasicInformation = "Basic information"
	StepContactBiography = "Contact & biography"
	StepMediaSocial      = "Media & social"
)

// NewPolitician returns the three steps politician form used for both
// creation and edition.
func NewPolitician(draft *model.Politician) *Wizard[model.Politician] {
	return New(draft,
		Step[model.Politician]{
			Name: StepBasicInformation,
			Fields: []string{
				validate.FieldName, validate.FieldParty, validate.FieldPosition,
				validate.FieldConstituency, validate.FieldRegion,
			},
			Validate: validate.PoliticianBasicInfo,
		},
		Step[model.Politician]{
			Name: StepContactBiography,
			Fields: []string{
				validate.FieldEmail, validate.FieldPhone, validate.FieldWebsite, validate.FieldBio,
				validate.FieldDateOfBirth, validate.FieldTermStart, validate.FieldTermEnd,
			},
			Validate: validate.PoliticianContact,
		},
		Step[model.Politician]{
			Name: StepMediaSocial,
			Fields: []string{
				validate.FieldPhotoURL, validate.FieldTwitter,
				validate.FieldFacebook, validate.FieldInstagram,
			},
			Validate: validate.PoliticianMedia,
		},
	)
}
