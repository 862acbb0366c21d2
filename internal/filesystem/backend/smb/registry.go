package smb

import (
	"net/url"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/hirochachacha/go-smb2"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("smb", FromDSN)
}

// FromDSN creates a backend from a DSN like
// smb://<user>:<password>@<host>:445/<path>?share=reports&domain=WORKGROUP
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	initiator := &smb2.NTLMInitiator{
		Domain:      params.String("domain", "WORKGROUP"),
		Workstation: params.String("workstation", ""),
		TargetSPN:   params.String("targetSPN", ""),
	}

	initiator.User, initiator.Password = params.User()

	config := &Config{
		ShareName: params.Required("share"),
		Initiator: initiator,
	}

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return New(dsn.Host, params.BasePath(), config), nil
}
