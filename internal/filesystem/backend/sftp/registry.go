package sftp

import (
	"net/url"
	"os"
	"time"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

func init() {
	backend.RegisterBackendFactory("sftp", FromDSN)
}

const ignoreHostKey = "insecure-ignore"

// FromDSN creates a backend from a DSN like
// sftp://<user>:<password>@<host>:22/<path>?hostKey=/etc/ssh/host.pub&privateKey=~/.ssh/id_ed25519
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	username, password := params.User()
	privateKey := params.String("privateKey", "")
	passphrase := params.String("passphrase", "")
	hostKey := params.Required("hostKey")

	config := &ssh.ClientConfig{
		User:    username,
		Timeout: params.Duration("timeout", 30*time.Second),
	}

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if privateKey != "" {
		signer, err := readSigner(privateKey, passphrase)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		config.Auth = append(config.Auth, ssh.PublicKeys(signer))
	}

	if password != "" {
		config.Auth = append(config.Auth, ssh.Password(password))
	}

	callback, err := hostKeyCallback(hostKey)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	config.HostKeyCallback = callback

	return New(dsn.Host, params.BasePath(), config), nil
}

func readSigner(path string, passphrase string) (ssh.Signer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read ssh private key '%s'", path)
	}

	var signer ssh.Signer
	if passphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(raw, []byte(passphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(raw)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse ssh private key '%s'", path)
	}

	return signer, nil
}

func hostKeyCallback(hostKey string) (ssh.HostKeyCallback, error) {
	if hostKey == ignoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}

	raw, err := os.ReadFile(hostKey)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read host key '%s'", hostKey)
	}

	pubKey, _, _, _, err := ssh.ParseAuthorizedKey(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse host key '%s'", hostKey)
	}

	return ssh.FixedHostKey(pubKey), nil
}
