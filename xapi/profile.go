package xapi

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is an on-disk connection profile for a device. Profiles keep
// endpoint details and credentials out of code; the vsys field belongs to
// the tree root built on top of the transport, not to the transport itself.
type Profile struct {
	Hostname           string `yaml:"hostname"`
	Port               int    `yaml:"port,omitempty"`
	Username           string `yaml:"username,omitempty"`
	Password           string `yaml:"password,omitempty"`
	APIKey             string `yaml:"api-key,omitempty"`
	Serial             string `yaml:"serial,omitempty"`
	Vsys               string `yaml:"vsys,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure-skip-verify,omitempty"`
}

// LoadProfile reads a YAML connection profile from path.
func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "xapi: reading profile")
	}
	p := &Profile{}
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, errors.Wrapf(err, "xapi: parsing profile %s", path)
	}
	if p.Hostname == "" {
		return nil, errors.Errorf("xapi: profile %s has no hostname", path)
	}
	return p, nil
}

// Config returns the transport configuration for the profile.
func (p *Profile) Config() Config {
	return Config{
		Hostname:           p.Hostname,
		Port:               p.Port,
		Username:           p.Username,
		Password:           p.Password,
		APIKey:             p.APIKey,
		Serial:             p.Serial,
		InsecureSkipVerify: p.InsecureSkipVerify,
	}
}
