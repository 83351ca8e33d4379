package cfg

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named backend system in the profiles file.
type Profile struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type profilesFile struct {
	Systems map[string]Profile `yaml:"systems"`
}

// LoadProfiles reads and validates a YAML profiles file of the form:
//
//	systems:
//	  es5:
//	    host: sapes5.sapdevcenter.com
//	    user: DEVELOPER
//	    password: s3cr3t
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var pf profilesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}

	if len(pf.Systems) == 0 {
		return nil, fmt.Errorf("profiles file %s defines no systems", path)
	}

	for name, p := range pf.Systems {
		if p.Host == "" {
			return nil, fmt.Errorf("profile %q is missing a host", name)
		}
	}

	return pf.Systems, nil
}

// applyProfile fills unset connection fields from the named profile. Values
// given explicitly via flag or environment take precedence.
func applyProfile(c *Cfg, path, name string) error {
	if path == "" {
		return fmt.Errorf("profile %q requested but no profiles file configured", name)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		return err
	}

	profile, ok := profiles[name]
	if !ok {
		return fmt.Errorf("profile %q not found in %s", name, path)
	}

	c.Host = cmp.Or(c.Host, profile.Host)
	c.User = cmp.Or(c.User, profile.User)
	c.Password = cmp.Or(c.Password, profile.Password)

	return nil
}
