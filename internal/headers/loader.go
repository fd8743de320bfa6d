package headers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML header override file and merges it over the default
// profile. An empty path returns the defaults. Entries with empty values
// remove the header, so operators can strip defaults without rebuilding.
//
// File format is a flat mapping:
//
//	User-Agent: "Mozilla/5.0 ..."
//	Sec-Fetch-Site: ""
func LoadFile(path string) (Profile, error) {
	profile := Default()
	if path == "" {
		return profile, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header profile: %w", err)
	}

	overrides := map[string]string{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse header profile: %w", err)
	}

	for key, value := range overrides {
		if key == "" {
			continue
		}
		if value == "" {
			delete(profile, key)
			continue
		}
		profile[key] = value
	}
	return profile, nil
}
