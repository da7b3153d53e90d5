// Package seed ships the demo listing set used to populate the
// directory on first run.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rentfornest/rentfornest/internal/model"
)

//go:embed seed.yaml
var seedYAML []byte

// Listings decodes the embedded demo set. The result is a fresh slice
// on every call; callers may mutate it freely.
func Listings() ([]model.PropertyListing, error) {
	var listings []model.PropertyListing
	if err := yaml.Unmarshal(seedYAML, &listings); err != nil {
		return nil, fmt.Errorf("decode seed listings: %w", err)
	}
	return listings, nil
}
