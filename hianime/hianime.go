// Package hianime implements the source adapter for the hianime catalog,
// backed entirely by its REST-like JSON API.
//
// Failure policy: this adapter never surfaces an error to the host. Transport
// failures, schema mismatches, and missing episodes all degrade to empty
// results or placeholder descriptors, with a diagnostic log entry on each
// failure path.
package hianime

import (
	"encoding/json"

	"github.com/anisan-cli/anisan-sources/key"
	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/network"
	"github.com/spf13/viper"
)

// Name is the adapter identifier used for plugin registration.
const Name = "hianime"

// Config carries the site-specific constants for one adapter instance.
// It is constructed once at instantiation and never mutated.
type Config struct {
	// BaseURL is the root of the JSON API.
	BaseURL string
	// Referrer is the site-origin string attached to resolved descriptors so
	// downstream players can satisfy hotlink protection.
	Referrer string
}

// DefaultConfig builds the adapter configuration from the global settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:  viper.GetString(key.HiAnimeBaseURL),
		Referrer: viper.GetString(key.HiAnimeReferrer),
	}
}

// Scraper is the hianime adapter. Instances hold no mutable state and are
// safe for sequential reuse across calls.
type Scraper struct {
	cfg    Config
	client network.Getter
}

// New constructs the adapter with its configuration and transport collaborator.
func New(cfg Config, client network.Getter) *Scraper {
	return &Scraper{cfg: cfg, client: client}
}

// Name returns the adapter identifier.
func (s *Scraper) Name() string {
	return Name
}

// request performs one GET and decodes the JSON body into out.
// Any transport or decode failure is logged and reported as false.
func (s *Scraper) request(url string, params map[string]string, out any) bool {
	body, err := s.client.Get(url, nil, params)
	if err != nil {
		log.Errorf("hianime: request to %s failed: %s", url, err)
		return false
	}

	if err := json.Unmarshal([]byte(body), out); err != nil {
		log.Errorf("hianime: decoding response from %s failed: %s", url, err)
		return false
	}

	return true
}
