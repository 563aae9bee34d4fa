// Package plugin exposes the static descriptor the host uses to discover and
// instantiate the source adapters shipped by this module.
package plugin

import (
	"github.com/anisan-cli/anisan-sources/animepahe"
	"github.com/anisan-cli/anisan-sources/constant"
	"github.com/anisan-cli/anisan-sources/hianime"
	"github.com/anisan-cli/anisan-sources/key"
	"github.com/anisan-cli/anisan-sources/network"
	"github.com/anisan-cli/anisan-sources/scraper"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Factory instantiates an adapter with the host-supplied transport.
// A nil client selects this module's default transport for that adapter.
type Factory func(client network.Getter) (scraper.Scraper, error)

// Plugin is the registration descriptor consumed by the host at load time.
type Plugin struct {
	Version     int
	PackageName string
	Scrapers    map[string]Factory
}

// Hook returns the module's plugin descriptor.
func Hook() Plugin {
	return Plugin{
		Version:     constant.PluginVersion,
		PackageName: constant.App,
		Scrapers: map[string]Factory{
			"DEFAULT":      newHiAnime,
			hianime.Name:   newHiAnime,
			animepahe.Name: newAnimePahe,
		},
	}
}

// Get finds a registered factory by scraper name.
func Get(name string) (Factory, bool) {
	factory, ok := Hook().Scrapers[name]
	return factory, ok
}

// Names returns the registered scraper names in sorted order.
func Names() []string {
	names := lo.Keys(Hook().Scrapers)
	slices.Sort(names)
	return names
}

func newHiAnime(client network.Getter) (scraper.Scraper, error) {
	if client == nil {
		client = network.New()
	}
	return hianime.New(hianime.DefaultConfig(), client), nil
}

func newAnimePahe(client network.Getter) (scraper.Scraper, error) {
	if client == nil {
		// The site rejects the stock Go TLS stack, so the default transport
		// here is the fingerprint-spoofing one unless disabled in config.
		if viper.GetBool(key.NetworkBrowserTLS) {
			client = network.NewBrowserClient()
		} else {
			client = network.New()
		}
	}
	return animepahe.New(animepahe.DefaultConfig(), client), nil
}
