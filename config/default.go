// Package config provides centralized management for plugin settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"strings"
	"text/template"

	"github.com/anisan-cli/anisan-sources/color"
	"github.com/anisan-cli/anisan-sources/constant"
	"github.com/anisan-cli/anisan-sources/key"
	"github.com/anisan-cli/anisan-sources/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(EnvKeyReplacer.Replace(constant.App) + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DefaultScraper, "DEFAULT", "Registered scraper to use when none is specified.\nType \"anisan-sources sources list\" to show available scrapers")
	register(key.SearchLimit, 20, "Maximum number of search results to request from an adapter.\nSet to 0 for no limit")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.HiAnimeBaseURL, "https://aniwatch-api-7ehn.onrender.com/api/v2/hianime", "Base URL of the hianime JSON API")
	register(key.HiAnimeReferrer, "https://hianime.to", "Referrer header value required by downstream players for hianime streams")
	register(key.AnimePaheBaseURL, "https://animepahe.ru", "Base URL of the animepahe site.\nThe API endpoint and the play pages both derive from it")
	register(key.NetworkBrowserTLS, true, "Use a browser TLS fingerprint for sites behind anti-bot challenges")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ value .Key }}
{{ blue "Default:" }} {{ .Value }}`))
