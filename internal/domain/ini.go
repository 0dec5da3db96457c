package domain

import "regexp"

// locationsSection matches the [Locations] header and everything up to the
// next section header.
var locationsSection = regexp.MustCompile(`\[Locations\][^\[]+`)

// PortableLocations points every OBS location at the bundle's config dir.
const PortableLocations = "[Locations]\n" +
	"Configuration=.\n" +
	"SceneCollections=.\n" +
	"Profiles=.\n" +
	"PluginManagerSettings=.\n\n"

// IniPatcher rewrites OBS's global.ini for portable use.
type IniPatcher interface {
	Patch(content string) string
}

type iniPatcher struct{}

// NewIniPatcher constructs the default IniPatcher.
func NewIniPatcher() IniPatcher {
	return iniPatcher{}
}

// Patch replaces the [Locations] section. Content without one is returned
// as is.
func (iniPatcher) Patch(content string) string {
	return locationsSection.ReplaceAllLiteralString(content, PortableLocations)
}
