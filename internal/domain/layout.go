package domain

import (
	"path/filepath"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

const (
	// PortableDirName is created inside the chosen destination.
	PortableDirName = "obs_portable"
	// PortableFlagName makes OBS start in portable mode.
	PortableFlagName = "portable_mode.txt"
	// PortableFlagContent is written into a new PortableFlagName.
	PortableFlagContent = "Portable mode enabled."
	// DefaultAssetsDirName is the assets directory under the bundle root.
	DefaultAssetsDirName = "assets"

	globalIniName = "global.ini"
	userIniName   = "user.ini"
	sceneExt      = ".json"
)

// Layout names every path of a portable bundle and of the user profile it
// is built from.
type Layout struct {
	Root         m.Path
	ConfigDir    m.Path
	ObsConfigDir m.Path
	BasicDir     m.Path
	ProfilesDir  m.Path
	ScenesDir    m.Path
	GlobalIni    m.Path
	UserIni      m.Path
	AssetsDir    m.Path
	PortableFlag m.Path

	SourceProfilesDir m.Path
	SourceScenesDir   m.Path
	SourceGlobalIni   m.Path
	SourceUserIni     m.Path
}

// NewLayout derives the bundle layout from build arguments.
func NewLayout(args BuildArgs) Layout {
	root := filepath.Join(string(args.Destination), PortableDirName)
	obsConfig := filepath.Join(root, "config", "obs-studio")
	basic := filepath.Join(obsConfig, "basic")
	appData := string(args.AppDataDir)

	assetsDirName := args.AssetsDirName
	if assetsDirName == "" {
		assetsDirName = DefaultAssetsDirName
	}

	return Layout{
		Root:         m.Path(root),
		ConfigDir:    m.Path(filepath.Join(root, "config")),
		ObsConfigDir: m.Path(obsConfig),
		BasicDir:     m.Path(basic),
		ProfilesDir:  m.Path(filepath.Join(basic, "profiles")),
		ScenesDir:    m.Path(filepath.Join(basic, "scenes")),
		GlobalIni:    m.Path(filepath.Join(obsConfig, globalIniName)),
		UserIni:      m.Path(filepath.Join(obsConfig, userIniName)),
		AssetsDir:    m.Path(filepath.Join(root, assetsDirName)),
		PortableFlag: m.Path(filepath.Join(root, PortableFlagName)),

		SourceProfilesDir: m.Path(filepath.Join(appData, "basic", "profiles")),
		SourceScenesDir:   m.Path(filepath.Join(appData, "basic", "scenes")),
		SourceGlobalIni:   m.Path(filepath.Join(appData, globalIniName)),
		SourceUserIni:     m.Path(filepath.Join(appData, userIniName)),
	}
}
