package project

import "slices"

// Features is the [hemtt] table: toggles read by the build commands.
type Features struct {
	Dev     DevOptions     `toml:"dev" json:"dev"`
	Launch  LaunchOptions  `toml:"launch" json:"launch"`
	Release ReleaseOptions `toml:"release" json:"release"`
}

type DevOptions struct {
	Exclude []string `toml:"exclude" json:"exclude"` // paths skipped by dev builds
}

type LaunchOptions struct {
	Workshop   []string `toml:"workshop" json:"workshop"`
	DLC        []string `toml:"dlc" json:"dlc"`
	Optionals  []string `toml:"optionals" json:"optionals"`
	Parameters []string `toml:"parameters" json:"parameters"`
	Executable string   `toml:"executable" json:"executable"`
}

type ReleaseOptions struct {
	Folder  bool `toml:"folder" json:"folder"`   // keep the release folder
	Archive bool `toml:"archive" json:"archive"` // zip the release folder
}

func DefaultFeatures() Features {
	return Features{
		Launch: LaunchOptions{Executable: "arma3_x64"},
		Release: ReleaseOptions{
			Folder:  true,
			Archive: true,
		},
	}
}

func (f Features) clone() Features {
	f.Dev.Exclude = slices.Clone(f.Dev.Exclude)
	f.Launch.Workshop = slices.Clone(f.Launch.Workshop)
	f.Launch.DLC = slices.Clone(f.Launch.DLC)
	f.Launch.Optionals = slices.Clone(f.Launch.Optionals)
	f.Launch.Parameters = slices.Clone(f.Launch.Parameters)
	return f
}
