package project

// DefaultVersionPath is where the project version is read from when
// [version].path is not set.
const DefaultVersionPath = "addons/main/script_version.hpp"

// VersionOptions is the [version] table.
type VersionOptions struct {
	Path string `toml:"path" json:"path"`
	// GitHash is how many characters of the commit hash are appended to
	// the version. 0 disables it.
	GitHash int `toml:"git_hash" json:"git_hash"`
}

func DefaultVersionOptions() VersionOptions {
	return VersionOptions{
		Path:    DefaultVersionPath,
		GitHash: 8,
	}
}

// IncludesGitHash reports whether built versions carry a commit hash.
func (v VersionOptions) IncludesGitHash() bool { return v.GitHash > 0 }
