package project

// SigningOptions is the [signing] table. Keys are produced by the packer,
// this only carries what it was asked for.
type SigningOptions struct {
	Version        int     `toml:"version" json:"version"`               // BI sign version
	Authority      *string `toml:"authority" json:"authority,omitempty"` // defaults to the prefix when unset
	IncludeGitHash bool    `toml:"include_git_hash" json:"include_git_hash"`
}

func DefaultSigningOptions() SigningOptions {
	return SigningOptions{Version: 3}
}

// AuthorityOr returns the configured authority, or fallback when none is set.
func (s SigningOptions) AuthorityOr(fallback string) string {
	if s.Authority == nil || *s.Authority == "" {
		return fallback
	}
	return *s.Authority
}
