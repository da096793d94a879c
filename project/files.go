package project

import (
	"io/fs"
	"os"
	"slices"
)

// defaultFiles are picked up from the project root when present, in this
// order, unless the files list already names them.
var defaultFiles = []string{
	"mod.cpp",
	"meta.cpp",
	"LICENSE",
	"logo_ca.paa",
	"logo_co.paa",
}

// DefaultFiles returns the root files that are included automatically.
func DefaultFiles() []string { return slices.Clone(defaultFiles) }

// Files resolves the files to copy into the build root, probing the
// current working directory for the default files. Nothing is cached:
// call it again after the tree changes.
func (p *Project) Files() []string {
	return p.ResolveFiles(os.DirFS("."))
}

// ResolveFiles is Files against fsys. The result is sorted and has no
// duplicates. Declared entries are returned as written; glob patterns are
// not expanded. Only an exact string match suppresses a default.
func (p *Project) ResolveFiles(fsys fs.FS) []string {
	files := slices.Clone(p.files)
	for _, name := range defaultFiles {
		if slices.Contains(files, name) {
			continue
		}
		if _, err := fs.Stat(fsys, name); err == nil {
			files = append(files, name)
		}
	}
	slices.Sort(files)
	return slices.Compact(files)
}
