package f1

import (
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/pitwall-cli/internal/utils"
)

// PortraitFinder locates optional driver images named after the lowercased
// surname, e.g. images/hamilton.png.
type PortraitFinder struct {
	Dir  string
	Exts []string
}

// NewPortraitFinder looks in dir for png, jpg, jpeg and webp files.
func NewPortraitFinder(dir string) *PortraitFinder {
	return &PortraitFinder{Dir: dir, Exts: []string{".png", ".jpg", ".jpeg", ".webp"}}
}

// Find returns the image path for surname, or "" when none exists.
func (f *PortraitFinder) Find(surname string) string {
	if f == nil || f.Dir == "" {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(surname))
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ""
	}
	for _, ext := range f.Exts {
		p := filepath.Join(f.Dir, name+ext)
		if utils.FileExists(p) {
			return p
		}
	}
	return ""
}
