// Package assets discovers the files under an asset root.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind classifies an asset by its extension.
type Kind string

const (
	KindImage Kind = "image"
	KindSheet Kind = "sheet"
	KindSound Kind = "sound"
	KindFont  Kind = "font"
)

var kinds = map[string]Kind{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".yaml": KindSheet,
	".yml":  KindSheet,
	".wav":  KindSound,
	".ogg":  KindSound,
	".mp3":  KindSound,
	".ttf":  KindFont,
	".otf":  KindFont,
}

// Entry is one asset found under the root.
type Entry struct {
	Path string // slash separated, relative to the root
	Kind Kind
	Size int64
}

// KindOf returns the kind of path, or false when the extension is unknown.
func KindOf(path string) (Kind, bool) {
	k, ok := kinds[strings.ToLower(filepath.Ext(path))]
	return k, ok
}

// Scan walks root and returns every recognised asset sorted by path.
// Hidden files and directories are skipped.
func Scan(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		kind, ok := KindOf(name)
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: filepath.ToSlash(rel), Kind: kind, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset root %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// Missing returns the entries of want that do not exist as files under root.
func Missing(root string, want []string) []string {
	var missing []string
	for _, p := range want {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil || info.IsDir() {
			missing = append(missing, p)
		}
	}
	return missing
}
