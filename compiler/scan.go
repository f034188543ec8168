package compiler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Scan returns every regular file under root whose extension matches one
// of exts, ignoring case, in lexical walk order.
func Scan(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("compiler: asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("compiler: asset root %s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := filepath.Ext(path)
		if slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) }) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("compiler: scan %s: %w", root, err)
	}
	return paths, nil
}

// AssetPath returns path with its extension replaced by ext.
func AssetPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
