// Package util locates the foldbench source tree for the code generators.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath is the module path of the foldbench project.
const ModulePath = "github.com/charlievieth/foldbench"

func modfilePath(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	file, err := modfile.ParseLax(name, data, nil)
	if err != nil {
		return "", err
	}
	if file == nil || file.Module == nil || file.Module.Mod.Path == "" {
		return "", errors.New("util: missing module path: " + name)
	}
	return file.Module.Mod.Path, nil
}

// FindModule returns the first directory at or above child containing a
// go.mod file for module pkgPath. Unparseable go.mod files are skipped.
func FindModule(child, pkgPath string) (string, error) {
	if !filepath.IsAbs(child) {
		return child, errors.New("util: directory must be absolute: " + child)
	}
	var first error
	dir := filepath.Clean(child)
	for {
		name := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(name); err == nil {
			pkg, err := modfilePath(name)
			switch {
			case err != nil:
				if first == nil {
					first = err
				}
			case pkg == pkgPath:
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if len(parent) >= len(dir) {
			break
		}
		dir = parent
	}
	if first != nil {
		return child, fmt.Errorf("util: error finding go.mod for module %q "+
			"in directory: %q: %w", pkgPath, child, first)
	}
	return child, fmt.Errorf("util: failed to find go.mod for module %q "+
		"in directory: %q", pkgPath, child)
}

// ProjectRoot returns the root directory of the foldbench module by searching
// upwards from the working directory.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindModule(wd, ModulePath)
}

// FixturesDir returns the directory of the bundled fixtures.
func FixturesDir() (string, error) {
	root, err := ProjectRoot()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "fixtures")
	if _, err := os.Stat(dir); err != nil {
		return "", err
	}
	return dir, nil
}
