package emit

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ImportPath resolves the Go import path for a package directory by walking
// up to the nearest go.mod. The result decides whether the generated file
// must import the capability package or lives inside it.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	cur := abs
	for {
		goMod := filepath.Join(cur, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			modulePath, err := readModulePath(goMod)
			if err != nil {
				return "", err
			}
			rel, err := filepath.Rel(cur, abs)
			if err != nil {
				return "", err
			}
			if rel == "." {
				return modulePath, nil
			}
			return filepath.ToSlash(filepath.Join(modulePath, rel)), nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", errors.New("go.mod not found above " + abs)
}

// readModulePath reads the module path declared in a go.mod file.
func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("module path not found in " + goModPath)
}
