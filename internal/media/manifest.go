package media

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// ManifestName is the optional project list inside an image directory.
const ManifestName = "projects.txt"

// Project is one manifest line: "Title | Subtitle".
type Project struct {
	Title    string
	Subtitle string
}

// Library is what a directory scan found.
type Library struct {
	Dir      string
	Images   []string // absolute paths, sorted
	Projects []Project
}

// ParseManifest parses a project list. Blank lines and lines starting with
// '#' are skipped; the subtitle is optional.
func ParseManifest(data []byte) ([]Project, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("manifest is not valid UTF-8")
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	projects := make([]Project, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		title, subtitle, _ := strings.Cut(line, "|")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		projects = append(projects, Project{
			Title:    title,
			Subtitle: strings.TrimSpace(subtitle),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return projects, nil
}

// Scan lists the images of dir and parses its manifest if there is one.
// Subdirectories are not descended into.
func Scan(dir string) (Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Library{}, fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Library{}, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return Library{}, fmt.Errorf("reading directory: %w", err)
	}

	lib := Library{Dir: abs}
	for _, e := range entries {
		if e.IsDir() || !IsImageExt(filepath.Ext(e.Name())) {
			continue
		}
		lib.Images = append(lib.Images, filepath.Join(abs, e.Name()))
	}
	sort.Strings(lib.Images)

	data, err := os.ReadFile(filepath.Join(abs, ManifestName))
	switch {
	case err == nil:
		lib.Projects, err = ParseManifest(data)
		if err != nil {
			return Library{}, fmt.Errorf("%s: %w", ManifestName, err)
		}
	case !os.IsNotExist(err):
		return Library{}, fmt.Errorf("reading %s: %w", ManifestName, err)
	}
	return lib, nil
}
