package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks
//go:generate sh -c "go run tzconv/cmd/zones list > zones.txt"

import (
	"archive/zip"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
	"tzconv/config"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("timezone not found")

// bundledZones lists the identifiers known when the binary was built. It backs
// List on hosts that ship no zoneinfo, where Resolve still works through the
// embedded tzdata.
//
//go:embed zones.txt
var bundledZones string

// Zone is the read-only view of the IANA timezone database.
type Zone interface {
	// List returns every known identifier in lexicographic order.
	List() []string
	// Resolve finds a timezone by identifier, ignoring case.
	Resolve(id string) (*time.Location, error)
}

type catalog struct {
	names     []string
	canonical map[string]string
	locations map[string]*time.Location
}

// New builds the catalog from the configured zoneinfo roots, then $ZONEINFO,
// then the zoneinfo.zip shipped with the Go toolchain.
func New(cfg *config.Config) Zone {
	sources := append([]string{}, cfg.App.ZoneInfoDirs...)
	if env := os.Getenv("ZONEINFO"); env != "" {
		sources = append(sources, env)
	}

	sources = append(sources, filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip"))

	zones := NewFromSources(sources...)
	log.Info().Int("total", len(zones.List())).Msg("Timezone catalog loaded")

	return zones
}

// NewFromSources builds the catalog from zoneinfo directories or zip files.
// Sources that cannot be read are skipped. When none of them yields a zone the
// bundled name list is used instead.
func NewFromSources(sources ...string) Zone {
	c := &catalog{
		canonical: make(map[string]string),
		locations: make(map[string]*time.Location),
	}

	for _, source := range sources {
		names, err := readSource(source)
		if err != nil {
			log.Debug().Err(err).Str("source", source).Msg("skipping zoneinfo source")

			continue
		}

		for _, name := range names {
			c.add(name)
		}
	}

	if len(c.names) == 0 {
		log.Warn().Strs("sources", sources).Msg("No zoneinfo found on disk, using the bundled timezone list")

		for _, name := range strings.Fields(bundledZones) {
			c.add(name)
		}
	}

	sort.Strings(c.names)

	return c
}

func (c *catalog) add(name string) {
	key := strings.ToLower(name)
	if _, ok := c.canonical[key]; ok {
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return
	}

	c.canonical[key] = name
	c.locations[name] = loc
	c.names = append(c.names, name)
}

func (c *catalog) List() []string {
	return append([]string(nil), c.names...)
}

func (c *catalog) Resolve(id string) (*time.Location, error) {
	if name, ok := c.canonical[strings.ToLower(id)]; ok {
		return c.locations[name], nil
	}

	if id == "" || id == "Local" {
		return nil, ErrNotFound
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return loc, nil
}

func readSource(source string) ([]string, error) {
	if strings.HasSuffix(source, ".zip") {
		return readZip(source)
	}

	return readDir(source)
}

func readDir(root string) ([]string, error) {
	var names []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		if entry.IsDir() {
			if skipDir(entry.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		if name := filepath.ToSlash(rel); isZoneName(name) {
			names = append(names, name)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk zoneinfo directory: %w", err)
	}

	return names, nil
}

func readZip(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zoneinfo archive: %w", err)
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		top, _, _ := strings.Cut(file.Name, "/")
		if skipDir(top) || !isZoneName(file.Name) {
			continue
		}

		names = append(names, file.Name)
	}

	return names, nil
}

func skipDir(name string) bool {
	return name == "posix" || name == "right" || strings.HasPrefix(name, ".")
}

func isZoneName(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.Contains(base, ".") {
		return false
	}

	switch name {
	case "localtime", "posixrules", "Factory", "leapseconds", "leap-seconds", "Local":
		return false
	}

	return true
}
