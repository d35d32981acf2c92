// storage/storage.go

// Package storage is the persistence collaborator of the rendering engine:
// a JSON document store for the menu library plus the four asset roots the
// renderer and the web editor read from.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/menukit/menukit/menu"
	"github.com/menukit/menukit/render"
)

// Upload kinds accepted by SaveAsset, matching the web editor's form values.
const (
	KindBackground = "background"
	KindIcon       = "icon"
	KindWidget     = "widget_img"
	KindFont       = "font"
)

var fontExts = map[string]bool{".ttf": true, ".otf": true, ".ttc": true}

// Store roots the config file and asset directories at a data directory:
//
//	<root>/menu_config.json
//	<root>/fonts/
//	<root>/assets/{backgrounds,icons,widgets}/
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) ConfigPath() string { return filepath.Join(s.root, "menu_config.json") }
func (s *Store) FontsDir() string   { return filepath.Join(s.root, "fonts") }

func (s *Store) assetDir(sub string) string {
	return filepath.Join(s.root, "assets", sub)
}

// Dirs exposes the asset roots in the shape the renderer consumes.
func (s *Store) Dirs() render.Dirs {
	return render.Dirs{
		Fonts:       s.FontsDir(),
		Backgrounds: s.assetDir("backgrounds"),
		Icons:       s.assetDir("icons"),
		Widgets:     s.assetDir("widgets"),
	}
}

// Init provisions the directory layout and writes the default library if no
// config exists yet.
func (s *Store) Init() error {
	dirs := []string{
		s.root,
		s.FontsDir(),
		s.assetDir("backgrounds"),
		s.assetDir("icons"),
		s.assetDir("widgets"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", d, err)
		}
	}
	if _, err := os.Stat(s.ConfigPath()); os.IsNotExist(err) {
		return s.Save(DefaultLibrary())
	}
	return nil
}

// Load reads the menu library. A missing file yields the default library; a
// corrupt file is logged and also degrades to the default rather than taking
// the caller down.
func (s *Store) Load() (*menu.Library, error) {
	f, err := os.Open(s.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLibrary(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	lib, err := menu.ReadLibrary(f)
	if err != nil {
		log.Printf("WARN: config unreadable, using defaults: %v", err)
		return DefaultLibrary(), nil
	}
	return lib, nil
}

func (s *Store) Save(lib *menu.Library) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(lib, "", "    ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ListAssets returns the file names under each image asset root, for the
// editor's asset pickers.
func (s *Store) ListAssets() map[string][]string {
	return map[string][]string{
		"backgrounds": listDir(s.assetDir("backgrounds"), nil),
		"icons":       listDir(s.assetDir("icons"), nil),
		"widgets":     listDir(s.assetDir("widgets"), nil),
	}
}

// ListFonts returns the font files available to the engine.
func (s *Store) ListFonts() []string {
	return listDir(s.FontsDir(), fontExts)
}

func listDir(dir string, exts map[string]bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if exts != nil && !exts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// SaveAsset stores an uploaded file under the root selected by kind, with a
// short random prefix so repeated uploads never clobber each other. It
// returns the stored file name.
func (s *Store) SaveAsset(kind, name string, r io.Reader) (string, error) {
	var dir string
	switch kind {
	case KindBackground:
		dir = s.assetDir("backgrounds")
	case KindIcon:
		dir = s.assetDir("icons")
	case KindWidget:
		dir = s.assetDir("widgets")
	case KindFont:
		dir = s.FontsDir()
	default:
		return "", fmt.Errorf("unknown asset kind %q", kind)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("random prefix: %w", err)
	}
	filename := hex.EncodeToString(buf[:]) + "_" + filepath.Base(name)

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write asset: %w", err)
	}
	return filename, nil
}

// DefaultLibrary is the document written on first run: a single enabled menu
// with one grid group, enough for the editor to open on something visible.
func DefaultLibrary() *menu.Library {
	lib := &menu.Library{
		Menus: []menu.Config{
			{
				Name:     "default",
				Title:    "My Bot Menu",
				SubTitle: "Send a command to get started",
				Groups: []menu.Group{
					{
						Title: "Commands",
						Items: []menu.Item{
							{Name: "Help", Desc: "Show usage instructions"},
							{Name: "About", Desc: "About this bot"},
						},
					},
				},
			},
		},
	}
	lib.Normalize()
	return lib
}
