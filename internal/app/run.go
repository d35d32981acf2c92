// internal/app/run.go
package app

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"

	"github.com/menukit/menukit/internal/web"
	"github.com/menukit/menukit/menu"
	"github.com/menukit/menukit/render"
	"github.com/menukit/menukit/storage"
)

// Run is the process entry point: render the stored (or a given) menu to a
// PNG, or serve the web editor.
func Run() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "", "Path to a menu config JSON file (default: the stored library)")
	outPath := flag.String("out", "", "Output PNG path (default: menu_NNNN.png in the data dir)")
	dataDir := flag.String("data", "", "Data directory holding the config store and asset roots")
	serve := flag.Bool("serve", false, "Start the web editor instead of rendering once")
	addr := flag.String("addr", "", "Listen address override for -serve")
	settingsPath := flag.String("settings", "menukit.yaml", "Path to the settings file")
	flag.Parse()

	settings, err := LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if *dataDir != "" {
		settings.DataDir = *dataDir
	}
	if *addr != "" {
		settings.Addr = *addr
	}

	store := storage.New(settings.DataDir)
	if err := store.Init(); err != nil {
		log.Fatalf("ERROR: cannot initialize data dir %q: %v", settings.DataDir, err)
	}
	renderer := render.NewRenderer(store.Dirs())

	if *serve {
		server := web.New(store, renderer, settings.Token)
		log.Printf("Web editor listening on %s (data dir %s)", settings.Addr, settings.DataDir)
		if err := http.ListenAndServe(settings.Addr, server.Handler()); err != nil {
			log.Fatalf("ERROR: web server: %v", err)
		}
		return
	}

	menus, err := loadMenus(store, *configPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if len(menus) == 0 {
		fmt.Fprintln(os.Stderr, "No enabled menus to render.")
		os.Exit(1)
	}

	for i := range menus {
		cfg := &menus[i]
		data, err := renderer.RenderPNG(cfg)
		if err != nil {
			log.Fatalf("ERROR: render %q: %v", cfg.Name, err)
		}
		path := *outPath
		if path == "" || len(menus) > 1 {
			path = outputPath(settings.DataDir, *outPath, cfg.Name, i)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("ERROR: write %s: %v", path, err)
		}
		log.Printf("Rendered %q -> %s", cfg.Name, path)
	}
}

// loadMenus returns either the single menu from an explicit config file or
// every enabled menu in the stored library.
func loadMenus(store *storage.Store, configPath string) ([]menu.Config, error) {
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("open config %q: %w", configPath, err)
		}
		defer f.Close()
		cfg, err := menu.ReadConfig(f)
		if err != nil {
			return nil, err
		}
		return []menu.Config{*cfg}, nil
	}

	lib, err := store.Load()
	if err != nil {
		return nil, err
	}
	var enabled []menu.Config
	for _, m := range lib.Menus {
		if m.IsEnabled() {
			enabled = append(enabled, m)
		}
	}
	return enabled, nil
}

func outputPath(dataDir, out, name string, index int) string {
	if out != "" {
		// Multiple menus share one -out stem.
		ext := filepath.Ext(out)
		return fmt.Sprintf("%s_%d%s", out[:len(out)-len(ext)], index, ext)
	}
	if name == "" {
		name = "menu"
	}
	return filepath.Join(dataDir, fmt.Sprintf("%s_%04d.png", name, rand.Intn(10000)))
}
