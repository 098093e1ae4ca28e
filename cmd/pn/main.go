package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/prefnav/pkg/config"
	"github.com/Dicklesworthstone/prefnav/pkg/export"
	"github.com/Dicklesworthstone/prefnav/pkg/i18n"
	"github.com/Dicklesworthstone/prefnav/pkg/loader"
	"github.com/Dicklesworthstone/prefnav/pkg/model"
	"github.com/Dicklesworthstone/prefnav/pkg/storage"
	"github.com/Dicklesworthstone/prefnav/pkg/ui"
	"github.com/Dicklesworthstone/prefnav/pkg/watcher"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Config file (default: XDG config dir)")
	definition := flag.String("definition", "", "Preferences definition YAML file")
	locale := flag.String("locale", "", "Locale bundle name (overrides config)")
	localeDir := flag.String("locale-dir", "", "Directory of locale YAML bundles")
	exportSVG := flag.String("export-svg", "", "Write the category tree as SVG to this path and exit")
	noStore := flag.Bool("no-store", false, "Disable the setting-value store")
	showVersion := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: pn [options]")
		fmt.Println("\nA TUI navigator for hierarchical preference definitions.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("pn version " + version)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("warning: %v", err)
	}

	defPath, err := resolveDefinition(*definition, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	def, err := loader.Load(defPath)
	if err != nil {
		fmt.Printf("Error loading definition: %v\n", err)
		os.Exit(1)
	}

	translator := resolveTranslator(cfg, *locale, *localeDir)
	if translator != nil {
		i18n.Retranslate(def.Categories, translator)
	}

	if *exportSVG != "" {
		if err := export.WriteSVGFile(*exportSVG, def.Categories); err != nil {
			fmt.Printf("Error writing SVG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *exportSVG)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("pn needs an interactive terminal; use -export-svg for non-interactive output.")
		os.Exit(1)
	}

	var store *storage.Store
	if !*noStore {
		store, err = storage.Open(config.StorePath())
		if err != nil {
			log.Printf("warning: value store disabled: %v", err)
		} else {
			defer store.Close()
		}
	}

	opts := ui.Options{
		DefinitionPath: defPath,
		Store:          store,
		Translator:     translator,
		Config:         cfg,
	}
	m := ui.NewModel(def, opts, lipgloss.DefaultRenderer())

	p := tea.NewProgram(m, tea.WithAltScreen())

	w, err := watcher.Watch(defPath, func() {
		p.Send(ui.ReloadMsg{})
	})
	if err != nil {
		log.Printf("warning: live reload disabled: %v", err)
	} else {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running prefnav: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// resolveDefinition picks the definition file: the -definition flag, then
// the config entry, then *.prefs.yaml files in the working directory. A
// single candidate is used directly; several prompt an interactive pick.
func resolveDefinition(flagValue string, cfg config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Definition != "" {
		return cfg.Definition, nil
	}

	matches, err := filepath.Glob("*.prefs.yaml")
	if err != nil {
		return "", fmt.Errorf("scan working directory: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no definition given and no *.prefs.yaml in the current directory")
	case 1:
		return matches[0], nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", fmt.Errorf("multiple definitions found (%s); pick one with -definition",
			strings.Join(matches, ", "))
	}

	var picked string
	sel := huh.NewSelect[string]().
		Title("Multiple preference definitions found").
		Options(huh.NewOptions(matches...)...).
		Value(&picked)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return "", fmt.Errorf("select definition: %w", err)
	}
	return picked, nil
}

// resolveTranslator loads the requested locale bundle, if any. Flags
// override the config; a missing bundle degrades to raw keys.
func resolveTranslator(cfg config.Config, locale, localeDir string) model.TranslationService {
	if locale == "" {
		locale = cfg.Locale
	}
	if localeDir == "" {
		localeDir = cfg.LocaleDir
	}
	if locale == "" {
		return nil
	}
	if localeDir == "" {
		localeDir = "locales"
	}

	bundles, err := i18n.LoadBundles(localeDir)
	if err != nil {
		log.Printf("warning: locale bundles unavailable: %v", err)
		return nil
	}
	b, ok := bundles[locale]
	if !ok {
		log.Printf("warning: locale %q not found in %s, showing raw keys", locale, localeDir)
		return nil
	}
	return b
}
