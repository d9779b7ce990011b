package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/miniapps/internal/config"
	"github.com/jask/miniapps/internal/database"
	"github.com/jask/miniapps/internal/database/repository"
	"github.com/jask/miniapps/internal/miniapp"
	"github.com/jask/miniapps/internal/prefs"
	"github.com/jask/miniapps/internal/secrets"
	"github.com/jask/miniapps/internal/service"
	"github.com/jask/miniapps/internal/tui"
	"github.com/jask/miniapps/internal/weather"
)

func main() {
	storeKey := flag.String("store-key", "", "read an API key for `provider` from stdin into the secret store and exit")
	deleteKey := flag.String("delete-key", "", "remove the stored API key for `provider` and exit")
	writeCfg := flag.Bool("write-config", false, "write the effective configuration to the config file and exit")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	keys, err := secrets.DefaultStore()
	if err != nil {
		log.Printf("warn: secret store unavailable: %v", err)
	}
	if *storeKey != "" {
		if err := storeProviderKey(keys, *storeKey, os.Stdin); err != nil {
			log.Fatalf("store key: %v", err)
		}
		fmt.Printf("stored key for %s\n", *storeKey)
		return
	}
	if *deleteKey != "" {
		if err := deleteProviderKey(keys, *deleteKey); err != nil {
			log.Fatalf("delete key: %v", err)
		}
		fmt.Printf("deleted key for %s\n", *deleteKey)
		return
	}
	if *writeCfg {
		path, err := writeConfig(cfg)
		if err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	gazetteer, err := weather.LoadGazetteer(cfg.Weather.Gazetteer)
	if err != nil {
		log.Fatalf("gazetteer: %v", err)
	}

	// repositories
	resultRepo := repository.NewResultRepo(db)
	cacheRepo := repository.NewWeatherCacheRepo(db)

	provider := weatherProvider(cfg.Weather, resolveAPIKey(cfg.Weather, keys))

	forecast := &service.ForecastService{
		Provider:  provider,
		Gazetteer: gazetteer,
		Cache:     cacheRepo,
		TTL:       cfg.Weather.CacheTTL,
		Timeout:   cfg.Weather.Timeout,
	}
	results := &service.ResultsService{Results: resultRepo}
	maintenance := &service.MaintenanceService{DB: db}

	prefStore, err := prefs.DefaultStore()
	if err != nil {
		log.Printf("warn: preferences disabled: %v", err)
	}
	saved := prefs.Prefs{DisplayMode: cfg.UI.DisplayMode}
	if prefStore != nil {
		if p, err := prefStore.Load(); err != nil {
			log.Printf("warn: load prefs: %v", err)
		} else {
			if p.DisplayMode != "" {
				saved.DisplayMode = p.DisplayMode
			}
			saved.LastCity = p.LastCity
		}
	}
	city := cfg.Weather.DefaultCity
	if saved.LastCity != "" {
		city = saved.LastCity
	}

	roster, err := miniapp.NewRoster(cfg.UI.Roster, miniapp.Deps{
		Ctx:     ctx,
		Weather: forecast,
		City:    city,
		Places:  gazetteer.Names(),
	})
	if err != nil {
		log.Fatalf("roster: %v", err)
	}

	// The alternate screen owns stdout from here on.
	if cfg.UI.LogFile != "" {
		f, err := tea.LogToFile(cfg.UI.LogFile, "miniapps")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.New(ctx, roster,
		tui.Services{Results: results, Maintenance: maintenance, Prefs: prefStore},
		saved,
	), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func weatherProvider(cfg config.WeatherConfig, apiKey string) weather.Provider {
	client := &http.Client{Timeout: cfg.Timeout}
	switch providerName(cfg) {
	case "openweathermap":
		return weather.NewOpenWeatherMap(client, cfg.BaseURL, apiKey)
	default:
		return weather.NewOpenMeteo(client, cfg.BaseURL)
	}
}

func providerName(cfg config.WeatherConfig) string {
	switch name := strings.ToLower(strings.TrimSpace(cfg.Provider)); name {
	case "openweathermap", "owm":
		return "openweathermap"
	default:
		return "open-meteo"
	}
}

// resolveAPIKey prefers the environment, then the secret store, then the
// config file. open-meteo needs no key.
func resolveAPIKey(cfg config.WeatherConfig, keys *secrets.Store) string {
	provider := providerName(cfg)
	if provider == "open-meteo" {
		return ""
	}
	env := strings.TrimSpace(cfg.APIKeyEnv)
	if env == "" {
		env = "OPENWEATHERMAP_API_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if keys != nil {
		if k, err := keys.Get(provider); err == nil {
			return k
		}
	}
	return strings.TrimSpace(cfg.APIKey)
}

func storeProviderKey(keys *secrets.Store, provider string, in io.Reader) error {
	if keys == nil {
		return fmt.Errorf("secret store unavailable")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("empty key")
	}
	return keys.Put(provider, line)
}

func deleteProviderKey(keys *secrets.Store, provider string) error {
	if keys == nil {
		return fmt.Errorf("secret store unavailable")
	}
	if err := keys.Delete(provider); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return fmt.Errorf("no key stored for %s", provider)
		}
		return err
	}
	return nil
}

// writeConfig saves cfg, defaults included, so it can be edited by hand.
func writeConfig(cfg config.Config) (string, error) {
	if err := config.Save(cfg); err != nil {
		return "", err
	}
	return config.Path(), nil
}
