package cli

import (
	"fmt"
	"os"

	"github.com/lazypower/filemru/internal/config"
	"github.com/lazypower/filemru/internal/menu"
	"github.com/lazypower/filemru/internal/mru"
	"github.com/lazypower/filemru/internal/persist"
)

func loadConfig() (config.Config, error) {
	path := os.Getenv("FILEMRU_CONFIG")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// openList builds a list over the configured store with an in-memory menu
// binding, loaded and ready. The returned close func releases the store.
func openList() (*mru.List, *menu.Model, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	store, err := persist.Open(cfg.Storage.Backend, cfg.Storage.Path, cfg.Location())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	model := menu.NewModel()
	list := mru.New(store, model)
	list.SetSaveState(cfg.State.SaveLastOpened)

	top, bottom := model.Anchors()
	if err := list.BindAnchors(top, bottom); err != nil {
		store.Close()
		return nil, nil, nil, fmt.Errorf("bind menu anchors: %w", err)
	}

	return list, model, func() { store.Close() }, nil
}
