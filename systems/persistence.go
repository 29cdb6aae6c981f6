package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/readtext"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

// Storage keys
const (
	settingsKey     = "settings"
	readTextKey     = "read-text"
	progressKey     = "progress"
	appreciationKey = "appreciation"
	saveKeyFormat   = "save_%d"
)

// ItemStore is the key/value persistence backend. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata store and points the read-text tracker at it
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		cfg.Log.WithError(err).Warn("Could not initialize persistence")
		return fmt.Errorf("open gdata: %w", err)
	}
	UseStore(m)
	return nil
}

// UseStore switches persistence to s. A nil store disables persistence and
// keeps read-text records in memory.
func UseStore(s ItemStore) {
	store = s
	if s == nil {
		ReadText = readtext.NewTracker(readtext.NewMemoryRepository())
		return
	}
	ReadText = readtext.NewTracker(newStoreReadTextRepository(s))
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(key)
	if err != nil {
		cfg.Log.WithFields(logrus.Fields{"key": key, "err": err}).Warn("Could not load item")
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		cfg.Log.WithFields(logrus.Fields{"key": key, "err": err}).Warn("Could not parse saved item")
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		cfg.Log.WithFields(logrus.Fields{"key": key, "err": err}).Warn("Could not serialize item")
		return fmt.Errorf("serialize %s: %w", key, err)
	}

	if err := store.SaveItem(key, data); err != nil {
		cfg.Log.WithFields(logrus.Fields{"key": key, "err": err}).Warn("Could not save item")
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func clearItem(key string) error {
	if store == nil {
		return nil
	}

	// Save empty data to clear the item
	if err := store.SaveItem(key, nil); err != nil {
		cfg.Log.WithFields(logrus.Fields{"key": key, "err": err}).Warn("Could not clear item")
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads user options from disk. ok is false when nothing was saved.
func LoadSettings() (opts components.OptionData, ok bool, err error) {
	ok, err = loadJSON(settingsKey, &opts)
	return opts, ok, err
}

// SaveSettings saves user options to disk
func SaveSettings(opts components.OptionData) error {
	return saveJSON(settingsKey, opts)
}

// LoadAppreciation loads the unlocked gallery items
func LoadAppreciation() components.AppreciationData {
	var a components.AppreciationData
	_, _ = loadJSON(appreciationKey, &a)
	return a
}

// SaveAppreciation saves the unlocked gallery items
func SaveAppreciation(a components.AppreciationData) error {
	return saveJSON(appreciationKey, a)
}

// LoadSlot returns the save in slot index, or nil when the slot is empty
func LoadSlot(index int) *components.SaveData {
	var s components.SaveData
	ok, err := loadJSON(fmt.Sprintf(saveKeyFormat, index), &s)
	if !ok || err != nil {
		return nil
	}
	return &s
}

// StoreSlot writes s into its slot
func StoreSlot(s *components.SaveData) error {
	return saveJSON(fmt.Sprintf(saveKeyFormat, s.Index), s)
}

// LoadGameProgress returns the auto-saved position, or nil
func LoadGameProgress() *components.SaveData {
	var s components.SaveData
	ok, err := loadJSON(progressKey, &s)
	if !ok || err != nil {
		return nil
	}
	return &s
}

// SaveGameProgress auto-saves the current position for Continue
func SaveGameProgress(s *components.SaveData) error {
	return saveJSON(progressKey, s)
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	return LoadGameProgress() != nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	return clearItem(progressKey)
}

// storeReadTextRepository keeps read-text records in memory and writes the
// whole list through on every replace.
type storeReadTextRepository struct {
	store   ItemStore
	records []readtext.Record
}

func newStoreReadTextRepository(s ItemStore) *storeReadTextRepository {
	r := &storeReadTextRepository{store: s, records: []readtext.Record{}}

	data, err := s.LoadItem(readTextKey)
	if err != nil {
		cfg.Log.WithError(err).Warn("Could not load read text")
		return r
	}
	if len(data) == 0 {
		return r
	}
	if err := json.Unmarshal(data, &r.records); err != nil {
		cfg.Log.WithError(err).Warn("Could not parse read text, starting empty")
		r.records = []readtext.Record{}
	}
	return r
}

func (r *storeReadTextRepository) List() []readtext.Record {
	return r.records
}

func (r *storeReadTextRepository) ReplaceAll(records []readtext.Record) {
	r.records = records

	data, err := json.Marshal(records)
	if err != nil {
		cfg.Log.WithError(err).Warn("Could not serialize read text")
		return
	}
	if err := r.store.SaveItem(readTextKey, data); err != nil {
		cfg.Log.WithFields(logrus.Fields{"records": len(records), "err": err}).Warn("Could not save read text")
	}
}
