package reportstore

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"p9e.in/marinereport/models"
)

// Store serializes report snapshots in and out of a KV. One logical
// writer (the local user) and last-write-wins on key collision; there
// is no versioning.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// ListEntry is one row of the saved-report picker. Preview is the
// first photo's data URL when the record has photos.
type ListEntry struct {
	Key     string          `json:"key"`
	Preview string          `json:"preview,omitempty"`
	SavedAt models.JSONTime `json:"savedAt"`
}

// Save writes the snapshot under key, overwriting any prior record.
// A quota failure comes back as ErrQuota so the caller can report a
// save failure; the caller's form state is untouched either way.
func (s *Store) Save(key string, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serialize record %q: %w", key, err)
	}
	return s.kv.Put(key, string(raw))
}

// Load reads the snapshot saved under key. A missing key and a stored
// value that no longer parses are both reported as absence; corruption
// is logged for diagnostics but never surfaced as an error. The stored
// JSON is merged over a fresh default form so snapshots from older
// schema revisions load with defaults in the fields they predate.
func (s *Store) Load(key string) (models.Snapshot, bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("read record %q: %w", key, err)
	}
	if !ok {
		return models.Snapshot{}, false, nil
	}

	var patch models.SnapshotPatch
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		log.Printf("reportstore: record %q is corrupt, treating as absent: %v", key, err)
		return models.Snapshot{}, false, nil
	}

	snap := models.MergeSnapshot(models.Snapshot{Form: models.NewReportForm()}, patch)
	return snap, true, nil
}

// List enumerates every saved record, skipping values that fail to
// parse. Ordering is descending lexicographic by key, kept for
// compatibility with existing saved-report pickers; keys end in DDMMYY
// so this clusters but does not chronologically sort — SavedAt is
// included so clients can re-sort properly.
func (s *Store) List() ([]ListEntry, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("enumerate records: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	entries := make([]ListEntry, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := s.kv.Get(key)
		if err != nil || !ok {
			continue
		}
		var snap models.Snapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			log.Printf("reportstore: skipping corrupt record %q: %v", key, err)
			continue
		}
		entry := ListEntry{Key: key, SavedAt: snap.SavedAt}
		if len(snap.Photos) > 0 {
			entry.Preview = snap.Photos[0].DataURL
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Delete removes a saved record. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	return s.kv.Delete(key)
}
