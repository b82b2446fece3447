package reportstore

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"p9e.in/marinereport/models"
)

func testSnapshot(vessel string) models.Snapshot {
	form := models.NewReportForm()
	form.VesselName = vessel
	form.CustomerName = "Oceanic Shipping Ltd"
	form.ServiceTypes = models.ServiceSelection{
		Selected:        []string{models.ServiceInspection, models.ServiceOthers},
		OthersQualifier: "Leak test",
	}
	return models.Snapshot{
		Form: form,
		Photos: []models.Photo{
			{ID: uuid.New(), DataURL: "data:image/jpeg;base64,first", Caption: "engine room"},
			{ID: uuid.New(), DataURL: "data:image/jpeg;base64,second", Caption: "main deck"},
		},
		SavedAt: models.JSONTime(time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)),
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := New(NewMemory())
	snap := testSnapshot("Sea Wolf")

	if err := store.Save("SEAWOLF160925", snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load("SEAWOLF160925")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load: record absent immediately after Save")
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("loaded snapshot differs from saved:\n got %+v\nwant %+v", got, snap)
	}
}

func TestLoadAbsentKey(t *testing.T) {
	store := New(NewMemory())
	_, ok, err := store.Load("NOSUCH010101")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load reported a record for a key that was never saved")
	}
}

func TestLoadCorruptRecordIsAbsent(t *testing.T) {
	kv := NewMemory()
	if err := kv.Put("BROKEN010101", "{not json"); err != nil {
		t.Fatal(err)
	}

	store := New(kv)
	_, ok, err := store.Load("BROKEN010101")
	if err != nil {
		t.Fatalf("corrupt record must be absence, got error: %v", err)
	}
	if ok {
		t.Error("corrupt record reported as present")
	}
}

func TestLoadOlderSnapshotFillsDefaults(t *testing.T) {
	kv := NewMemory()
	// Minimal record from an older schema revision.
	if err := kv.Put("SEAWOLF160925", `{"form":{"vesselName":"Sea Wolf"}}`); err != nil {
		t.Fatal(err)
	}

	store := New(kv)
	snap, ok, err := store.Load("SEAWOLF160925")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if snap.Form.VesselName != "Sea Wolf" {
		t.Errorf("VesselName = %q", snap.Form.VesselName)
	}
	if snap.Form.ReportType != models.ReportTypeService {
		t.Errorf("ReportType = %q, expected default for a field the snapshot predates", snap.Form.ReportType)
	}
	if snap.Form.Company != models.CompanyPoseidon {
		t.Errorf("Company = %q, expected default", snap.Form.Company)
	}
}

func TestOverwriteIsLastWriteWins(t *testing.T) {
	store := New(NewMemory())

	first := testSnapshot("Sea Wolf")
	second := testSnapshot("Sea Wolf")
	second.Form.Findings = "second save"

	if err := store.Save("SEAWOLF160925", first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("SEAWOLF160925", second); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := store.Load("SEAWOLF160925")
	if !ok || got.Form.Findings != "second save" {
		t.Errorf("expected the second write to win, got findings %q", got.Form.Findings)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("overwrite produced %d records, expected 1", len(entries))
	}
}

func TestListSkipsCorruptAndOrdersDescending(t *testing.T) {
	kv := NewMemory()
	store := New(kv)

	if err := store.Save("AURORA010125", testSnapshot("Aurora")); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("SEAWOLF160925", testSnapshot("Sea Wolf")); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("MERIDIAN050325", testSnapshot("Meridian")); err != nil {
		t.Fatal(err)
	}
	// Corrupt entry must be skipped, not listed and not an error.
	if err := kv.Put("ZZCORRUPT", "not json at all"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	want := []string{"SEAWOLF160925", "MERIDIAN050325", "AURORA010125"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List keys = %v, expected descending %v", keys, want)
	}

	for _, e := range entries {
		if e.Preview == "" {
			t.Errorf("entry %s has no preview despite photos", e.Key)
		}
		if !strings.HasPrefix(e.Preview, "data:image/jpeg;base64,first") {
			t.Errorf("entry %s preview = %q, expected the first photo", e.Key, e.Preview)
		}
	}
}

func TestListEmptyPhotoListHasNoPreview(t *testing.T) {
	store := New(NewMemory())
	snap := testSnapshot("Sea Wolf")
	snap.Photos = []models.Photo{}

	if err := store.Save("SEAWOLF160925", snap); err != nil {
		t.Fatal(err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Preview != "" {
		t.Errorf("entries = %+v, expected one entry without preview", entries)
	}
}

func TestQuotaSurfacesAsErrQuota(t *testing.T) {
	store := New(NewMemoryWithQuota(64))

	snap := testSnapshot("Sea Wolf") // serializes well past 64 bytes
	err := store.Save("SEAWOLF160925", snap)
	if !errors.Is(err, ErrQuota) {
		t.Fatalf("Save = %v, expected ErrQuota", err)
	}

	// The failed write must not leave a partial record behind.
	if _, ok, _ := store.Load("SEAWOLF160925"); ok {
		t.Error("record present after quota failure")
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	store := New(NewMemory())
	if err := store.Save("SEAWOLF160925", testSnapshot("Sea Wolf")); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete("SEAWOLF160925"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Load("SEAWOLF160925"); ok {
		t.Error("record still present after delete")
	}

	// Deleting an absent key is a no-op.
	if err := store.Delete("SEAWOLF160925"); err != nil {
		t.Errorf("deleting absent key: %v", err)
	}
}
