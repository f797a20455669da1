package acquisition_test

import (
	"errors"
	"path/filepath"
	"testing"

	"shortlist/internal/acquisition"
	"shortlist/internal/services"
	"shortlist/internal/status"
	"shortlist/internal/testsupport"
)

func newPipeline(t *testing.T) (*acquisition.Pipeline, *testsupport.MemTagStore, *testsupport.StubDecoder) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.NewMemTagStore()
	dec := testsupport.NewStubDecoder()
	return acquisition.New(cfg, dec, store, nil), store, dec
}

func TestScanSortsByDisplayName(t *testing.T) {
	p, _, _ := newPipeline(t)
	dir := testsupport.WritePhotoDir(t, t.TempDir(), "b.jpg", "a.jpg")

	entries, err := p.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "a.jpg" || entries[1].Name != "b.jpg" {
		t.Fatalf("entries = %v, want [a.jpg b.jpg]", entries)
	}
}

func TestScanFiltersExtensionsCaseInsensitively(t *testing.T) {
	p, _, _ := newPipeline(t)
	dir := testsupport.WritePhotoDir(t, t.TempDir(), "keep.JPG", "keep2.png", "skip.txt", "skip.raw")

	entries, err := p.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %v, want only image files", entries)
	}
	for _, e := range entries {
		if e.Name == "skip.txt" || e.Name == "skip.raw" {
			t.Fatalf("disallowed extension survived: %v", e)
		}
	}
}

func TestScanSkipsSubdirectories(t *testing.T) {
	p, _, _ := newPipeline(t)
	dir := t.TempDir()
	testsupport.WritePhotoDir(t, dir, "a.jpg")
	testsupport.WritePhotoDir(t, filepath.Join(dir, "nested.jpg"), "inner.jpg")

	entries, err := p.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "a.jpg" {
		t.Fatalf("entries = %v, want just a.jpg", entries)
	}
}

func TestScanUnreadableFolder(t *testing.T) {
	p, _, _ := newPipeline(t)

	entries, err := p.Scan(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, services.ErrScan) {
		t.Fatalf("expected ErrScan, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %v", entries)
	}
}

func TestBuildLibraryDerivesStatusFromLabels(t *testing.T) {
	p, store, _ := newPipeline(t)
	dir := testsupport.WritePhotoDir(t, t.TempDir(), "a.jpg", "b.jpg", "c.jpg", "d.jpg")

	store.Seed(filepath.Join(dir, "a.jpg"), "Green")
	store.Seed(filepath.Join(dir, "b.jpg"), "Yellow")
	store.Seed(filepath.Join(dir, "c.jpg"), "Red")
	store.Seed(filepath.Join(dir, "d.jpg"), "Polka Dot")

	entries, err := p.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lib := p.BuildLibrary(entries)

	want := []status.Label{status.Champion, status.Displaced, status.Rejected, status.Unset}
	for i, label := range want {
		if got := lib.At(i).Status; got != label {
			t.Errorf("record %d status = %v, want %v", i, got, label)
		}
	}
}
