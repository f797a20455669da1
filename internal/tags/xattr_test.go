package tags_test

import (
	"os"
	"path/filepath"
	"testing"

	"shortlist/internal/tags"
)

func TestXattrStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := tags.NewXattrStore("user.shortlist.test")

	if err := store.WriteLabel(path, "Green"); err != nil {
		// tmpfs and some CI filesystems reject user xattrs entirely.
		t.Skipf("filesystem does not support xattrs: %v", err)
	}

	label, err := store.ReadLabel(path)
	if err != nil {
		t.Fatalf("ReadLabel: %v", err)
	}
	if label != "Green" {
		t.Fatalf("label = %q, want Green", label)
	}

	if err := store.WriteLabel(path, ""); err != nil {
		t.Fatalf("remove label: %v", err)
	}
	label, err = store.ReadLabel(path)
	if err != nil {
		t.Fatalf("ReadLabel after remove: %v", err)
	}
	if label != "" {
		t.Fatalf("label = %q, want empty", label)
	}

	// Removing twice must stay a no-op.
	if err := store.WriteLabel(path, ""); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestXattrStoreMissingAttributeReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := tags.NewXattrStore("user.shortlist.test")
	label, err := store.ReadLabel(path)
	if err != nil {
		t.Skipf("filesystem does not support xattrs: %v", err)
	}
	if label != "" {
		t.Fatalf("label = %q, want empty", label)
	}
}

func TestDisabledStore(t *testing.T) {
	var store tags.Disabled
	if err := store.WriteLabel("/nonexistent", "Green"); err != nil {
		t.Fatalf("Disabled.WriteLabel: %v", err)
	}
	label, err := store.ReadLabel("/nonexistent")
	if err != nil || label != "" {
		t.Fatalf("Disabled.ReadLabel = (%q, %v), want empty", label, err)
	}
}
