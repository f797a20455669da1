package acquisition

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"shortlist/internal/logging"
	"shortlist/internal/photo"
	"shortlist/internal/services"
	"shortlist/internal/status"
)

// Entry is one candidate file found by a folder scan.
type Entry struct {
	Path string
	Name string
	Size int64
}

// Scan lists the allow-listed image files in folder, sorted
// case-insensitively by display name. An unreadable folder returns an empty
// result and a scan error; nothing else about the session is touched.
func (p *Pipeline) Scan(folder string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, services.Wrap(services.ErrScan, "acquisition", "scan", folder, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !p.cfg.AllowsExtension(filepath.Ext(name)) {
			continue
		}
		var size int64
		if info, err := de.Info(); err == nil {
			size = info.Size()
		}
		entries = append(entries, Entry{
			Path: filepath.Join(folder, name),
			Name: norm.NFC.String(name),
			Size: size,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a == b {
			return entries[i].Name < entries[j].Name
		}
		return a < b
	})

	p.logger.Debug("folder scanned",
		logging.String(logging.FieldFolder, folder),
		logging.Int("candidates", len(entries)),
	)
	return entries, nil
}

// BuildLibrary turns scan entries into records, deriving each initial status
// from the stored color label. A label read failure is treated as "no label";
// it is never fatal.
func (p *Pipeline) BuildLibrary(entries []Entry) *photo.Library {
	records := make([]*photo.Record, 0, len(entries))
	for _, entry := range entries {
		label, err := p.store.ReadLabel(entry.Path)
		if err != nil {
			p.logger.Debug("label read failed; treating as unset",
				logging.String(logging.FieldPhoto, entry.Name),
				logging.Error(err),
			)
			label = ""
		}
		records = append(records, photo.NewRecord(entry.Path, entry.Size, status.FromTag(label)))
	}
	return photo.NewLibrary(records)
}
