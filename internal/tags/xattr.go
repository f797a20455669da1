package tags

import (
	"errors"
	"strings"
	"syscall"

	"github.com/pkg/xattr"

	"shortlist/internal/services"
)

// XattrStore persists labels in an extended attribute on the photo file.
type XattrStore struct {
	attribute string
}

// NewXattrStore builds a store writing to the given attribute name.
func NewXattrStore(attribute string) *XattrStore {
	return &XattrStore{attribute: attribute}
}

// ReadLabel returns the stored label, or "" when the attribute is absent or
// the filesystem does not support extended attributes.
func (s *XattrStore) ReadLabel(path string) (string, error) {
	value, err := xattr.Get(path, s.attribute)
	if err != nil {
		if isNoAttr(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(value)), nil
}

// WriteLabel stores label on the file; an empty label removes the attribute.
func (s *XattrStore) WriteLabel(path, label string) error {
	var err error
	if label == "" {
		err = xattr.Remove(path, s.attribute)
		if err != nil && isNoAttr(err) {
			return nil
		}
	} else {
		err = xattr.Set(path, s.attribute, []byte(label))
	}
	if err != nil {
		return services.Wrap(services.ErrTagWrite, "tags", "write", path, err)
	}
	return nil
}

func isNoAttr(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		err = xerr.Err
	}
	return errors.Is(err, xattr.ENOATTR) ||
		errors.Is(err, syscall.ENODATA) ||
		errors.Is(err, syscall.ENOTSUP)
}
