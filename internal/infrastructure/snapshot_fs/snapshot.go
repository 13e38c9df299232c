package snapshot_fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/davarch/ci-env/internal/domain"
	"github.com/pkg/errors"
)

// FSSnapshot writes resolved facts to a JSON file for later build steps.
type FSSnapshot struct {
	path string
	now  func() time.Time
}

func New(path string) *FSSnapshot { return &FSSnapshot{path: path, now: time.Now} }

func (s *FSSnapshot) Write(_ context.Context, f domain.Facts) error {
	if s.path == "" {
		return errors.New("snapshot path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "create snapshot %s", s.path)
	}
	defer func() { _ = file.Close() }()

	type out struct {
		domain.Facts
		Retrieved int64 `json:"retrieved"`
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")

	return enc.Encode(out{Facts: f, Retrieved: s.now().Unix()})
}
