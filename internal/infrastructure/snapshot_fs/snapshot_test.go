package snapshot_fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davarch/ci-env/internal/domain"
)

func TestSnapshot_WriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "facts.json")

	s := New(path)
	s.now = func() time.Time { return time.Unix(123, 0) }
	f := domain.Facts{CI: domain.Travis, Branch: "main", Repo: "owner/repo", ParallelTotal: 2}
	if err := s.Write(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["ci"] != "travis" || got["repo"] != "owner/repo" || got["retrieved"] != float64(123) {
		t.Errorf("unexpected snapshot: %s", b)
	}
	if _, ok := got["pull_request"]; ok {
		t.Errorf("absent pull request must be omitted: %s", b)
	}
}

func TestSnapshot_EmptyPath(t *testing.T) {
	if err := New("").Write(context.Background(), domain.Facts{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSnapshot_CreateErrorNamesPath(t *testing.T) {
	dir := t.TempDir()
	err := New(dir).Write(context.Background(), domain.Facts{})
	if err == nil {
		t.Fatal("expected error writing over a directory")
	}
	if !strings.Contains(err.Error(), "create snapshot "+dir) {
		t.Errorf("unexpected error: %v", err)
	}
}
