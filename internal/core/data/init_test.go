package data

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/dcrodman/des/internal/core"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &core.Config{}
	cfg.Database.Engine = "SQLite"
	cfg.Database.Filename = filepath.Join(t.TempDir(), "vectors.db")

	db, err := Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	defer func() {
		if err := Close(db); err != nil {
			t.Errorf("Close() returned error: %v", err)
		}
	}()

	if !db.Migrator().HasTable(&Vector{}) {
		t.Errorf("Open() did not migrate the vectors table")
	}
}

func TestOpen_LogsToLogrus(t *testing.T) {
	cfg := &core.Config{}
	cfg.Database.Engine = "sqlite"
	cfg.Database.Filename = filepath.Join(t.TempDir(), "vectors.db")

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	db, err := Open(cfg, log)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	defer Close(db)

	if _, err := FindVectors(db); err != nil {
		t.Fatalf("FindVectors() returned error: %v", err)
	}
	if len(hook.AllEntries()) == 0 {
		t.Errorf("Open() at debug level did not log any SQL")
	}
}

func TestOpen_UnsupportedEngine(t *testing.T) {
	cfg := &core.Config{}
	cfg.Database.Engine = "mysql"

	if _, err := Open(cfg, nil); err == nil {
		t.Errorf("Open() expected an error for an unsupported engine")
	}
}
