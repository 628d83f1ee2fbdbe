package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fathomworks/opsbrief/internal/intake"
	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/store"
)

// openStore builds the persistent KV store for session and reviewer state
func openStore(cfg *model.Config) store.Store {
	if cfg.Storage.MemoryOnly {
		return store.NewMemoryStore()
	}
	return store.NewLayeredStore(cfg.Storage.Dir)
}

// readIntake reads intake text from a file path, or stdin for "-"
func readIntake(path string, stripHTML bool) (string, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read intake: %w", err)
	}

	text := string(data)
	if stripHTML {
		flattened, err := intake.Flatten(text)
		if err != nil {
			return "", fmt.Errorf("flatten HTML intake: %w", err)
		}
		text = flattened
	}

	return text, nil
}

// slugFromPath derives an artifact base name from an intake file path
func slugFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	base = replacer.Replace(base)

	if len(base) > 100 {
		base = base[:100]
	}
	if base == "" {
		base = "brief"
	}
	return base
}
