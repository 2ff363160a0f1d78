package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"djtracker/internal/domain/entity"
)

// File reads the player profile from a YAML document on every call so edits
// show up without a restart.
type File struct {
	path string
}

func NewFile(path string) File {
	return File{path: path}
}

// Profile returns an empty profile when no path is configured.
func (f File) Profile(_ context.Context) (entity.Profile, error) {
	if f.path == "" {
		return entity.Profile{}, nil
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var p entity.Profile
	if err = yaml.Unmarshal(raw, &p); err != nil {
		return entity.Profile{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	p.DJName = strings.TrimSpace(p.DJName)
	p.InfinitasID = strings.TrimSpace(p.InfinitasID)
	p.SPClass = strings.TrimSpace(p.SPClass)
	p.DPClass = strings.TrimSpace(p.DPClass)
	p.Area = strings.TrimSpace(p.Area)

	return p, nil
}
