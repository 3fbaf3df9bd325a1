package seed

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed manifests/*.json
var manifestFS embed.FS

// DefaultManifestName names the manifest bundled with the binary.
const DefaultManifestName = "jppf-links"

// Manifest declares link groups and their links.
type Manifest struct {
	Name   string          `json:"name"`
	Groups []ManifestGroup `json:"groups"`
}

// ManifestGroup declares one directory category.
type ManifestGroup struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Links       []ManifestLink `json:"links,omitempty"`
}

// ManifestLink declares one directory entry inside its group.
type ManifestLink struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// LoadManifest reads a manifest file. An empty path loads the bundled manifest.
func LoadManifest(path string) (Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultManifest()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return decodeManifest(data)
}

// DefaultManifest returns the bundled JPPF link directory.
func DefaultManifest() (Manifest, error) {
	data, err := manifestFS.ReadFile("manifests/" + DefaultManifestName + ".json")
	if err != nil {
		return Manifest{}, fmt.Errorf("read bundled manifest: %w", err)
	}
	return decodeManifest(data)
}

func decodeManifest(data []byte) (Manifest, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var manifest Manifest
	if err := decoder.Decode(&manifest); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("decode manifest: trailing data")
	}
	return manifest, nil
}

// ValidateManifest checks identifiers and required fields before any write.
func ValidateManifest(manifest Manifest) error {
	if strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("manifest name is required")
	}
	groupIDs := make(map[int64]struct{}, len(manifest.Groups))
	for gi, group := range manifest.Groups {
		if group.ID <= 0 {
			return fmt.Errorf("groups[%d]: id must be positive", gi)
		}
		if _, ok := groupIDs[group.ID]; ok {
			return fmt.Errorf("groups[%d]: duplicate group id %d", gi, group.ID)
		}
		groupIDs[group.ID] = struct{}{}
		if strings.TrimSpace(group.Description) == "" {
			return fmt.Errorf("group %d: description is required", group.ID)
		}

		linkIDs := make(map[int64]struct{}, len(group.Links))
		for li, link := range group.Links {
			if link.ID <= 0 {
				return fmt.Errorf("group %d links[%d]: id must be positive", group.ID, li)
			}
			if _, ok := linkIDs[link.ID]; ok {
				return fmt.Errorf("group %d links[%d]: duplicate link id %d", group.ID, li, link.ID)
			}
			linkIDs[link.ID] = struct{}{}
			if strings.TrimSpace(link.URL) == "" {
				return fmt.Errorf("group %d link %d: url is required", group.ID, link.ID)
			}
			if strings.TrimSpace(link.Title) == "" {
				return fmt.Errorf("group %d link %d: title is required", group.ID, link.ID)
			}
		}
	}
	return nil
}
