package files

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

const (
	DefaultWorkspaceFile = "workspace.yaml"
)

// LoadWorkspace reads a workspace file. A missing file yields an empty workspace.
func LoadWorkspace(path string) (*models.Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ws := &models.Workspace{Tags: []models.Tag{}}
			ws.Normalize()
			return ws, nil
		}
		return nil, fmt.Errorf("failed to read workspace %s: %w", path, err)
	}

	ws, err := ParseWorkspace(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workspace %s: %w", path, err)
	}
	return ws, nil
}

// ParseWorkspace decodes workspace YAML and fills defaults
func ParseWorkspace(data []byte) (*models.Workspace, error) {
	var ws models.Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}
	if ws.Tags == nil {
		ws.Tags = []models.Tag{}
	}
	ws.Normalize()
	return &ws, nil
}

// WriteWorkspace encodes the workspace as YAML to w
func WriteWorkspace(w io.Writer, ws *models.Workspace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ws); err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	return enc.Close()
}

// SaveWorkspace writes the workspace to path, replacing the file atomically
func SaveWorkspace(path string, ws *models.Workspace) error {
	var buf bytes.Buffer
	if err := WriteWorkspace(&buf, ws); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".workspace-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write workspace: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write workspace: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", path, err)
	}
	return nil
}
