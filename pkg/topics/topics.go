// Package topics provides file-backed help topics for the CLI, rendered as
// rich markdown where the terminal supports it.
package topics

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calehb/evoke/pkg/errors"
)

// Topic represents a single help topic
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Manager holds the topics found in a file system
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures the Manager
type Options struct {
	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// NewFromFS scans fsys for .md and .txt files and builds a Manager over them.
// Topic names are the file names without extension.
func NewFromFS(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Ext:     ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan help topics")
	}

	return m, nil
}

// List returns the available topic names in sorted order
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show returns the rendered content of the named topic
func (m *Manager) Show(name string) (string, error) {
	topic, ok := m.topics[name]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown help topic %q (available: %s)",
			name, strings.Join(m.List(), ", "))
	}
	return m.renderer.Render(topic.Content, topic.Ext), nil
}
