// Package scenario loads table layouts and pending change batches from
// YAML, for driving the reconciler from the command line and from tests.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/errors"
	"github.com/go-drift/tablediff/pkg/reconcile"
	"github.com/go-drift/tablediff/pkg/table"
)

// SupportedMajor is the scenario schema major version this loader accepts.
const SupportedMajor = "v1"

// File mirrors the YAML scenario document.
type File struct {
	Version  string        `yaml:"version,omitempty"`
	Sections []SectionSpec `yaml:"sections"`
	Changes  []ChangeSpec  `yaml:"changes,omitempty"`
}

// SectionSpec describes one section and its initial visibility.
type SectionSpec struct {
	ID     string    `yaml:"id"`
	Hidden bool      `yaml:"hidden,omitempty"`
	Rows   []RowSpec `yaml:"rows,omitempty"`
}

// RowSpec describes one row and its initial visibility.
type RowSpec struct {
	ID     string `yaml:"id"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// ChangeSpec describes one pending change request.
// Target is a section id, or "section/row" for row-level ops.
// Animation defaults to automatic.
type ChangeSpec struct {
	Op        string `yaml:"op"`
	Target    string `yaml:"target"`
	Animation string `yaml:"animation,omitempty"`
}

// Scenario is a loaded scenario: the table in its initial visibility state
// plus the recorded change batch, ready for a reconciler.
type Scenario struct {
	Table   *table.Table
	Changes reconcile.ChangeSet

	sections map[string]*table.Section
	rows     map[string]*table.Row
}

// Section returns the section with the given id, or nil.
func (s *Scenario) Section(id string) *table.Section {
	return s.sections[id]
}

// Row returns the row at "section/row", or nil.
func (s *Scenario) Row(path string) *table.Row {
	return s.rows[path]
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse builds a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	const op = "scenario.Parse"

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindParse, Err: err}
	}

	version := strings.TrimSpace(file.Version)
	if version == "" {
		version = SupportedMajor
	}
	if !semver.IsValid(version) {
		return nil, errors.New(op, errors.KindParse, "invalid scenario version %q", version)
	}
	if semver.Major(version) != SupportedMajor {
		return nil, errors.New(op, errors.KindParse,
			"unsupported scenario version %q (want %s)", version, SupportedMajor)
	}
	if len(file.Sections) == 0 {
		return nil, errors.New(op, errors.KindParse, "scenario has no sections")
	}

	sc := &Scenario{
		sections: make(map[string]*table.Section, len(file.Sections)),
		rows:     make(map[string]*table.Row),
	}

	sections := make([]*table.Section, 0, len(file.Sections))
	for _, spec := range file.Sections {
		if spec.ID == "" {
			return nil, errors.New(op, errors.KindParse, "section without id")
		}
		if _, dup := sc.sections[spec.ID]; dup {
			return nil, errors.New(op, errors.KindParse, "duplicate section id %q", spec.ID)
		}
		rows := make([]*table.Row, 0, len(spec.Rows))
		for _, rowSpec := range spec.Rows {
			if rowSpec.ID == "" {
				return nil, errors.New(op, errors.KindParse, "row without id in section %q", spec.ID)
			}
			path := spec.ID + "/" + rowSpec.ID
			if _, dup := sc.rows[path]; dup {
				return nil, errors.New(op, errors.KindParse, "duplicate row id %q", path)
			}
			r := table.NewRow()
			r.Tag = path
			sc.rows[path] = r
			rows = append(rows, r)
		}
		s := table.NewSection(rows...)
		s.Tag = spec.ID
		sc.sections[spec.ID] = s
		sections = append(sections, s)
	}
	sc.Table = table.New(sections...)

	// Initial visibility, applied after construction: the model starts
	// all-visible and the flags describe what the surface currently shows.
	for _, spec := range file.Sections {
		if spec.Hidden {
			sc.Table.SetSectionHidden(sc.sections[spec.ID], true)
		}
		for _, rowSpec := range spec.Rows {
			if rowSpec.Hidden {
				sc.Table.SetRowHidden(sc.rows[spec.ID+"/"+rowSpec.ID], true)
			}
		}
	}

	for i, change := range file.Changes {
		if err := sc.record(op, i, change); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (s *Scenario) record(op string, index int, change ChangeSpec) error {
	style := animation.Automatic
	if change.Animation != "" {
		parsed, ok := animation.ParseStyle(change.Animation)
		if !ok {
			return errors.New(op, errors.KindParse,
				"change %d: unknown animation %q", index, change.Animation)
		}
		style = parsed
	}

	switch change.Op {
	case "showSection", "hideSection", "reloadSection":
		target := s.Section(change.Target)
		if target == nil {
			return errors.New(op, errors.KindParse,
				"change %d: unknown section %q", index, change.Target)
		}
		switch change.Op {
		case "showSection":
			s.Changes.ShowSection(target, style)
		case "hideSection":
			s.Changes.HideSection(target, style)
		default:
			s.Changes.ReloadSection(target, style)
		}
	case "showRow", "hideRow", "reloadRow":
		target := s.Row(change.Target)
		if target == nil {
			return errors.New(op, errors.KindParse,
				"change %d: unknown row %q", index, change.Target)
		}
		switch change.Op {
		case "showRow":
			s.Changes.ShowRow(target, style)
		case "hideRow":
			s.Changes.HideRow(target, style)
		default:
			s.Changes.ReloadRow(target, style)
		}
	default:
		return errors.New(op, errors.KindParse, "change %d: unknown op %q", index, change.Op)
	}
	return nil
}
