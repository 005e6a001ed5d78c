package animgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yacobolo/animgen"
	"gopkg.in/yaml.v3"
)

// ParseYAML reads a YAML preset:
//
//	name: slide-in
//	duration: 1000
//	iteration: 0
//	translate-x: 50
//	scale: 150
//
// Missing keys keep their defaults. Unknown keys and values that are not
// integers are reported as issues on the preset rather than as errors.
func ParseYAML(content []byte, filename string) (*Preset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty preset")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("preset must be a mapping, got %s", nodeKind(root))
	}

	preset := newPreset(content, filename)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value

		if key == "name" {
			if valNode.Value != "" {
				preset.Name = valNode.Value
			}
			continue
		}

		field, ok := animgen.LookupField(key)
		if !ok {
			preset.addIssue(SeverityWarning, fmt.Sprintf(IssueUnknownKey, key), Pos{keyNode.Line, keyNode.Column})
			continue
		}

		pos := Pos{valNode.Line, valNode.Column}
		var v int
		if err := valNode.Decode(&v); err != nil {
			preset.addIssue(SeverityError, fmt.Sprintf(IssueBadValue, field.Key, valNode.Value), pos)
			continue
		}

		preset.Params, _ = preset.Params.With(field.Key, v)
		preset.Positions[field.Key] = pos
	}

	return preset, nil
}

// newPreset creates a preset with default params named after the file
func newPreset(content []byte, filename string) *Preset {
	base := filepath.Base(filename)
	return &Preset{
		Name:       strings.TrimSuffix(base, filepath.Ext(base)),
		SourceFile: filename,
		Params:     animgen.DefaultParams(),
		Positions:  make(map[string]Pos),
		Lines:      strings.Split(string(content), "\n"),
	}
}

// addIssue records a parse problem at pos
func (p *Preset) addIssue(severity, text string, pos Pos) {
	p.Issues = append(p.Issues, Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: p.sourceLine(pos.Line),
		Pos: IssuePos{
			Filename: p.SourceFile,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	})
}

// sourceLine returns the 1-based line for issue context, or nil
func (p *Preset) sourceLine(line int) []string {
	if line < 1 || line > len(p.Lines) {
		return nil
	}
	return []string{strings.TrimRight(p.Lines[line-1], "\r")}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "mapping"
}
