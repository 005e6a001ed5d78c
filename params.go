package animgen

import (
	"errors"
	"fmt"
	"strings"
)

// Params is the complete parameter set of one animation.
type Params struct {
	DurationMs     int `json:"duration" yaml:"duration" koanf:"duration"`
	DelayMs        int `json:"delay" yaml:"delay" koanf:"delay"`
	IterationCount int `json:"iteration" yaml:"iteration" koanf:"iteration"` // 0 = infinite
	TranslateXPx   int `json:"translate_x" yaml:"translate-x" koanf:"translate-x"`
	TranslateYPx   int `json:"translate_y" yaml:"translate-y" koanf:"translate-y"`
	RotateDeg      int `json:"rotate" yaml:"rotate" koanf:"rotate"`
	ScalePercent   int `json:"scale" yaml:"scale" koanf:"scale"` // 100 = original size
}

// DefaultParams returns the starting parameter set: one 1000ms run with no transform.
func DefaultParams() Params {
	return Params{
		DurationMs:     1000,
		DelayMs:        0,
		IterationCount: 1,
		TranslateXPx:   0,
		TranslateYPx:   0,
		RotateDeg:      0,
		ScalePercent:   100,
	}
}

// Range is the closed interval and step grid a field may take.
type Range struct {
	Min  int
	Max  int
	Step int
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// OnStep reports whether v lies on the step grid anchored at Min.
func (r Range) OnStep(v int) bool {
	if r.Step <= 1 {
		return true
	}
	return (v-r.Min)%r.Step == 0
}

// Clamp forces v into the range and snaps it to the nearest step (ties round up).
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	if r.Step <= 1 {
		return v
	}
	off := v - r.Min
	snapped := r.Min + (off+r.Step/2)/r.Step*r.Step
	if snapped > r.Max {
		snapped -= r.Step
	}
	return snapped
}

// Field describes one parameter of Params.
type Field struct {
	Name  string // "Duration"
	Key   string // "duration" (config and preset key)
	Unit  string // "ms"
	Range Range
	Get   func(Params) int
	set   func(*Params, int)
}

var fields = []Field{
	{
		Name: "Duration", Key: "duration", Unit: "ms",
		Range: Range{Min: 100, Max: 5000, Step: 100},
		Get:   func(p Params) int { return p.DurationMs },
		set:   func(p *Params, v int) { p.DurationMs = v },
	},
	{
		Name: "Delay", Key: "delay", Unit: "ms",
		Range: Range{Min: 0, Max: 2000, Step: 100},
		Get:   func(p Params) int { return p.DelayMs },
		set:   func(p *Params, v int) { p.DelayMs = v },
	},
	{
		Name: "Iteration", Key: "iteration", Unit: "",
		Range: Range{Min: 0, Max: 10, Step: 1},
		Get:   func(p Params) int { return p.IterationCount },
		set:   func(p *Params, v int) { p.IterationCount = v },
	},
	{
		Name: "Translate X", Key: "translate-x", Unit: "px",
		Range: Range{Min: -200, Max: 200, Step: 5},
		Get:   func(p Params) int { return p.TranslateXPx },
		set:   func(p *Params, v int) { p.TranslateXPx = v },
	},
	{
		Name: "Translate Y", Key: "translate-y", Unit: "px",
		Range: Range{Min: -200, Max: 200, Step: 5},
		Get:   func(p Params) int { return p.TranslateYPx },
		set:   func(p *Params, v int) { p.TranslateYPx = v },
	},
	{
		Name: "Rotate", Key: "rotate", Unit: "deg",
		Range: Range{Min: -360, Max: 360, Step: 5},
		Get:   func(p Params) int { return p.RotateDeg },
		set:   func(p *Params, v int) { p.RotateDeg = v },
	},
	{
		Name: "Scale", Key: "scale", Unit: "%",
		Range: Range{Min: 50, Max: 200, Step: 5},
		Get:   func(p Params) int { return p.ScalePercent },
		set:   func(p *Params, v int) { p.ScalePercent = v },
	},
}

// Fields returns the parameter domain table in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField finds a field by its config key.
func LookupField(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// With returns a copy of p with the field named by key set to v.
// Unknown keys leave p unchanged and report false.
func (p Params) With(key string, v int) (Params, bool) {
	f, ok := LookupField(key)
	if !ok {
		return p, false
	}
	f.set(&p, v)
	return p, true
}

// Validation errors
var (
	ErrOutOfRange = errors.New("value out of range")
	ErrOffStep    = errors.New("value not on step")
)

// FieldError reports a single invalid field.
type FieldError struct {
	Field Field
	Value int
	Err   error // ErrOutOfRange or ErrOffStep
}

func (e *FieldError) Error() string {
	r := e.Field.Range
	if errors.Is(e.Err, ErrOffStep) {
		return fmt.Sprintf("%s: %d%s is not a multiple of %d from %d", e.Field.Key, e.Value, e.Field.Unit, r.Step, r.Min)
	}
	return fmt.Sprintf("%s: %d%s outside [%d, %d]", e.Field.Key, e.Value, e.Field.Unit, r.Min, r.Max)
}

func (e *FieldError) Unwrap() error { return e.Err }

// DomainError aggregates every invalid field of a Params value.
type DomainError struct {
	Fields []*FieldError
}

func (e *DomainError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return "invalid animation parameters: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the field errors to errors.Is and errors.As.
func (e *DomainError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}
	return errs
}

// CheckField validates a single value against a field's domain.
// It returns nil, or a *FieldError wrapping ErrOutOfRange or ErrOffStep.
func CheckField(f Field, v int) *FieldError {
	switch {
	case !f.Range.Contains(v):
		return &FieldError{Field: f, Value: v, Err: ErrOutOfRange}
	case !f.Range.OnStep(v):
		return &FieldError{Field: f, Value: v, Err: ErrOffStep}
	}
	return nil
}

// Validate checks every field. It returns nil or a *DomainError.
func (p Params) Validate() error {
	var bad []*FieldError
	for _, f := range fields {
		if fe := CheckField(f, f.Get(p)); fe != nil {
			bad = append(bad, fe)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &DomainError{Fields: bad}
}

// Clamp returns p with every field forced into its domain.
func (p Params) Clamp() Params {
	for _, f := range fields {
		f.set(&p, f.Range.Clamp(f.Get(p)))
	}
	return p
}

// NewParams returns p unchanged if every field is within its domain.
func NewParams(p Params) (Params, error) {
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
