package animgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/animgen"
)

func TestParseCSSRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		params animgen.Params
	}{
		{
			name:   "defaults",
			params: animgen.DefaultParams(),
		},
		{
			name: "full transform",
			params: animgen.Params{
				DurationMs: 1000, DelayMs: 0, IterationCount: 1,
				TranslateXPx: 50, TranslateYPx: -20, RotateDeg: 90, ScalePercent: 150,
			},
		},
		{
			name: "infinite with delay",
			params: animgen.Params{
				DurationMs: 4800, DelayMs: 1200, IterationCount: 0,
				TranslateXPx: -200, TranslateYPx: 195, RotateDeg: -360, ScalePercent: 55,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := animgen.Keyframes(tt.params) +
				"\n\n.box {\n  animation: " + animgen.Shorthand(tt.params) + ";\n}\n"

			preset, err := ParseCSS(content, "anims/bounce.css")
			require.NoError(t, err)
			assert.Equal(t, tt.params, preset.Params)
			assert.Equal(t, "bounce", preset.Name)
			assert.Empty(t, preset.Issues)
		})
	}
}

func TestParseCSS(t *testing.T) {
	tests := []struct {
		name   string
		css    string
		check  func(*testing.T, *Preset)
		issues []string
	}{
		{
			name: "to selector and individual translate functions",
			css: `@keyframes drift {
  from { transform: none; }
  to { transform: translateX(-40px) translateY(15px) rotateZ(45deg); }
}`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, -40, p.Params.TranslateXPx)
				assert.Equal(t, 15, p.Params.TranslateYPx)
				assert.Equal(t, 45, p.Params.RotateDeg)
				assert.Equal(t, 100, p.Params.ScalePercent)
			},
		},
		{
			name: "single-argument translate and seconds",
			css: `.card { animation: pop 1.5s ease-out .3s infinite; }
@-webkit-keyframes pop { 0%, 100% { transform: translate(10px) scale(2); } }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 1500, p.Params.DurationMs)
				assert.Equal(t, 300, p.Params.DelayMs)
				assert.Equal(t, 0, p.Params.IterationCount)
				assert.Equal(t, 10, p.Params.TranslateXPx)
				assert.Equal(t, 0, p.Params.TranslateYPx)
				assert.Equal(t, 200, p.Params.ScalePercent)
			},
		},
		{
			name: "unitless zero",
			css:  `@keyframes z { 100% { transform: translate(0, 0) rotate(0); } }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, animgen.DefaultParams(), p.Params)
			},
		},
		{
			name: "unsupported function and unit",
			css: `@keyframes spin {
  100% {
    transform: skew(10deg) translate(50%, 0px) rotate(1turn);
  }
}`,
			issues: []string{
				`unsupported transform function "skew"`,
				`translate-x: unsupported unit in "50%"`,
				`rotate: unsupported unit in "1turn"`,
			},
		},
		{
			name:   "non-uniform scale",
			css:    `@keyframes s { to { transform: scale(1.5, 2); } }`,
			issues: []string{"scale: non-uniform scale(1.5, 2) uses the first factor"},
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 150, p.Params.ScalePercent)
			},
		},
		{
			name: "cubic-bezier timing function",
			css: `@keyframes a { to { transform: rotate(90deg); } }
.x { animation: a 1s cubic-bezier(0.4, 0, 0.2, 1) 3; }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 1000, p.Params.DurationMs)
				assert.Equal(t, 0, p.Params.DelayMs)
				assert.Equal(t, 3, p.Params.IterationCount)
			},
		},
		{
			name: "steps timing function with delay",
			css: `@keyframes a { to { transform: rotate(90deg); } }
.x { animation: a 1s steps(4, end) 2s 1; }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 1000, p.Params.DurationMs)
				assert.Equal(t, 2000, p.Params.DelayMs)
				assert.Equal(t, 1, p.Params.IterationCount)
			},
		},
		{
			name: "steps arguments are not an iteration count",
			css: `@keyframes a { to { transform: rotate(90deg); } }
.x { animation: a 1s steps(4, end); }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 1, p.Params.IterationCount)
			},
		},
		{
			name: "only the first animation of a list",
			css: `@keyframes a { to { transform: rotate(90deg); } }
.x { animation: a 1s ease-in 200ms 2, b 3s linear 5; }`,
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 1000, p.Params.DurationMs)
				assert.Equal(t, 200, p.Params.DelayMs)
				assert.Equal(t, 2, p.Params.IterationCount)
			},
		},
		{
			name: "numbers beyond the int range",
			css: `@keyframes a { to { transform: scale(99999999999); } }
.x { animation: a 1s 99999999999; }`,
			issues: []string{
				`scale: cannot parse "99999999999" as integer`,
				`iteration: cannot parse "99999999999" as integer`,
			},
			check: func(t *testing.T, p *Preset) {
				assert.Equal(t, 100, p.Params.ScalePercent)
				assert.Equal(t, 1, p.Params.IterationCount)
			},
		},
		{
			name:   "fractional pixels",
			css:    `@keyframes f { to { transform: translate(2.5px, 0px); } }`,
			issues: []string{`translate-x: cannot parse "2.5px" as integer`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := ParseCSS(tt.css, "test.css")
			require.NoError(t, err)

			texts := make([]string, 0, len(preset.Issues))
			for _, issue := range preset.Issues {
				texts = append(texts, issue.Text)
			}
			assert.ElementsMatch(t, tt.issues, texts)

			if tt.check != nil {
				tt.check(t, preset)
			}
		})
	}
}

func TestParseCSSMissingKeyframes(t *testing.T) {
	_, err := ParseCSS(`.btn { color: red; }`, "plain.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no @keyframes rule")

	_, err = ParseCSS(`@keyframes half { 50% { transform: rotate(10deg); } }`, "half.css")
	require.Error(t, err)
}

func TestParseCSSPositions(t *testing.T) {
	content := "@keyframes spin {\n  to {\n    transform: rotate(400deg);\n  }\n}\n"

	preset, err := ParseCSS(content, "spin.css")
	require.NoError(t, err)

	require.Contains(t, preset.Positions, "rotate")
	assert.Equal(t, 3, preset.Positions["rotate"].Line)

	issues := CheckPreset(preset)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, 3, issues[0].Pos.Line)
	assert.Equal(t, []string{"    transform: rotate(400deg);"}, issues[0].SourceLines)
}

func TestParseYAML(t *testing.T) {
	content := `name: slide-in
duration: 2000
delay: 300
iteration: 0
translate-x: -45
translate-y: 20
rotate: 180
scale: 75
`
	preset, err := ParseYAML([]byte(content), "presets/slide.yaml")
	require.NoError(t, err)

	assert.Equal(t, "slide-in", preset.Name)
	assert.Equal(t, "presets/slide.yaml", preset.SourceFile)
	assert.Equal(t, animgen.Params{
		DurationMs: 2000, DelayMs: 300, IterationCount: 0,
		TranslateXPx: -45, TranslateYPx: 20, RotateDeg: 180, ScalePercent: 75,
	}, preset.Params)
	assert.Empty(t, preset.Issues)
	assert.Equal(t, Pos{Line: 2, Column: 11}, preset.Positions["duration"])
}

func TestParseYAMLDefaultsAndName(t *testing.T) {
	preset, err := ParseYAML([]byte("rotate: 90\n"), "presets/turn.yml")
	require.NoError(t, err)

	want := animgen.DefaultParams()
	want.RotateDeg = 90
	assert.Equal(t, want, preset.Params)
	assert.Equal(t, "turn", preset.Name)
}

func TestParseYAMLIssues(t *testing.T) {
	content := `name: broken
duration: 9000
opacity: 1
scale: big
rotate: 92
`
	preset, err := ParseYAML([]byte(content), "broken.yaml")
	require.NoError(t, err)

	require.Len(t, preset.Issues, 2)
	assert.Equal(t, `unknown preset key "opacity"`, preset.Issues[0].Text)
	assert.Equal(t, SeverityWarning, preset.Issues[0].Severity)
	assert.Equal(t, 3, preset.Issues[0].Pos.Line)
	assert.Equal(t, `scale: cannot parse "big" as integer`, preset.Issues[1].Text)
	assert.Equal(t, SeverityError, preset.Issues[1].Severity)
	assert.Equal(t, IssuePos{Filename: "broken.yaml", Line: 4, Column: 8}, preset.Issues[1].Pos)

	issues := CheckPreset(preset)
	require.Len(t, issues, 4)

	duration := issues[2]
	assert.Equal(t, "duration: 9000ms outside [100, 5000]", duration.Text)
	assert.Equal(t, SeverityError, duration.Severity)
	assert.Equal(t, 2, duration.Pos.Line)
	assert.Equal(t, []string{"duration: 9000"}, duration.SourceLines)

	rotate := issues[3]
	assert.Equal(t, SeverityWarning, rotate.Severity)
	assert.Equal(t, 5, rotate.Pos.Line)
}

func TestParseYAMLRejectsNonMapping(t *testing.T) {
	_, err := ParseYAML([]byte("- 1\n- 2\n"), "list.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence")

	_, err = ParseYAML([]byte(""), "empty.yaml")
	require.Error(t, err)

	_, err = ParseYAML([]byte("duration: [1"), "bad.yaml")
	require.Error(t, err)
}

func TestSplitDimension(t *testing.T) {
	tests := []struct {
		in, num, unit string
	}{
		{"50px", "50", "px"},
		{"-20px", "-20", "px"},
		{"1.5s", "1.5", "s"},
		{".3s", ".3", "s"},
		{"90DEG", "90", "deg"},
		{"12", "12", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			num, unit := splitDimension(tt.in)
			assert.Equal(t, tt.num, num)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"90", 90, true},
		{"90.0", 90, true},
		{"-360", -360, true},
		{"2.5", 0, false},
		{"1e300", 0, false},
		{"-1e300", 0, false},
		{"99999999999", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseInteger(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
