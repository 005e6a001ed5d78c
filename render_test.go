package animgen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams() Params {
	return Params{
		DurationMs:     1000,
		DelayMs:        0,
		IterationCount: 1,
		TranslateXPx:   50,
		TranslateYPx:   -20,
		RotateDeg:      90,
		ScalePercent:   150,
	}
}

func TestKeyframes(t *testing.T) {
	got := Keyframes(scenarioParams())

	want := `@keyframes custom-animation {
  0% {
    transform: translate(0px, 0px) rotate(0deg) scale(1);
  }
  100% {
    transform: translate(50px, -20px) rotate(90deg) scale(1.5);
  }
}`
	assert.Equal(t, want, got)
}

func TestConfigExtension(t *testing.T) {
	got := ConfigExtension(scenarioParams())

	want := `module.exports = {
  theme: {
    extend: {
      keyframes: {
        'custom-animation': {
          '0%': {
            transform: 'translate(0px, 0px) rotate(0deg) scale(1)',
          },
          '100%': {
            transform: 'translate(50px, -20px) rotate(90deg) scale(1.5)',
          },
        },
      },
      animation: {
        'custom-animation': 'custom-animation 1000ms ease-in-out 0ms 1',
      },
    },
  },
}`
	assert.Equal(t, want, got)
}

func TestUtilityClasses(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "single run",
			params: scenarioParams(),
			want:   `className="animate-custom-animation duration-[1000ms] delay-[0ms] animate-[1]"`,
		},
		{
			name:   "infinite",
			params: Params{DurationMs: 2500, DelayMs: 300, IterationCount: 0, ScalePercent: 100},
			want:   `className="animate-custom-animation duration-[2500ms] delay-[300ms] animate-infinite"`,
		},
		{
			name:   "ten runs",
			params: Params{DurationMs: 100, DelayMs: 2000, IterationCount: 10, ScalePercent: 100},
			want:   `className="animate-custom-animation duration-[100ms] delay-[2000ms] animate-[10]"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UtilityClasses(tt.params))
		})
	}
}

func TestPreviewStyle(t *testing.T) {
	style := PreviewStyle(scenarioParams())

	assert.Equal(t, "custom-animation 1000ms ease-in-out 0ms 1", style.Animation)
	assert.Equal(t, "translate(50px, -20px) rotate(90deg) scale(1.5)", style.Transform)
	assert.Equal(t,
		"animation: custom-animation 1000ms ease-in-out 0ms 1; transform: translate(50px, -20px) rotate(90deg) scale(1.5);",
		style.String())
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{50, "0.5"},
		{55, "0.55"},
		{100, "1"},
		{105, "1.05"},
		{115, "1.15"},
		{150, "1.5"},
		{195, "1.95"},
		{200, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleFactor(Params{ScalePercent: tt.percent}))
		})
	}
}

// everyValidParams walks a coarse grid over the domain, always including both bounds.
func everyValidParams() []Params {
	var out []Params
	for _, d := range []int{100, 1000, 5000} {
		for _, it := range []int{0, 1, 7, 10} {
			for _, tx := range []int{-200, 0, 35} {
				for _, r := range []int{-360, 0, 45, 360} {
					for _, s := range []int{50, 100, 105, 200} {
						out = append(out, Params{
							DurationMs:     d,
							DelayMs:        d % 2000,
							IterationCount: it,
							TranslateXPx:   tx,
							TranslateYPx:   -tx,
							RotateDeg:      r,
							ScalePercent:   s,
						})
					}
				}
			}
		}
	}
	return out
}

func TestPreviewTransformMatchesKeyframes(t *testing.T) {
	for _, p := range everyValidParams() {
		require.NoError(t, p.Validate())

		css := Keyframes(p)
		end := css[strings.Index(css, "100% {"):]
		line := strings.SplitN(end, "\n", 3)[1]
		transform := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(line), "transform: "), ";")

		assert.Equal(t, transform, PreviewStyle(p).Transform)
	}
}

func TestInfiniteIterationEverywhere(t *testing.T) {
	p := scenarioParams()
	p.IterationCount = 0
	a := Render(p)

	assert.True(t, strings.HasSuffix(Shorthand(p), " infinite"))
	assert.Contains(t, a.Config, "0ms infinite'")
	assert.NotContains(t, a.Config, "0ms 0'")
	assert.Contains(t, a.Classes, "animate-infinite")
	assert.NotContains(t, a.Classes, "animate-[0]")
	assert.True(t, strings.HasSuffix(a.Preview.Animation, " infinite"))
}

func TestIterationCountEncodedExactly(t *testing.T) {
	for n := 1; n <= 10; n++ {
		p := DefaultParams()
		p.IterationCount = n
		a := Render(p)

		token := IterationToken(p)
		assert.Equal(t, strconv.Itoa(n), token)
		assert.Contains(t, a.Config, "ease-in-out 0ms "+token+"'")
		assert.Contains(t, a.Classes, "animate-["+token+"]")
		assert.True(t, strings.HasSuffix(a.Preview.Animation, "ease-in-out 0ms "+token))
	}
}

func TestDefaultScaleIsExactlyOne(t *testing.T) {
	a := Render(DefaultParams())

	assert.Contains(t, a.Keyframes, "rotate(0deg) scale(1);\n  }\n}")
	assert.NotContains(t, a.Keyframes, "scale(1.0")
	assert.NotContains(t, a.Config, "scale(1.0")
	assert.True(t, strings.HasSuffix(a.Preview.Transform, "scale(1)"))
}

func TestRenderIsIdempotent(t *testing.T) {
	p := scenarioParams()
	assert.Equal(t, Render(p), Render(p))
}

func TestRenderIsConsistent(t *testing.T) {
	p := Params{DurationMs: 3200, DelayMs: 700, IterationCount: 4, TranslateXPx: -15, TranslateYPx: 200, RotateDeg: -45, ScalePercent: 65}
	a := Render(p)

	for _, out := range []string{a.Keyframes, a.Config, a.Classes, a.Preview.Animation} {
		assert.Contains(t, out, AnimationName)
	}
	assert.Contains(t, a.Keyframes, Transform(p))
	assert.Contains(t, a.Config, Transform(p))
	assert.Contains(t, a.Config, "custom-animation 3200ms ease-in-out 700ms 4")
	assert.Contains(t, a.Classes, "duration-[3200ms] delay-[700ms] animate-[4]")
	assert.Equal(t, "translate(-15px, 200px) rotate(-45deg) scale(0.65)", a.Preview.Transform)
}
