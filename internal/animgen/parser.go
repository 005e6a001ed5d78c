package animgen

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/animgen"
)

// token is a lexer token with its byte offset in the source
type token struct {
	tt     css.TokenType
	text   string
	offset int
}

// cssReader wraps the lexer with offsets and single-token pushback
type cssReader struct {
	lexer  *css.Lexer
	offset int
	back   *token
}

func newCSSReader(content string) *cssReader {
	return &cssReader{lexer: css.NewLexer(parse.NewInputString(content))}
}

// next returns the next raw token, including whitespace and comments
func (r *cssReader) next() token {
	if r.back != nil {
		t := *r.back
		r.back = nil
		return t
	}
	tt, text := r.lexer.Next()
	t := token{tt: tt, text: string(text), offset: r.offset}
	r.offset += len(text)
	return t
}

// significant returns the next token that is not whitespace or a comment
func (r *cssReader) significant() token {
	for {
		t := r.next()
		if t.tt != css.WhitespaceToken && t.tt != css.CommentToken {
			return t
		}
	}
}

func (r *cssReader) unread(t token) {
	r.back = &t
}

// cssParserState maintains context while parsing a CSS preset
type cssParserState struct {
	preset     *Preset
	content    string
	foundFinal bool
}

// ParseCSS reads a CSS preset: an @keyframes rule whose 100% (or "to")
// block carries the target transform, plus an optional animation
// declaration anywhere in the file supplying duration, delay and
// iteration count.
func ParseCSS(content string, filename string) (*Preset, error) {
	state := &cssParserState{
		preset:  newPreset([]byte(content), filename),
		content: content,
	}

	r := newCSSReader(content)
	for {
		t := r.significant()
		if t.tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch {
		case t.tt == css.AtKeywordToken && isKeyframesKeyword(t.text):
			state.handleKeyframes(r)
		case t.tt == css.IdentToken && strings.EqualFold(t.text, "animation"):
			if colon := r.significant(); colon.tt == css.ColonToken {
				state.handleAnimation(r)
			} else {
				r.unread(colon)
			}
		}
	}

	if !state.foundFinal {
		return nil, fmt.Errorf(IssueMissingKeyframes)
	}

	return state.preset, nil
}

// parseFile reads a preset file and dispatches on its extension
func parseFile(path string) (*Preset, error) {
	// #nosec G304 - path comes from configured include patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(content, path)
	case ".css":
		return ParseCSS(string(content), path)
	}
	return nil, fmt.Errorf("unsupported preset file type %q", filepath.Ext(path))
}

func isKeyframesKeyword(s string) bool {
	return s == "@keyframes" || s == "@-webkit-keyframes"
}

// handleKeyframes consumes an @keyframes rule. Only the final (100% / to)
// block is read; the 0% state is always the identity transform.
func (s *cssParserState) handleKeyframes(r *cssReader) {
	// Skip the rule name up to the opening brace
	for {
		t := r.significant()
		if t.tt == css.ErrorToken || t.tt == css.SemicolonToken {
			return
		}
		if t.tt == css.LeftBraceToken {
			break
		}
	}

	for {
		// Selector list of one keyframe block, e.g. "50%, 100%" or "to"
		final := false
		for {
			t := r.significant()
			switch t.tt {
			case css.ErrorToken, css.RightBraceToken:
				return
			case css.PercentageToken:
				if t.text == "100%" {
					final = true
				}
			case css.IdentToken:
				if strings.EqualFold(t.text, "to") {
					final = true
				}
			}
			if t.tt == css.LeftBraceToken {
				break
			}
		}

		s.handleKeyframeBlock(r, final)
	}
}

// handleKeyframeBlock reads declarations until the closing brace
func (s *cssParserState) handleKeyframeBlock(r *cssReader, final bool) {
	for {
		t := r.significant()
		switch t.tt {
		case css.ErrorToken, css.RightBraceToken:
			return
		case css.IdentToken:
			colon := r.significant()
			if colon.tt != css.ColonToken {
				r.unread(colon)
				continue
			}
			value := readValue(r)
			if final && strings.EqualFold(t.text, "transform") {
				s.foundFinal = true
				s.applyTransform(value)
			}
		}
	}
}

// readValue collects the significant tokens of a declaration value.
// The terminating "}" is pushed back so the enclosing block sees it.
func readValue(r *cssReader) []token {
	var value []token
	for {
		t := r.significant()
		switch t.tt {
		case css.ErrorToken, css.SemicolonToken:
			return value
		case css.RightBraceToken:
			r.unread(t)
			return value
		}
		value = append(value, t)
	}
}

// applyTransform maps transform functions onto the preset's transform fields
func (s *cssParserState) applyTransform(value []token) {
	for i := 0; i < len(value); i++ {
		fn := value[i]
		if fn.tt != css.FunctionToken {
			continue
		}

		var args []token
		for i++; i < len(value) && value[i].tt != css.RightParenthesisToken; i++ {
			if value[i].tt != css.CommaToken {
				args = append(args, value[i])
			}
		}

		name := strings.ToLower(strings.TrimSuffix(fn.text, "("))
		switch name {
		case "translate":
			if len(args) > 0 {
				s.setLength("translate-x", args[0], "px")
			}
			if len(args) > 1 {
				s.setLength("translate-y", args[1], "px")
			} else {
				s.preset.Params, _ = s.preset.Params.With("translate-y", 0)
			}
		case "translatex":
			if len(args) > 0 {
				s.setLength("translate-x", args[0], "px")
			}
		case "translatey":
			if len(args) > 0 {
				s.setLength("translate-y", args[0], "px")
			}
		case "rotate", "rotatez":
			if len(args) > 0 {
				s.setLength("rotate", args[0], "deg")
			}
		case "scale":
			if len(args) > 0 {
				s.setScale(args)
			}
		default:
			s.issueAt(SeverityWarning, fmt.Sprintf(IssueUnsupportedFunc, name), fn.offset)
		}
	}
}

// setLength stores an integral dimension with the expected unit.
// A bare 0 is accepted without a unit.
func (s *cssParserState) setLength(key string, t token, unit string) {
	num, gotUnit := splitDimension(t.text)
	if t.tt == css.PercentageToken || (gotUnit != unit && !(gotUnit == "" && num == "0")) {
		s.issueAt(SeverityError, fmt.Sprintf(IssueUnsupportedUnit, key, t.text), t.offset)
		return
	}
	v, ok := parseInteger(num)
	if !ok {
		s.issueAt(SeverityError, fmt.Sprintf(IssueBadValue, key, t.text), t.offset)
		return
	}
	s.set(key, v, t.offset)
}

// setScale converts a scale factor to percent. Non-uniform scale is not
// representable, so only the first axis is kept.
func (s *cssParserState) setScale(args []token) {
	t := args[0]
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil || t.tt != css.NumberToken {
		s.issueAt(SeverityError, fmt.Sprintf(IssueBadValue, "scale", t.text), t.offset)
		return
	}
	percent, ok := roundInt(f * 100)
	if !ok {
		s.issueAt(SeverityError, fmt.Sprintf(IssueBadValue, "scale", t.text), t.offset)
		return
	}
	if len(args) > 1 && args[1].text != t.text {
		s.issueAt(SeverityWarning, fmt.Sprintf("scale: non-uniform scale(%s, %s) uses the first factor", t.text, args[1].text), args[1].offset)
	}
	s.set("scale", percent, t.offset)
}

// handleAnimation reads an animation shorthand: the first time is the
// duration, the second the delay; a number or "infinite" is the iteration count.
// Arguments of timing functions such as cubic-bezier() and steps() are skipped.
func (s *cssParserState) handleAnimation(r *cssReader) {
	times := 0
	depth := 0
	for _, t := range readValue(r) {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
			continue
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}

		switch t.tt {
		case css.DimensionToken:
			ms, ok := parseTime(t.text)
			if !ok {
				continue
			}
			switch times {
			case 0:
				s.set("duration", ms, t.offset)
			case 1:
				s.set("delay", ms, t.offset)
			}
			times++
		case css.NumberToken:
			v, ok := parseInteger(t.text)
			if !ok {
				s.issueAt(SeverityError, fmt.Sprintf(IssueBadValue, "iteration", t.text), t.offset)
				continue
			}
			s.set("iteration", v, t.offset)
		case css.IdentToken:
			if strings.EqualFold(t.text, animgen.InfiniteToken) {
				s.set("iteration", 0, t.offset)
			}
		case css.CommaToken:
			// Only the first animation of a list is read
			return
		}
	}
}

func (s *cssParserState) set(key string, v int, offset int) {
	s.preset.Params, _ = s.preset.Params.With(key, v)
	s.preset.Positions[key] = s.position(offset)
}

func (s *cssParserState) issueAt(severity, text string, offset int) {
	s.preset.addIssue(severity, text, s.position(offset))
}

// position converts a byte offset into a 1-based line and column
func (s *cssParserState) position(offset int) Pos {
	line, col, _ := parse.Position(strings.NewReader(s.content), offset)
	return Pos{Line: line, Column: col}
}

// splitDimension splits "-20px" into "-20" and "px"
func splitDimension(text string) (string, string) {
	i := strings.IndexFunc(text, func(r rune) bool {
		return (r < '0' || r > '9') && r != '-' && r != '+' && r != '.'
	})
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.ToLower(text[i:])
}

// parseInteger accepts whole numbers written with or without a fraction ("90", "90.0")
func parseInteger(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return roundInt(f)
}

// roundInt rounds f to an int. Values outside the int32 range are rejected
// rather than wrapped.
func roundInt(f float64) (int, bool) {
	f = math.Round(f)
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// parseTime converts "300ms" or "1.5s" to whole milliseconds
func parseTime(text string) (int, bool) {
	num, unit := splitDimension(text)
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case "ms":
		return roundInt(f)
	case "s":
		return roundInt(f * 1000)
	}
	return 0, false
}
