package animgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/animgen"
)

// DetermineOutputFormat maps a --format value to an OutputFormat.
// Unknown or empty values fall back to OutputAll.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch strings.ToLower(formatFlag) {
	case "css", "keyframes":
		return OutputCSS
	case "config", "tailwind":
		return OutputConfig
	case "classes", "class":
		return OutputClasses
	case "preview", "style":
		return OutputPreview
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return OutputAll
}

// WriteArtifacts renders p and writes it in the requested format
func WriteArtifacts(w io.Writer, p animgen.Params, format OutputFormat, useColors bool) error {
	artifacts := animgen.Render(p)

	var err error
	switch format {
	case OutputCSS:
		_, err = fmt.Fprintln(w, artifacts.Keyframes)
	case OutputConfig:
		_, err = fmt.Fprintln(w, artifacts.Config)
	case OutputClasses:
		_, err = fmt.Fprintln(w, artifacts.Classes)
	case OutputPreview:
		_, err = fmt.Fprintln(w, artifacts.Preview.String())
	case OutputJSON:
		err = WriteJSON(w, p)
	case OutputMarkdown:
		err = WriteMarkdown(w, p)
	default:
		err = writeAll(w, artifacts, useColors)
	}
	return err
}

// artifactSections lists the artifacts in display order
func artifactSections(a animgen.Artifacts) []struct{ title, lang, body string } {
	return []struct{ title, lang, body string }{
		{"Tailwind Config", "js", a.Config},
		{"CSS Keyframes", "css", a.Keyframes},
		{"CSS Classes", "html", a.Classes},
		{"Preview Style", "css", a.Preview.String()},
	}
}

// writeAll prints every artifact under a heading, boxed when colors are on
func writeAll(w io.Writer, a animgen.Artifacts, useColors bool) error {
	for i, section := range artifactSections(a) {
		if i > 0 {
			fmt.Fprintln(w, "")
		}
		fmt.Fprintln(w, RenderStyle(StyleCyan, section.title, useColors))
		if _, err := fmt.Fprintln(w, RenderStyle(StyleCode, section.body, useColors)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdown writes every artifact as a fenced code block
func WriteMarkdown(w io.Writer, p animgen.Params) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Animation `%s`\n\n", animgen.AnimationName)
	fmt.Fprintf(&b, "| Parameter | Value |\n|---|---|\n")
	for _, f := range animgen.Fields() {
		fmt.Fprintf(&b, "| %s | %s |\n", f.Name, formatFieldValue(f, p))
	}

	for _, section := range artifactSections(animgen.Render(p)) {
		fmt.Fprintf(&b, "\n## %s\n\n```%s\n%s\n```\n", section.title, section.lang, section.body)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatFieldValue renders a field value with its unit; iteration 0 reads "Infinite"
func formatFieldValue(f animgen.Field, p animgen.Params) string {
	v := f.Get(p)
	if f.Key == "iteration" && v == 0 {
		return "Infinite"
	}
	return fmt.Sprintf("%d%s", v, f.Unit)
}
