package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/animgen"
	presets "github.com/yacobolo/animgen/internal/animgen"
	"github.com/yacobolo/animgen/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print eased frames and maintain a live preview stylesheet",
	Long: `Sample one iteration of the animation with its timing function and
print the transform at each frame.

With --stylesheet, a preview stylesheet holding the keyframes and a
.animgen-preview rule that runs them is kept on disk until the command is
interrupted, and removed afterwards. With --watch, the stylesheet is re-rendered whenever the config
file changes.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	addParamFlags(f)
	f.Bool("clamp", false, "Clamp out-of-domain parameters instead of failing")
	f.Int("frames", 10, "Number of frame intervals to sample")
	f.String("stylesheet", "", "Keep a preview stylesheet at this path until interrupted")
	f.Bool("watch", false, "Re-render the preview stylesheet when the config file changes")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	clamp := getBoolWithFallback("clamp", "render.clamp", false)
	p, err := resolveParams(buildParams(), clamp, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := presets.ShouldUseColors(getBoolWithFallback("color", "color", false))

	if !quiet {
		frames := getIntWithFallback("frames", "preview.frames", 10)
		fmt.Fprintln(out, presets.RenderStyle(presets.StyleCyan, animgen.PreviewStyle(p).String(), useColors))
		fmt.Fprintln(out, renderFrames(preview.Sample(p, frames)))
	}

	stylesheet := getStringWithFallback("stylesheet", "preview.stylesheet", "")
	if stylesheet == "" {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := preview.NewSession(preview.FileSink{Path: stylesheet})
	if err := session.Apply(p); err != nil {
		return fmt.Errorf("writing preview stylesheet: %w", err)
	}
	if !quiet {
		fmt.Fprintf(out, "Preview stylesheet at %s (Ctrl+C to stop)\n", stylesheet)
	}

	if getBoolWithFallback("watch", "preview.watch", false) {
		if err := watchConfig(ctx, cmd, session, clamp, out); err != nil {
			_ = session.Close()
			return err
		}
	} else {
		<-ctx.Done()
	}

	return session.Close()
}

// watchConfig re-applies the session on every config file change until ctx is done.
func watchConfig(ctx context.Context, cmd *cobra.Command, session *preview.Session, clamp bool, out io.Writer) error {
	path := configPath(cmd)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("--watch needs a config file: %w", err)
	}

	provider := file.Provider(path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: watching %s: %v\n", path, err)
			return
		}

		k = koanf.New(".")
		if err := loadConfig(cmd); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: reloading config: %v\n", err)
			return
		}
		p, err := resolveParams(buildParams(), clamp, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			return
		}
		if err := session.Apply(p); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: applying preview: %v\n", err)
			return
		}
		fmt.Fprintf(out, "Reloaded: %s\n", animgen.PreviewStyle(p))
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	<-ctx.Done()
	return provider.Unwatch()
}

// renderFrames lays out sampled frames as a table
func renderFrames(frames []preview.Frame) string {
	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		rows = append(rows, []string{
			strconv.Itoa(f.TimeMs) + "ms",
			strconv.FormatFloat(f.Progress*100, 'f', 0, 64) + "%",
			strconv.FormatFloat(f.Eased, 'f', 3, 64),
			f.Transform,
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		}).
		Headers("TIME", "PROGRESS", "EASED", "TRANSFORM").
		Rows(rows...).
		String()
}
