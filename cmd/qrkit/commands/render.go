package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// StdoutPath makes render write the file to the command output.
const StdoutPath = "-"

// StyleFlags override the default style. Empty values keep the default.
type StyleFlags struct {
	FgColor       string
	BgColor       string
	GradientColor string
	BodyShape     string
	EyeFrameShape string
	EyeBallShape  string
	Logo          string
	LogoSize      float64
}

func (f StyleFlags) apply(s style.Style) style.Style {
	if f.FgColor != "" {
		s.FgColor = f.FgColor
	}
	if f.BgColor != "" {
		s.BgColor = f.BgColor
	}
	if f.GradientColor != "" {
		s.Gradient = true
		s.GradientColor = f.GradientColor
	}
	if f.BodyShape != "" {
		s.BodyShape = style.BodyShape(f.BodyShape)
	}
	if f.EyeFrameShape != "" {
		s.EyeFrameShape = style.EyeFrameShape(f.EyeFrameShape)
	}
	if f.EyeBallShape != "" {
		s.EyeBallShape = style.EyeBallShape(f.EyeBallShape)
	}
	if f.Logo != "" {
		s.Logo = f.Logo
	}
	if f.LogoSize > 0 {
		s.LogoSize = f.LogoSize
	}
	return s
}

// RenderFlags describe one export.
type RenderFlags struct {
	Payload  PayloadFlags
	Style    StyleFlags
	Template string
	Format   string
	Size     int
	Legacy   bool
	// Out is the destination path; empty uses the export file name in the
	// working directory and StdoutPath writes to the command output.
	Out string
}

type renderOutput struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Size    int    `json:"size"`
	Bytes   int    `json:"bytes"`
	Payload string `json:"payload"`
}

// RunRender draws the symbol and writes the exported file.
func RunRender(ctx context.Context, cfg config.Config, io IOTuple, g Globals, f RenderFlags) error {
	if err := g.validate(); err != nil {
		return err
	}
	format, err := style.ParseFormat(f.Format)
	if err != nil {
		return err
	}

	var in service.Input
	if f.Payload.Type != "" || f.Template == "" {
		if in, err = f.Payload.input(); err != nil {
			return err
		}
	}

	rt, err := newRuntime(ctx, cfg, g.Lang)
	if err != nil {
		return err
	}
	defer rt.close()

	out, err := rt.svc.Render(ctx, service.RenderRequest{
		Input:    in,
		Style:    f.Style.apply(rt.svc.DefaultStyle()),
		Template: f.Template,
		Format:   format,
		Size:     f.Size,
		Legacy:   f.Legacy,
	})
	if err != nil {
		return err
	}

	if f.Out == StdoutPath {
		_, err = io.Writer.Write(out.Data)
		return err
	}

	path := f.Out
	if path == "" {
		path = out.Filename()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if g.json() {
		return writeJSON(io.Writer, renderOutput{
			Path:    path,
			Format:  string(out.Format),
			Size:    out.Size,
			Bytes:   len(out.Data),
			Payload: out.Payload,
		})
	}
	_, err = fmt.Fprintf(io.Writer, "wrote %s (%s, %dpx, %d bytes)\n", path, out.Format, out.Size, len(out.Data))
	return err
}
