package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

type typeOutput struct {
	Type   string   `json:"type"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

// RunTypes lists the content types with their localized labels and fields.
func RunTypes(ctx context.Context, cfg config.Config, io IOTuple, g Globals) error {
	if err := g.validate(); err != nil {
		return err
	}
	rt, err := newRuntime(ctx, cfg, g.Lang)
	if err != nil {
		return err
	}
	defer rt.close()

	infos := rt.svc.Types()
	out := make([]typeOutput, 0, len(infos))
	for _, info := range infos {
		out = append(out, typeOutput{
			Type:   info.Type.String(),
			Label:  rt.tr.T(rt.lang, "types."+info.Type.String()),
			Fields: info.Fields,
		})
	}
	if g.json() {
		return writeJSON(io.Writer, out)
	}

	tw := tabwriter.NewWriter(io.Writer, 0, 4, 2, ' ', 0)
	for _, t := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Type, t.Label, strings.Join(t.Fields, ","))
	}
	return tw.Flush()
}

// RunTemplates lists the style templates.
func RunTemplates(io IOTuple, g Globals) error {
	if err := g.validate(); err != nil {
		return err
	}

	templates := style.Templates()
	if g.json() {
		return writeJSON(io.Writer, templates)
	}

	tw := tabwriter.NewWriter(io.Writer, 0, 4, 2, ' ', 0)
	for _, t := range templates {
		content := t.Content
		if content == "" {
			content = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", t.Label, content)
	}
	return tw.Flush()
}

// RunLogos lists the logo presets.
func RunLogos(io IOTuple, g Globals) error {
	if err := g.validate(); err != nil {
		return err
	}

	logos := style.Logos()
	if g.json() {
		return writeJSON(io.Writer, logos)
	}

	tw := tabwriter.NewWriter(io.Writer, 0, 4, 2, ' ', 0)
	for _, l := range logos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Label, l.URL)
	}
	return tw.Flush()
}
