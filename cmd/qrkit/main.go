// Package main is the qrkit command line: the HTTP server plus one-shot
// payload, mask and render commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/qrkit/cmd/qrkit/commands"
	"github.com/dmitrymomot/qrkit/internal/config"
)

var version = "dev"

// envFile is read, when present, before the process environment.
const envFile = ".env"

func main() {
	cmd := &cli.Command{
		Name:    "qrkit",
		Usage:   "Validate, encode and render QR code payloads",
		Version: version,
		// Field values may contain commas.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Language of labels and messages (pt, en, es, fr)",
				Sources: cli.EnvVars("QRKIT_LANG"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   commands.OutputText,
				Usage:   "Output format: 'text' or 'json'",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
					return commands.RunServer(ctx, cfg, version)
				}),
			},
			{
				Name:  "validate",
				Usage: "Check a payload without encoding it",
				Flags: payloadFlags(),
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
					return commands.RunValidate(ctx, cfg, commands.DefaultIO(), globals(cmd), payloadFromFlags(cmd))
				}),
			},
			{
				Name:  "encode",
				Usage: "Print the string a QR code would carry",
				Flags: append(payloadFlags(),
					&cli.BoolFlag{
						Name:  "legacy",
						Usage: "Do not escape reserved characters in MECARD and VCARD payloads",
					},
					&cli.BoolFlag{
						Name:  "qr",
						Usage: "Also draw the symbol on the terminal",
					},
				),
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
					return commands.RunEncode(ctx, cfg, commands.DefaultIO(), globals(cmd), payloadFromFlags(cmd),
						cmd.Bool("legacy"), cmd.Bool("qr"))
				}),
			},
			{
				Name:      "mask",
				Usage:     "Format a phone number for display",
				ArgsUsage: "<number>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "subtype",
						Aliases: []string{"s"},
						Value:   "mobile",
						Usage:   "Phone subtype: 'mobile' or 'fixed'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMask(commands.DefaultIO(), globals(cmd), cmd.Args().First(), cmd.String("subtype"))
				},
			},
			{
				Name:  "render",
				Usage: "Export a styled QR code as PNG, SVG, PDF or EPS",
				Flags: append(payloadFlags(),
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "png", Usage: "Export format: png, svg, pdf or eps"},
					&cli.IntFlag{Name: "size", Usage: "Export size in pixels (defaults to RENDER_DEFAULT_SIZE)"},
					&cli.StringFlag{Name: "out", Usage: "Destination file, '-' for stdout (defaults to the export file name)"},
					&cli.StringFlag{Name: "template", Usage: "Style template label, see 'qrkit templates'"},
					&cli.BoolFlag{Name: "legacy", Usage: "Do not escape reserved characters in VCARD and MECARD payloads"},
					&cli.StringFlag{Name: "fg", Usage: "Foreground color (#RRGGBB)"},
					&cli.StringFlag{Name: "bg", Usage: "Background color (#RRGGBB)"},
					&cli.StringFlag{Name: "gradient", Usage: "Gradient end color (#RRGGBB), enables the gradient"},
					&cli.StringFlag{Name: "body-shape", Usage: "Module shape"},
					&cli.StringFlag{Name: "eye-frame", Usage: "Finder frame shape"},
					&cli.StringFlag{Name: "eye-ball", Usage: "Finder ball shape"},
					&cli.StringFlag{Name: "logo", Usage: "Logo as a data URI, an http(s) URL or a preset ID (see templates)"},
					&cli.FloatFlag{Name: "logo-size", Usage: "Logo size relative to the symbol (0.1 to 0.5)"},
				),
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
					return commands.RunRender(ctx, cfg, commands.DefaultIO(), globals(cmd), commands.RenderFlags{
						Payload:  payloadFromFlags(cmd),
						Template: cmd.String("template"),
						Format:   cmd.String("format"),
						Size:     cmd.Int("size"),
						Legacy:   cmd.Bool("legacy"),
						Out:      cmd.String("out"),
						Style: commands.StyleFlags{
							FgColor:       cmd.String("fg"),
							BgColor:       cmd.String("bg"),
							GradientColor: cmd.String("gradient"),
							BodyShape:     cmd.String("body-shape"),
							EyeFrameShape: cmd.String("eye-frame"),
							EyeBallShape:  cmd.String("eye-ball"),
							Logo:          cmd.String("logo"),
							LogoSize:      cmd.Float("logo-size"),
						},
					})
				}),
			},
			{
				Name:  "types",
				Usage: "List the content types and their fields",
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
					return commands.RunTypes(ctx, cfg, commands.DefaultIO(), globals(cmd))
				}),
			},
			{
				Name:  "templates",
				Usage: "List the style templates",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunTemplates(commands.DefaultIO(), globals(cmd))
				},
			},
			{
				Name:  "logos",
				Usage: "List the logo presets accepted by --logo",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunLogos(commands.DefaultIO(), globals(cmd))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func withConfig(fn func(context.Context, *cli.Command, config.Config) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, cfg)
	}
}

func globals(cmd *cli.Command) commands.Globals {
	return commands.Globals{Lang: cmd.String("lang"), Output: cmd.String("output")}
}

func payloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Content type, see 'qrkit types'",
		},
		&cli.StringFlag{
			Name:  "subtype",
			Usage: "Phone subtype for PHONE: 'mobile' or 'fixed'",
		},
		&cli.StringSliceFlag{
			Name:    "field",
			Aliases: []string{"F"},
			Usage:   "Field as key=value, repeatable",
		},
	}
}

func payloadFromFlags(cmd *cli.Command) commands.PayloadFlags {
	return commands.PayloadFlags{
		Type:    cmd.String("type"),
		Subtype: cmd.String("subtype"),
		Fields:  cmd.StringSlice("field"),
	}
}
