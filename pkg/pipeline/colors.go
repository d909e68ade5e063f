package pipeline

import (
	"io"
	"log/slog"
	"strings"

	"github.com/MacroPower/tablegen/pkg/palette"
	"github.com/MacroPower/tablegen/pkg/render"
)

// Colors renders the palette header and source outputs.
func (g *Generator) Colors(genTime string) ([]render.Output, error) {
	cc := g.cfg.Colors

	if err := g.cfg.ValidateColors(); err != nil {
		return nil, err
	}

	palettes := make([]*palette.Palette, 0, len(cc.Palettes))
	for _, in := range cc.Palettes {
		path := g.cfg.Resolve(in.Path)

		err := withInput(path, func(r io.Reader) error {
			p, err := palette.Parse(r, palette.StructName(in.Name), palette.ParseOptions{
				File:   path,
				Strict: g.cfg.Strict,
			})
			if err != nil {
				return err
			}

			palettes = append(palettes, p)

			g.logger.Debug("parsed palette",
				slog.String("file", path),
				slog.String("palette", p.Name),
				slog.Int("colors", p.Len()),
			)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	headerTmpl, err := render.LoadTemplate(g.cfg.Resolve(cc.HeaderTemplate))
	if err != nil {
		return nil, err
	}

	sourceTmpl, err := render.LoadTemplate(g.cfg.Resolve(cc.SourceTemplate))
	if err != nil {
		return nil, err
	}

	var defs strings.Builder
	for _, p := range palettes {
		block, err := palette.StructBlock(p)
		if err != nil {
			return nil, err
		}

		defs.WriteString(block)
	}

	decl := cc.QualifiedDecl
	if decl == "" {
		decl = palette.DefaultQualifiedDecl
	}

	return []render.Output{
		{
			Path: g.cfg.Resolve(cc.HeaderOutput),
			Content: render.Execute(headerTmpl, render.Tokens{
				render.TokenGenTime:            genTime,
				render.TokenPaletteDefinitions: defs.String(),
			}),
		},
		{
			Path: g.cfg.Resolve(cc.SourceOutput),
			Content: render.Execute(sourceTmpl, render.Tokens{
				render.TokenGenTime:     genTime,
				render.TokenFileContent: palette.QualifiedDeclarations(decl, palettes...),
			}),
		},
	}, nil
}
