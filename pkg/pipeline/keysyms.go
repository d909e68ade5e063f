package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/keymap"
	"github.com/MacroPower/tablegen/pkg/render"
)

// Keysyms renders one constant array per keymap plus the shared symbol
// enumeration and lookup table.
func (g *Generator) Keysyms(genTime string) ([]render.Output, error) {
	kc := g.cfg.Keysyms

	if err := g.cfg.ValidateKeysyms(); err != nil {
		return nil, err
	}

	tables := make([]*keymap.Table, 0, len(kc.Keymaps))
	for _, in := range kc.Keymaps {
		path := g.cfg.Resolve(in.Path)

		if in.Shift != nil {
			g.logger.Debug("keymap shift is not applied to slots",
				slog.String("file", path),
				slog.Uint64("shift", uint64(*in.Shift)),
			)
		}

		err := withInput(path, func(r io.Reader) error {
			t, err := keymap.Parse(r, keymap.ParseOptions{
				Name:   in.Name(),
				File:   path,
				Mask:   in.Mask,
				Shift:  in.Shift,
				Strict: g.cfg.Strict,
			})
			if err != nil {
				return err
			}

			tables = append(tables, t)

			g.logger.Debug("parsed keymap",
				slog.String("file", path),
				slog.String("table", t.Name),
				slog.Int("symbols", len(t.Symbols())),
			)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	tableTmpl, err := g.loadTemplate(kc.TableTemplate, keymap.DefaultTableTemplate)
	if err != nil {
		return nil, err
	}

	enumTmpl, err := g.loadTemplate(kc.EnumTemplate, keymap.DefaultEnumTemplate)
	if err != nil {
		return nil, err
	}

	outputs := make([]render.Output, 0, len(tables)+1)
	seen := map[string]string{}

	for i, t := range tables {
		path := g.cfg.Resolve(render.Execute(kc.TableOutput, render.Tokens{
			keymap.TokenIndex:     strconv.Itoa(i + 1),
			keymap.TokenTableName: t.Name,
		}))

		if prev, ok := seen[path]; ok {
			return nil, fmt.Errorf("%w: tables %s and %s both write %s",
				generrors.ErrInvalidConfig, prev, t.Name, path)
		}

		seen[path] = t.Name

		outputs = append(outputs, render.Output{
			Path: path,
			Content: render.Execute(tableTmpl, render.Tokens{
				render.TokenGenTime:      genTime,
				keymap.TokenTableName:    t.Name,
				keymap.TokenTableEntries: keymap.TableEntries(t, kc.Qualifier),
			}),
		})
	}

	u := keymap.BuildUniverse(tables...)

	g.logger.Debug("built symbol universe", slog.Int("symbols", len(u)))

	outputs = append(outputs, render.Output{
		Path: g.cfg.Resolve(kc.EnumOutput),
		Content: render.Execute(enumTmpl, render.Tokens{
			render.TokenGenTime:            genTime,
			keymap.TokenEnumMembers:        keymap.EnumMembers(u),
			keymap.TokenEnumLength:         keymap.EnumLength(u),
			keymap.TokenLookupTableEntries: keymap.LookupTableEntries(u, kc.Qualifier, kc.ExternalCode),
		}),
	})

	return outputs, nil
}
