package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MacroPower/tablegen/pkg/enumdef"
	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/render"
)

// Enums renders a header and a source file for every enum definition in
// the definitions directory, in file name order.
func (g *Generator) Enums(genTime string) ([]render.Output, error) {
	ec := g.cfg.Enums

	if err := g.cfg.ValidateEnums(); err != nil {
		return nil, err
	}

	dir := g.cfg.Resolve(ec.DefinitionsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", generrors.ErrInputNotFound, err)
	}

	var defs []*enumdef.Definition

	for _, e := range entries {
		if e.IsDir() || !isDefinitionFile(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())

		err := withInput(path, func(r io.Reader) error {
			d, err := enumdef.Load(r)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			defs = append(defs, d)

			g.logger.Debug("parsed enum definition",
				slog.String("file", path),
				slog.String("enum", d.Name),
				slog.Int("members", len(d.Members)),
			)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(defs) == 0 {
		g.logger.Warn("no enum definitions found", slog.String("dir", dir))

		return nil, nil
	}

	headerTmpl, err := g.loadTemplate(ec.HeaderTemplate, enumdef.DefaultHeaderTemplate)
	if err != nil {
		return nil, err
	}

	sourceTmpl, err := g.loadTemplate(ec.SourceTemplate, enumdef.DefaultSourceTemplate)
	if err != nil {
		return nil, err
	}

	outDir := g.cfg.Resolve(ec.OutputDir)
	seen := map[string]struct{}{}
	outputs := make([]render.Output, 0, len(defs)*2)

	for _, d := range defs {
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("%w: enum %q defined more than once", generrors.ErrInvalidConfig, d.Name)
		}

		seen[d.Name] = struct{}{}

		tokens := d.Tokens()
		tokens[render.TokenGenTime] = genTime

		outputs = append(outputs,
			render.Output{
				Path:    filepath.Join(outDir, d.HeaderFile()),
				Content: render.Execute(headerTmpl, tokens),
			},
			render.Output{
				Path:    filepath.Join(outDir, d.SourceFile()),
				Content: render.Execute(sourceTmpl, tokens),
			},
		)
	}

	return outputs, nil
}

func isDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
