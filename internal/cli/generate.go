package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/tablegen/pkg/genconfig"
	"github.com/MacroPower/tablegen/pkg/pipeline"
)

const allExample = `  # Generate everything described by ./tablegen.yaml
  tablegen all

  # Generate only the key symbol tables, failing on malformed lines
  tablegen keysyms --strict --config build/tablegen.yaml

  # Use the built-in manifest against a source checkout
  tablegen all --root src/xray/ui`

// NewColorsCmd returns the colors command.
func NewColorsCmd() *cobra.Command {
	return newGenerateCmd("colors", "Generate color palette header and source files",
		pipeline.KindColors)
}

// NewKeysymsCmd returns the keysyms command.
func NewKeysymsCmd() *cobra.Command {
	return newGenerateCmd("keysyms", "Generate key symbol tables and the symbol enumeration",
		pipeline.KindKeysyms)
}

// NewEnumsCmd returns the enums command.
func NewEnumsCmd() *cobra.Command {
	return newGenerateCmd("enums", "Generate enumeration headers and sources from definition files",
		pipeline.KindEnums)
}

// NewAllCmd returns the all command.
func NewAllCmd() *cobra.Command {
	cmd := newGenerateCmd("all", "Run every generator", pipeline.AllKinds...)
	cmd.Example = allExample

	return cmd
}

func newGenerateCmd(use, short string, kinds ...pipeline.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			c, err := loadConfig(cc)
			if err != nil {
				return err
			}

			g := pipeline.New(c, pipeline.WithLogger(slog.Default()))
			if err := g.Run(kinds...); err != nil {
				return fmt.Errorf("generate %s: %w", use, err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}

func loadConfig(cc *cobra.Command) (*genconfig.Config, error) {
	var merr error

	flags := cc.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	root, err := flags.GetString("root")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	strict, err := flags.GetBool("strict")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	c, err := genconfig.Find(path, root)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if strict {
		c.Strict = true
	}

	slog.Debug("loaded config", slog.String("path", path), slog.String("root", c.Root), slog.Bool("strict", c.Strict))

	return c, nil
}
