package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/tablegen/pkg/genconfig"
)

// NewConfigCmd returns the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Inspect the generation manifest",
		SilenceUsage: true,
	}

	cmd.AddCommand(NewConfigSchemaCmd())
	cmd.AddCommand(NewConfigDefaultsCmd())
	cmd.AddCommand(NewConfigValidateCmd())

	return cmd
}

func NewConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the manifest JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := genconfig.Schema()
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cc.OutOrStdout(), string(b)); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}

func NewConfigDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in manifest",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return genconfig.Default().Encode(cc.OutOrStdout())
		},
		SilenceUsage: true,
	}
}

func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the manifest without generating anything",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			c, err := loadConfig(cc)
			if err != nil {
				return err
			}

			return c.Validate()
		},
		SilenceUsage: true,
	}
}
