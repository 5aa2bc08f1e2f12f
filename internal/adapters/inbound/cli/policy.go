package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langgate/langgate/internal/adapters/outbound/config"
)

func newPolicyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective policy",
		Long:  "Print the preset merged with " + config.FileName + " as YAML, exactly as a check would use it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, v, v.GetString("path"))
			if err != nil {
				return err
			}

			out, err := config.Marshal(rc.cfg)
			if err != nil {
				return fmt.Errorf("encoding policy: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
