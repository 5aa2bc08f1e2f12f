package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langgate/langgate/internal/adapters/outbound/config"
	"github.com/langgate/langgate/internal/domain"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Write a " + config.FileName + " holding the full rule set of a preset, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("path")
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			preset := v.GetString("preset")
			if preset == "" {
				preset = domain.DefaultPreset
			}
			cfg, err := domain.PresetConfig(preset)
			if err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s from preset %s\n", config.FileName, preset)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) ([]byte, error) {
	body, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := fmt.Sprintf(`# langgate configuration
# Sections set here replace the matching section of the %q preset.
# Reason and fix texts accept placeholders such as {name}, {core}, {core_dirs},
# {core_exts}, {file}, {ext}, {language}, {prefixes}, {artifact} and {source}.

`, cfg.Preset)

	return append([]byte(header), body...), nil
}
