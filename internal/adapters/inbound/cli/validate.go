package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langgate/langgate/internal/adapters/outbound/scanner"
	"github.com/langgate/langgate/internal/application"
	"github.com/langgate/langgate/internal/domain"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file1> [file2] ...",
		Short: "Check individual files against the policy",
		Long: `Check only the listed files, for example the staged files of a commit.
Banned extensions, banned filenames, scoped languages and companion sources are
checked; the core-language check needs the whole tree and is skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, v, v.GetString("path"))
			if err != nil {
				return err
			}

			svc := application.NewValidateService(scanner.New())
			result, err := svc.Validate(rc.path, args, rc.cfg)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}
			rc.logger.Printf("%d file(s) checked, %d skipped", result.FilesChecked, len(result.Skipped))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}

			if result.Status == domain.StatusFail {
				return fmt.Errorf("%w: %d violation(s)", domain.ErrPolicyViolations, len(result.Violations))
			}
			return nil
		},
	}
}
