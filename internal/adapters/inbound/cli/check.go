package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langgate/langgate/internal/adapters/outbound/gitinfo"
	"github.com/langgate/langgate/internal/adapters/outbound/scanner"
	"github.com/langgate/langgate/internal/adapters/outbound/tui"
	"github.com/langgate/langgate/internal/application"
	"github.com/langgate/langgate/internal/domain"
)

func runCheck(cmd *cobra.Command, v *viper.Viper) error {
	rc, err := resolveRun(cmd, v, v.GetString("path"))
	if err != nil {
		return err
	}

	if style := v.GetString("style"); style != "" {
		s := domain.ReportStyle(style)
		if !domain.IsValidStyle(s) {
			return fmt.Errorf("unknown style %q (valid: log, banner)", style)
		}
		rc.cfg.Style = s
	}

	sc := scanner.New()
	svc := application.NewCheckService(sc, sc, gitinfo.New())

	result, err := svc.Check(cmd.Context(), rc.path, rc.cfg)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	rc.logger.Printf("%d file(s) scanned, %d violation(s)", result.FilesScanned, len(result.Violations))

	if v.GetBool("json") {
		if err := renderCheckJSON(cmd, result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rc.cfg.Style, result))
	}

	if !result.Passed() {
		return fmt.Errorf("%w: %d violation(s)", domain.ErrPolicyViolations, len(result.Violations))
	}
	return nil
}

func renderCheckJSON(cmd *cobra.Command, result *domain.ScanResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
