package cli

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langgate/langgate/internal/adapters/outbound/config"
	"github.com/langgate/langgate/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

const envPrefix = "LANGGATE"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "langgate",
		Short: "Block disallowed languages and misplaced files",
		Long: `langgate walks the project tree and checks every file against the language policy:
banned extensions and filenames, secondary languages outside their sanctioned
directories, compiled artifacts without their source, and a core language that
must be present. Any violation exits 1 so CI can gate on it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("path", ".", "Project path to check")
	pf.String("config", "", "Config file (default is <path>/"+config.FileName+")")
	pf.String("preset", "", "Base preset: strict or permissive (default strict)")
	pf.Bool("verbose", false, "Log diagnostics to stderr")

	f := cmd.Flags()
	f.String("style", "", "Report style: log or banner (default from preset)")
	f.Bool("json", false, "Output the scan result as JSON")

	_ = v.BindPFlags(pf)
	_ = v.BindPFlags(f)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(v))
	cmd.AddCommand(newPolicyCmd(v))
	cmd.AddCommand(newValidateCmd(v))
	cmd.AddCommand(newMCPCmd(v))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// runContext is everything a command needs, resolved once per invocation.
type runContext struct {
	path   string
	cfg    domain.ProjectConfig
	logger *log.Logger
}

func resolveRun(cmd *cobra.Command, v *viper.Viper, path string) (*runContext, error) {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	opts := domain.LoadOptions{
		File:   v.GetString("config"),
		Preset: v.GetString("preset"),
	}
	cfg, err := config.New().Load(absPath, opts)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.File != "" {
		logger.Printf("using config file %s", opts.File)
	}
	logger.Printf("root %s, preset %s, policy %s", absPath, cfg.Preset, cfg.Policy.Name)

	return &runContext{path: absPath, cfg: cfg, logger: logger}, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "langgate: ", 0)
}
