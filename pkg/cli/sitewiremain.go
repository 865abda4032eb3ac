package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sitewire/sitewire/pkg/assets"
	"github.com/sitewire/sitewire/pkg/closenicely"
	"github.com/sitewire/sitewire/pkg/config"
	"github.com/sitewire/sitewire/pkg/core"
	"github.com/sitewire/sitewire/pkg/io"
	"github.com/sitewire/sitewire/pkg/logging"
	"github.com/sitewire/sitewire/pkg/provider/aws"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type SitewireMain struct {
	Version          string
	VersionQualifier string
}

var cfg struct {
	verbose       bool
	config        string
	outDir        string
	appName       string
	cfgFormat     string
	color         string
	jsonLog       bool
	internalDebug bool
	version       bool
}

const (
	defaultConfigFile = "sitewire.yaml"
	resourcesFile     = "resources.yaml"
)

func (sm SitewireMain) Main() {
	var root = &cobra.Command{
		Use:           "sitewire",
		Short:         "Synthesize the resource graph for a static website",
		RunE:          sm.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setUpCliFlags(root.Flags())

	err := root.Execute()
	if err != nil {
		if cfg.internalDebug {
			zap.S().Errorf("%+v", err)
		} else {
			zap.S().Errorf("%v", err)
		}
		zap.S().Error("Synthesis failed")
		os.Exit(1)
	}
}

func setUpCliFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Verbose flag")
	flags.StringVarP(&cfg.config, "config", "c", defaultConfigFile, "Config file")
	flags.StringVarP(&cfg.outDir, "out-dir", "o", "", "Output directory (overrides the config)")
	flags.StringVar(&cfg.appName, "app", "", "Application name (overrides the config)")
	flags.StringVarP(&cfg.cfgFormat, "cfg-format", "F", "", "The format the resolved config is written in. Supports: yaml, toml, json")
	flags.StringVar(&cfg.color, "color", "auto", "Colorize output. Supports: auto, always, never")
	flags.BoolVar(&cfg.jsonLog, "json-log", false, "Log in JSON")
	flags.BoolVar(&cfg.internalDebug, "internalDebug", false, "Enable debugging output")
	flags.BoolVar(&cfg.version, "version", false, "Print the version")

	_ = flags.MarkHidden("internalDebug")
}

func setupLogger() *zap.Logger {
	opts := logging.LogOpts{
		Verbose: cfg.verbose,
		Color:   cfg.color,
	}
	if cfg.jsonLog {
		opts.Encoding = "json"
	}
	return opts.NewLogger()
}

func (sm SitewireMain) version() string {
	v := sm.Version
	if sm.VersionQualifier != "" {
		v += "-" + sm.VersionQualifier
	}
	return v
}

func (sm SitewireMain) run(cmd *cobra.Command, args []string) error {
	logger := setupLogger()
	defer closenicely.FuncOrDebug(logger.Sync)
	zap.ReplaceGlobals(logger)

	errHandler := ErrorHandler{
		InternalDebug: cfg.internalDebug,
		Verbose:       cfg.verbose,
	}

	if cfg.version {
		fmt.Printf("Version: %s\n", sm.version())
		return nil
	}

	appCfg, err := config.ReadConfig(cfg.config)
	if err != nil {
		errHandler.PrintErr(errors.Wrapf(err, "could not read config '%s'", cfg.config))
		return err
	}
	if cfg.appName != "" {
		appCfg.AppName = cfg.appName
	}
	if cfg.outDir != "" {
		appCfg.OutDir = cfg.outDir
	}
	if cfg.cfgFormat != "" {
		appCfg.Format = cfg.cfgFormat
	}

	if err := appCfg.Validate(); err != nil {
		errHandler.PrintErr(err)
		return err
	}

	siteAssets, err := assets.Discover(appCfg.Site.SiteDir, assets.Matcher{
		Include: appCfg.Site.Include,
		Exclude: appCfg.Site.Exclude,
	})
	if err != nil {
		errHandler.PrintErr(err)
		return err
	}
	zap.S().Infof("Discovered %d assets under %s", len(siteAssets), appCfg.Site.SiteDir)

	dag := core.NewResourceGraph()
	provider := &aws.AWS{Config: &appCfg}
	if err := provider.CreateStaticSite(dag, siteAssets); err != nil {
		errHandler.PrintErr(err)
		return err
	}

	files, err := outputFiles(appCfg, dag)
	if err != nil {
		errHandler.PrintErr(err)
		return err
	}
	if err := io.OutputTo(files, appCfg.OutDir); err != nil {
		errHandler.PrintErr(errors.Wrap(err, "could not write output files"))
		return err
	}

	zap.S().Infof("Synthesized %s to %s", appCfg.Site.FqDomainName(), appCfg.OutDir)
	return nil
}

// outputFiles renders the run's artifacts: the resource graph and the resolved
// configuration, in the configuration's own format.
func outputFiles(appCfg config.Application, dag *core.ResourceGraph) ([]io.File, error) {
	graphBuf := new(bytes.Buffer)
	if err := dag.OutputTo(graphBuf); err != nil {
		return nil, errors.Wrap(err, "could not render resource graph")
	}

	cfgBytes, err := appCfg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "could not render resolved config")
	}

	return []io.File{
		&io.RawFile{FPath: resourcesFile, Content: graphBuf.Bytes()},
		&io.RawFile{FPath: fmt.Sprintf("sitewire.%s", appCfg.Format), Content: cfgBytes},
	}, nil
}
