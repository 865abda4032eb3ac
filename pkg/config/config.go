package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sitewire/sitewire/pkg/multierr"
	"gopkg.in/yaml.v3"
)

type (
	// Application is the root configuration of a synthesis run.
	Application struct {
		AppName  string `json:"app" yaml:"app" toml:"app"`
		Provider string `json:"provider" yaml:"provider" toml:"provider"`

		// Format is what format the file was originally in so that the
		// resolved config is written back out the same way.
		Format string `json:"-" yaml:"-" toml:"-"`

		OutDir string `json:"out_dir" yaml:"out_dir" toml:"out_dir"`

		Site Site `json:"site" yaml:"site" toml:"site"`
	}

	// Site holds the recognized options of the static website stack. These were
	// literals in earlier revisions of the stack and are deliberately
	// configuration now: each affects only resource naming and wiring.
	Site struct {
		DomainName    string `json:"domain_name" yaml:"domain_name" toml:"domain_name"`
		Subdomain     string `json:"subdomain,omitempty" yaml:"subdomain,omitempty" toml:"subdomain,omitempty"`
		HostedZoneId  string `json:"hosted_zone_id" yaml:"hosted_zone_id" toml:"hosted_zone_id"`
		SiteDir       string `json:"site_dir" yaml:"site_dir" toml:"site_dir"`
		IndexDocument string `json:"index_document,omitempty" yaml:"index_document,omitempty" toml:"index_document,omitempty"`
		ErrorDocument string `json:"error_document,omitempty" yaml:"error_document,omitempty" toml:"error_document,omitempty"`

		// Include and Exclude are doublestar patterns, relative to SiteDir,
		// selecting the assets uploaded to the bucket.
		Include []string `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`
		Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`

		// BlockedIps populates the firewall block list. An empty list leaves
		// the block rule in place but matching nothing.
		BlockedIps []string `json:"blocked_ips,omitempty" yaml:"blocked_ips,omitempty" toml:"blocked_ips,omitempty"`

		// AccountId falls back to the AWS_ACCOUNT_ID environment variable.
		AccountId string `json:"account_id,omitempty" yaml:"account_id,omitempty" toml:"account_id,omitempty"`
		Partition string `json:"partition,omitempty" yaml:"partition,omitempty" toml:"partition,omitempty"`

		// DistributionId pins the bucket policy condition to an existing
		// distribution. When empty the policy references the distribution
		// declared in the same graph.
		DistributionId string `json:"distribution_id,omitempty" yaml:"distribution_id,omitempty" toml:"distribution_id,omitempty"`

		// InfraParams are free-form overrides applied on top of the recognized
		// options above.
		InfraParams InfraParams `json:"infra_params,omitempty" yaml:"infra_params,omitempty" toml:"infra_params,omitempty"`
	}

	// InfraParams are decoded over the Site options via mapstructure.
	InfraParams map[string]interface{}
)

const (
	DefaultProvider      = "aws"
	DefaultPartition     = "aws"
	DefaultIndexDocument = "index.html"
	DefaultOutDir        = "synthesized"

	accountIdEnvVar = "AWS_ACCOUNT_ID"
)

func ReadConfig(fpath string) (Application, error) {
	var appCfg Application

	f, err := os.Open(fpath)
	if err != nil {
		return appCfg, err
	}
	defer f.Close() // nolint:errcheck

	switch filepath.Ext(fpath) {
	case ".json":
		err = json.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "json"

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "yaml"

	case ".toml":
		err = toml.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "toml"

	default:
		err = fmt.Errorf("unsupported config format for %s", fpath)
	}
	if err != nil {
		return appCfg, err
	}

	appCfg.EnsureDefaults()
	if err := appCfg.Site.ApplyInfraParams(); err != nil {
		return appCfg, err
	}
	return appCfg, nil
}

func (a *Application) EnsureDefaults() {
	if a.Provider == "" {
		a.Provider = DefaultProvider
	}
	if a.OutDir == "" {
		a.OutDir = DefaultOutDir
	}
	if a.Format == "" {
		a.Format = "yaml"
	}
	if a.Site.IndexDocument == "" {
		a.Site.IndexDocument = DefaultIndexDocument
	}
	if a.Site.Partition == "" {
		a.Site.Partition = DefaultPartition
	}
	if a.Site.AccountId == "" {
		a.Site.AccountId = os.Getenv(accountIdEnvVar)
	}
	if len(a.Site.Include) == 0 {
		a.Site.Include = []string{"**"}
	}
}

func (a *Application) Validate() error {
	var errs multierr.Error
	if a.AppName == "" {
		errs.Append(errors.New("app name is required"))
	}
	if a.Provider != DefaultProvider {
		errs.Append(errors.Errorf("provider %s is not supported", a.Provider))
	}
	if a.Site.DomainName == "" {
		errs.Append(errors.New("site.domain_name is required"))
	}
	if a.Site.HostedZoneId == "" {
		errs.Append(errors.New("site.hosted_zone_id is required"))
	}
	if a.Site.SiteDir == "" {
		errs.Append(errors.New("site.site_dir is required"))
	}
	if a.Site.AccountId == "" {
		errs.Append(errors.Errorf("site.account_id is required (or set %s)", accountIdEnvVar))
	}
	return errs.ErrOrNil()
}

// FqDomainName is the fully qualified name the site is served under.
func (s Site) FqDomainName() string {
	if s.Subdomain == "" {
		return s.DomainName
	}
	return s.Subdomain + "." + s.DomainName
}

// ApplyInfraParams decodes the free-form override map over the recognized
// options, so `infra_params` can tweak any Site field by its json key.
func (s *Site) ApplyInfraParams() error {
	if len(s.InfraParams) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  s,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]interface{}(s.InfraParams)); err != nil {
		return errors.Wrap(err, "applying infra_params overrides")
	}
	return nil
}

// Marshal renders the resolved configuration in its original format.
func (a Application) Marshal() ([]byte, error) {
	switch a.Format {
	case "json":
		return json.MarshalIndent(a, "", "    ")

	case "yaml":
		buf := new(bytes.Buffer)
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case "toml":
		return toml.Marshal(a)
	}
	return nil, fmt.Errorf("unsupported config format %s", a.Format)
}
