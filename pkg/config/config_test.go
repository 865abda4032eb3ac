package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfig_Yaml(t *testing.T) {
	assert := assert.New(t)
	path := writeConfigFile(t, "site.yaml", `
app: my-site
site:
  domain_name: example.com
  subdomain: www
  hosted_zone_id: Z0123456789ABCDEFGHIJ
  site_dir: ./public
  account_id: "123456789012"
  blocked_ips:
    - 198.51.100.0/24
`)
	cfg, err := ReadConfig(path)
	assert.NoError(err)
	assert.Equal("yaml", cfg.Format)
	assert.Equal("my-site", cfg.AppName)
	assert.Equal("aws", cfg.Provider)
	assert.Equal(DefaultOutDir, cfg.OutDir)
	assert.Equal("www.example.com", cfg.Site.FqDomainName())
	assert.Equal(DefaultIndexDocument, cfg.Site.IndexDocument)
	assert.Equal("aws", cfg.Site.Partition)
	assert.Equal([]string{"**"}, cfg.Site.Include)
	assert.Equal([]string{"198.51.100.0/24"}, cfg.Site.BlockedIps)
	assert.NoError(cfg.Validate())
}

func TestReadConfig_Toml(t *testing.T) {
	assert := assert.New(t)
	path := writeConfigFile(t, "site.toml", `
app = "my-site"

[site]
domain_name = "example.com"
hosted_zone_id = "Z0123456789ABCDEFGHIJ"
site_dir = "./public"
account_id = "123456789012"
`)
	cfg, err := ReadConfig(path)
	assert.NoError(err)
	assert.Equal("toml", cfg.Format)
	assert.Equal("example.com", cfg.Site.FqDomainName())
	assert.NoError(cfg.Validate())
}

func TestReadConfig_Json(t *testing.T) {
	assert := assert.New(t)
	path := writeConfigFile(t, "site.json", `{
  "app": "my-site",
  "site": {
    "domain_name": "example.com",
    "hosted_zone_id": "Z0123456789ABCDEFGHIJ",
    "site_dir": "./public",
    "account_id": "123456789012"
  }
}`)
	cfg, err := ReadConfig(path)
	assert.NoError(err)
	assert.Equal("json", cfg.Format)
	assert.NoError(cfg.Validate())
}

func TestReadConfig_UnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "site.ini", "app=my-site")
	_, err := ReadConfig(path)
	assert.Error(t, err)
}

func TestReadConfig_InfraParamsOverride(t *testing.T) {
	assert := assert.New(t)
	path := writeConfigFile(t, "site.yaml", `
app: my-site
site:
  domain_name: example.com
  hosted_zone_id: Z0123456789ABCDEFGHIJ
  site_dir: ./public
  account_id: "123456789012"
  index_document: home.html
  infra_params:
    index_document: index.html
    partition: aws-us-gov
`)
	cfg, err := ReadConfig(path)
	assert.NoError(err)
	assert.Equal("index.html", cfg.Site.IndexDocument)
	assert.Equal("aws-us-gov", cfg.Site.Partition)
}

func TestValidate_MissingFields(t *testing.T) {
	assert := assert.New(t)
	cfg := Application{}
	cfg.EnsureDefaults()
	cfg.Site.AccountId = "" // ignore any ambient AWS_ACCOUNT_ID
	err := cfg.Validate()
	assert.Error(err)
	assert.Contains(err.Error(), "app name is required")
	assert.Contains(err.Error(), "site.domain_name is required")
	assert.Contains(err.Error(), "site.hosted_zone_id is required")
	assert.Contains(err.Error(), "site.site_dir is required")
	assert.Contains(err.Error(), "site.account_id is required")
}

func TestMarshal_RoundTripsFormat(t *testing.T) {
	assert := assert.New(t)
	cfg := Application{AppName: "my-site", Format: "toml"}
	cfg.EnsureDefaults()
	out, err := cfg.Marshal()
	assert.NoError(err)
	assert.Contains(string(out), `app = 'my-site'`)

	cfg.Format = "yaml"
	out, err = cfg.Marshal()
	assert.NoError(err)
	assert.Contains(string(out), "app: my-site")
}
