package resources

import (
	"testing"

	"github.com/sitewire/sitewire/pkg/core"
	"github.com/stretchr/testify/assert"
)

func Test_NewWafIpSet(t *testing.T) {
	assert := assert.New(t)
	ipSet := NewWafIpSet("my-site", "block-list", []string{"198.51.100.0/24"})
	assert.Equal("my-site-block-list", ipSet.Name)
	assert.Equal("IPV4", ipSet.IpAddressVersion)
	assert.Equal([]string{"198.51.100.0/24"}, ipSet.Addresses)
	assert.Equal("aws:wafv2_ip_set:my-site-block-list", ipSet.Id())
}

func Test_NewWafIpSetEmptyAddresses(t *testing.T) {
	assert := assert.New(t)
	ipSet := NewWafIpSet("my-site", "block-list", nil)
	assert.Empty(ipSet.Addresses)
}

func Test_NewWafWebAcl(t *testing.T) {
	assert := assert.New(t)
	ipSet := NewWafIpSet("my-site", "block-list", []string{"198.51.100.0/24"})
	acl := NewWafWebAcl("my-site", "firewall", ipSet)

	assert.Equal("my-site-firewall", acl.Name)
	assert.Equal("CLOUDFRONT", acl.Scope)
	assert.Equal("allow", acl.DefaultAction)
	assert.Equal("aws:wafv2_web_acl:my-site-firewall", acl.Id())
	if assert.Len(acl.Rules, 1) {
		rule := acl.Rules[0]
		assert.Equal("my-site-firewall-block-list", rule.Name)
		assert.Equal(0, rule.Priority)
		assert.Equal("block", rule.Action)
		assert.Equal(core.IaCValue{Resource: ipSet, Property: ARN_IAC_VALUE}, rule.IpSet)
	}
	assert.True(acl.VisibilityConfig.CloudwatchMetricsEnabled)
}
