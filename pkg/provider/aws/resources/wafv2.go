package resources

import (
	"fmt"

	"github.com/sitewire/sitewire/pkg/core"
	"github.com/sitewire/sitewire/pkg/sanitization/aws"
)

var wafNameSanitizer = aws.WafNameSanitizer

const (
	WAF_IP_SET_TYPE  = "wafv2_ip_set"
	WAF_WEB_ACL_TYPE = "wafv2_web_acl"

	wafScopeCloudfront = "CLOUDFRONT"
)

type (
	WafIpSet struct {
		Name             string
		Description      string `yaml:",omitempty"`
		IpAddressVersion string
		// Addresses in CIDR notation. An empty set is a valid declaration that
		// matches nothing.
		Addresses []string `yaml:",omitempty"`
	}

	// WafWebAcl allows everything by default and blocks requests whose source
	// address is in the block list.
	WafWebAcl struct {
		Name             string
		Description      string `yaml:",omitempty"`
		Scope            string
		DefaultAction    string
		Rules            []WafRule `yaml:",omitempty"`
		VisibilityConfig VisibilityConfig
	}

	WafRule struct {
		Name             string
		Priority         int
		Action           string
		IpSet            core.IaCValue
		VisibilityConfig VisibilityConfig
	}

	VisibilityConfig struct {
		CloudwatchMetricsEnabled bool
		MetricName               string
		SampledRequestsEnabled   bool
	}
)

func NewWafIpSet(appName string, name string, addresses []string) *WafIpSet {
	return &WafIpSet{
		Name:             wafNameSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		Description:      "addresses denied access to the site",
		IpAddressVersion: "IPV4",
		Addresses:        addresses,
	}
}

func NewWafWebAcl(appName string, name string, blockList *WafIpSet) *WafWebAcl {
	aclName := wafNameSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name))
	return &WafWebAcl{
		Name:          aclName,
		Scope:         wafScopeCloudfront,
		DefaultAction: "allow",
		Rules: []WafRule{
			{
				Name:     fmt.Sprintf("%s-block-list", aclName),
				Priority: 0,
				Action:   "block",
				IpSet:    core.IaCValue{Resource: blockList, Property: ARN_IAC_VALUE},
				VisibilityConfig: VisibilityConfig{
					CloudwatchMetricsEnabled: true,
					MetricName:               fmt.Sprintf("%s-block-list", aclName),
					SampledRequestsEnabled:   true,
				},
			},
		},
		VisibilityConfig: VisibilityConfig{
			CloudwatchMetricsEnabled: true,
			MetricName:               aclName,
			SampledRequestsEnabled:   true,
		},
	}
}

// Provider returns name of the provider the resource is correlated to
func (ipSet *WafIpSet) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (ipSet *WafIpSet) Id() string {
	return fmt.Sprintf("%s:%s:%s", ipSet.Provider(), WAF_IP_SET_TYPE, ipSet.Name)
}

// Provider returns name of the provider the resource is correlated to
func (acl *WafWebAcl) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (acl *WafWebAcl) Id() string {
	return fmt.Sprintf("%s:%s:%s", acl.Provider(), WAF_WEB_ACL_TYPE, acl.Name)
}
