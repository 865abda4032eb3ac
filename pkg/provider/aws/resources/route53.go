package resources

import (
	"fmt"

	"github.com/sitewire/sitewire/pkg/core"
)

const (
	ROUTE_53_HOSTED_ZONE_TYPE = "route53_hosted_zone"
	ROUTE_53_RECORD_TYPE      = "route53_record"
)

type (
	// Route53HostedZone refers to the zone the site's records live in. The
	// zone itself is owned elsewhere; it is always an imported lookup here.
	Route53HostedZone struct {
		Name       string
		ZoneId     string
		DomainName string
		Imported   bool
	}

	Route53Record struct {
		Name       string
		Zone       *Route53HostedZone `yaml:"-"`
		DomainName string
		Type       string
		Alias      *RecordAlias `yaml:",omitempty"`
	}

	// RecordAlias maps the record to a distribution endpoint instead of fixed
	// address values.
	RecordAlias struct {
		DomainName           core.IaCValue
		HostedZoneId         core.IaCValue
		EvaluateTargetHealth bool
	}
)

func NewImportedHostedZone(zoneId string, domainName string) *Route53HostedZone {
	return &Route53HostedZone{
		Name:       zoneId,
		ZoneId:     zoneId,
		DomainName: domainName,
		Imported:   true,
	}
}

func NewAliasRecord(zone *Route53HostedZone, domainName string, distro *CloudfrontDistribution) *Route53Record {
	return &Route53Record{
		Name:       fmt.Sprintf("%s-%s", zone.Name, domainName),
		Zone:       zone,
		DomainName: domainName,
		Type:       "A",
		Alias: &RecordAlias{
			DomainName:           core.IaCValue{Resource: distro, Property: DISTRIBUTION_DOMAIN_NAME_IAC_VALUE},
			HostedZoneId:         core.IaCValue{Resource: distro, Property: DISTRIBUTION_ZONE_ID_IAC_VALUE},
			EvaluateTargetHealth: false,
		},
	}
}

// Provider returns name of the provider the resource is correlated to
func (zone *Route53HostedZone) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (zone *Route53HostedZone) Id() string {
	return fmt.Sprintf("%s:%s:%s", zone.Provider(), ROUTE_53_HOSTED_ZONE_TYPE, zone.Name)
}

// Provider returns name of the provider the resource is correlated to
func (record *Route53Record) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (record *Route53Record) Id() string {
	return fmt.Sprintf("%s:%s:%s", record.Provider(), ROUTE_53_RECORD_TYPE, record.Name)
}
