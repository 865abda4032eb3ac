package aws

import (
	"path"

	"github.com/pkg/errors"
	"github.com/sitewire/sitewire/pkg/assets"
	"github.com/sitewire/sitewire/pkg/core"
	"github.com/sitewire/sitewire/pkg/provider/aws/resources"
	"go.uber.org/zap"
)

// CreateStaticSite declares every resource of the static website stack into
// the graph: the private bucket with its objects, the distribution fronting it
// through origin access control, the certificate, the alias record, and the
// firewall.
//
// The order below matters in exactly one place: the distribution template must
// be fully composed before FinalizeOriginAccess runs, and only the finalized
// copy may enter the graph.
func (a *AWS) CreateStaticSite(dag *core.ResourceGraph, siteAssets []assets.Asset) error {
	cfg := a.Config
	site := cfg.Site
	fqdn := site.FqDomainName()
	log := zap.S().Named("aws")

	accountId := resources.NewAccountId(site.AccountId)
	region := resources.NewRegion()

	bucket := resources.NewS3Bucket(cfg.AppName, "site", site.IndexDocument, accountId)
	dag.AddDependenciesReflect(bucket)
	// the regional endpoint only resolves within the deployment region
	dag.AddDependency(bucket, region)

	for _, asset := range siteAssets {
		object := resources.NewS3Object(
			bucket,
			asset.Key,
			asset.Key,
			path.Join(site.SiteDir, asset.FPath),
			asset.ContentType,
			asset.SourceHash,
		)
		dag.AddDependenciesReflect(object)
	}

	zone := resources.NewImportedHostedZone(site.HostedZoneId, site.DomainName)
	dag.AddResource(zone)

	cert := resources.NewAcmCertificate(cfg.AppName, fqdn)
	validation := resources.NewAcmCertificateValidation(cert)
	dag.AddDependenciesReflect(validation)
	// validation records are written into the zone
	dag.AddDependency(validation, zone)

	if len(site.BlockedIps) == 0 {
		log.Warnf("site.blocked_ips is empty; the firewall block rule for %s will match nothing", fqdn)
	}
	blockList := resources.NewWafIpSet(cfg.AppName, "block-list", site.BlockedIps)
	firewall := resources.NewWafWebAcl(cfg.AppName, "firewall", blockList)
	dag.AddDependenciesReflect(firewall)

	oac := resources.NewOriginAccessControl(cfg.AppName, "site")
	dag.AddResource(oac)

	template := resources.NewCloudfrontDistribution(cfg.AppName, "cdn")
	template.Aliases = []string{fqdn}
	template.DefaultRootObject = bucket.IndexDocument
	template.Origins = []resources.CloudfrontOrigin{
		resources.NewS3OriginTemplate(bucket, "site"),
	}
	template.DefaultCacheBehavior.TargetOriginId = "site"
	if site.ErrorDocument != "" {
		template.CustomErrorResponses = errorResponses(site.ErrorDocument)
	}
	template.ViewerCertificate = &resources.ViewerCertificate{
		AcmCertificateArn:      core.IaCValue{Resource: validation, Property: resources.CERTIFICATE_ARN_IAC_VALUE},
		SslSupportMethod:       "sni-only",
		MinimumProtocolVersion: "TLSv1.2_2021",
	}
	template.WebAclId = core.IaCValue{Resource: firewall, Property: resources.ARN_IAC_VALUE}

	distro, statement, err := resources.FinalizeOriginAccess(template, bucket, oac, a.distributionSourceArn(template))
	if err != nil {
		return errors.Wrap(err, "wiring origin access")
	}
	dag.AddDependenciesReflect(distro)

	policy := resources.NewBucketPolicy("cdn-read", bucket, &resources.PolicyDocument{
		Version:   resources.VERSION,
		Statement: []resources.StatementEntry{statement},
	})
	dag.AddDependenciesReflect(policy)

	record := resources.NewAliasRecord(zone, fqdn, distro)
	dag.AddDependenciesReflect(record)

	log.Debugf("declared static site %s with %d assets", fqdn, len(siteAssets))
	return nil
}

// errorResponses serves the configured error document for missing objects. A
// private bucket answers unauthenticated key misses with 403, so both 403 and
// 404 map to the same page.
func errorResponses(errorDocument string) []resources.CustomErrorResponse {
	page := "/" + errorDocument
	return []resources.CustomErrorResponse{
		{ErrorCode: 403, ResponseCode: 404, ResponsePagePath: page},
		{ErrorCode: 404, ResponseCode: 404, ResponsePagePath: page},
	}
}

// distributionSourceArn pins the bucket-policy condition to the configured
// distribution id when one is given; otherwise the policy references the
// distribution declared in this same graph and the engine resolves the ARN.
func (a *AWS) distributionSourceArn(distro *resources.CloudfrontDistribution) core.IaCValue {
	site := a.Config.Site
	if site.DistributionId != "" {
		return resources.DistributionSourceArn(site.Partition, site.AccountId, site.DistributionId)
	}
	return core.IaCValue{Resource: distro, Property: resources.ARN_IAC_VALUE}
}
