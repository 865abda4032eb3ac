package resources

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sitewire/sitewire/pkg/core"
)

const cloudfrontServicePrincipal = "cloudfront.amazonaws.com"

// DistributionSourceArn builds the ARN that identifies a distribution as a
// bucket-policy caller condition.
func DistributionSourceArn(partition string, accountId string, distributionId string) core.IaCValue {
	return core.LiteralValue(fmt.Sprintf("arn:%s:cloudfront::%s:distribution/%s", partition, accountId, distributionId))
}

// FinalizeOriginAccess rewires a distribution template from the deprecated
// origin access identity mechanism to origin access control, and produces the
// bucket-policy statement granting the distribution read access.
//
// On the first origin of the returned copy:
//  1. the legacy access identity is cleared,
//  2. the custom-origin sub-document is removed entirely (the two mechanisms
//     are mutually exclusive),
//  3. the endpoint is pointed at the bucket's regional domain name - the
//     global endpoint does not accept signed origin requests,
//  4. the origin access control id is attached.
//
// The returned statement allows s3:GetObject on the bucket's objects to the
// CloudFront service principal, conditioned on the calling distribution's ARN
// matching sourceArn. The condition must name the same distribution the policy
// is attached for; anything else grants every distribution in the account read
// access.
//
// The template is never mutated and finalizing an already-finalized template
// returns an identical document. Only the first origin is rewired; a
// multi-origin template needs one pass per origin index, which this tool does
// not produce.
//
// Must run after the distribution template is fully composed and before the
// graph is emitted.
func FinalizeOriginAccess(template *CloudfrontDistribution, bucket *S3Bucket, oac *OriginAccessControl, sourceArn core.IaCValue) (*CloudfrontDistribution, StatementEntry, error) {
	if template == nil {
		return nil, StatementEntry{}, errors.New("distribution template is nil")
	}
	if len(template.Origins) == 0 {
		return nil, StatementEntry{}, errors.Errorf("distribution %s has no origins to rewire", template.Name)
	}

	finalized := *template
	finalized.Origins = make([]CloudfrontOrigin, len(template.Origins))
	copy(finalized.Origins, template.Origins)

	origin := &finalized.Origins[0]
	origin.S3OriginConfig = &S3OriginConfig{}
	origin.CustomOriginConfig = nil
	origin.DomainName = core.IaCValue{Resource: bucket, Property: BUCKET_REGIONAL_DOMAIN_NAME_IAC_VALUE}
	origin.OriginAccessControlId = core.IaCValue{Resource: oac, Property: ID_IAC_VALUE}

	statement := StatementEntry{
		Effect: "Allow",
		Action: []string{"s3:GetObject"},
		Resource: []core.IaCValue{
			{Resource: bucket, Property: ALL_BUCKET_DIRECTORY_IAC_VALUE},
		},
		Principal: &Principal{
			Service: cloudfrontServicePrincipal,
		},
		Condition: &Condition{
			StringEquals: map[string]core.IaCValue{
				"AWS:SourceArn": sourceArn,
			},
		},
	}
	return &finalized, statement, nil
}
