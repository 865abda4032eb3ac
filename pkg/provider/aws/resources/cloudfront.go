package resources

import (
	"fmt"

	"github.com/sitewire/sitewire/pkg/core"
	"github.com/sitewire/sitewire/pkg/sanitization/aws"
)

var cloudfrontDistributionSanitizer = aws.CloudfrontDistributionSanitizer

const (
	CLOUDFRONT_DISTRIBUTION_TYPE          = "cloudfront_distribution"
	CLOUDFRONT_ORIGIN_ACCESS_CONTROL_TYPE = "cloudfront_origin_access_control"

	originTypeS3          = "s3"
	signingBehaviorAlways = "always"
	signingProtocolSigV4  = "sigv4"
)

type (
	CloudfrontDistribution struct {
		Name                 string
		Origins              []CloudfrontOrigin `yaml:",omitempty"`
		Aliases              []string           `yaml:",omitempty"`
		Enabled              bool
		DefaultCacheBehavior *DefaultCacheBehavior
		Restrictions         *Restrictions
		ViewerCertificate    *ViewerCertificate    `yaml:",omitempty"`
		WebAclId             core.IaCValue         `yaml:",omitempty"`
		DefaultRootObject    string                `yaml:",omitempty"`
		CustomErrorResponses []CustomErrorResponse `yaml:",omitempty"`
	}

	DefaultCacheBehavior struct {
		AllowedMethods       []string
		CachedMethods        []string
		TargetOriginId       string
		ForwardedValues      ForwardedValues
		MinTtl               int
		DefaultTtl           int
		MaxTtl               int
		ViewerProtocolPolicy string
	}

	ForwardedValues struct {
		QueryString bool
		Cookies     Cookies
	}

	Cookies struct {
		Forward string
	}

	Restrictions struct {
		GeoRestriction GeoRestriction
	}

	GeoRestriction struct {
		RestrictionType string
	}

	// CustomErrorResponse maps an origin error status to a page served from the
	// distribution instead of the raw error.
	CustomErrorResponse struct {
		ErrorCode        int
		ResponseCode     int
		ResponsePagePath string
	}

	ViewerCertificate struct {
		AcmCertificateArn            core.IaCValue `yaml:",omitempty"`
		SslSupportMethod             string        `yaml:",omitempty"`
		MinimumProtocolVersion       string        `yaml:",omitempty"`
		CloudfrontDefaultCertificate bool          `yaml:",omitempty"`
	}

	CloudfrontOrigin struct {
		OriginId   string
		DomainName core.IaCValue
		OriginPath string `yaml:",omitempty"`

		// S3OriginConfig carries the deprecated origin access identity. It
		// stays present, with an empty identity, once origin access control
		// takes over.
		S3OriginConfig     *S3OriginConfig     `yaml:",omitempty"`
		CustomOriginConfig *CustomOriginConfig `yaml:",omitempty"`

		OriginAccessControlId core.IaCValue `yaml:",omitempty"`
	}

	S3OriginConfig struct {
		OriginAccessIdentity core.IaCValue `yaml:",omitempty"`
	}

	CustomOriginConfig struct {
		HttpPort             int
		HttpsPort            int
		OriginProtocolPolicy string
		OriginSslProtocols   []string
	}

	// OriginAccessControl lets the distribution authenticate to the bucket by
	// signing requests, replacing the legacy origin access identity.
	OriginAccessControl struct {
		Name            string
		Description     string `yaml:",omitempty"`
		OriginType      string
		SigningBehavior string
		SigningProtocol string
	}
)

func NewCloudfrontDistribution(appName string, name string) *CloudfrontDistribution {
	return &CloudfrontDistribution{
		Name:    cloudfrontDistributionSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		Enabled: true,
		DefaultCacheBehavior: &DefaultCacheBehavior{
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			CachedMethods:  []string{"HEAD", "GET"},
			ForwardedValues: ForwardedValues{
				QueryString: false,
				Cookies:     Cookies{Forward: "none"},
			},
			MinTtl:               0,
			DefaultTtl:           3600,
			MaxTtl:               86400,
			ViewerProtocolPolicy: "redirect-to-https",
		},
		Restrictions: &Restrictions{
			GeoRestriction: GeoRestriction{RestrictionType: "none"},
		},
		ViewerCertificate: &ViewerCertificate{
			CloudfrontDefaultCertificate: true,
		},
	}
}

// NewS3OriginTemplate composes the origin the way the declarative inputs first
// generate it: pointed at the bucket's global endpoint, with the legacy
// identity slot and an auto-populated custom-origin sub-document.
// FinalizeOriginAccess rewires all of that before the graph is emitted.
func NewS3OriginTemplate(bucket *S3Bucket, originId string) CloudfrontOrigin {
	return CloudfrontOrigin{
		OriginId:       originId,
		DomainName:     core.IaCValue{Resource: bucket, Property: BUCKET_DOMAIN_NAME_IAC_VALUE},
		S3OriginConfig: &S3OriginConfig{},
		CustomOriginConfig: &CustomOriginConfig{
			HttpPort:             80,
			HttpsPort:            443,
			OriginProtocolPolicy: "http-only",
			OriginSslProtocols:   []string{"TLSv1.2"},
		},
	}
}

func NewOriginAccessControl(appName string, name string) *OriginAccessControl {
	return &OriginAccessControl{
		Name:            cloudfrontDistributionSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		Description:     "grants the distribution signed access to the site bucket",
		OriginType:      originTypeS3,
		SigningBehavior: signingBehaviorAlways,
		SigningProtocol: signingProtocolSigV4,
	}
}

// Provider returns name of the provider the resource is correlated to
func (distro *CloudfrontDistribution) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (distro *CloudfrontDistribution) Id() string {
	return fmt.Sprintf("%s:%s:%s", distro.Provider(), CLOUDFRONT_DISTRIBUTION_TYPE, distro.Name)
}

// Provider returns name of the provider the resource is correlated to
func (oac *OriginAccessControl) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (oac *OriginAccessControl) Id() string {
	return fmt.Sprintf("%s:%s:%s", oac.Provider(), CLOUDFRONT_ORIGIN_ACCESS_CONTROL_TYPE, oac.Name)
}
