package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewCloudfrontDistribution(t *testing.T) {
	assert := assert.New(t)
	distro := NewCloudfrontDistribution("my-site", "cdn")
	assert.Equal("my-site-cdn", distro.Name)
	assert.True(distro.Enabled)
	assert.Equal("redirect-to-https", distro.DefaultCacheBehavior.ViewerProtocolPolicy)
	assert.Equal("none", distro.Restrictions.GeoRestriction.RestrictionType)
	assert.True(distro.ViewerCertificate.CloudfrontDefaultCertificate)
	assert.Empty(distro.Origins)
}

func Test_CloudfrontDistributionSanitizesName(t *testing.T) {
	assert := assert.New(t)
	distro := NewCloudfrontDistribution("my site", "cdn!")
	assert.Equal("my-site-cdn-", distro.Name)
}

func Test_CloudfrontDistributionId(t *testing.T) {
	assert := assert.New(t)
	distro := NewCloudfrontDistribution("my-site", "cdn")
	assert.Equal(AWS_PROVIDER, distro.Provider())
	assert.Equal("aws:cloudfront_distribution:my-site-cdn", distro.Id())
}

func Test_NewOriginAccessControl(t *testing.T) {
	assert := assert.New(t)
	oac := NewOriginAccessControl("my-site", "assets")
	assert.Equal("my-site-assets", oac.Name)
	assert.Equal("s3", oac.OriginType)
	assert.Equal("always", oac.SigningBehavior)
	assert.Equal("sigv4", oac.SigningProtocol)
	assert.Equal("aws:cloudfront_origin_access_control:my-site-assets", oac.Id())
}
