package resources

import (
	"testing"

	"github.com/sitewire/sitewire/pkg/core"
	"github.com/stretchr/testify/assert"
)

func Test_NewAcmCertificate(t *testing.T) {
	assert := assert.New(t)
	cert := NewAcmCertificate("my-site", "www.example.com")
	assert.Equal("my-site-www.example.com", cert.Name)
	assert.Equal("www.example.com", cert.DomainName)
	assert.Equal("DNS", cert.ValidationMethod)
	assert.Equal("aws:acm_certificate:my-site-www.example.com", cert.Id())
}

func Test_NewAcmCertificateValidation(t *testing.T) {
	assert := assert.New(t)
	cert := NewAcmCertificate("my-site", "www.example.com")
	validation := NewAcmCertificateValidation(cert)
	assert.Same(cert, validation.Certificate)
	assert.Equal(
		[]core.IaCValue{{Resource: cert, Property: DNS_VALIDATION_RECORDS_IAC_VALUE}},
		validation.ValidationRecordFqdns,
	)
	assert.Equal("aws:acm_certificate_validation:my-site-www.example.com", validation.Id())
}
