package resources

import (
	"fmt"

	"github.com/sitewire/sitewire/pkg/core"
)

const (
	ACM_CERTIFICATE_TYPE            = "acm_certificate"
	ACM_CERTIFICATE_VALIDATION_TYPE = "acm_certificate_validation"

	validationMethodDns = "DNS"
)

type (
	// AcmCertificate requests a public TLS certificate for the site's fully
	// qualified domain name. Issuance and renewal are owned by the certificate
	// service; this resource only declares the request.
	AcmCertificate struct {
		Name                    string
		DomainName              string
		SubjectAlternativeNames []string `yaml:",omitempty"`
		ValidationMethod        string
	}

	// AcmCertificateValidation gates downstream consumers (the distribution's
	// viewer certificate) on the certificate having validated via DNS.
	AcmCertificateValidation struct {
		Name                  string
		Certificate           *AcmCertificate `yaml:"-"`
		ValidationRecordFqdns []core.IaCValue `yaml:",omitempty"`
	}
)

func NewAcmCertificate(appName string, domainName string) *AcmCertificate {
	return &AcmCertificate{
		Name:             fmt.Sprintf("%s-%s", appName, domainName),
		DomainName:       domainName,
		ValidationMethod: validationMethodDns,
	}
}

func NewAcmCertificateValidation(certificate *AcmCertificate) *AcmCertificateValidation {
	return &AcmCertificateValidation{
		Name:        certificate.Name,
		Certificate: certificate,
		ValidationRecordFqdns: []core.IaCValue{
			{Resource: certificate, Property: DNS_VALIDATION_RECORDS_IAC_VALUE},
		},
	}
}

// Provider returns name of the provider the resource is correlated to
func (cert *AcmCertificate) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (cert *AcmCertificate) Id() string {
	return fmt.Sprintf("%s:%s:%s", cert.Provider(), ACM_CERTIFICATE_TYPE, cert.Name)
}

// Provider returns name of the provider the resource is correlated to
func (validation *AcmCertificateValidation) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (validation *AcmCertificateValidation) Id() string {
	return fmt.Sprintf("%s:%s:%s", validation.Provider(), ACM_CERTIFICATE_VALIDATION_TYPE, validation.Name)
}
