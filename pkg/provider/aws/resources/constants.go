package resources

const AWS_PROVIDER = "aws"

// IaC property names resolved by the provisioning engine against the resource
// an IaCValue points at.
const (
	ARN_IAC_VALUE                         = "arn"
	ID_IAC_VALUE                          = "id"
	ALL_BUCKET_DIRECTORY_IAC_VALUE        = "all_bucket_directory"
	BUCKET_DOMAIN_NAME_IAC_VALUE          = "bucket_domain_name"
	BUCKET_REGIONAL_DOMAIN_NAME_IAC_VALUE = "bucket_regional_domain_name"
	DISTRIBUTION_DOMAIN_NAME_IAC_VALUE    = "distribution_domain_name"
	DISTRIBUTION_ZONE_ID_IAC_VALUE        = "distribution_hosted_zone_id"
	CERTIFICATE_ARN_IAC_VALUE             = "certificate_arn"
	DNS_VALIDATION_RECORDS_IAC_VALUE      = "domain_validation_options"
)
