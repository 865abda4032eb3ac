package aws

import (
	"regexp"

	"github.com/sitewire/sitewire/pkg/sanitization"
)

// S3BucketSanitizer returns a valid S3 bucket name when applied.
var S3BucketSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		// bucket names are lowercase alphanumerics, dots, and hyphens
		{
			Pattern:     regexp.MustCompile(`[^a-z0-9.-]`),
			Replacement: "-",
		},
	},
	63,
)

// CloudfrontDistributionSanitizer returns a valid distribution name when applied.
var CloudfrontDistributionSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z0-9-]`),
			Replacement: "-",
		},
	},
	64,
)

// IamPolicySanitizer returns a valid IAM policy name when applied.
var IamPolicySanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "-",
		},
	},
	128,
)

// WafNameSanitizer returns a valid WAF ip set or web acl name when applied.
var WafNameSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z0-9_-]`),
			Replacement: "-",
		},
	},
	128,
)
