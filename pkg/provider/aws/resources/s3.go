package resources

import (
	"fmt"

	"github.com/sitewire/sitewire/pkg/sanitization/aws"
)

const (
	S3_BUCKET_TYPE        = "s3_bucket"
	S3_OBJECT_TYPE        = "s3_object"
	S3_BUCKET_POLICY_TYPE = "s3_bucket_policy"
)

var (
	s3BucketSanitizer  = aws.S3BucketSanitizer
	iamPolicySanitizer = aws.IamPolicySanitizer
)

type (
	S3Bucket struct {
		Name          string
		AccountId     *AccountId `yaml:"-"`
		ForceDestroy  bool
		IndexDocument string

		// The four public-access-block switches are always set together; the
		// bucket is only ever reachable through the distribution.
		BlockPublicAcls       bool
		BlockPublicPolicy     bool
		IgnorePublicAcls      bool
		RestrictPublicBuckets bool
	}

	S3Object struct {
		Name        string
		Bucket      *S3Bucket `yaml:"-"`
		Key         string
		FilePath    string
		ContentType string
		SourceHash  string
	}

	S3BucketPolicy struct {
		Name   string
		Bucket *S3Bucket `yaml:"-"`
		Policy *PolicyDocument
	}
)

func NewS3Bucket(appName string, name string, indexDocument string, accountId *AccountId) *S3Bucket {
	return &S3Bucket{
		Name:                  s3BucketSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		AccountId:             accountId,
		ForceDestroy:          true,
		IndexDocument:         indexDocument,
		BlockPublicAcls:       true,
		BlockPublicPolicy:     true,
		IgnorePublicAcls:      true,
		RestrictPublicBuckets: true,
	}
}

func NewS3Object(bucket *S3Bucket, name string, key string, filePath string, contentType string, sourceHash string) *S3Object {
	return &S3Object{
		Name:        fmt.Sprintf("%s-%s", bucket.Name, name),
		Bucket:      bucket,
		Key:         key,
		FilePath:    filePath,
		ContentType: contentType,
		SourceHash:  sourceHash,
	}
}

func NewBucketPolicy(name string, bucket *S3Bucket, policy *PolicyDocument) *S3BucketPolicy {
	return &S3BucketPolicy{
		Name:   iamPolicySanitizer.Apply(fmt.Sprintf("%s-%s", bucket.Name, name)),
		Bucket: bucket,
		Policy: policy,
	}
}

// Provider returns name of the provider the resource is correlated to
func (bucket *S3Bucket) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (bucket *S3Bucket) Id() string {
	return fmt.Sprintf("%s:%s:%s", bucket.Provider(), S3_BUCKET_TYPE, bucket.Name)
}

// Provider returns name of the provider the resource is correlated to
func (object *S3Object) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (object *S3Object) Id() string {
	return fmt.Sprintf("%s:%s:%s", object.Provider(), S3_OBJECT_TYPE, object.Name)
}

// Provider returns name of the provider the resource is correlated to
func (policy *S3BucketPolicy) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (policy *S3BucketPolicy) Id() string {
	return fmt.Sprintf("%s:%s:%s", policy.Provider(), S3_BUCKET_POLICY_TYPE, policy.Name)
}
