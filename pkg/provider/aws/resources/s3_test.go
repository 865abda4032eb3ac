package resources

import (
	"testing"

	"github.com/sitewire/sitewire/pkg/core"
	"github.com/stretchr/testify/assert"
)

func Test_NewS3Bucket(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("My Site", "assets", "index.html", NewAccountId("123456789012"))
	assert.Equal("-y--ite-assets", bucket.Name)
	assert.True(bucket.ForceDestroy)
	assert.Equal("index.html", bucket.IndexDocument)
	assert.True(bucket.BlockPublicAcls)
	assert.True(bucket.BlockPublicPolicy)
	assert.True(bucket.IgnorePublicAcls)
	assert.True(bucket.RestrictPublicBuckets)
}

func Test_BucketId(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("my-site", "assets", "index.html", NewAccountId("123456789012"))
	assert.Equal(AWS_PROVIDER, bucket.Provider())
	assert.Equal("aws:s3_bucket:my-site-assets", bucket.Id())
}

func Test_NewS3Object(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("my-site", "assets", "index.html", NewAccountId("123456789012"))
	object := NewS3Object(bucket, "index.html", "index.html", "public/index.html", "text/html", "abc123")
	assert.Equal("my-site-assets-index.html", object.Name)
	assert.Same(bucket, object.Bucket)
	assert.Equal("aws:s3_object:my-site-assets-index.html", object.Id())
}

func Test_NewBucketPolicy(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("my-site", "assets", "index.html", NewAccountId("123456789012"))
	doc := CreateAllowPolicyDocument([]string{"s3:GetObject"}, []core.IaCValue{
		{Resource: bucket, Property: ALL_BUCKET_DIRECTORY_IAC_VALUE},
	})
	policy := NewBucketPolicy("cdn-read", bucket, doc)
	assert.Equal("my-site-assets-cdn-read", policy.Name)
	assert.Equal("aws:s3_bucket_policy:my-site-assets-cdn-read", policy.Id())
	assert.Equal(VERSION, policy.Policy.Version)
	if assert.Len(policy.Policy.Statement, 1) {
		assert.Equal("Allow", policy.Policy.Statement[0].Effect)
	}
}

func Test_NewBucketPolicySanitizesName(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("my-site", "assets", "index.html", NewAccountId("123456789012"))
	policy := NewBucketPolicy("cdn read!", bucket, CreateAllowPolicyDocument(nil, nil))
	assert.Equal("my-site-assets-cdn-read-", policy.Name)
}
