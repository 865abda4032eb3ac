package resources

import (
	"fmt"
)

type (
	// Region is the data-source resource resolving to the deployment region.
	Region struct {
		Name string
	}

	// AccountId is the data-source resource resolving to the caller account.
	AccountId struct {
		Name string
		// Value is the account id when known ahead of provisioning, typically
		// from configuration or the AWS_ACCOUNT_ID environment variable.
		Value string
	}
)

const (
	REGION_NAME     = "region"
	REGION_TYPE     = "region"
	ACCOUNT_ID_NAME = "AccountId"
	ACCOUNT_ID_TYPE = "account_id"
)

func NewRegion() *Region {
	return &Region{
		Name: REGION_NAME,
	}
}

// Provider returns name of the provider the resource is correlated to
func (region *Region) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (region *Region) Id() string {
	return fmt.Sprintf("%s:%s:%s", region.Provider(), REGION_TYPE, region.Name)
}

func NewAccountId(value string) *AccountId {
	return &AccountId{
		Name:  ACCOUNT_ID_NAME,
		Value: value,
	}
}

// Provider returns name of the provider the resource is correlated to
func (id *AccountId) Provider() string {
	return AWS_PROVIDER
}

// Id returns the id of the cloud resource
func (id *AccountId) Id() string {
	return fmt.Sprintf("%s:%s:%s", id.Provider(), ACCOUNT_ID_TYPE, id.Name)
}
