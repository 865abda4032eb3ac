package resources

import (
	"github.com/sitewire/sitewire/pkg/core"
)

const VERSION = "2012-10-17"

type (
	PolicyDocument struct {
		Version   string
		Statement []StatementEntry
	}

	StatementEntry struct {
		Effect    string
		Action    []string
		Resource  []core.IaCValue
		Principal *Principal `yaml:",omitempty"`
		Condition *Condition `yaml:",omitempty"`
	}

	Principal struct {
		Service string        `yaml:",omitempty"`
		AWS     core.IaCValue `yaml:",omitempty"`
	}

	Condition struct {
		StringEquals map[string]core.IaCValue `yaml:",omitempty"`
	}
)

func CreateAllowPolicyDocument(actions []string, resources []core.IaCValue) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect:   "Allow",
				Action:   actions,
				Resource: resources,
			},
		},
	}
}
