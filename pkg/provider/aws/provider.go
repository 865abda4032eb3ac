package aws

import (
	"github.com/sitewire/sitewire/pkg/config"
)

// AWS synthesizes the static-website resource graph for the aws provider.
type AWS struct {
	Config *config.Application
}

func (a *AWS) Name() string {
	return "aws"
}
