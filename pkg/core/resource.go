package core

type (
	// Resource is a single node in the resource graph, identifying one cloud
	// resource to be realized by the provisioning engine.
	Resource interface {
		// Provider returns the name of the provider the resource belongs to
		Provider() string
		// Id returns the unique id of the resource, in the form "provider:type:name"
		Id() string
	}

	// IaCValue refers to a property of another resource whose concrete value is
	// only known at provisioning time (an ARN, a generated id, a domain name).
	// A value with a nil Resource carries a literal string in Property.
	IaCValue struct {
		Resource Resource
		Property string
	}
)

func (v IaCValue) IsZero() bool {
	return v.Resource == nil && v.Property == ""
}

func (v IaCValue) String() string {
	if v.Resource == nil {
		return v.Property
	}
	return v.Resource.Id() + "#" + v.Property
}

func (v IaCValue) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// LiteralValue wraps a string that is already fully resolved into an IaCValue
// so it can appear anywhere a provisioning-time reference can.
func LiteralValue(value string) IaCValue {
	return IaCValue{Property: value}
}
