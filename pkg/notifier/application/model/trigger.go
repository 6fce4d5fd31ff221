package model

import "fmt"

type RepositorySlug = string

const (
	OriginRepository RepositorySlug = "digitalrebar/provision"
	TargetRepository RepositorySlug = "rackn/rackn-saas"
	TriggerBranch                   = "tip"
)

type BuildRequest struct {
	Message string
	Branch  string
}

// Trigger describes a downstream build started on behalf of Origin.
type Trigger struct {
	Origin RepositorySlug
	Target RepositorySlug
	Branch string
}

func DefaultTrigger() Trigger {
	return Trigger{
		Origin: OriginRepository,
		Target: TargetRepository,
		Branch: TriggerBranch,
	}
}

func (t Trigger) BuildRequest() BuildRequest {
	return BuildRequest{
		Message: fmt.Sprintf("Trigger build at %v", t.Origin),
		Branch:  t.Branch,
	}
}
