package grid

import "fmt"

// Endpoint names which end of a search request failed validation.
type Endpoint string

const (
	EndpointStart Endpoint = "start"
	EndpointGoal  Endpoint = "goal"
)

// EndpointError reports a start or goal cell rejected by ValidateEndpoints.
// Err is ErrOutOfBounds or ErrBlockedEndpoint; use errors.Is to branch.
type EndpointError struct {
	Endpoint Endpoint
	Cell     Cell
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Endpoint, e.Cell, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }
