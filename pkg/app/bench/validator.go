package bench

import (
	"fmt"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

// Validate checks a workload request before it runs.
func (r *Request) Validate() error {
	if r.Appends < 0 || r.Inserts < 0 || r.Erases < 0 {
		return app.NewError(app.ErrCodeInvalidInput, "operation counts cannot be negative", nil)
	}
	if r.Appends+r.Inserts == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "workload performs no insertions", nil)
	}
	if r.PayloadSize < 0 {
		return app.NewError(app.ErrCodeInvalidInput, "payload size cannot be negative", nil)
	}
	if r.PayloadSize > MaxPayloadSize {
		return app.NewError(app.ErrCodeInvalidInput,
			fmt.Sprintf("payload size %d exceeds maximum %d", r.PayloadSize, MaxPayloadSize), nil)
	}
	if r.Reserve < 0 {
		return app.NewError(app.ErrCodeInvalidInput, "reserve cannot be negative", nil)
	}
	if r.MaxCapacity < 0 {
		return app.NewError(app.ErrCodeInvalidInput, "max capacity cannot be negative", nil)
	}
	if r.MaxCapacity > 0 && r.Reserve > r.MaxCapacity {
		return app.NewError(app.ErrCodeInvalidInput,
			fmt.Sprintf("reserve %d exceeds max capacity %d", r.Reserve, r.MaxCapacity), nil)
	}
	return nil
}
