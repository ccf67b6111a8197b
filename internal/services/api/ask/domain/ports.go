package domain

import "context"

// ServicePort is consumed by the http layer and the cli
type ServicePort interface {
	Ask(ctx context.Context, in AskInput) (AnswerView, error)
}

// AuditPort records resolutions; implementations must be safe for concurrent use
type AuditPort interface {
	Record(ctx context.Context, r Resolution) error
}
