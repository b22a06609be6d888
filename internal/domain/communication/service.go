package communication

import "context"

type CommunicationService interface {
	Log(ctx context.Context, req LogCommunicationRequest) (Communication, error)
	List(ctx context.Context, filter ListCommunicationsFilter) ([]CommunicationResponse, error)
	GetByID(ctx context.Context, id int64) (CommunicationResponse, error)
	// EnsureDefaultMethods seeds the method reference table when it is empty
	// and reports how many rows were inserted.
	EnsureDefaultMethods(ctx context.Context) (int, error)
}
