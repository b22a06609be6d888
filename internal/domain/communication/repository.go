package communication

import "context"

type CommunicationRepository interface {
	Create(ctx context.Context, newCommunication Communication) (Communication, error)
	GetByID(ctx context.Context, id int64) (Communication, error)
	List(ctx context.Context, filter ListCommunicationsFilter) ([]Communication, error)
}

type MethodRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, newMethod Method) (Method, error)
}
