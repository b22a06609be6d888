package communication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/fixtures"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
)

type CommunicationServiceImpl struct {
	transactor database.Transactor
	communication.CommunicationRepository
	methodRepo communication.MethodRepository
}

func NewCommunicationService(
	transactor database.Transactor,
	communicationRepository communication.CommunicationRepository,
	methodRepository communication.MethodRepository,
) communication.CommunicationService {
	return &CommunicationServiceImpl{
		transactor:              transactor,
		CommunicationRepository: communicationRepository,
		methodRepo:              methodRepository,
	}
}

// Log implements communication.CommunicationService.
func (s *CommunicationServiceImpl) Log(ctx context.Context, req communication.LogCommunicationRequest) (communication.Communication, error) {
	newCommunication, err := req.ToEntity()
	if err != nil {
		return communication.Communication{}, err
	}
	return s.CommunicationRepository.Create(ctx, newCommunication)
}

// List implements communication.CommunicationService.
func (s *CommunicationServiceImpl) List(ctx context.Context, filter communication.ListCommunicationsFilter) ([]communication.CommunicationResponse, error) {
	communications, err := s.CommunicationRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]communication.CommunicationResponse, 0, len(communications))
	for _, c := range communications {
		responses = append(responses, communication.NewCommunicationResponse(c))
	}
	return responses, nil
}

// GetByID implements communication.CommunicationService.
func (s *CommunicationServiceImpl) GetByID(ctx context.Context, id int64) (communication.CommunicationResponse, error) {
	found, err := s.CommunicationRepository.GetByID(ctx, id)
	if err != nil {
		return communication.CommunicationResponse{}, err
	}
	return communication.NewCommunicationResponse(found), nil
}

// EnsureDefaultMethods implements communication.CommunicationService.
func (s *CommunicationServiceImpl) EnsureDefaultMethods(ctx context.Context) (int, error) {
	seeded := 0
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.methodRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, method := range fixtures.DefaultCommunicationMethods() {
			if _, err := s.methodRepo.Create(txCtx, method); err != nil {
				return fmt.Errorf("failed to seed communication method %q: %w", method.Name, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if seeded > 0 {
		slog.Info("Seeded default communication methods", "count", seeded)
	}
	return seeded, nil
}
