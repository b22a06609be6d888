package company

import (
	"context"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
)

type CompanyServiceImpl struct {
	transactor database.Transactor
	company.CompanyRepository
}

func NewCompanyService(transactor database.Transactor, companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		transactor:        transactor,
		CompanyRepository: companyRepository,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, found := range companies {
		responses = append(responses, company.NewCompanyResponse(found))
	}
	return responses, nil
}

// Create implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Create of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}
	return c.CompanyRepository.Create(ctx, req.ToEntity())
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id int64) (company.CompanyResponse, error) {
	found, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(found), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return c.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := c.CompanyRepository.GetByID(txCtx, id); err != nil {
			return err
		}
		if req.IsEmpty() {
			return nil
		}
		return c.CompanyRepository.Update(txCtx, id, req)
	})
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id int64) error {
	return c.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := c.CompanyRepository.GetByID(txCtx, id); err != nil {
			return err
		}
		return c.CompanyRepository.Delete(txCtx, id)
	})
}
