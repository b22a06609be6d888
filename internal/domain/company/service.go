package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	GetByID(ctx context.Context, id int64) (CompanyResponse, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id int64) error
}
