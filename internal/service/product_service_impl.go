package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type productService struct {
	products repository.ProductRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProductService(products repository.ProductRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProductService {
	return &productService{products: products, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *productService) Create(ctx context.Context, req contract.CreateProductRequest) (p *domain.Product, err error) {
	defer observe(ctx, s.observer, "create-product", time.Now(), map[string]any{"code": req.Code}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := timestamp()
	p = &domain.Product{
		Code:        req.Code,
		Name:        req.Name,
		Owner:       req.Owner,
		Status:      domain.CoalesceStr(req.Status, domain.StatusActive),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Update(ctx context.Context, id int64, req contract.UpdateProductRequest) (p *domain.Product, err error) {
	defer observe(ctx, s.observer, "update-product", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProducts := repository.NewSQLiteProductRepo(tx)

		existing, err := txProducts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		domain.Patch(&existing.Name, req.Name)
		domain.Patch(&existing.Owner, req.Owner)
		domain.PatchNonBlank(&existing.Status, req.Status)
		domain.Patch(&existing.Description, req.Description)
		existing.UpdatedAt = timestamp()

		if err := txProducts.Update(ctx, existing); err != nil {
			return err
		}
		p = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-product", time.Now(), map[string]any{"id": id}, &err)
	return s.products.Delete(ctx, id)
}
