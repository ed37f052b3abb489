package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type dictService struct {
	dicts    repository.DictRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewDictService(dicts repository.DictRepo, uow db.UnitOfWork, observers ...UseCaseObserver) DictService {
	return &dictService{dicts: dicts, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *dictService) Create(ctx context.Context, req contract.DictItemRequest) (d *domain.DictItem, err error) {
	defer observe(ctx, s.observer, "create-dict", time.Now(), map[string]any{"dict_type": req.DictType}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := timestamp()
	d = &domain.DictItem{CreatedAt: now}
	applyDictRequest(d, req, now)
	if err = s.dicts.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *dictService) GetByID(ctx context.Context, id int64) (*domain.DictItem, error) {
	return s.dicts.GetByID(ctx, id)
}

func (s *dictService) List(ctx context.Context, dictType string) ([]*domain.DictItem, error) {
	return s.dicts.List(ctx, dictType)
}

// Update replaces every field of the item; omitted sortOrder and isActive
// fall back to their create defaults.
func (s *dictService) Update(ctx context.Context, id int64, req contract.DictItemRequest) (d *domain.DictItem, err error) {
	defer observe(ctx, s.observer, "update-dict", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDicts := repository.NewSQLiteDictRepo(tx)

		existing, err := txDicts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		applyDictRequest(existing, req, timestamp())
		if err := txDicts.Update(ctx, existing); err != nil {
			return err
		}
		d = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *dictService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-dict", time.Now(), map[string]any{"id": id}, &err)
	return s.dicts.Delete(ctx, id)
}

func applyDictRequest(d *domain.DictItem, req contract.DictItemRequest, now time.Time) {
	d.DictType = req.DictType
	d.DictCode = req.DictCode
	d.DictLabel = req.DictLabel
	d.SortOrder = domain.IntFromPtrWithDefault(domain.DefaultSortOrder, req.SortOrder)
	d.IsActive = domain.IntFromPtrWithDefault(domain.DictActive, req.IsActive)
	d.Remark = req.Remark
	d.UpdatedAt = now
}
