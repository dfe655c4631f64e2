package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

// RepositoryFactory mints a request-scoped UnitOfWork over the shared pool.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// The UoW is short-lived per request. The context is applied when the
	// caller invokes Begin or passes it to repository methods.
	return NewUnitOfWork(f.db)
}
