package service

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/integrity"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

// txScope holds repositories and a validator bound to one transaction, so
// reference checks and the write they guard see the same snapshot.
type txScope struct {
	products     *repository.SQLiteProductRepo
	modules      *repository.SQLiteModuleRepo
	versions     *repository.SQLiteVersionRepo
	requirements *repository.SQLiteRequirementRepo
	tasks        *repository.SQLiteTaskRepo
	dicts        *repository.SQLiteDictRepo
	validator    *integrity.Validator
}

func newTxScope(tx db.DBTX) *txScope {
	s := &txScope{
		products:     repository.NewSQLiteProductRepo(tx),
		modules:      repository.NewSQLiteModuleRepo(tx),
		versions:     repository.NewSQLiteVersionRepo(tx),
		requirements: repository.NewSQLiteRequirementRepo(tx),
		tasks:        repository.NewSQLiteTaskRepo(tx),
		dicts:        repository.NewSQLiteDictRepo(tx),
	}
	s.validator = integrity.NewValidator(s.products, s.modules, s.versions, s.requirements)
	return s
}

// timestamp returns the current time at the precision timestamps are stored with.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// NewServices wires every service against one database.
func NewServices(database *sql.DB, observers ...UseCaseObserver) *Services {
	uow := db.NewSQLiteUnitOfWork(database)
	return &Services{
		Products:     NewProductService(repository.NewSQLiteProductRepo(database), uow, observers...),
		Modules:      NewModuleService(repository.NewSQLiteModuleRepo(database), uow, observers...),
		Requirements: NewRequirementService(repository.NewSQLiteRequirementRepo(database), uow, observers...),
		Tasks:        NewTaskService(repository.NewSQLiteTaskRepo(database), uow, observers...),
		Versions:     NewVersionService(repository.NewSQLiteVersionRepo(database), uow, observers...),
		Dicts:        NewDictService(repository.NewSQLiteDictRepo(database), uow, observers...),
		Import:       NewImportService(uow, observers...),
	}
}
