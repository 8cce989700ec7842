package postgres

import (
	"fmt"

	"orderflow/internal/adapters/out/postgres/managerrepo"
	"orderflow/internal/adapters/out/postgres/materialrepo"
	"orderflow/internal/adapters/out/postgres/movementrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/partnerrepo"
	"orderflow/internal/adapters/out/postgres/productrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted table, referenced tables first.
func Models() []any {
	return []any{
		&managerrepo.ManagerDTO{},
		&partnerrepo.PartnerDTO{},
		&materialrepo.SupplierDTO{},
		&materialrepo.MaterialDTO{},
		&productrepo.ProductDTO{},
		&productrepo.ProductComponentDTO{},
		&orderrepo.OrderDTO{},
		&partnerrepo.SaleDTO{},
		&movementrepo.MovementDTO{},
	}
}

// Open connects to dsn with driver errors translated into gorm sentinels,
// which the repositories rely on to report missing references.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema, including foreign keys and check
// constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
