package partnerrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/dberr"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := PartnerDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Email: p.Email(),
	}
	return dberr.Wrap("insert partner", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, dberr.Wrap("select partner", err)
	}

	return toDomain(dto)
}

// AddSale fails with errs.ErrObjectNotFound when the partner or the product
// does not exist.
func (r *GormPartnerRepository) AddSale(ctx context.Context, s *partner.Sale) error {
	dto := saleFromDomain(s)
	return dberr.Wrap("insert sale", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormPartnerRepository) CumulativeSaleQuantity(ctx context.Context, partnerID kernel.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&SaleDTO{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("partner_id = ?", partnerID.Bytes()).
		Scan(&total).Error
	if err != nil {
		return 0, dberr.Wrap("sum sales", err)
	}
	return total, nil
}

func (r *GormPartnerRepository) ListSales(ctx context.Context, partnerID kernel.UUID) ([]*partner.Sale, error) {
	var dtos []SaleDTO
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID.Bytes()).
		Order("sale_date DESC").
		Order("seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("list sales", err)
	}

	sales := make([]*partner.Sale, 0, len(dtos))
	for _, dto := range dtos {
		s, err := saleToDomain(dto)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}
