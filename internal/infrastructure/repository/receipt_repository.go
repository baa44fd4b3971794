package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	domainRepo "github.com/kasirku/kasir-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) CreateItems(ctx context.Context, items []entity.ReceiptItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).Preload("Items").First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, ownerID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Where("owner_id = ?", ownerID)
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Preload("Items").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to *time.Time, ascending bool) ([]entity.Receipt, error) {
	var receipts []entity.Receipt

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("id", "created_at", "total", "profit").
		Where("owner_id = ? AND created_at >= ?", ownerID, from)
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}

	err := query.Order(order).Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepository) ListItemsByReceiptIDs(ctx context.Context, receiptIDs []uuid.UUID) ([]entity.ReceiptItem, error) {
	if len(receiptIDs) == 0 {
		return []entity.ReceiptItem{}, nil
	}
	var items []entity.ReceiptItem
	err := r.db.WithContext(ctx).
		Select("receipt_id", "product_name", "quantity", "unit_price").
		Where("receipt_id IN ?", receiptIDs).
		Find(&items).Error
	return items, err
}
