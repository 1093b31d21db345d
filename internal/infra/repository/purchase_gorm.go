package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-shop/internal/domain/purchase"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// --------------------------------------------------
// Product
// --------------------------------------------------

func (r *PurchaseGormRepository) GetProduct(
	ctx context.Context,
	productID uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
		}
		return nil, err
	}
	return &product, nil
}

// --------------------------------------------------
// Purchase (stock transaction)
// --------------------------------------------------

func (r *PurchaseGormRepository) CreateWithStockDecrement(
	ctx context.Context,
	p *models.Purchase,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Compare-and-set: só baixa quando há estoque. Zero linhas
		// afetadas distingue produto sumido de estoque insuficiente.
		res := tx.
			Model(&models.Product{}).
			Where("id = ? AND stock >= ?", p.ProductID, p.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", p.Quantity))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var count int64
			if err := tx.
				Model(&models.Product{}).
				Where("id = ?", p.ProductID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return httperr.ErrBusiness(httperr.CodeProductNotFound)
			}
			return httperr.ErrBusiness(httperr.CodeInsufficientStock)
		}

		return tx.Create(p).Error
	})
}

func (r *PurchaseGormRepository) CancelWithStockRestore(
	ctx context.Context,
	purchaseID uint,
) (*models.Purchase, error) {

	var p models.Purchase

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.First(&p, purchaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodePurchaseNotFound)
			}
			return err
		}

		// Produto apagado no meio do caminho: a compra ainda sai,
		// a devolução de estoque é pulada.
		res := tx.
			Model(&models.Product{}).
			Where("id = ?", p.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", p.Quantity))
		if res.Error != nil {
			return res.Error
		}

		return tx.Delete(&models.Purchase{}, p.ID).Error
	})

	if err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Purchase (read)
// --------------------------------------------------

func (r *PurchaseGormRepository) GetPurchase(
	ctx context.Context,
	purchaseID uint,
) (*models.Purchase, error) {

	var p models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&p, purchaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodePurchaseNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseGormRepository) ListPurchasesForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Purchase, error) {

	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("barber_id = ?", barberID).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *PurchaseGormRepository) ListPurchasesForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Purchase, error) {

	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("client_id = ?", clientID).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Compile-time check
var _ domain.Repository = (*PurchaseGormRepository)(nil)
