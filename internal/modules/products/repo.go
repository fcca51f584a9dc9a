package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) Create(ctx context.Context, p Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *Repo) UpdateFields(ctx context.Context, id string, changes map[Field]string) error {
	if len(changes) == 0 {
		return nil
	}
	cols := make(map[string]any, len(changes)+1)
	for f, v := range changes {
		if col, ok := columnFor(f); ok {
			cols[col] = v
		}
	}
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func columnFor(f Field) (string, bool) {
	switch f {
	case FieldName:
		return "name", true
	case FieldDesc:
		return "desc", true
	case FieldWeightValue:
		return "weight_value", true
	case FieldWeightUnit:
		return "weight_unit", true
	case FieldPriceMain:
		return "price_main", true
	case FieldPriceCents:
		return "price_cents", true
	case FieldTheme:
		return "theme", true
	case FieldColor:
		return "color", true
	case FieldImage:
		return "image", true
	}
	return "", false
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
