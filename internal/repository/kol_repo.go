package repository

import (
	"Kolhub/internal/model"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// KOLFilter 列表查询条件，零值字段不参与过滤
type KOLFilter struct {
	Name         *string
	Platform     *model.Platform
	Level        *model.Level
	Gender       *model.Gender
	Location     *string
	Source       *model.Source
	SendStatus   *model.SendStatus
	MinFollowers *float64
	MaxFollowers *float64
	Page         int
	Size         int
}

type KOLRepo interface {
	CreateKOL(ctx context.Context, kol *model.KOL) error
	CreateKOLBatch(ctx context.Context, kols []*model.KOL) error
	GetKOLByID(ctx context.Context, id uint64) (*model.KOL, error)
	GetKOLByKolID(ctx context.Context, kolID string) (*model.KOL, error)
	GetExistingKolIDs(ctx context.Context, kolIDs []string) ([]string, error)
	UpdateKOL(ctx context.Context, kolID string, fields map[string]interface{}) (int64, error)
	SaveKOL(ctx context.Context, kol *model.KOL) error
	DeleteKOL(ctx context.Context, kolID string) (int64, error)
	ListKOLs(ctx context.Context, filter *KOLFilter) ([]*model.KOL, int64, error)
}

type KOLRepoImpl struct {
	db *gorm.DB
}

func NewKOLRepo(db *gorm.DB) KOLRepo {
	return &KOLRepoImpl{db: db}
}

func (s *KOLRepoImpl) CreateKOL(ctx context.Context, kol *model.KOL) error {
	return s.db.WithContext(ctx).Create(kol).Error
}

// CreateKOLBatch 在单个事务内批量插入，任意一条失败则整体回滚
func (s *KOLRepoImpl) CreateKOLBatch(ctx context.Context, kols []*model.KOL) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kol := range kols {
			if result := tx.Create(kol); result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

func (s *KOLRepoImpl) GetKOLByID(ctx context.Context, id uint64) (*model.KOL, error) {
	kol := &model.KOL{}
	result := s.db.WithContext(ctx).First(kol, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return kol, nil
}

func (s *KOLRepoImpl) GetKOLByKolID(ctx context.Context, kolID string) (*model.KOL, error) {
	kol := &model.KOL{}
	result := s.db.WithContext(ctx).
		Where("kol_id = ?", kolID).
		First(kol)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return kol, nil
}

func (s *KOLRepoImpl) GetExistingKolIDs(ctx context.Context, kolIDs []string) ([]string, error) {
	existing := make([]string, 0)
	result := s.db.WithContext(ctx).
		Model(&model.KOL{}).
		Where("kol_id IN ?", kolIDs).
		Pluck("kol_id", &existing)
	if result.Error != nil {
		return nil, result.Error
	}
	return existing, nil
}

// UpdateKOL 按字段名部分更新，updated_at 无论是否有业务字段变化都会刷新
func (s *KOLRepoImpl) UpdateKOL(ctx context.Context, kolID string, fields map[string]interface{}) (int64, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).
		Model(&model.KOL{}).
		Where("kol_id = ?", kolID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// SaveKOL 全量覆盖保存，供数据同步使用
func (s *KOLRepoImpl) SaveKOL(ctx context.Context, kol *model.KOL) error {
	return s.db.WithContext(ctx).Save(kol).Error
}

func (s *KOLRepoImpl) DeleteKOL(ctx context.Context, kolID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("kol_id = ?", kolID).
		Delete(&model.KOL{})
	return result.RowsAffected, result.Error
}

// ListKOLs 按过滤条件查询，返回当前页数据和过滤后的总数。
// 排序为 updated_at 倒序，id 倒序兜底保证分页结果稳定。
func (s *KOLRepoImpl) ListKOLs(ctx context.Context, filter *KOLFilter) ([]*model.KOL, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&model.KOL{}).
		Scopes(kolFilterScope(filter)).
		Session(&gorm.Session{})

	var total int64
	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	kols := make([]*model.KOL, 0, filter.Size)
	result := query.
		Order("updated_at DESC, id DESC").
		Offset((filter.Page - 1) * filter.Size).
		Limit(filter.Size).
		Find(&kols)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return kols, total, nil
}

func kolFilterScope(filter *KOLFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Name != nil {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*filter.Name)+"%")
		}
		if filter.Platform != nil {
			db = db.Where("platform = ?", *filter.Platform)
		}
		if filter.Level != nil {
			db = db.Where("level = ?", *filter.Level)
		}
		if filter.Gender != nil {
			db = db.Where("gender = ?", *filter.Gender)
		}
		if filter.Location != nil {
			db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filter.Location)+"%")
		}
		if filter.Source != nil {
			db = db.Where("source = ?", *filter.Source)
		}
		if filter.SendStatus != nil {
			db = db.Where("send_status = ?", *filter.SendStatus)
		}
		if filter.MinFollowers != nil {
			db = db.Where("followers_k >= ?", *filter.MinFollowers)
		}
		if filter.MaxFollowers != nil {
			db = db.Where("followers_k <= ?", *filter.MaxFollowers)
		}
		return db
	}
}
