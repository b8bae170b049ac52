package model

import (
	"time"

	"gorm.io/datatypes"
)

type KOL struct {
	ID          uint64    `gorm:"primaryKey"`
	KolID       string    `gorm:"type:varchar(64);uniqueIndex:idx_kol_id;not null"`
	Email       *string   `gorm:"type:varchar(255);uniqueIndex:idx_email"`
	Name        *string   `gorm:"type:varchar(255)"`
	Bio         *string
	AccountLink *string   `gorm:"type:varchar(512)"`
	Platform    *Platform `gorm:"type:varchar(20)"`
	Source      *Source   `gorm:"type:varchar(20)"`
	Filter      *string   `gorm:"type:varchar(255)"`
	Gender      *Gender   `gorm:"type:varchar(10)"`
	Tag         *string   `gorm:"type:varchar(255)"`
	Language    *string   `gorm:"type:varchar(50)"`
	Location    *string   `gorm:"type:varchar(255)"`
	Slug        *string   `gorm:"type:varchar(255);uniqueIndex:idx_slug"`
	CreatorID   *string   `gorm:"type:varchar(64);uniqueIndex:idx_creator_id"`

	// 数值指标，单位为千（K）
	FollowersK       *float64
	LikesK           *float64
	MeanViewsK       *float64
	MedianViewsK     *float64
	EngagementRate   *float64
	AverageViewsK    *float64
	AverageLikesK    *float64
	AverageCommentsK *float64

	SendStatus *SendStatus `gorm:"type:varchar(20)"`
	SendDate   *time.Time
	ExportDate *time.Time
	Level      *Level `gorm:"type:varchar(20)"`

	KeywordsAI       datatypes.JSONSlice[string]
	MostUsedHashtags datatypes.JSONSlice[string]

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index:idx_updated_at"`
}

func (KOL) TableName() string {
	return "kols"
}
