package dto

import (
	"Kolhub/internal/model"
	"time"
)

// KOLCreateDTO 创建KOL请求
type KOLCreateDTO struct {
	KolID            string            `json:"kol_id" validate:"required,max=64"`
	Email            *string           `json:"email" validate:"omitempty,email"`
	Name             *string           `json:"name" validate:"omitempty,max=255"`
	Bio              *string           `json:"bio"`
	AccountLink      *string           `json:"account_link" validate:"omitempty,max=512"`
	Platform         *model.Platform   `json:"platform"`
	Source           *model.Source     `json:"source"`
	Filter           *string           `json:"filter"`
	Gender           *model.Gender     `json:"gender"`
	Tag              *string           `json:"tag"`
	Language         *string           `json:"language"`
	Location         *string           `json:"location"`
	Slug             *string           `json:"slug" validate:"omitempty,max=255"`
	CreatorID        *string           `json:"creator_id" validate:"omitempty,max=64"`
	FollowersK       *float64          `json:"followers_k"`
	LikesK           *float64          `json:"likes_k"`
	MeanViewsK       *float64          `json:"mean_views_k"`
	MedianViewsK     *float64          `json:"median_views_k"`
	EngagementRate   *float64          `json:"engagement_rate"`
	AverageViewsK    *float64          `json:"average_views_k"`
	AverageLikesK    *float64          `json:"average_likes_k"`
	AverageCommentsK *float64          `json:"average_comments_k"`
	SendStatus       *model.SendStatus `json:"send_status"`
	SendDate         *time.Time        `json:"send_date"`
	ExportDate       *time.Time        `json:"export_date"`
	Level            *model.Level      `json:"level"`
	KeywordsAI       []string          `json:"keywords_ai"`
	MostUsedHashtags []string          `json:"most_used_hashtags"`
}

// KOLBatchCreateDTO 批量创建KOL请求，最多500条
type KOLBatchCreateDTO struct {
	Kols []*KOLCreateDTO `json:"kols" validate:"required,min=1"`
}

// KOLUpdateDTO 部分更新KOL请求，为 nil 的字段保持原值
type KOLUpdateDTO struct {
	Email            *string           `json:"email" validate:"omitempty,email"`
	Name             *string           `json:"name" validate:"omitempty,max=255"`
	Bio              *string           `json:"bio"`
	AccountLink      *string           `json:"account_link" validate:"omitempty,max=512"`
	Platform         *model.Platform   `json:"platform"`
	Source           *model.Source     `json:"source"`
	Filter           *string           `json:"filter"`
	Gender           *model.Gender     `json:"gender"`
	Tag              *string           `json:"tag"`
	Language         *string           `json:"language"`
	Location         *string           `json:"location"`
	Slug             *string           `json:"slug" validate:"omitempty,max=255"`
	CreatorID        *string           `json:"creator_id" validate:"omitempty,max=64"`
	FollowersK       *float64          `json:"followers_k"`
	LikesK           *float64          `json:"likes_k"`
	MeanViewsK       *float64          `json:"mean_views_k"`
	MedianViewsK     *float64          `json:"median_views_k"`
	EngagementRate   *float64          `json:"engagement_rate"`
	AverageViewsK    *float64          `json:"average_views_k"`
	AverageLikesK    *float64          `json:"average_likes_k"`
	AverageCommentsK *float64          `json:"average_comments_k"`
	SendStatus       *model.SendStatus `json:"send_status"`
	SendDate         *time.Time        `json:"send_date"`
	ExportDate       *time.Time        `json:"export_date"`
	Level            *model.Level      `json:"level"`
	KeywordsAI       []string          `json:"keywords_ai"`
	MostUsedHashtags []string          `json:"most_used_hashtags"`
}

// KOLFilterDTO 列表过滤条件，全部可选，多个条件按 AND 组合
type KOLFilterDTO struct {
	Name         *string  `form:"name"`
	Platform     *string  `form:"platform"`
	Level        *string  `form:"level"`
	Gender       *string  `form:"gender"`
	Location     *string  `form:"location"`
	Source       *string  `form:"source"`
	SendStatus   *string  `form:"send_status"`
	MinFollowers *float64 `form:"min_followers"`
	MaxFollowers *float64 `form:"max_followers"`
	Page         int      `form:"page"`
	Size         int      `form:"size"`
}

// KOLResponse KOL响应
type KOLResponse struct {
	ID               uint64            `json:"id"`
	KolID            string            `json:"kol_id"`
	Email            *string           `json:"email,omitempty"`
	Name             *string           `json:"name,omitempty"`
	Bio              *string           `json:"bio,omitempty"`
	AccountLink      *string           `json:"account_link,omitempty"`
	Platform         *model.Platform   `json:"platform,omitempty"`
	Source           *model.Source     `json:"source,omitempty"`
	Filter           *string           `json:"filter,omitempty"`
	Gender           *model.Gender     `json:"gender,omitempty"`
	Tag              *string           `json:"tag,omitempty"`
	Language         *string           `json:"language,omitempty"`
	Location         *string           `json:"location,omitempty"`
	Slug             *string           `json:"slug,omitempty"`
	CreatorID        *string           `json:"creator_id,omitempty"`
	FollowersK       *float64          `json:"followers_k,omitempty"`
	LikesK           *float64          `json:"likes_k,omitempty"`
	MeanViewsK       *float64          `json:"mean_views_k,omitempty"`
	MedianViewsK     *float64          `json:"median_views_k,omitempty"`
	EngagementRate   *float64          `json:"engagement_rate,omitempty"`
	AverageViewsK    *float64          `json:"average_views_k,omitempty"`
	AverageLikesK    *float64          `json:"average_likes_k,omitempty"`
	AverageCommentsK *float64          `json:"average_comments_k,omitempty"`
	SendStatus       *model.SendStatus `json:"send_status,omitempty"`
	SendDate         *time.Time        `json:"send_date,omitempty"`
	ExportDate       *time.Time        `json:"export_date,omitempty"`
	Level            *model.Level      `json:"level,omitempty"`
	KeywordsAI       []string          `json:"keywords_ai,omitempty"`
	MostUsedHashtags []string          `json:"most_used_hashtags,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// PaginatedKOLResponse 分页KOL响应
type PaginatedKOLResponse struct {
	Items []*KOLResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Pages int            `json:"pages"`
}
