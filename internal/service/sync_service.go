package service

import (
	"Kolhub/internal/model"
	"Kolhub/internal/pkg/feishu"
	"Kolhub/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// SyncResult 一次同步的统计结果
type SyncResult struct {
	Fetched   int
	Succeeded int
	Failed    int
}

type SyncService interface {
	SyncFromBitable(ctx context.Context, maxRecords int) (*SyncResult, error)
}

type syncServiceImpl struct {
	kolRepo repository.KOLRepo
	bitable *feishu.Client
}

func NewSyncService(kolRepo repository.KOLRepo, bitable *feishu.Client) SyncService {
	return &syncServiceImpl{kolRepo: kolRepo, bitable: bitable}
}

// SyncFromBitable 拉取多维表格记录并逐条 upsert。
// 单条失败只计入统计，不会中断整个批次。
func (s *syncServiceImpl) SyncFromBitable(ctx context.Context, maxRecords int) (*SyncResult, error) {
	records, err := s.bitable.SearchRecords(ctx, maxRecords)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Fetched: len(records)}
	for _, record := range records {
		kol, err := convertBitableRecord(record)
		if err != nil {
			result.Failed++
			log.ErrorContext(ctx, "Failed to convert bitable record",
				"record_id", record.RecordID, "err", err)
			continue
		}
		if err = s.upsertKOL(ctx, kol); err != nil {
			result.Failed++
			log.ErrorContext(ctx, "Failed to save KOL",
				"kol_id", kol.KolID, "err", err)
			continue
		}
		result.Succeeded++
		log.InfoContext(ctx, "Saved KOL", "kol_id", kol.KolID)
	}
	return result, nil
}

// upsertKOL 按 kol_id 查找，存在则整体覆盖可变字段，否则新插入。
// 每条记录独立提交，保证部分进度不被后续失败回滚。
func (s *syncServiceImpl) upsertKOL(ctx context.Context, kol *model.KOL) error {
	existing, err := s.kolRepo.GetKOLByKolID(ctx, kol.KolID)
	if err != nil {
		return err
	}
	if existing != nil {
		kol.ID = existing.ID
		kol.CreatedAt = existing.CreatedAt
		return s.kolRepo.SaveKOL(ctx, kol)
	}
	return s.kolRepo.CreateKOL(ctx, kol)
}

// convertBitableRecord 将多维表格的原始记录转换为 KOL 实体
func convertBitableRecord(record *feishu.Record) (*model.KOL, error) {
	fields := record.Fields

	kolID := fieldText(fields, "KOL ID")
	if kolID == nil || *kolID == "" {
		return nil, fmt.Errorf("record %s: missing KOL ID", record.RecordID)
	}

	source, err := fieldSource(fields, "Source")
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", record.RecordID, err)
	}
	gender, err := fieldGender(fields, "Gender")
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", record.RecordID, err)
	}

	accountLink := fieldLink(fields, "Account link")

	kol := &model.KOL{
		KolID:       *kolID,
		Email:       fieldText(fields, "Email"),
		Name:        fieldText(fields, "KOL Name"),
		Bio:         fieldText(fields, "Bio"),
		AccountLink: accountLink,
		Platform:    platformFromLink(accountLink),
		Source:      source,
		Filter:      fieldText(fields, "Filter"),
		Gender:      gender,
		Language:    fieldText(fields, "Language"),
		Location:    fieldText(fields, "Location"),
		CreatorID:   fieldText(fields, "Creator ID"),

		FollowersK:       fieldFloat(fields, "Followers(K)"),
		LikesK:           fieldFloat(fields, "Likes(K)"),
		MeanViewsK:       fieldFloat(fields, "Mean Views(K)"),
		MedianViewsK:     fieldFloat(fields, "Median Views(K)"),
		EngagementRate:   fieldFloat(fields, "Engagement Rate(%)"),
		AverageViewsK:    fieldFloat(fields, "Average Views(K)"),
		AverageLikesK:    fieldFloat(fields, "Average Likes(K)"),
		AverageCommentsK: fieldFloat(fields, "Average Comments(K)"),

		SendStatus: mapSendStatus(fieldString(fields, "Send Status")),
		ExportDate: fieldEpochMillis(fields, "Export Date"),
		Level:      mapLevel(fieldString(fields, "Level")),

		KeywordsAI:       datatypes.JSONSlice[string](fieldList(fields, "Keywords-AI")),
		MostUsedHashtags: datatypes.JSONSlice[string](fieldList(fields, "Most used hashtags")),
	}
	return kol, nil
}

// fieldText 文本列的值是对象数组，取第一个元素的 text
func fieldText(fields map[string]any, name string) *string {
	items, ok := fields[name].([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}
	text, ok := item["text"].(string)
	if !ok {
		return nil
	}
	return &text
}

// fieldLink 链接列的值是对象，取内嵌的 text
func fieldLink(fields map[string]any, name string) *string {
	item, ok := fields[name].(map[string]any)
	if !ok {
		return nil
	}
	text, ok := item["text"].(string)
	if !ok {
		return nil
	}
	return &text
}

// fieldList 逗号分隔的文本列，拆分并去除首尾空白
func fieldList(fields map[string]any, name string) []string {
	text := fieldText(fields, name)
	if text == nil || *text == "" {
		return nil
	}
	parts := strings.Split(*text, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}

func fieldString(fields map[string]any, name string) string {
	value, _ := fields[name].(string)
	return value
}

func fieldFloat(fields map[string]any, name string) *float64 {
	value, ok := fields[name].(float64)
	if !ok {
		return nil
	}
	return &value
}

// fieldEpochMillis 毫秒级时间戳转为 UTC 时间，零值或缺失视为未提供
func fieldEpochMillis(fields map[string]any, name string) *time.Time {
	millis, ok := fields[name].(float64)
	if !ok || millis == 0 {
		return nil
	}
	t := time.UnixMilli(int64(millis)).UTC()
	return &t
}

func fieldSource(fields map[string]any, name string) (*model.Source, error) {
	value := fieldString(fields, name)
	if value == "" {
		return nil, nil
	}
	source := model.Source(value)
	if !source.Valid() {
		return nil, fmt.Errorf("invalid source %q", value)
	}
	return &source, nil
}

func fieldGender(fields map[string]any, name string) (*model.Gender, error) {
	value := fieldString(fields, name)
	if value == "" {
		return nil, nil
	}
	gender := model.Gender(value)
	if !gender.Valid() {
		return nil, fmt.Errorf("invalid gender %q", value)
	}
	return &gender, nil
}

// sendStatusMap 表格中使用的轮次标签到发送状态的受控映射
var sendStatusMap = map[string]model.SendStatus{
	"第一轮":        model.SendStatusRound(1),
	"第二轮":        model.SendStatusRound(2),
	"第三轮":        model.SendStatusRound(3),
	"第四轮":        model.SendStatusRound(4),
	"第五轮":        model.SendStatusRound(5),
	"第六轮":        model.SendStatusRound(6),
	"第七轮":        model.SendStatusRound(7),
	"第八轮":        model.SendStatusRound(8),
	"第九轮":        model.SendStatusRound(9),
	"第十轮":        model.SendStatusRound(10),
	"第十一轮":       model.SendStatusRound(11),
	"第十二轮":       model.SendStatusRound(12),
	"第十三轮":       model.SendStatusRound(13),
	"第十四轮":       model.SendStatusRound(14),
	"第十五轮":       model.SendStatusRound(15),
	"第十六轮":       model.SendStatusRound(16),
	"Round No.17": model.SendStatusRound(17),
	"Round No.18": model.SendStatusRound(18),
	"Round No.19": model.SendStatusRound(19),
	"Round No.20": model.SendStatusRound(20),
}

// mapSendStatus 无法映射的标签视为未提供，而不是错误
func mapSendStatus(label string) *model.SendStatus {
	status, ok := sendStatusMap[label]
	if !ok {
		return nil
	}
	return &status
}

// levelMap 表格中的等级标签使用 ~ 分隔符
var levelMap = map[string]model.Level{
	"Mid 50~500k":  model.LevelMid,
	"Micro 10~50k": model.LevelMicro,
	"Nano 1~10k":   model.LevelNano,
}

func mapLevel(label string) *model.Level {
	level, ok := levelMap[label]
	if !ok {
		return nil
	}
	return &level
}

// platformFromLink 根据账号链接的域名推断平台，默认 Instagram
func platformFromLink(link *string) *model.Platform {
	platform := model.PlatformInstagram
	if link != nil {
		lower := strings.ToLower(*link)
		switch {
		case strings.Contains(lower, "tiktok.com"):
			platform = model.PlatformTikTok
		case strings.Contains(lower, "youtube.com"), strings.Contains(lower, "youtu.be"):
			platform = model.PlatformYouTube
		}
	}
	return &platform
}
