package service

import (
	"Kolhub/internal/api/dto"
	"Kolhub/internal/model"
	"Kolhub/internal/pkg/util"
	"Kolhub/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxBatchSize 批量创建单次上限
const MaxBatchSize = 500

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

type KOLService interface {
	Create(ctx context.Context, createDTO *dto.KOLCreateDTO) (*dto.KOLResponse, error)
	CreateBatch(ctx context.Context, createDTOs []*dto.KOLCreateDTO) ([]*dto.KOLResponse, error)
	GetByKolID(ctx context.Context, kolID string) (*dto.KOLResponse, error)
	Update(ctx context.Context, kolID string, updateDTO *dto.KOLUpdateDTO) (*dto.KOLResponse, error)
	Delete(ctx context.Context, kolID string) error
	List(ctx context.Context, filterDTO *dto.KOLFilterDTO) (*dto.PaginatedKOLResponse, error)
}

type kolServiceImpl struct {
	kolRepo repository.KOLRepo
}

func NewKOLService(kolRepo repository.KOLRepo) KOLService {
	return &kolServiceImpl{kolRepo: kolRepo}
}

func (s *kolServiceImpl) Create(ctx context.Context, createDTO *dto.KOLCreateDTO) (*dto.KOLResponse, error) {
	normalizeCreateDTO(createDTO)
	if err := util.ValidateDTO(createDTO); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}
	if err := validateCreateEnums(createDTO); err != nil {
		return nil, err
	}

	existing, err := s.kolRepo.GetKOLByKolID(ctx, createDTO.KolID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewConflictError("KOL ID [%s] 已存在", createDTO.KolID)
	}

	kol := &model.KOL{}
	if err = copier.Copy(kol, createDTO); err != nil {
		return nil, err
	}
	if err = s.kolRepo.CreateKOL(ctx, kol); err != nil {
		// 唯一索引兜底，应用层检查与写入之间可能存在并发竞争
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewConflictError("唯一字段冲突: kol_id/email/slug/creator_id 已被占用")
		}
		return nil, err
	}
	return toKOLResponse(kol)
}

func (s *kolServiceImpl) CreateBatch(ctx context.Context, createDTOs []*dto.KOLCreateDTO) ([]*dto.KOLResponse, error) {
	if len(createDTOs) == 0 {
		return nil, NewValidationError("批量创建请求不能为空")
	}
	if len(createDTOs) > MaxBatchSize {
		return nil, NewValidationError("批量创建最多支持 %d 条", MaxBatchSize)
	}

	kolIDs := make([]string, 0, len(createDTOs))
	seen := make(map[string]struct{}, len(createDTOs))
	for _, createDTO := range createDTOs {
		normalizeCreateDTO(createDTO)
		if err := util.ValidateDTO(createDTO); err != nil {
			return nil, NewValidationError("%s", err.Error())
		}
		if err := validateCreateEnums(createDTO); err != nil {
			return nil, err
		}
		if _, ok := seen[createDTO.KolID]; ok {
			return nil, NewValidationError("批量创建请求中存在重复的 KOL ID [%s]", createDTO.KolID)
		}
		seen[createDTO.KolID] = struct{}{}
		kolIDs = append(kolIDs, createDTO.KolID)
	}

	// 写入前整体检查，任何一条冲突则整批拒绝
	existing, err := s.kolRepo.GetExistingKolIDs(ctx, kolIDs)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, NewConflictError("KOL ID [%s] 已存在", existing[0])
	}

	kols := make([]*model.KOL, 0, len(createDTOs))
	for _, createDTO := range createDTOs {
		kol := &model.KOL{}
		if err = copier.Copy(kol, createDTO); err != nil {
			return nil, err
		}
		kols = append(kols, kol)
	}
	if err = s.kolRepo.CreateKOLBatch(ctx, kols); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewConflictError("唯一字段冲突: kol_id/email/slug/creator_id 已被占用")
		}
		return nil, err
	}

	responses := make([]*dto.KOLResponse, 0, len(kols))
	for _, kol := range kols {
		resp, err := toKOLResponse(kol)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *kolServiceImpl) GetByKolID(ctx context.Context, kolID string) (*dto.KOLResponse, error) {
	kol, err := s.kolRepo.GetKOLByKolID(ctx, kolID)
	if err != nil {
		return nil, err
	}
	if kol == nil {
		return nil, ErrKolNotFound
	}
	return toKOLResponse(kol)
}

func (s *kolServiceImpl) Update(ctx context.Context, kolID string, updateDTO *dto.KOLUpdateDTO) (*dto.KOLResponse, error) {
	normalizeUpdateDTO(updateDTO)
	if err := util.ValidateDTO(updateDTO); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}
	if err := validateUpdateEnums(updateDTO); err != nil {
		return nil, err
	}

	kol, err := s.kolRepo.GetKOLByKolID(ctx, kolID)
	if err != nil {
		return nil, err
	}
	if kol == nil {
		return nil, ErrKolNotFound
	}

	// 即使没有业务字段变化，updated_at 也会刷新
	if _, err = s.kolRepo.UpdateKOL(ctx, kolID, updateFields(updateDTO)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewConflictError("唯一字段冲突: email/slug/creator_id 已被占用")
		}
		return nil, err
	}

	kol, err = s.kolRepo.GetKOLByKolID(ctx, kolID)
	if err != nil {
		return nil, err
	}
	if kol == nil {
		// 更新与回读之间记录被删除
		return nil, ErrKolNotFound
	}
	return toKOLResponse(kol)
}

func (s *kolServiceImpl) Delete(ctx context.Context, kolID string) error {
	rows, err := s.kolRepo.DeleteKOL(ctx, kolID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrKolNotFound
	}
	return nil
}

func (s *kolServiceImpl) List(ctx context.Context, filterDTO *dto.KOLFilterDTO) (*dto.PaginatedKOLResponse, error) {
	filter, err := buildKOLFilter(filterDTO)
	if err != nil {
		return nil, err
	}

	kols, total, err := s.kolRepo.ListKOLs(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.KOLResponse, 0, len(kols))
	for _, kol := range kols {
		resp, err := toKOLResponse(kol)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	pages := int((total + int64(filter.Size) - 1) / int64(filter.Size))
	return &dto.PaginatedKOLResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Size:  filter.Size,
		Pages: pages,
	}, nil
}

// buildKOLFilter 校验过滤参数并翻译为仓储层查询条件
func buildKOLFilter(filterDTO *dto.KOLFilterDTO) (*repository.KOLFilter, error) {
	page := filterDTO.Page
	if page == 0 {
		page = DefaultPage
	}
	size := filterDTO.Size
	if size == 0 {
		size = DefaultSize
	}
	if page < 1 {
		return nil, NewValidationError("字段 [page] 必须大于等于 1")
	}
	if size < 1 || size > MaxSize {
		return nil, NewValidationError("字段 [size] 必须在 1~%d 之间", MaxSize)
	}

	filter := &repository.KOLFilter{
		Name:         filterDTO.Name,
		Location:     filterDTO.Location,
		MinFollowers: filterDTO.MinFollowers,
		MaxFollowers: filterDTO.MaxFollowers,
		Page:         page,
		Size:         size,
	}

	if filterDTO.Platform != nil {
		platform := model.Platform(*filterDTO.Platform)
		if !platform.Valid() {
			return nil, NewEnumError("platform", model.PlatformValues())
		}
		filter.Platform = &platform
	}
	if filterDTO.Level != nil {
		level := model.Level(*filterDTO.Level)
		if !level.Valid() {
			return nil, NewEnumError("level", model.LevelValues())
		}
		filter.Level = &level
	}
	if filterDTO.Gender != nil {
		gender := model.Gender(*filterDTO.Gender)
		if !gender.Valid() {
			return nil, NewEnumError("gender", model.GenderValues())
		}
		filter.Gender = &gender
	}
	if filterDTO.Source != nil {
		source := model.Source(*filterDTO.Source)
		if !source.Valid() {
			return nil, NewEnumError("source", model.SourceValues())
		}
		filter.Source = &source
	}
	if filterDTO.SendStatus != nil {
		sendStatus := model.SendStatus(*filterDTO.SendStatus)
		if !sendStatus.Valid() {
			return nil, NewEnumError("send_status", model.SendStatusValues())
		}
		filter.SendStatus = &sendStatus
	}
	return filter, nil
}

// normalizeCreateDTO 将枚举字段的空字符串归一化为未提供
func normalizeCreateDTO(createDTO *dto.KOLCreateDTO) {
	if createDTO.Source != nil && *createDTO.Source == "" {
		createDTO.Source = nil
	}
	if createDTO.Level != nil && *createDTO.Level == "" {
		createDTO.Level = nil
	}
	if createDTO.Platform != nil && *createDTO.Platform == "" {
		createDTO.Platform = nil
	}
	if createDTO.Gender != nil && *createDTO.Gender == "" {
		createDTO.Gender = nil
	}
	if createDTO.SendStatus != nil && *createDTO.SendStatus == "" {
		createDTO.SendStatus = nil
	}
}

func normalizeUpdateDTO(updateDTO *dto.KOLUpdateDTO) {
	if updateDTO.Source != nil && *updateDTO.Source == "" {
		updateDTO.Source = nil
	}
	if updateDTO.Level != nil && *updateDTO.Level == "" {
		updateDTO.Level = nil
	}
	if updateDTO.Platform != nil && *updateDTO.Platform == "" {
		updateDTO.Platform = nil
	}
	if updateDTO.Gender != nil && *updateDTO.Gender == "" {
		updateDTO.Gender = nil
	}
	if updateDTO.SendStatus != nil && *updateDTO.SendStatus == "" {
		updateDTO.SendStatus = nil
	}
}

func validateCreateEnums(createDTO *dto.KOLCreateDTO) error {
	return validateEnums(createDTO.Platform, createDTO.Source, createDTO.Gender, createDTO.Level, createDTO.SendStatus)
}

func validateUpdateEnums(updateDTO *dto.KOLUpdateDTO) error {
	return validateEnums(updateDTO.Platform, updateDTO.Source, updateDTO.Gender, updateDTO.Level, updateDTO.SendStatus)
}

func validateEnums(platform *model.Platform, source *model.Source, gender *model.Gender, level *model.Level, sendStatus *model.SendStatus) error {
	if platform != nil && !platform.Valid() {
		return NewEnumError("platform", model.PlatformValues())
	}
	if source != nil && !source.Valid() {
		return NewEnumError("source", model.SourceValues())
	}
	if gender != nil && !gender.Valid() {
		return NewEnumError("gender", model.GenderValues())
	}
	if level != nil && !level.Valid() {
		return NewEnumError("level", model.LevelValues())
	}
	if sendStatus != nil && !sendStatus.Valid() {
		return NewEnumError("send_status", model.SendStatusValues())
	}
	return nil
}

// updateFields 收集有值的字段，供部分更新使用
func updateFields(updateDTO *dto.KOLUpdateDTO) map[string]interface{} {
	fields := make(map[string]interface{})
	if updateDTO.Email != nil {
		fields["email"] = *updateDTO.Email
	}
	if updateDTO.Name != nil {
		fields["name"] = *updateDTO.Name
	}
	if updateDTO.Bio != nil {
		fields["bio"] = *updateDTO.Bio
	}
	if updateDTO.AccountLink != nil {
		fields["account_link"] = *updateDTO.AccountLink
	}
	if updateDTO.Platform != nil {
		fields["platform"] = *updateDTO.Platform
	}
	if updateDTO.Source != nil {
		fields["source"] = *updateDTO.Source
	}
	if updateDTO.Filter != nil {
		fields["filter"] = *updateDTO.Filter
	}
	if updateDTO.Gender != nil {
		fields["gender"] = *updateDTO.Gender
	}
	if updateDTO.Tag != nil {
		fields["tag"] = *updateDTO.Tag
	}
	if updateDTO.Language != nil {
		fields["language"] = *updateDTO.Language
	}
	if updateDTO.Location != nil {
		fields["location"] = *updateDTO.Location
	}
	if updateDTO.Slug != nil {
		fields["slug"] = *updateDTO.Slug
	}
	if updateDTO.CreatorID != nil {
		fields["creator_id"] = *updateDTO.CreatorID
	}
	if updateDTO.FollowersK != nil {
		fields["followers_k"] = *updateDTO.FollowersK
	}
	if updateDTO.LikesK != nil {
		fields["likes_k"] = *updateDTO.LikesK
	}
	if updateDTO.MeanViewsK != nil {
		fields["mean_views_k"] = *updateDTO.MeanViewsK
	}
	if updateDTO.MedianViewsK != nil {
		fields["median_views_k"] = *updateDTO.MedianViewsK
	}
	if updateDTO.EngagementRate != nil {
		fields["engagement_rate"] = *updateDTO.EngagementRate
	}
	if updateDTO.AverageViewsK != nil {
		fields["average_views_k"] = *updateDTO.AverageViewsK
	}
	if updateDTO.AverageLikesK != nil {
		fields["average_likes_k"] = *updateDTO.AverageLikesK
	}
	if updateDTO.AverageCommentsK != nil {
		fields["average_comments_k"] = *updateDTO.AverageCommentsK
	}
	if updateDTO.SendStatus != nil {
		fields["send_status"] = *updateDTO.SendStatus
	}
	if updateDTO.SendDate != nil {
		fields["send_date"] = *updateDTO.SendDate
	}
	if updateDTO.ExportDate != nil {
		fields["export_date"] = *updateDTO.ExportDate
	}
	if updateDTO.Level != nil {
		fields["level"] = *updateDTO.Level
	}
	if updateDTO.KeywordsAI != nil {
		fields["keywords_ai"] = datatypes.NewJSONSlice(updateDTO.KeywordsAI)
	}
	if updateDTO.MostUsedHashtags != nil {
		fields["most_used_hashtags"] = datatypes.NewJSONSlice(updateDTO.MostUsedHashtags)
	}
	return fields
}

func toKOLResponse(kol *model.KOL) (*dto.KOLResponse, error) {
	resp := &dto.KOLResponse{}
	if err := copier.Copy(resp, kol); err != nil {
		return nil, err
	}
	return resp, nil
}
