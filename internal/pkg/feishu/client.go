package feishu

import (
	"Kolhub/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Record 多维表格中的一行记录，fields 为列名到原始值的映射
type Record struct {
	RecordID string         `json:"record_id"`
	Fields   map[string]any `json:"fields"`
}

type searchResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Items     []*Record `json:"items"`
		PageToken string    `json:"page_token"`
		HasMore   bool      `json:"has_more"`
	} `json:"data"`
}

type Client struct {
	http *resty.Client
	cfg  *config.FeishuConfig
}

func NewClient(cfg *config.FeishuConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: client, cfg: cfg}
}

// SearchRecords 按 page_token 翻页拉取表格记录。
// maxRecords > 0 时达到上限即停止，并把结果截断到恰好 maxRecords 条。
func (c *Client) SearchRecords(ctx context.Context, maxRecords int) ([]*Record, error) {
	path := fmt.Sprintf("/open-apis/bitable/v1/apps/%s/tables/%s/records/search",
		c.cfg.AppToken, c.cfg.TableID)

	allRecords := make([]*Record, 0)
	pageToken := ""

	for {
		if maxRecords > 0 && len(allRecords) >= maxRecords {
			allRecords = allRecords[:maxRecords]
			break
		}

		result := &searchResponse{}
		req := c.http.R().
			SetContext(ctx).
			SetQueryParam("page_size", strconv.Itoa(c.cfg.PageSize)).
			SetBody(map[string]any{}).
			SetResult(result)
		if pageToken != "" {
			req.SetQueryParam("page_token", pageToken)
		}

		resp, err := req.Post(path)
		if err != nil {
			return nil, fmt.Errorf("search bitable records: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("search bitable records: unexpected status %s", resp.Status())
		}
		if result.Code != 0 {
			return nil, fmt.Errorf("search bitable records: code=%d msg=%s", result.Code, result.Msg)
		}

		allRecords = append(allRecords, result.Data.Items...)
		log.InfoContext(ctx, "Fetched bitable records", "count", len(allRecords))

		pageToken = result.Data.PageToken
		if !result.Data.HasMore || pageToken == "" {
			break
		}
	}

	return allRecords, nil
}
