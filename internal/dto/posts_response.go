package dto

import (
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/scripture"
	"github.com/BloggingApp/dailylight-service/internal/share"
)

type LikeResponse struct {
	Likes int64 `json:"likes"`
}

// TodayView is everything the reader page needs to render a single day.
type TodayView struct {
	Post       model.Post            `json:"post"`
	Paragraphs [][]scripture.Segment `json:"paragraphs"`
	Share      share.Links           `json:"share"`
}
