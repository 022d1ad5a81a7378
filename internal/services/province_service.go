package services

import (
	"slices"

	"travelplan/internal/models/response_models"
)

const (
	MinPartySize     = 1
	MaxPartySize     = 10
	DefaultPartySize = 1
	MinDuration      = 1
	MaxDuration      = 10
	DefaultDuration  = 1
)

// prefectures are the 47 regions accepted as origin and destination, north to south.
var prefectures = []string{
	"北海道", "青森", "岩手", "宮城", "秋田", "山形", "福島",
	"茨城", "栃木", "群馬", "埼玉", "千葉", "東京", "神奈川",
	"新潟", "富山", "石川", "福井", "山梨", "長野", "岐阜",
	"静岡", "愛知", "三重", "滋賀", "京都", "大阪", "兵庫",
	"奈良", "和歌山", "鳥取", "島根", "岡山", "広島", "山口",
	"徳島", "香川", "愛媛", "高知", "福岡", "佐賀", "長崎",
	"熊本", "大分", "宮崎", "鹿児島", "沖縄",
}

var interestTags = []string{
	"温泉", "グルメ", "アクティビティ", "歴史", "博物館", "アニメ聖地巡礼",
	"自然", "アート", "Vtuber聖地巡礼", "食", "アニメ",
}

var specialRequests = []string{
	"なし",
	"できるだけ多くまわりたい",
	"ゆっくりまわりたい",
	"値段を抑えて旅行したい",
	"Youtubeの動画ネタになるようきつい行程にしたい",
}

func IsPrefecture(name string) bool {
	return slices.Contains(prefectures, name)
}

func IsInterestTag(tag string) bool {
	return slices.Contains(interestTags, tag)
}

func IsSpecialRequest(request string) bool {
	return slices.Contains(specialRequests, request)
}

type ProvinceServiceInterface interface {
	GetOptions() response_models.OptionsResponse
}

type ProvinceService struct {
	defaultOrigin string
}

// NewProvinceService falls back to 東京 when defaultOrigin is not a prefecture.
func NewProvinceService(defaultOrigin string) ProvinceServiceInterface {
	if !IsPrefecture(defaultOrigin) {
		defaultOrigin = "東京"
	}
	return &ProvinceService{defaultOrigin: defaultOrigin}
}

// GetOptions returns copies of the closed sets so callers cannot mutate them.
func (p *ProvinceService) GetOptions() response_models.OptionsResponse {
	return response_models.OptionsResponse{
		Regions:         slices.Clone(prefectures),
		DefaultOrigin:   p.defaultOrigin,
		Interests:       slices.Clone(interestTags),
		SpecialRequests: slices.Clone(specialRequests),
		PartySize:       response_models.RangeResponse{Min: MinPartySize, Max: MaxPartySize, Default: DefaultPartySize},
		Duration:        response_models.RangeResponse{Min: MinDuration, Max: MaxDuration, Default: DefaultDuration},
	}
}
