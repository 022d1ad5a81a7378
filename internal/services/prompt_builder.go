package services

import (
	"fmt"
	"strings"

	"travelplan/internal/models/request_models"
)

// InterestSeparator joins interest tags in the order they were selected.
const InterestSeparator = ", "

const travelPromptTemplate = `日本旅行モデルコースを作成してください。
- 出発する都道府県: %s
- 旅行先の都道府県: %s
- 人数: %d名
- 興味の対象: %s
- 滞在日数: %d日
- 特別リクエスト: %s
以上の条件に基づき、訪れるべき場所やアクティビティを含んだおすすめの旅行モデルコースと日ごとの予算と合計予算を提案してください。
予算には交通費、宿泊費も含めてください。
また情報元となるURL等も最後にできる限り記載してください。
`

// BuildTravelPrompt interpolates the request into the itinerary template. Field values are
// not escaped; every field is expected to come from a closed set or a bounded integer.
func BuildTravelPrompt(req request_models.TravelRequest) string {
	return fmt.Sprintf(travelPromptTemplate,
		req.Origin,
		req.Destination,
		req.PartySize,
		strings.Join(req.Interests, InterestSeparator),
		req.Duration,
		req.SpecialRequest,
	)
}
