package response_models

type GiftSummaryResponse struct {
	TotalGifts      int64            `json:"total_gifts"`
	TotalValue      float64          `json:"total_value"`
	ByGiftType      map[string]int64 `json:"by_gift_type"`
	ThankYouPending int64            `json:"thank_you_pending"`
}
