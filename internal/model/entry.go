package model

type CreateEntryRequest struct {
	GiveawayID uint64 `json:"giveaway_id"`
}

type CreateEntryResponse struct {
	Entry Entry `json:"entry"`
}

type CreateEntryWithReferralRequest struct {
	GiveawayID   uint64 `json:"giveaway_id"`
	ReferralCode string `json:"referral_code"`
}

type CreateEntryWithReferralResponse struct {
	Entry Entry `json:"entry"`
}

type GetGiveawayEntriesRequest struct {
	GiveawayID uint64 `json:"giveaway_id"`
}

type GetGiveawayEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type GetUserEntriesRequest struct {
	UserID uint64 `json:"user_id"`
}

type GetUserEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type GetEntryCountRequest struct {
	GiveawayID uint64 `json:"giveaway_id"`
}

type GetEntryCountResponse struct {
	Count int64 `json:"count"`
}
