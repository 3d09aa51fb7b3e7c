package model

type SelectWinnerRequest struct {
	GiveawayID uint64 `json:"giveaway_id"`
}

type SelectWinnerResponse struct {
	Winner Winner `json:"winner"`
}

type GetWinnersRequest struct{}

type GetWinnersResponse struct {
	Winners []Winner `json:"winners"`
}

type GetGiveawayWinnersRequest struct {
	GiveawayID uint64 `json:"giveaway_id"`
}

type GetGiveawayWinnersResponse struct {
	Winners []Winner `json:"winners"`
}

type GetRecentWinnersRequest struct {
	Limit int `json:"limit"`
}

type GetRecentWinnersResponse struct {
	Winners []RecentWinner `json:"winners"`
}
