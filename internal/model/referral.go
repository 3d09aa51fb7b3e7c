package model

type CreateReferralCodeRequest struct {
	// Code is optional; when empty a code is generated from the username.
	Code string `json:"code"`
}

type CreateReferralCodeResponse struct {
	ReferralCode ReferralCode `json:"referral_code"`
}

type GetReferralCodeRequest struct {
	Code string `json:"code"`
}

type GetReferralCodeResponse struct {
	ReferralCode ReferralCode `json:"referral_code"`
}

type GetMyReferralCodesRequest struct{}

type GetMyReferralCodesResponse struct {
	ReferralCodes []ReferralCode `json:"referral_codes"`
}

type GetReferralStatsRequest struct {
	UserID uint64 `json:"user_id"`
}

type GetReferralStatsResponse struct {
	Stats []ReferralStats `json:"stats"`
}
