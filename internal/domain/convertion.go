package domain

import (
	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/model"
)

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:                     user.ID,
		Username:               user.Username,
		Email:                  user.Email,
		FullName:               user.FullName,
		Country:                user.Country,
		IsAdmin:                user.IsAdmin,
		SubscribedToNewsletter: user.SubscribedToNewsletter,
	}
}

func convertGiveaway(giveaway *entity.Giveaway) model.Giveaway {
	if giveaway == nil {
		return model.Giveaway{}
	}

	return model.Giveaway{
		ID:                      giveaway.ID,
		Title:                   giveaway.Title,
		Description:             giveaway.Description,
		ImageURL:                giveaway.ImageURL,
		Prize:                   giveaway.Prize,
		Category:                string(giveaway.Category),
		Region:                  string(giveaway.Region),
		EligibilityRequirements: giveaway.EligibilityRequirements,
		Value:                   giveaway.Value.String,
		TargetEntries:           giveaway.TargetEntries.Int64,
		StartDate:               giveaway.StartDate,
		EndDate:                 giveaway.EndDate,
		IsActive:                giveaway.IsActive,
		IsPopular:               giveaway.IsPopular,
		IsPremium:               giveaway.IsPremium,
		IsFeatured:              giveaway.IsFeatured,
		CreatedByUserID:         giveaway.CreatedByUserID,
	}
}

func convertEntry(entry *entity.Entry) model.Entry {
	if entry == nil {
		return model.Entry{}
	}

	return model.Entry{
		ID:             entry.ID,
		GiveawayID:     entry.GiveawayID,
		UserID:         entry.UserID,
		EntryDate:      entry.EntryDate,
		IsWinner:       entry.IsWinner,
		ReferralCodeID: uint64(entry.ReferralCodeID.Int64),
		EntrySource:    string(entry.EntrySource),
	}
}

func convertWinner(winner *entity.Winner) model.Winner {
	if winner == nil {
		return model.Winner{}
	}

	return model.Winner{
		ID:               winner.ID,
		GiveawayID:       winner.GiveawayID,
		UserID:           winner.UserID,
		EntryID:          winner.EntryID,
		AnnouncementDate: winner.AnnouncementDate,
		Testimonial:      winner.Testimonial.String,
		Location:         winner.Location.String,
	}
}

func convertReferralCode(code *entity.ReferralCode) model.ReferralCode {
	if code == nil {
		return model.ReferralCode{}
	}

	return model.ReferralCode{
		ID:        code.ID,
		UserID:    code.UserID,
		Code:      code.Code,
		CreatedAt: code.CreatedAt,
		IsActive:  code.IsActive,
	}
}
