package common

import (
	"context"
	"database/sql"
	"time"

	"github.com/streamdrop-lab/backend/internal/entity"
	"github.com/streamdrop-lab/backend/internal/repository"
)

// ReferralBonusGranter records a referral and awards the code owner a bonus
// entry when the owner does not yet hold one for the giveaway.
type ReferralBonusGranter struct {
	referralRepo repository.ReferralRepository
	entryRepo    repository.EntryRepository
}

func NewReferralBonusGranter(
	referralRepo repository.ReferralRepository,
	entryRepo repository.EntryRepository,
) *ReferralBonusGranter {
	return &ReferralBonusGranter{referralRepo: referralRepo, entryRepo: entryRepo}
}

// Grant writes the referral audit record, then awards the bonus entry.
// The audit record is kept even when no bonus is awarded.
func (granter *ReferralBonusGranter) Grant(
	ctx context.Context,
	code *entity.ReferralCode,
	referredUserID, giveawayID, primaryEntryID uint64,
) error {
	referralEntry := &entity.ReferralEntry{
		ReferralCodeID: code.ID,
		ReferredUserID: referredUserID,
		GiveawayID:     giveawayID,
		EntryID:        sql.NullInt64{Int64: int64(primaryEntryID), Valid: true},
		BonusEntries:   1,
	}
	if err := granter.referralRepo.CreateEntry(ctx, referralEntry); err != nil {
		return err
	}

	ownerEntries, err := granter.entryRepo.GetByUserAndGiveaway(ctx, code.UserID, giveawayID)
	if err != nil {
		return err
	}

	if len(ownerEntries) > 0 {
		return nil
	}

	bonus := &entity.Entry{
		GiveawayID:     giveawayID,
		UserID:         code.UserID,
		EntryDate:      time.Now(),
		EntrySource:    entity.EntrySourceReferralBonus,
		ReferralCodeID: sql.NullInt64{Int64: int64(code.ID), Valid: true},
	}
	return granter.entryRepo.Create(ctx, bonus)
}
