package leadsync

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const leadBatchLimit = 200

// LeadSyncer backfills the ad linkage of captured leads. Referral metadata
// from the conversation is authoritative; a normalized creative-title match
// is the fallback for conversations whose referral expired.
type LeadSyncer interface {
	AttributeLeads(ctx context.Context, tenantID string) (int, error)
}

type Service struct {
	cfg                *config.Config
	client             metaclient.Client
	leadRepository     repository.LeadRepository
	accountRepository  repository.AccountRepository
	adRepository       repository.AdRepository
	creativeRepository repository.CreativeRepository
}

func NewService(
	cfg *config.Config,
	client metaclient.Client,
	leadRepo repository.LeadRepository,
	accountRepo repository.AccountRepository,
	adRepo repository.AdRepository,
	creativeRepo repository.CreativeRepository,
) LeadSyncer {
	return &Service{
		cfg:                cfg,
		client:             client,
		leadRepository:     leadRepo,
		accountRepository:  accountRepo,
		adRepository:       adRepo,
		creativeRepository: creativeRepo,
	}
}

func (s *Service) AttributeLeads(ctx context.Context, tenantID string) (int, error) {
	leads, err := s.leadRepository.ListUnattributed(ctx, tenantID, leadBatchLimit)
	if err != nil {
		return 0, errors.Wrap(err, "listing unattributed leads")
	}
	if len(leads) == 0 {
		return 0, nil
	}

	accounts, err := s.accountRepository.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return 0, errors.Wrap(err, "loading tenant accounts")
	}

	accountsByID := make(map[string]*domain.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.ID] = account
	}

	delay := time.Duration(s.cfg.Leads.LookupDelayMillis) * time.Millisecond
	attributed := 0

	for i, lead := range leads {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		done, err := s.attributeLead(ctx, lead, accountsByID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"lead_id":   lead.ID,
				"error":     err.Error(),
			}).Warn("lead attribution failed, continuing")
			continue
		}
		if done {
			attributed++
		}
	}

	return attributed, nil
}

func (s *Service) attributeLead(ctx context.Context, lead *domain.Lead, accountsByID map[string]*domain.Account) (bool, error) {
	var account *domain.Account
	if lead.AccountID != nil {
		account = accountsByID[*lead.AccountID]
	}

	if account != nil && lead.ConversationID != "" {
		done, err := s.attributeByReferral(ctx, lead, account)
		if err != nil || done {
			return done, err
		}
	}

	return s.attributeByCreativeTitle(ctx, lead, account, accountsByID)
}

func (s *Service) attributeByReferral(ctx context.Context, lead *domain.Lead, account *domain.Account) (bool, error) {
	referral, err := s.client.GetConversationReferral(ctx, lead.ConversationID, account.AccessToken)
	if err != nil {
		return false, errors.Wrap(err, "fetching conversation referral")
	}
	if referral == nil || referral.AdID == "" {
		return false, nil
	}

	ad, err := s.adRepository.GetByExternalID(ctx, account.ID, referral.AdID)
	if err != nil {
		return false, err
	}
	if ad == nil {
		return false, nil
	}

	return s.leadRepository.Attribute(ctx, lead.ID, ad.ID, domain.LeadAttributedByReferral)
}

// attributeByCreativeTitle matches the lead's captured title against the
// creative titles of the lead's account, or of every tenant account when the
// lead carries no account linkage.
func (s *Service) attributeByCreativeTitle(ctx context.Context, lead *domain.Lead, account *domain.Account, accountsByID map[string]*domain.Account) (bool, error) {
	title := normalizeTitle(lead.Title)
	if title == "" {
		return false, nil
	}

	candidates := accountsByID
	if account != nil {
		candidates = map[string]*domain.Account{account.ID: account}
	}

	for _, candidate := range candidates {
		adID, err := s.matchCreativeTitle(ctx, candidate, title)
		if err != nil {
			return false, err
		}
		if adID != "" {
			return s.leadRepository.Attribute(ctx, lead.ID, adID, domain.LeadAttributedByCreative)
		}
	}

	return false, nil
}

func (s *Service) matchCreativeTitle(ctx context.Context, account *domain.Account, title string) (string, error) {
	creatives, err := s.creativeRepository.ListByAccount(ctx, account.ID)
	if err != nil {
		return "", err
	}

	matched := make(map[string]bool)
	for _, creative := range creatives {
		creativeTitle := normalizeTitle(creative.Title)
		if creativeTitle == "" {
			continue
		}
		if strings.Contains(title, creativeTitle) || strings.Contains(creativeTitle, title) {
			matched[creative.ID] = true
		}
	}
	if len(matched) == 0 {
		return "", nil
	}

	ads, err := s.adRepository.ListByAccount(ctx, account.ID)
	if err != nil {
		return "", err
	}

	for _, ad := range ads {
		if ad.CreativeID != nil && matched[*ad.CreativeID] {
			return ad.ID, nil
		}
	}

	return "", nil
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
