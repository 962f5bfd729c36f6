package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"ecospot/config"
	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/geo"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Push data payload keys.
const (
	pushDataType          = "type"
	pushDataSpotIDs       = "spot_ids"
	pushTypeNearbySpots   = "nearby_spots"
	pushSpotIDsSeparator  = ","
	pushSpotNameSeparator = ", "
)

type proximityService struct {
	ledgerRepo repository.NotificationLedgerRepository
	userRepo   repository.UserRepository
	spotRepo   repository.SpotRepository
	sender     service.PushSender
	cfg        *config.ProximityConfig
	logger     *slog.Logger
	now        func() time.Time
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	LedgerRepo repository.NotificationLedgerRepository
	UserRepo   repository.UserRepository
	SpotRepo   repository.SpotRepository
	PushSender service.PushSender
	Config     *config.Config
	Logger     *slog.Logger
}

// NewProximityService creates the nearby spot notification trigger.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		ledgerRepo: params.LedgerRepo,
		userRepo:   params.UserRepo,
		spotRepo:   params.SpotRepo,
		sender:     params.PushSender,
		cfg:        params.Config.Proximity,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleLocationChange sends at most one push listing the spots strictly
// inside the radius that are not cooling down, then records them in the ledger.
//
// The location version is claimed before any work, so a redelivered event
// never notifies twice. Failures after the claim are logged and not retried.
func (srv *proximityService) HandleLocationChange(ctx context.Context, event *entity.LocationChangedEvent) (*usecase.ProximityResult, error) {
	if event == nil || !event.Moved() {
		return &usecase.ProximityResult{Skipped: usecase.SkipNotMoved}, nil
	}
	logger := srv.log(ctx).With(userIDAttr(event.UserID), slog.Int64("version", event.Version))

	claimed, err := srv.ledgerRepo.ClaimLocationVersion(ctx, event.UserID, event.Version)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim location version")
	}
	if !claimed {
		logger.Debug("Location version already handled")

		return &usecase.ProximityResult{Skipped: usecase.SkipDuplicate}, nil
	}

	user, err := srv.userRepo.FindByID(ctx, event.UserID)
	if err != nil {
		logger.Warn("Failed to load user for proximity check", slog.Any("error", err))

		return &usecase.ProximityResult{Skipped: usecase.SkipLookup}, nil
	}
	if strings.TrimSpace(user.FCMToken) == "" {
		return &usecase.ProximityResult{Skipped: usecase.SkipNoToken}, nil
	}

	ledger, err := srv.ledgerRepo.GetLedger(ctx, event.UserID)
	if err != nil {
		logger.Warn("Failed to load notification ledger", slog.Any("error", err))

		return &usecase.ProximityResult{Skipped: usecase.SkipLookup}, nil
	}

	candidates, err := srv.candidateSpots(ctx, *event.After)
	if err != nil {
		logger.Warn("Failed to load candidate spots", slog.Any("error", err))

		return &usecase.ProximityResult{Skipped: usecase.SkipLookup}, nil
	}

	now := srv.now().UTC()
	nearby := selectNearby(candidates, *event.After, srv.cfg.RadiusKm, ledger, now, srv.cfg.Cooldown)
	if len(nearby) == 0 {
		return &usecase.ProximityResult{Skipped: usecase.SkipNoneNearby}, nil
	}

	msg := srv.buildMessage(user.FCMToken, nearby)
	sendCtx, cancel := context.WithTimeout(ctx, srv.cfg.SendTimeout)
	messageID, err := srv.sender.Send(sendCtx, msg)
	cancel()
	if err != nil {
		logger.Error("Failed to send proximity notification", slog.Int("spots", len(nearby)), slog.Any("error", err))
		if errors.Is(err, service.ErrInvalidPushToken) {
			srv.dropPushToken(ctx, logger, event.UserID)
		}

		return &usecase.ProximityResult{Skipped: usecase.SkipSendFailed}, nil
	}

	result := &usecase.ProximityResult{Notified: nearby, MessageID: messageID, LedgerSync: true}
	spotIDs := make([]uuid.UUID, len(nearby))
	for i, n := range nearby {
		spotIDs[i] = n.Spot.ID
	}
	if err := srv.ledgerRepo.MergeLedger(ctx, event.UserID, spotIDs, now); err != nil {
		logger.Error("Failed to record notified spots", slog.Any("error", err))
		result.LedgerSync = false
	}

	logger.Info("Proximity notification sent", slog.Int("spots", len(nearby)), slog.String("messageID", messageID))

	return result, nil
}

// candidateSpots narrows the scan with the tile index. Positions without a
// compact cover fall back to every spot.
func (srv *proximityService) candidateSpots(ctx context.Context, at entity.Location) ([]*entity.RecyclingSpot, error) {
	keys, ok := geo.CoverKeys(at.Point(), srv.cfg.RadiusKm)
	if !ok {
		srv.log(ctx).Debug("No tile cover for position, scanning all spots")

		return srv.spotRepo.List(ctx)
	}

	return srv.spotRepo.ListInTiles(ctx, keys)
}

func (srv *proximityService) buildMessage(token string, nearby []*entity.NearbySpot) *entity.PushMessage {
	names := make([]string, len(nearby))
	ids := make([]string, len(nearby))
	for i, n := range nearby {
		names[i] = n.Spot.Name
		ids[i] = n.Spot.ID.String()
	}

	return &entity.PushMessage{
		Token: token,
		Title: srv.cfg.Title,
		Body:  srv.cfg.BodyPrefix + strings.Join(names, pushSpotNameSeparator),
		Data: map[string]string{
			pushDataType:    pushTypeNearbySpots,
			pushDataSpotIDs: strings.Join(ids, pushSpotIDsSeparator),
		},
	}
}

func (srv *proximityService) dropPushToken(ctx context.Context, logger *slog.Logger, userID uuid.UUID) {
	if err := srv.userRepo.UpdateFCMToken(ctx, userID, ""); err != nil {
		logger.Warn("Failed to clear rejected push token", slog.Any("error", err))
	}
}

// selectNearby keeps notifiable spots strictly inside radiusKm that are not
// cooling down, nearest first.
func selectNearby(
	spots []*entity.RecyclingSpot,
	at entity.Location,
	radiusKm float64,
	ledger entity.NotificationLedger,
	now time.Time,
	cooldown time.Duration,
) []*entity.NearbySpot {
	var nearby []*entity.NearbySpot
	for _, spot := range spots {
		if !spot.Notifiable() {
			continue
		}
		distance := at.DistanceKm(spot.Location)
		if distance >= radiusKm {
			continue
		}
		if ledger.CoolingDown(spot.ID, now, cooldown) {
			continue
		}
		nearby = append(nearby, &entity.NearbySpot{Spot: spot, DistanceKm: distance})
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby
}
