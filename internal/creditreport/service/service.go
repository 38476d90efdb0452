package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"creditguard/internal/creditreport/bureau"
	"creditguard/internal/creditreport/metrics"
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/normalize"
	"creditguard/internal/creditreport/payload"
	"creditguard/pkg/platform/sentinel"
	"creditguard/pkg/requestcontext"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidPayload    = errors.New("invalid credit report payload")
	ErrUnknownBureau     = errors.New("unknown bureau")
	ErrBureauUnavailable = errors.New("requested bureau not present in payload")
)

// ProfileStore persists the latest canonical profile per user and bureau.
type ProfileStore interface {
	Save(ctx context.Context, userID string, profile *models.CreditProfile) error
	FindLatest(ctx context.Context, userID string, bureau models.Bureau) (*models.CreditProfile, error)
	ListLatest(ctx context.Context, userID string) ([]models.CreditProfile, error)
}

// Service runs raw bureau payloads through the normalization core and keeps
// the resulting profiles in a ProfileStore.
type Service struct {
	store        ProfileStore
	logger       *slog.Logger
	metrics      *metrics.Metrics
	strictBureau bool
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStrictBureau rejects every bureau fallback, regardless of the request.
func WithStrictBureau(strict bool) Option {
	return func(s *Service) {
		s.strictBureau = strict
	}
}

func New(store ProfileStore, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("profile store is required")
	}
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// NormalizeRequest carries one raw bureau payload for a user.
type NormalizeRequest struct {
	UserID string
	// Bureau is an optional bureau code or alias. Empty selects the first
	// provider view in the payload.
	Bureau  string
	Payload []byte
	// Strict fails with ErrBureauUnavailable instead of serving another
	// bureau's view.
	Strict bool
}

// Result is a normalized profile with the view selection that produced it.
type Result struct {
	Profile   models.CreditProfile
	Selection bureau.Selection
	Shape     payload.Shape
}

// Normalize decodes req.Payload, selects the requested provider view and
// stores the canonical profile.
func (s *Service) Normalize(ctx context.Context, req NormalizeRequest) (*Result, error) {
	start := time.Now()
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}

	var requested models.Bureau
	if code := strings.TrimSpace(req.Bureau); code != "" {
		b, ok := bureau.Resolve(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBureau, code)
		}
		requested = b
	}

	p, err := payload.Probe(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	now := requestcontext.Now(ctx)
	var result Result
	switch p := p.(type) {
	case payload.Unknown:
		s.logger.WarnContext(ctx, "unrecognized credit report shape",
			"user_id", userID,
			"bureau", requested.String(),
		)
		result = Result{
			Profile:   models.EmptyProfile(requested),
			Selection: bureau.Selection{Requested: requested, Served: requested},
			Shape:     p.Shape(),
		}
	case payload.SingleBureau:
		if _, known := bureau.Resolve(p.View.Provider); !known {
			// A single-bureau report with no recognizable provider code
			// belongs to the bureau it was requested for.
			result = Result{
				Profile:   normalize.Profile(p.View, now),
				Selection: bureau.Selection{Requested: requested, Served: requested, Provider: p.View.Provider},
				Shape:     p.Shape(),
			}
			result.Profile.Bureau = requested
			break
		}
		r, err := s.selectView(ctx, req, userID, requested, p, now)
		if err != nil {
			return nil, err
		}
		result = r
	case payload.MultiBureau:
		r, err := s.selectView(ctx, req, userID, requested, p, now)
		if err != nil {
			return nil, err
		}
		result = r
	}

	if err := s.persist(ctx, userID, &result.Profile); err != nil {
		return nil, err
	}
	s.record(ctx, userID, &result, time.Since(start))
	return &result, nil
}

// selectView serves the requested bureau's view of p, substituting the first
// view when the requested bureau is absent and strict isolation is off.
func (s *Service) selectView(ctx context.Context, req NormalizeRequest, userID string, requested models.Bureau, p payload.Payload, now time.Time) (Result, error) {
	view, sel, ok := bureau.SelectProviderView(p.Views(), requested)
	if !ok {
		if s.strict(req) && !requested.IsZero() {
			return Result{}, fmt.Errorf("%w: %s", ErrBureauUnavailable, requested)
		}
		return Result{
			Profile:   models.EmptyProfile(requested),
			Selection: bureau.Selection{Requested: requested, Served: requested},
			Shape:     p.Shape(),
		}, nil
	}
	if sel.Fallback {
		if s.strict(req) {
			return Result{}, fmt.Errorf("%w: %s", ErrBureauUnavailable, requested)
		}
		s.logger.WarnContext(ctx, "requested bureau absent, serving first provider view",
			"user_id", userID,
			"bureau", requested.String(),
			"served_bureau", sel.Served.String(),
		)
		s.metrics.IncrementBureauFallback(requested.String(), sel.Served.String())
	}
	return Result{
		Profile:   normalize.Profile(view, now),
		Selection: sel,
		Shape:     p.Shape(),
	}, nil
}

// NormalizeAll normalizes every provider view in raw concurrently and returns
// the results in view order. Unknown shapes yield no results.
func (s *Service) NormalizeAll(ctx context.Context, userID string, raw []byte) ([]Result, error) {
	start := time.Now()
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	p, err := payload.Probe(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	views := p.Views()
	now := requestcontext.Now(ctx)
	results := make([]Result, len(views))

	g, gctx := errgroup.WithContext(ctx)
	for i, view := range views {
		g.Go(func() error {
			profile := normalize.Profile(view, now)
			results[i] = Result{
				Profile:   profile,
				Selection: bureau.Selection{Served: profile.Bureau, Provider: view.Provider},
				Shape:     p.Shape(),
			}
			return s.persist(gctx, userID, &results[i].Profile)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	for i := range results {
		s.record(ctx, userID, &results[i], elapsed)
	}
	return results, nil
}

// Latest returns the stored profile for a user and bureau code.
func (s *Service) Latest(ctx context.Context, userID, bureauCode string) (*models.CreditProfile, error) {
	b, ok := bureau.Resolve(bureauCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBureau, bureauCode)
	}
	profile, err := s.store.FindLatest(ctx, userID, b)
	switch {
	case err == nil:
		s.metrics.RecordStoreLookup("hit")
		return profile, nil
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.RecordStoreLookup("miss")
		return nil, err
	default:
		s.metrics.RecordStoreLookup("error")
		return nil, fmt.Errorf("find latest profile: %w", err)
	}
}

// Profiles lists the stored profiles of a user in bureau order.
func (s *Service) Profiles(ctx context.Context, userID string) ([]models.CreditProfile, error) {
	profiles, err := s.store.ListLatest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *Service) strict(req NormalizeRequest) bool {
	return req.Strict || s.strictBureau
}

// persist skips profiles without a bureau; they cannot be looked up again.
func (s *Service) persist(ctx context.Context, userID string, profile *models.CreditProfile) error {
	if profile.Bureau.IsZero() {
		s.logger.DebugContext(ctx, "profile has no bureau, not stored", "user_id", userID)
		return nil
	}
	if err := s.store.Save(ctx, userID, profile); err != nil {
		s.logger.ErrorContext(ctx, "failed to store profile",
			"user_id", userID,
			"bureau", profile.Bureau.String(),
			"error", err,
		)
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, userID string, r *Result, elapsed time.Duration) {
	s.metrics.IncrementNormalization(string(r.Shape), r.Profile.Bureau.String())
	s.metrics.IncrementSeverity(string(r.Profile.Derogatory.Severity))
	s.metrics.ObserveNormalizeLatency(elapsed)
	s.logger.InfoContext(ctx, "credit report normalized",
		"user_id", userID,
		"bureau", r.Selection.Requested.String(),
		"served_bureau", r.Profile.Bureau.String(),
		"shape", string(r.Shape),
		"accounts", len(r.Profile.Accounts),
		"duration_ms", elapsed.Milliseconds(),
	)
}
