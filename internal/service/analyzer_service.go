package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Oliverknowledge/Signal-Backend/internal/cache"
	"github.com/Oliverknowledge/Signal-Backend/internal/decision"
	"github.com/Oliverknowledge/Signal-Backend/internal/model"
	"github.com/Oliverknowledge/Signal-Backend/internal/question"
	"github.com/Oliverknowledge/Signal-Backend/internal/telemetry"
)

var (
	// ErrContentFetch maps to a client-visible 4xx: the URL was bad or the
	// content could not be retrieved.
	ErrContentFetch = errors.New("content fetch failed")
	// ErrModelCall maps to a client-visible 5xx: the model collaborator
	// errored or timed out.
	ErrModelCall = errors.New("model call failed")
)

// ContentFetcher supplies a bounded text blob for a URL
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Analyzer proposes concepts, scores and candidate questions for content
type Analyzer interface {
	Analyze(ctx context.Context, text, goal string, known, weak []string) (*model.RawAnalysis, error)
}

// Broadcaster pushes decision events to connected observers
type Broadcaster interface {
	BroadcastDecision(resp *model.AnalyzeResponse)
}

// AnalyzerService runs the analyze pipeline: fetch -> model -> decision core
// -> question enforcement -> telemetry. The core stages are pure; this
// service owns the I/O around them.
type AnalyzerService struct {
	fetcher       ContentFetcher
	modelClient   Analyzer
	contentCache  cache.ContentCache
	analysisCache cache.AnalysisCache
	dispatcher    *telemetry.Dispatcher
	broadcaster   Broadcaster
	log           zerolog.Logger
}

// NewAnalyzerService creates a new analyzer service. Caches may be nil
// (disabled); the dispatcher must not be.
func NewAnalyzerService(
	fetcher ContentFetcher,
	modelClient Analyzer,
	contentCache cache.ContentCache,
	analysisCache cache.AnalysisCache,
	dispatcher *telemetry.Dispatcher,
	log zerolog.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		fetcher:       fetcher,
		modelClient:   modelClient,
		contentCache:  contentCache,
		analysisCache: analysisCache,
		dispatcher:    dispatcher,
		log:           log,
	}
}

// SetBroadcaster sets the broadcaster for the observer decision feed
func (s *AnalyzerService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Analyze handles one analyze request end to end
func (s *AnalyzerService) Analyze(ctx context.Context, req *model.AnalyzeRequest) (*model.AnalyzeResponse, error) {
	policy := decision.ParsePolicy(req.Policy)
	mode := question.ParseMode(req.LearningMode)
	plan := question.PlanFor(mode)
	retrieval := model.RetrievalSignal{Used: req.RetrievalUsed, Count: req.RetrievedCount}

	cacheKey := cache.AnalysisKey(req.URL, req.Goal, policy, mode)
	if s.analysisCache != nil {
		if cached, err := s.analysisCache.Get(ctx, cacheKey); err == nil && cached != nil {
			s.log.Debug().Str("url", req.URL).Msg("analysis cache hit")
			return cached, nil
		}
	}

	text, err := s.fetchContent(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentFetch, err)
	}

	raw, err := s.modelClient.Analyze(ctx, text, req.Goal, req.KnownConcepts, req.WeakConcepts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	scores := decision.Normalize(raw.RelevanceScore, raw.LearningValueScore, float64(len(raw.Concepts)))
	record := decision.Evaluate(scores, policy, retrieval)

	// Question generation never runs for an ignored decision.
	questions := []model.RecallQuestion{}
	if record.SystemDecision == model.DecisionTriggered {
		questions = question.Enforce(raw.Candidates, raw.Concepts, plan)
	}

	resp := &model.AnalyzeResponse{
		DecisionRecord:  record,
		Concepts:        raw.Concepts,
		RecallQuestions: questions,
	}

	s.log.Info().
		Str("url", req.URL).
		Str("decision", string(record.SystemDecision)).
		Str("confidence", string(record.DecisionConfidence)).
		Str("reason", string(record.DecisionReasonCode)).
		Msg("content analyzed")

	s.dispatcher.Dispatch(telemetry.DecisionEvent("content_analyzed", uuid.New().String(), record))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDecision(resp)
	}

	if s.analysisCache != nil {
		if err := s.analysisCache.Set(ctx, cacheKey, resp); err != nil {
			s.log.Warn().Err(err).Msg("analysis cache set failed")
		}
	}

	return resp, nil
}

// Relay handles the legacy telemetry relay: a decision asserted by the
// caller rather than computed from scores. When both an explicit decision
// and raw scores arrive, the explicit value wins.
func (s *AnalyzerService) Relay(req *model.RelayRequest) model.DecisionRecord {
	policy := decision.ParsePolicy(req.Policy)
	scores := decision.Normalize(
		coerceScore(req.RelevanceScore),
		coerceScore(req.LearningScore),
		coerceScore(req.ConceptCount),
	)
	retrieval := model.RetrievalSignal{Used: req.RetrievalUsed, Count: req.RetrievedCount}

	record := decision.EvaluateExplicit(req.Decision, scores, policy, retrieval)

	s.dispatcher.Dispatch(telemetry.DecisionEvent("decision_relayed", uuid.New().String(), record))
	return record
}

func (s *AnalyzerService) fetchContent(ctx context.Context, url string) (string, error) {
	if s.contentCache != nil {
		if text, ok, err := s.contentCache.Get(ctx, url); err == nil && ok {
			s.log.Debug().Str("url", url).Msg("content cache hit")
			return text, nil
		}
	}

	text, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if s.contentCache != nil {
		if err := s.contentCache.Set(ctx, url, text); err != nil {
			s.log.Warn().Err(err).Msg("content cache set failed")
		}
	}
	return text, nil
}
