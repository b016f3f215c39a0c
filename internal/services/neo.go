package services

import (
	"context"
	"time"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
)

const (
	dateLayout    = "2006-01-02"
	maxWindowDays = 7
)

// FeedResult mirrors the feed wire shape: pagination fields at the top
// level next to the page slice and the full-window stats block.
type FeedResult struct {
	FetchedAt    time.Time          `json:"fetched_at"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	ElementCount int                `json:"element_count"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	TotalPages   int                `json:"total_pages"`
	HasNext      bool               `json:"has_next"`
	HasPrev      bool               `json:"has_prev"`
	NeoObjects   []neo.DashboardNeo `json:"neo_objects"`
	Stats        neo.FeedStats      `json:"stats"`
	Cached       bool               `json:"cached"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RiskBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type SummaryResult struct {
	Range         DateRange     `json:"range"`
	Total         int           `json:"total"`
	Hazardous     int           `json:"hazardous"`
	RiskBreakdown RiskBreakdown `json:"risk_breakdown"`
	Cached        bool          `json:"cached"`
}

type LookupResult struct {
	Neo    *neo.FlatNeo      `json:"neo"`
	Raw    *neo.RawNeoRecord `json:"raw"`
	Cached bool              `json:"cached"`
}

type NeoService interface {
	GetFeed(ctx context.Context, startDate, endDate string, page, limit int) (*FeedResult, error)
	GetSummary(ctx context.Context, startDate, endDate string) (*SummaryResult, error)
	GetLookup(ctx context.Context, neoID string) (*LookupResult, error)
}

type neoService struct {
	log     *logger.Logger
	source  NeoSource
	weights neo.RiskWeights
}

func NewNeoService(log *logger.Logger, source NeoSource, weights neo.RiskWeights) NeoService {
	serviceLog := log.With("service", "NeoService")
	return &neoService{
		log:     serviceLog,
		source:  source,
		weights: weights,
	}
}

// resolveWindow validates the requested date window. Both dates are
// required; the window may span at most seven days.
func resolveWindow(startDate, endDate string) (string, string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", "", apierr.Validation("start_date must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", "", apierr.Validation("end_date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return "", "", apierr.Validation("end_date must be after start_date")
	}
	if end.Sub(start) > maxWindowDays*24*time.Hour {
		return "", "", apierr.Validation("Date range must be %d days or less", maxWindowDays)
	}
	return startDate, endDate, nil
}

func (s *neoService) GetFeed(ctx context.Context, startDate, endDate string, page, limit int) (*FeedResult, error) {
	startDate, endDate, err := resolveWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = neo.DefaultPageLimit
	}

	payload, cached, err := s.source.Feed(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	flat := payload.Flatten()
	dashboard := make([]neo.DashboardNeo, 0, len(flat))
	for i := range flat {
		dashboard = append(dashboard, neo.NormalizeForDashboard(&flat[i], s.weights))
	}

	feedPage := neo.Paginate(dashboard, page, limit)

	return &FeedResult{
		FetchedAt:    time.Now().UTC(),
		StartDate:    startDate,
		EndDate:      endDate,
		ElementCount: feedPage.Stats.Total,
		Page:         feedPage.Page,
		Limit:        feedPage.Limit,
		TotalPages:   feedPage.TotalPages,
		HasNext:      feedPage.HasNext,
		HasPrev:      feedPage.HasPrev,
		NeoObjects:   feedPage.Items,
		Stats:        feedPage.Stats,
		Cached:       cached,
	}, nil
}

func (s *neoService) GetSummary(ctx context.Context, startDate, endDate string) (*SummaryResult, error) {
	startDate, endDate, err := resolveWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	payload, cached, err := s.source.Feed(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	flat := payload.Flatten()
	var breakdown RiskBreakdown
	hazardous := 0
	for i := range flat {
		if flat[i].IsPotentiallyHazardous {
			hazardous++
		}
		switch neo.ComputeRiskScore(s.weights, &flat[i]).Label {
		case neo.LabelHigh:
			breakdown.High++
		case neo.LabelMedium:
			breakdown.Medium++
		default:
			breakdown.Low++
		}
	}

	return &SummaryResult{
		Range:         DateRange{StartDate: startDate, EndDate: endDate},
		Total:         len(flat),
		Hazardous:     hazardous,
		RiskBreakdown: breakdown,
		Cached:        cached,
	}, nil
}

func (s *neoService) GetLookup(ctx context.Context, neoID string) (*LookupResult, error) {
	if neoID == "" {
		return nil, apierr.Validation("neo id is required")
	}

	record, cached, err := s.source.Lookup(ctx, neoID)
	if err != nil {
		return nil, err
	}

	flat := neo.Normalize(record, s.weights)
	return &LookupResult{
		Neo:    &flat,
		Raw:    record,
		Cached: cached,
	}, nil
}
