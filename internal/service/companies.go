package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/octobees/company-lookup/api/internal/dto"
	"github.com/octobees/company-lookup/api/internal/registry"
	"github.com/octobees/company-lookup/api/internal/requestid"
)

// companyNumberWidth is the registry's canonical company number length.
const companyNumberWidth = 8

var (
	// ErrNoCompanyNumbers is returned when a batch lookup receives no numbers.
	ErrNoCompanyNumbers = errors.New("no company numbers supplied")
	// ErrAllLookupsFailed is returned when no lookup in a batch succeeded.
	ErrAllLookupsFailed = errors.New("all company number lookups failed")
)

// DescriptionLookup resolves SIC codes to their descriptions.
type DescriptionLookup interface {
	Describe(codes []string) []string
}

// CompanyLookupService enriches registry profiles with SIC descriptions.
type CompanyLookupService struct {
	registry    registry.CompanyFetcher
	sic         DescriptionLookup
	concurrency int
}

// Option configures optional behaviour of the lookup service.
type Option func(*CompanyLookupService)

// WithConcurrency bounds how many batch items are looked up at once.
func WithConcurrency(n int) Option {
	return func(s *CompanyLookupService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewCompanyLookupService creates a new instance of CompanyLookupService.
// Batch lookups are sequential unless WithConcurrency is supplied.
func NewCompanyLookupService(fetcher registry.CompanyFetcher, sic DescriptionLookup, opts ...Option) *CompanyLookupService {
	s := &CompanyLookupService{registry: fetcher, sic: sic, concurrency: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeCompanyNumber trims the input and left-pads it with zeros to the
// registry's eight character width. Longer inputs are returned unpadded.
func NormalizeCompanyNumber(raw string) string {
	number := strings.TrimSpace(raw)
	if len(number) >= companyNumberWidth {
		return number
	}
	return strings.Repeat("0", companyNumberWidth-len(number)) + number
}

// LookupCompany fetches one company and attaches SIC descriptions.
func (s *CompanyLookupService) LookupCompany(ctx context.Context, rawNumber string) (dto.CompanyInformation, error) {
	record, err := s.registry.FetchCompany(ctx, NormalizeCompanyNumber(rawNumber))
	if err != nil {
		return dto.CompanyInformation{}, err
	}

	codes := record.SICCodes
	if codes == nil {
		codes = []string{}
	}

	return dto.CompanyInformation{
		CompanyName:     record.Name,
		CompanyNumber:   record.Number,
		SICCodes:        codes,
		SICDescriptions: s.sic.Describe(codes),
	}, nil
}

// LookupCompanies looks up every number, keeping input order. A failed item
// becomes an error entry; the call itself fails only when nothing succeeded.
func (s *CompanyLookupService) LookupCompanies(ctx context.Context, rawNumbers []string) ([]dto.CompanyResult, error) {
	if len(rawNumbers) == 0 {
		return nil, ErrNoCompanyNumbers
	}

	results := make([]dto.CompanyResult, len(rawNumbers))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, raw := range rawNumbers {
		g.Go(func() error {
			info, err := s.LookupCompany(ctx, raw)
			if err != nil {
				number := NormalizeCompanyNumber(raw)
				log.Printf("company lookup failed request_id=%s company_number=%s status=%d err=%v", requestid.From(ctx), number, upstreamStatus(err), err)
				results[i] = dto.Failed(number, err.Error())
				return nil
			}
			results[i] = dto.Succeeded(info)
			return nil
		})
	}
	_ = g.Wait()

	for _, result := range results {
		if result.OK() {
			return results, nil
		}
	}
	return nil, ErrAllLookupsFailed
}

func upstreamStatus(err error) int {
	var upstreamErr *registry.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}
	return 0
}
