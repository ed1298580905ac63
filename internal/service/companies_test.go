package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/octobees/company-lookup/api/internal/entity"
	"github.com/octobees/company-lookup/api/internal/registry"
	"github.com/octobees/company-lookup/api/internal/sic"
)

type mockRegistry struct {
	fetch func(ctx context.Context, number string) (entity.CompanyRecord, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockRegistry) FetchCompany(ctx context.Context, number string) (entity.CompanyRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, number)
	m.mu.Unlock()
	if m.fetch != nil {
		return m.fetch(ctx, number)
	}
	return entity.CompanyRecord{}, errors.New("fetch not implemented")
}

func newTestTable(t *testing.T) *sic.Table {
	t.Helper()
	table, err := sic.Parse(strings.NewReader("SIC Code,Description\n01110,Growing of cereals\n62012,Business and domestic software development\n"))
	if err != nil {
		t.Fatalf("parse sic table: %v", err)
	}
	return table
}

func notFound(number string) error {
	return &registry.UpstreamError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("404 Client Error: Not Found for url: https://registry/company/%s", number),
	}
}

func TestNormalizeCompanyNumber(t *testing.T) {
	cases := map[string]string{
		" 123":        "00000123",
		"12345":       "00012345",
		"00012345":    "00012345",
		"SC123456":    "SC123456",
		"\t1\n":       "00000001",
		"":            "00000000",
		"123456789":   "123456789",
		"  NI000166 ": "NI000166",
	}
	for in, want := range cases {
		got := NormalizeCompanyNumber(in)
		if got != want {
			t.Fatalf("NormalizeCompanyNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCompanyLookupService_LookupCompany(t *testing.T) {
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			return entity.CompanyRecord{Name: "ACME LTD", Number: number, SICCodes: []string{"01110", "99999"}}, nil
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t))

	info, err := svc.LookupCompany(context.Background(), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.calls) != 1 || repo.calls[0] != "00012345" {
		t.Fatalf("expected normalized upstream call, got %v", repo.calls)
	}
	if info.CompanyName != "ACME LTD" || info.CompanyNumber != "00012345" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.SICCodes) != 2 || len(info.SICDescriptions) != 2 {
		t.Fatalf("expected aligned codes and descriptions, got %+v", info)
	}
	if info.SICDescriptions[0] != "Growing of cereals" || info.SICDescriptions[1] != sic.NotFound {
		t.Fatalf("unexpected descriptions: %v", info.SICDescriptions)
	}
}

func TestCompanyLookupService_LookupCompany_NoCodes(t *testing.T) {
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			return entity.CompanyRecord{Name: "DORMANT LTD", Number: number}, nil
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t))

	info, err := svc.LookupCompany(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.SICCodes == nil || info.SICDescriptions == nil {
		t.Fatalf("expected empty non-nil slices, got %+v", info)
	}
}

func TestCompanyLookupService_LookupCompany_UpstreamError(t *testing.T) {
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			return entity.CompanyRecord{}, notFound(number)
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t))

	_, err := svc.LookupCompany(context.Background(), "404")
	var upstreamErr *registry.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 UpstreamError, got %v", err)
	}
}

func TestCompanyLookupService_LookupCompanies(t *testing.T) {
	tests := map[string]struct {
		input     []string
		failing   map[string]bool
		expectErr error
		expectOK  []bool
	}{
		"empty input": {
			input:     nil,
			expectErr: ErrNoCompanyNumbers,
		},
		"all succeed": {
			input:    []string{"1", "2"},
			expectOK: []bool{true, true},
		},
		"partial failure": {
			input:    []string{"12345", "99999999"},
			failing:  map[string]bool{"99999999": true},
			expectOK: []bool{true, false},
		},
		"all fail": {
			input:     []string{"7", "8"},
			failing:   map[string]bool{"00000007": true, "00000008": true},
			expectErr: ErrAllLookupsFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &mockRegistry{
				fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
					if tt.failing[number] {
						return entity.CompanyRecord{}, notFound(number)
					}
					return entity.CompanyRecord{Name: "CO " + number, Number: number, SICCodes: []string{"01110"}}, nil
				},
			}
			svc := NewCompanyLookupService(repo, newTestTable(t))

			results, err := svc.LookupCompanies(context.Background(), tt.input)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != len(tt.expectOK) {
				t.Fatalf("expected %d results, got %d", len(tt.expectOK), len(results))
			}
			for i, ok := range tt.expectOK {
				if results[i].OK() != ok {
					t.Fatalf("result %d: expected ok=%v, got %+v", i, ok, results[i])
				}
			}
		})
	}
}

func TestCompanyLookupService_LookupCompanies_ErrorEntry(t *testing.T) {
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			if number == "99999999" || number == "00000099" {
				return entity.CompanyRecord{}, notFound(number)
			}
			return entity.CompanyRecord{Name: "ACME LTD", Number: number, SICCodes: []string{"01110"}}, nil
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t))

	results, err := svc.LookupCompanies(context.Background(), []string{"12345", "99999999", " 99"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Info == nil || results[0].Info.CompanyNumber != "00012345" {
		t.Fatalf("expected success for first item, got %+v", results[0])
	}
	entry := results[1].Err
	if entry == nil || entry.CompanyNumber != "99999999" {
		t.Fatalf("expected error entry for second item, got %+v", results[1])
	}
	if !strings.Contains(entry.Error, "404 Client Error") {
		t.Fatalf("expected upstream message in error entry, got %q", entry.Error)
	}

	// Short inputs are reported under their padded, canonical number.
	if short := results[2].Err; short == nil || short.CompanyNumber != "00000099" {
		t.Fatalf("expected normalized number in error entry, got %+v", results[2])
	}
}

func TestCompanyLookupService_LookupCompanies_SequentialByDefault(t *testing.T) {
	var inFlight, peak int32
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			return entity.CompanyRecord{Name: number, Number: number}, nil
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t))

	if _, err := svc.LookupCompanies(context.Background(), []string{"1", "2", "3", "4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&peak) != 1 {
		t.Fatalf("expected sequential lookups, peak concurrency %d", peak)
	}
	want := []string{"00000001", "00000002", "00000003", "00000004"}
	for i, number := range want {
		if repo.calls[i] != number {
			t.Fatalf("expected call %d to be %s, got %v", i, number, repo.calls)
		}
	}
}

func TestCompanyLookupService_LookupCompanies_PreservesOrderWhenParallel(t *testing.T) {
	input := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	repo := &mockRegistry{
		fetch: func(ctx context.Context, number string) (entity.CompanyRecord, error) {
			// Earlier inputs finish last.
			delay := time.Duration(len(input)) * time.Millisecond
			if n := number[len(number)-1] - '0'; n > 0 {
				delay = time.Duration(len(input)-int(n)+1) * 2 * time.Millisecond
			}
			time.Sleep(delay)
			if number == "00000005" {
				return entity.CompanyRecord{}, notFound(number)
			}
			return entity.CompanyRecord{Name: "CO", Number: number}, nil
		},
	}
	svc := NewCompanyLookupService(repo, newTestTable(t), WithConcurrency(len(input)))

	results, err := svc.LookupCompanies(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, raw := range input {
		want := NormalizeCompanyNumber(raw)
		var got string
		if results[i].OK() {
			got = results[i].Info.CompanyNumber
		} else {
			got = results[i].Err.CompanyNumber
		}
		if got != want {
			t.Fatalf("result %d: expected %s, got %s", i, want, got)
		}
	}
	if results[4].OK() {
		t.Fatalf("expected fifth item to be an error entry")
	}
}

func TestWithConcurrency_IgnoresNonPositive(t *testing.T) {
	svc := NewCompanyLookupService(&mockRegistry{}, newTestTable(t), WithConcurrency(0), WithConcurrency(-3))
	if svc.concurrency != 1 {
		t.Fatalf("expected default concurrency 1, got %d", svc.concurrency)
	}
	svc = NewCompanyLookupService(&mockRegistry{}, newTestTable(t), WithConcurrency(6))
	if svc.concurrency != 6 {
		t.Fatalf("expected concurrency 6, got %d", svc.concurrency)
	}
}
