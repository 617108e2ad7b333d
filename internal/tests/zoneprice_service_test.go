package tests

import (
	"context"
	"errors"
	"testing"

	"fare/internal/domain"
	"fare/internal/repository"
	"fare/internal/service"
)

// zonePriceFixture bundles a ZonePriceService with its mocks.
type zonePriceFixture struct {
	svc           *service.ZonePriceService
	zonePriceRepo *MockZonePriceRepository
	zoneRepo      *MockZoneRepository
	configRepo    *MockPriceConfigRepository
}

func newZonePriceFixture() *zonePriceFixture {
	zonePriceRepo := NewMockZonePriceRepository()
	zoneRepo := NewMockZoneRepository()
	configRepo := NewMockPriceConfigRepository()

	configRepo.AddConfig(&domain.PriceConfiguration{
		ID:             "cfg-1",
		ServiceTypeID:  "st-sedan",
		CityID:         "city-1",
		IsZone:         true,
		BusinessStatus: true,
	})
	zoneRepo.AddZone(&domain.Zone{ID: "zone-a", CityID: "city-1", Name: "Downtown"})
	zoneRepo.AddZone(&domain.Zone{ID: "zone-b", CityID: "city-1", Name: "Airport", IsAirport: true})
	zoneRepo.AddZone(&domain.Zone{ID: "zone-other-city", CityID: "city-2", Name: "Elsewhere"})

	return &zonePriceFixture{
		svc:           service.NewZonePriceService(zonePriceRepo, zoneRepo, configRepo),
		zonePriceRepo: zonePriceRepo,
		zoneRepo:      zoneRepo,
		configRepo:    configRepo,
	}
}

func TestZonePriceService_Create(t *testing.T) {
	t.Parallel()

	fixture := newZonePriceFixture()

	zp, err := fixture.svc.Create(context.Background(), service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-a",
		ToZoneID:             "zone-b",
		Amount:               25,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if zp.ID == "" {
		t.Error("expected a generated zone price ID")
	}
	if zp.Amount != 25 {
		t.Errorf("expected amount 25, got %v", zp.Amount)
	}
	if fixture.zonePriceRepo.CountZonePrices() != 1 {
		t.Errorf("expected one stored record, got %d", fixture.zonePriceRepo.CountZonePrices())
	}
}

func TestZonePriceService_CreateValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.CreateZonePriceRequest
		wantErr error
	}{
		{
			name:    "missing configuration",
			req:     service.CreateZonePriceRequest{FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25},
			wantErr: service.ErrInvalidConfigID,
		},
		{
			name:    "same zone both ends",
			req:     service.CreateZonePriceRequest{PriceConfigurationID: "cfg-1", FromZoneID: "zone-a", ToZoneID: "zone-a", Amount: 25},
			wantErr: service.ErrSameZone,
		},
		{
			name:    "unknown configuration",
			req:     service.CreateZonePriceRequest{PriceConfigurationID: "cfg-missing", FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25},
			wantErr: repository.ErrNotFound,
		},
		{
			name:    "unknown zone",
			req:     service.CreateZonePriceRequest{PriceConfigurationID: "cfg-1", FromZoneID: "zone-a", ToZoneID: "zone-missing", Amount: 25},
			wantErr: repository.ErrNotFound,
		},
		{
			name:    "zone outside the configuration's city",
			req:     service.CreateZonePriceRequest{PriceConfigurationID: "cfg-1", FromZoneID: "zone-a", ToZoneID: "zone-other-city", Amount: 25},
			wantErr: service.ErrZoneCityMismatch,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fixture := newZonePriceFixture()

			_, err := fixture.svc.Create(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
			if fixture.zonePriceRepo.CountZonePrices() != 0 {
				t.Error("expected no record stored on validation failure")
			}
		})
	}
}

func TestZonePriceService_CreateRejectsNegativeAmount(t *testing.T) {
	t.Parallel()

	fixture := newZonePriceFixture()

	_, err := fixture.svc.Create(context.Background(), service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-a",
		ToZoneID:             "zone-b",
		Amount:               -5,
	})

	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected a validation error, got: %v", err)
	}
	if validationErr.Field != "amount" {
		t.Errorf("expected field amount, got %s", validationErr.Field)
	}
}

func TestZonePriceService_CreateRejectsDuplicatePair(t *testing.T) {
	t.Parallel()

	fixture := newZonePriceFixture()
	ctx := context.Background()

	first, err := fixture.svc.Create(ctx, service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-a",
		ToZoneID:             "zone-b",
		Amount:               25,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// The reversed pair covers the same unordered pair.
	_, err = fixture.svc.Create(ctx, service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-b",
		ToZoneID:             "zone-a",
		Amount:               30,
	})

	var conflictErr *service.OverrideConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected an override conflict error, got: %v", err)
	}
	if conflictErr.ExistingID != first.ID {
		t.Errorf("expected existing ID %s, got %s", first.ID, conflictErr.ExistingID)
	}
}

func TestZonePriceService_Delete(t *testing.T) {
	t.Parallel()

	fixture := newZonePriceFixture()
	ctx := context.Background()

	zp, err := fixture.svc.Create(ctx, service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-a",
		ToZoneID:             "zone-b",
		Amount:               25,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := fixture.svc.Delete(ctx, zp.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if fixture.zonePriceRepo.CountZonePrices() != 0 {
		t.Error("expected the record to be removed")
	}

	// After deletion the pair is free again.
	if _, err := fixture.svc.Create(ctx, service.CreateZonePriceRequest{
		PriceConfigurationID: "cfg-1",
		FromZoneID:           "zone-a",
		ToZoneID:             "zone-b",
		Amount:               30,
	}); err != nil {
		t.Fatalf("expected the pair to be reusable after deletion, got: %v", err)
	}

	if err := fixture.svc.Delete(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown ID, got: %v", err)
	}
}

func TestZonePriceService_ListByConfig(t *testing.T) {
	t.Parallel()

	fixture := newZonePriceFixture()
	ctx := context.Background()

	fixture.zonePriceRepo.AddZonePrice(&domain.ZonePrice{
		ID: "zp-1", PriceConfigurationID: "cfg-1", FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25,
	})
	fixture.zonePriceRepo.AddZonePrice(&domain.ZonePrice{
		ID: "zp-other", PriceConfigurationID: "cfg-other", FromZoneID: "zone-x", ToZoneID: "zone-y", Amount: 10,
	})

	prices, err := fixture.svc.ListByConfig(ctx, "cfg-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(prices) != 1 || prices[0].ID != "zp-1" {
		t.Errorf("expected only the configuration's own records, got %+v", prices)
	}

	if _, err := fixture.svc.ListByConfig(ctx, ""); !errors.Is(err, service.ErrInvalidConfigID) {
		t.Errorf("expected ErrInvalidConfigID, got: %v", err)
	}
}
