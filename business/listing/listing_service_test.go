package listing

import (
	"context"
	"errors"
	"testing"

	"dmars/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("listing not found")

type fakeListingRepo struct {
	byID      map[uint64]domain.Listing
	byName    map[string]domain.Listing
	createErr error
	updateErr error
	deleteErr error
	nextID    uint64

	created []domain.Listing
	updated map[uint64]domain.ListingUpdate
	deleted []uint64
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		byID:    make(map[uint64]domain.Listing),
		byName:  make(map[string]domain.Listing),
		updated: make(map[uint64]domain.ListingUpdate),
		nextID:  1,
	}
}

func (f *fakeListingRepo) seed(listing domain.Listing) {
	f.byID[listing.ID] = listing
	f.byName[listing.DomainName] = listing
}

func (f *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) error {
	if f.createErr != nil {
		return f.createErr
	}
	listing.ID = f.nextID
	f.nextID++
	f.seed(*listing)
	f.created = append(f.created, *listing)
	return nil
}

func (f *fakeListingRepo) FindByID(_ context.Context, id uint64) (domain.Listing, error) {
	listing, ok := f.byID[id]
	if !ok {
		return domain.Listing{}, errNotFound
	}
	return listing, nil
}

func (f *fakeListingRepo) FindByDomainName(_ context.Context, domainName string) (domain.Listing, error) {
	listing, ok := f.byName[domainName]
	if !ok {
		return domain.Listing{}, errNotFound
	}
	return listing, nil
}

func (f *fakeListingRepo) FindAll(_ context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, listing := range f.byID {
		if filter.Category != nil && listing.Category != *filter.Category {
			continue
		}
		if filter.IsSold != nil && listing.IsSold != *filter.IsSold {
			continue
		}
		out = append(out, listing)
	}
	return out, nil
}

func (f *fakeListingRepo) Update(_ context.Context, id uint64, update domain.ListingUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	listing := f.byID[id]
	if update.Price != nil {
		listing.Price = *update.Price
	}
	if update.IsSold != nil {
		listing.IsSold = *update.IsSold
	}
	if update.Views != nil {
		listing.Views = *update.Views
	}
	f.seed(listing)
	f.updated[id] = update
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byName, f.byID[id].DomainName)
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func validListing() *domain.Listing {
	return &domain.Listing{
		DomainName:   "greenenergy.com",
		Category:     "energy",
		Price:        2500,
		KeywordScore: 75,
		Views:        120,
		Clicks:       9,
	}
}

func TestCreateListing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Listing)
		wantErr string
	}{
		{name: "valid listing"},
		{
			name:    "missing domain name",
			mutate:  func(l *domain.Listing) { l.DomainName = "" },
			wantErr: "domain name is required",
		},
		{
			name:    "missing category",
			mutate:  func(l *domain.Listing) { l.Category = "" },
			wantErr: "category is required",
		},
		{
			name:    "zero price",
			mutate:  func(l *domain.Listing) { l.Price = 0 },
			wantErr: "price must be greater than 0",
		},
		{
			name:    "keyword score above range",
			mutate:  func(l *domain.Listing) { l.KeywordScore = 101 },
			wantErr: "keyword score must be between 0 and 100",
		},
		{
			name:    "negative clicks",
			mutate:  func(l *domain.Listing) { l.Clicks = -1 },
			wantErr: "views and clicks cannot be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeListingRepo()
			svc := NewListingService(repo)

			input := validListing()
			if tc.mutate != nil {
				tc.mutate(input)
			}

			created, err := svc.CreateListing(context.Background(), input)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.Empty(t, repo.created)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			require.Len(t, repo.created, 1)
		})
	}
}

func TestCreateListing_DuplicateDomainName(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 7, DomainName: "greenenergy.com", Category: "energy", Price: 100})
	svc := NewListingService(repo)

	_, err := svc.CreateListing(context.Background(), validListing())

	require.Error(t, err)
	assert.Equal(t, "domain name already exists", err.Error())
	assert.Empty(t, repo.created)
}

func TestCreateListing_RepoFailure(t *testing.T) {
	repo := newFakeListingRepo()
	repo.createErr = errors.New("connection refused")
	svc := NewListingService(repo)

	_, err := svc.CreateListing(context.Background(), validListing())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create listing")
}

func TestGetListingByID(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 3, DomainName: "solarfarm.io", Category: "energy", Price: 900})
	svc := NewListingService(repo)

	listing, err := svc.GetListingByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "solarfarm.io", listing.DomainName)

	_, err = svc.GetListingByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "listing not found", err.Error())

	_, err = svc.GetListingByID(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, "invalid listing id", err.Error())
}

func TestGetAllListings_DefaultsPagination(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 1, DomainName: "a.com", Category: "tech", Price: 100})
	svc := NewListingService(repo)

	listings, err := svc.GetAllListings(context.Background(), domain.ListingFilter{Limit: -5, Skip: -1})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestUpdateListing(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 5, DomainName: "solarfarm.io", Category: "energy", Price: 900})
	svc := NewListingService(repo)

	newPrice := 1500.0
	sold := true
	updated, err := svc.UpdateListing(context.Background(), 5, domain.ListingUpdate{
		Price:  &newPrice,
		IsSold: &sold,
	})

	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Price)
	assert.True(t, updated.IsSold)
	// untouched fields survive a partial update
	assert.Equal(t, "solarfarm.io", updated.DomainName)
}

func TestUpdateListing_Validation(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 5, DomainName: "solarfarm.io", Category: "energy", Price: 900})
	svc := NewListingService(repo)

	badPrice := -10.0
	_, err := svc.UpdateListing(context.Background(), 5, domain.ListingUpdate{Price: &badPrice})
	require.Error(t, err)
	assert.Equal(t, "price must be greater than 0", err.Error())

	badScore := 150.0
	_, err = svc.UpdateListing(context.Background(), 5, domain.ListingUpdate{KeywordScore: &badScore})
	require.Error(t, err)
	assert.Equal(t, "keyword score must be between 0 and 100", err.Error())

	_, err = svc.UpdateListing(context.Background(), 0, domain.ListingUpdate{})
	require.Error(t, err)
	assert.Equal(t, "listing ID is required", err.Error())
}

func TestUpdateListing_NotFound(t *testing.T) {
	svc := NewListingService(newFakeListingRepo())

	price := 100.0
	_, err := svc.UpdateListing(context.Background(), 42, domain.ListingUpdate{Price: &price})

	require.Error(t, err)
	assert.Equal(t, "listing not found", err.Error())
}

func TestDeleteListing(t *testing.T) {
	repo := newFakeListingRepo()
	repo.seed(domain.Listing{ID: 8, DomainName: "old.com", Category: "misc", Price: 10})
	svc := NewListingService(repo)

	require.NoError(t, svc.DeleteListing(context.Background(), 8))
	assert.Equal(t, []uint64{8}, repo.deleted)

	err := svc.DeleteListing(context.Background(), 8)
	require.Error(t, err)
	assert.Equal(t, "listing not found", err.Error())

	err = svc.DeleteListing(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, "invalid listing id", err.Error())
}
