package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/source"
	"github.com/donaldgifford/medwatch/internal/source/mocks"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func listing(id string) domain.RawListing {
	return domain.RawListing{Kind: domain.KindPharmacy, SourceID: id}
}

func TestPagedSource_Fetch(t *testing.T) {
	t.Parallel()

	search := &domain.MedicineSearch{ID: "m1", Name: "Euthyrox", Location: "Warszawa", RadiusKM: 10}

	tests := []struct {
		name       string
		maxPages   int
		setupMocks func(*mocks.MockClient)
		wantIDs    []string
		wantErr    bool
	}{
		{
			name: "walks pages until cursor runs out",
			setupMocks: func(c *mocks.MockClient) {
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, "").
					Return(&source.Page{Listings: []domain.RawListing{listing("a"), listing("b")}, Next: "p2"}, nil).Once()
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, "p2").
					Return(&source.Page{Listings: []domain.RawListing{listing("c")}}, nil).Once()
			},
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:     "stops at page cap",
			maxPages: 2,
			setupMocks: func(c *mocks.MockClient) {
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, mock.Anything).
					Return(&source.Page{Listings: []domain.RawListing{listing("x")}, Next: "more"}, nil).Times(2)
			},
			wantIDs: []string{"x", "x"},
		},
		{
			name: "empty first page",
			setupMocks: func(c *mocks.MockClient) {
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, "").
					Return(&source.Page{}, nil).Once()
			},
		},
		{
			name: "client error aborts",
			setupMocks: func(c *mocks.MockClient) {
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, "").
					Return(&source.Page{Listings: []domain.RawListing{listing("a")}, Next: "p2"}, nil).Once()
				c.EXPECT().FetchPage(mock.Anything, mock.Anything, "p2").
					Return(nil, errors.New("connection reset")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.setupMocks(client)

			ps := source.NewPagedSource(client, source.WithMaxPages(tt.maxPages), source.WithLogger(quietLogger()))

			got, err := ps.Fetch(context.Background(), search)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "fetching page 1")
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.SourceID)
			}
			assert.Equal(t, len(tt.wantIDs), len(ids))
			if len(tt.wantIDs) > 0 {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestPagedSource_Fetch_BuildsQueryFromSearch(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().FetchPage(mock.Anything, mock.Anything, "").
		Run(func(_ context.Context, q source.Query, _ string) {
			assert.Equal(t, domain.KindAppointment, q.Kind)
			assert.Equal(t, []string{"1", "2"}, q.Params["specialty_id"])
		}).
		Return(&source.Page{}, nil).Once()

	ps := source.NewPagedSource(client, source.WithGPSpecialties([]int64{1, 2}))

	_, err := ps.Fetch(context.Background(), &domain.Watch{ID: "w1", RegionID: 204, GeneralPractitioner: true})
	require.NoError(t, err)
}
