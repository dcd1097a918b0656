package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func TestParseExclusionSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    domain.ExclusionSet
		wantStr string
		segment string
	}{
		{
			name:    "empty",
			input:   "",
			want:    domain.ExclusionSet{},
			wantStr: "",
		},
		{
			name:    "blank",
			input:   "   ",
			want:    domain.ExclusionSet{},
			wantStr: "",
		},
		{
			name:  "doctor and clinic",
			input: "doctor:123,45;clinic:7",
			want: domain.ExclusionSet{
				domain.ExcludeDoctor: {45, 123},
				domain.ExcludeClinic: {7},
			},
			wantStr: "doctor:45,123;clinic:7",
		},
		{
			name:  "duplicates collapse",
			input: "doctor:5,5, 3;doctor:3",
			want: domain.ExclusionSet{
				domain.ExcludeDoctor: {3, 5},
			},
			wantStr: "doctor:3,5",
		},
		{
			name:  "category is case insensitive",
			input: " Clinic : 9 ",
			want: domain.ExclusionSet{
				domain.ExcludeClinic: {9},
			},
			wantStr: "clinic:9",
		},
		{
			name:    "unknown category",
			input:   "doctor:1;nurse:2",
			segment: "nurse:2",
		},
		{
			name:    "missing colon",
			input:   "doctor 1",
			segment: "doctor 1",
		},
		{
			name:    "no ids",
			input:   "clinic:",
			segment: "clinic:",
		},
		{
			name:    "negative id",
			input:   "doctor:-4",
			segment: "doctor:-4",
		},
		{
			name:    "zero id",
			input:   "doctor:0",
			segment: "doctor:0",
		},
		{
			name:    "non numeric id",
			input:   "clinic:abc",
			segment: "clinic:abc",
		},
		{
			name:    "trailing separator",
			input:   "doctor:1;",
			segment: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := domain.ParseExclusionSet(tt.input)
			if tt.want == nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrConfiguration)

				var cfgErr *domain.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, "exclusions", cfgErr.Field)
				assert.Equal(t, tt.segment, cfgErr.Segment)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStr, got.String())

			again, err := domain.ParseExclusionSet(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestExclusionSet_With(t *testing.T) {
	t.Parallel()

	base, err := domain.ParseExclusionSet("doctor:2")
	require.NoError(t, err)

	next := base.With(domain.ExcludeDoctor, 1).With(domain.ExcludeClinic, 8)

	assert.False(t, base.Excludes(domain.ExcludeDoctor, 1), "original must be unchanged")
	assert.True(t, next.Excludes(domain.ExcludeDoctor, 1))
	assert.True(t, next.Excludes(domain.ExcludeDoctor, 2))
	assert.True(t, next.Excludes(domain.ExcludeClinic, 8))
	assert.Equal(t, "doctor:1,2;clinic:8", next.String())
	assert.False(t, next.Empty())
	assert.True(t, domain.ExclusionSet{}.Empty())
}

func TestExclusionSet_JSON(t *testing.T) {
	t.Parallel()

	set, err := domain.ParseExclusionSet("clinic:3;doctor:1")
	require.NoError(t, err)

	b, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `"doctor:1;clinic:3"`, string(b))

	var got domain.ExclusionSet
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, set, got)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"x:1"`), &got), domain.ErrConfiguration)
}
