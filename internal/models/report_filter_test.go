package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFilterNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   ReportFilter
		want ReportFilter
	}{
		{
			name: "defaults",
			in:   ReportFilter{},
			want: ReportFilter{SortBy: "dateReported", SortDirection: "desc", Page: 1},
		},
		{
			name: "unknown sort key and direction",
			in:   ReportFilter{SortBy: "location", SortDirection: "sideways"},
			want: ReportFilter{SortBy: "dateReported", SortDirection: "desc", Page: 1},
		},
		{
			name: "ascending by status",
			in:   ReportFilter{SortBy: "status", SortDirection: "ASC", Limit: 5, Page: 2},
			want: ReportFilter{SortBy: "status", SortDirection: "asc", Limit: 5, Page: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestReportFilterOffset(t *testing.T) {
	assert.Equal(t, 0, ReportFilter{Page: 3}.Offset())
	assert.Equal(t, 20, ReportFilter{Limit: 10, Page: 3}.Normalized().Offset())
	assert.Equal(t, 0, ReportFilter{Limit: 10}.Normalized().Offset())
}

func TestActorIdentity(t *testing.T) {
	assert.Equal(t, "Dana", Actor{DisplayName: "Dana", Email: "d@x.io", Username: "dana"}.Identity())
	assert.Equal(t, "d@x.io", Actor{Email: "d@x.io", Username: "dana"}.Identity())
	assert.Equal(t, "dana", Actor{Username: "dana"}.Identity())
}
