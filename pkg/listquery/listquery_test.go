package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	name   string
	status string
	tag    string
}

var rows = []row{
	{name: "Sarah Johnson", status: "Active", tag: "Hypertension"},
	{name: "Michael Chen", status: "Active", tag: "Diabetes"},
	{name: "Emily Davis", status: "Inactive", tag: "Asthma"},
}

func statusOf(r row) string   { return r.status }
func fieldsOf(r row) []string { return []string{r.name, r.tag} }

func TestFilterStatus(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{"all", 3},
		{"ALL", 3},
		{"", 3},
		{"active", 2},
		{"Inactive", 1},
		{"cancelled", 0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Len(t, FilterStatus(rows, tt.status, statusOf), tt.want)
		})
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	got := Search(rows, "DIAB", fieldsOf)
	assert.Equal(t, []row{rows[1]}, got)

	got = Search(rows, "son", fieldsOf)
	assert.Equal(t, []row{rows[0]}, got)

	assert.Len(t, Search(rows, "   ", fieldsOf), 3)
	assert.Empty(t, Search(rows, "zzz", fieldsOf))
}

func TestApply_FilterAndSearchCompose(t *testing.T) {
	got := Apply(rows, Query{Status: "active", Text: "a"}, statusOf, fieldsOf)
	assert.Len(t, got, 2)

	got = Apply(rows, Query{Status: "inactive", Text: "chen"}, statusOf, fieldsOf)
	assert.Empty(t, got)
}
