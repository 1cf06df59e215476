package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/fixtures"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New(bus.New(), zap.NewNop())
	_, err := fixtures.Load(cat, "")
	require.NoError(t, err)
	return cat
}

func customers(t *testing.T) catalog.Resource {
	t.Helper()
	res, err := loadedCatalog(t).Lookup("customers")
	require.NoError(t, err)
	return res
}

func TestParseFilters(t *testing.T) {
	res := customers(t)

	got, err := parseFilters(res, []string{"segment=company", " status = active "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"segment": "company", "status": "active"}, got)

	got, err = parseFilters(res, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseFiltersErrors(t *testing.T) {
	res := customers(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"missing value", "segment", "expected field=value"},
		{"empty value", "segment=", "expected field=value"},
		{"unknown field", "city=Dakar", "unknown filter"},
		{"unknown value", "segment=vip", "invalid segment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFilters(res, []string{tt.raw})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteRows(t *testing.T) {
	res := customers(t)
	rows, err := res.Query(record.Query{Filters: map[string]string{"segment": "company"}})
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, res.Columns(), rows))

	out := buf.String()
	assert.Contains(t, out, "CLIENT")
	assert.Contains(t, out, "cu-001")
	assert.Equal(t, len(rows)+1, strings.Count(out, "\n"))
}

func TestWriteRowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, nil, nil))
	assert.Contains(t, buf.String(), "aucun enregistrement")
}

func TestWriteRowsJSON(t *testing.T) {
	res := customers(t)
	rows, err := res.Query(record.Query{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRowsJSON(&buf, res.Columns(), rows))

	var decoded []jsonRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, len(rows))
	assert.Equal(t, rows[0].ID, decoded[0].ID)
	assert.Equal(t, rows[0].Cells[0].Text, decoded[0].Fields[res.Columns()[0].Title])
}

func TestDeleteRecordConfirmed(t *testing.T) {
	res := customers(t)
	before := res.Len()

	var out bytes.Buffer
	err := deleteRecord(&out, strings.NewReader("oui\n"), res, "cu-001", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, before-1, res.Len())
	assert.Contains(t, out.String(), "Supprimer le client")
	assert.Contains(t, out.String(), "supprimé")
	assert.Equal(t, guard.Idle, res.DeleteState())
}

func TestDeleteRecordDeclined(t *testing.T) {
	for _, answer := range []string{"\n", "n\n", ""} {
		res := customers(t)
		before := res.Len()

		var out bytes.Buffer
		err := deleteRecord(&out, strings.NewReader(answer), res, "cu-001", zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, before, res.Len(), "answer %q", answer)
		assert.Contains(t, out.String(), "annulée")
		assert.Equal(t, guard.Idle, res.DeleteState())
	}
}

func TestDeleteRecordWithoutQuestion(t *testing.T) {
	res := customers(t)
	before := res.Len()

	var out bytes.Buffer
	require.NoError(t, deleteRecord(&out, nil, res, "cu-002", zap.NewNop()))

	assert.Equal(t, before-1, res.Len())
	assert.NotContains(t, out.String(), "[o/N]")
}

func TestDeleteRecordUnknown(t *testing.T) {
	res := customers(t)

	err := deleteRecord(&bytes.Buffer{}, nil, res, "cu-999", zap.NewNop())

	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.Equal(t, guard.Idle, res.DeleteState())
}

func TestWriteKinds(t *testing.T) {
	var buf bytes.Buffer
	writeKinds(&buf, loadedCatalog(t).Resources())

	out := buf.String()
	assert.Contains(t, out, "customers")
	assert.Contains(t, out, "expenses")
	assert.Equal(t, 14, strings.Count(out, "\n"))
}
