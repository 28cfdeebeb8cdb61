package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/position"
)

func rosterRow(reg, name, code string) employee.RosterRow {
	return employee.RosterRow{
		RegNo:        reg,
		Name:         name,
		PositionCode: code,
		Rank:         "Manager",
		Status:       "Permanent",
	}
}

func TestCleanFiltersInvalidRows(t *testing.T) {
	roster := []employee.RosterRow{
		rosterRow("E1", "Alice", "001"),
		rosterRow("", "NoReg", "001"),
		rosterRow("0", "ZeroReg", "001"),
		rosterRow("nan", "NaNReg", "001"),
		rosterRow("E2", "", "001"),
		rosterRow("E3", "nan", "001"),
		rosterRow("  ", "Spaces", "001"),
		rosterRow(" E4 ", "  Dave  ", "001"),
	}

	records, err := NewCleanerService(testLogger()).Clean(context.Background(), roster, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "E1", records[0].RegNo)
	require.Equal(t, "E4", records[1].RegNo)
	require.Equal(t, "Dave", records[1].Name)
}

func TestCleanResolvesFirstCatalogMatch(t *testing.T) {
	catalog := []position.Record{
		{Code: "001", Name: "First", Rank: "Senior", DirectorateGroup: "G1", Directorate: "D1", Division: "V1", Department: "X1", CostCenter: "C1"},
		{Code: "001", Name: "Second", Rank: "Junior", DirectorateGroup: "G2", Directorate: "D2", Division: "V2", Department: "X2", CostCenter: "C2"},
	}
	roster := []employee.RosterRow{rosterRow("E1", "Alice", "001")}

	records, err := NewCleanerService(testLogger()).Clean(context.Background(), roster, catalog)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "First", records[0].PositionName)
	require.Equal(t, "Senior", records[0].StructuralRank)
	require.Equal(t, "G1", records[0].DirectorateGroup)
	require.Equal(t, "D1", records[0].Directorate)
	require.Equal(t, "V1", records[0].Division)
	require.Equal(t, "X1", records[0].Department)
	require.Equal(t, "C1", records[0].CostCenter)
}

func TestCleanPreservesLeadingZeros(t *testing.T) {
	// The cleaning path keeps the code's original width: a decimal suffix is
	// dropped without losing leading zeros.
	catalog := []position.Record{
		{Code: "0012", Name: "Clerk", DirectorateGroup: "G"},
	}
	roster := []employee.RosterRow{rosterRow("E1", "Alice", "0012.0")}

	records, err := NewCleanerService(testLogger()).Clean(context.Background(), roster, catalog)
	require.NoError(t, err)
	require.Equal(t, "0012", records[0].PositionCode)
	require.Equal(t, "Clerk", records[0].PositionName)
}

func TestCleanJoinMissYieldsEmptyOrgFields(t *testing.T) {
	catalog := []position.Record{
		{Code: "001", Name: "Known", DirectorateGroup: "G"},
	}
	roster := []employee.RosterRow{
		rosterRow("E1", "Alice", "999"),
		rosterRow("E2", "Bob", ""),
		rosterRow("E3", "Carol", "nan"),
	}

	records, err := NewCleanerService(testLogger()).Clean(context.Background(), roster, catalog)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		require.Empty(t, rec.PositionName)
		require.Empty(t, rec.StructuralRank)
		require.Empty(t, rec.DirectorateGroup)
		require.Empty(t, rec.Directorate)
		require.Empty(t, rec.Division)
		require.Empty(t, rec.Department)
		require.Empty(t, rec.CostCenter)
	}
	require.Equal(t, "999", records[0].PositionCode)
	require.Empty(t, records[1].PositionCode)
	require.Empty(t, records[2].PositionCode)
}

func TestCleanKeepsRosterOrder(t *testing.T) {
	roster := []employee.RosterRow{
		rosterRow("E3", "Carol", ""),
		rosterRow("E1", "Alice", ""),
		rosterRow("E2", "Bob", ""),
	}

	records, err := NewCleanerService(testLogger()).Clean(context.Background(), roster, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"E3", "E1", "E2"}, []string{records[0].RegNo, records[1].RegNo, records[2].RegNo})
}

func TestCleanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCleanerService(testLogger()).Clean(ctx, []employee.RosterRow{rosterRow("E1", "Alice", "")}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
