package ingest

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"cashback-report/core/report"
	"cashback-report/core/types"
	"cashback-report/internal/errors"
)

// TestProcessBatchAggregatesSameBucket proves rows sharing a date and
// category sum into one entry
func TestProcessBatchAggregatesSameBucket(t *testing.T) {
	rows := []types.RawRow{
		{"Data": "15/01/2024", "Tipo de Jogo": "Roleta ao Vivo", "Valor Apostado": 200.0, "Valor Ganho": 150.0},
		{"Data": "15/01/2024", "Tipo de Jogo": "Roleta ao Vivo", "Valor Apostado": 100.0, "Valor Ganho": 50.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 1 {
		t.Fatalf("entry count = %d, want 1", len(batch.Summary))
	}

	entry := batch.Summary[0]
	if entry.Mode != types.CategoryWeekly {
		t.Errorf("mode = %s, want weekly", entry.Mode)
	}
	if !entry.Loss.Equal(decimal.RequireFromString("100")) {
		t.Errorf("loss = %s, want 100", entry.Loss)
	}
	if !entry.Cashback.Equal(decimal.RequireFromString("1.00")) {
		t.Errorf("cashback = %s, want 1.00", entry.Cashback)
	}
	if entry.Date != "15/01/2024" {
		t.Errorf("date = %s, want 15/01/2024", entry.Date)
	}
}

// TestProcessBatchWeeklyBucketsUnderMonday proves a midweek live-casino
// row lands under that week's Monday, not its own date
func TestProcessBatchWeeklyBucketsUnderMonday(t *testing.T) {
	rows := []types.RawRow{
		// Wednesday 17/01/2024.
		{"Data": "17/01/2024", "Jogo": "Blackjack ao vivo", "Valor Apostado": 500.0, "Valor Ganho": 100.0},
	}

	batch, err := ProcessBatch(rows, types.PlatformCassino)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 1 {
		t.Fatalf("entry count = %d, want 1", len(batch.Summary))
	}
	if batch.Summary[0].Date != "15/01/2024" {
		t.Errorf("bucket date = %s, want Monday 15/01/2024", batch.Summary[0].Date)
	}
}

// TestProcessBatchDailyBucketsPerDate proves slots aggregate by exact day
func TestProcessBatchDailyBucketsPerDate(t *testing.T) {
	rows := []types.RawRow{
		{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 300.0, "Valor Ganho": 100.0},
		{"Data": "17/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 300.0, "Valor Ganho": 100.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 2 {
		t.Fatalf("entry count = %d, want 2", len(batch.Summary))
	}
	if batch.Summary[0].Date != "16/01/2024" || batch.Summary[1].Date != "17/01/2024" {
		t.Errorf("dates = %s, %s; want 16/01/2024, 17/01/2024",
			batch.Summary[0].Date, batch.Summary[1].Date)
	}
}

// TestProcessBatchColumnAliases proves heterogeneous headers resolve,
// including substring containment
func TestProcessBatchColumnAliases(t *testing.T) {
	rows := []types.RawRow{
		{"Date": "2024-01-16", "Game": "Fortune Rabbit", "Valor Apostado (R$)": "300,00", "Valor Ganho (R$)": "100,00"},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 1 {
		t.Fatalf("entry count = %d, want 1", len(batch.Summary))
	}
	entry := batch.Summary[0]
	if entry.Date != "16/01/2024" {
		t.Errorf("date = %s, want 16/01/2024", entry.Date)
	}
	if !entry.Loss.Equal(decimal.RequireFromString("200")) {
		t.Errorf("loss = %s, want 200", entry.Loss)
	}
}

// TestProcessBatchNetColumnFallback exercises the signed-net loss
// derivation and its documented inversion heuristic
func TestProcessBatchNetColumnFallback(t *testing.T) {
	t.Run("negative net without wagered column is inverted", func(t *testing.T) {
		rows := []types.RawRow{
			{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "GGR": -20.0},
		}
		batch, err := ProcessBatch(rows, types.Platform7K)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch.Summary) != 1 {
			t.Fatalf("entry count = %d, want 1", len(batch.Summary))
		}
		if !batch.Summary[0].Loss.Equal(decimal.RequireFromString("20")) {
			t.Errorf("loss = %s, want 20", batch.Summary[0].Loss)
		}
	})

	t.Run("positive net is a loss as-is", func(t *testing.T) {
		rows := []types.RawRow{
			{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "GGR": 35.0},
		}
		batch, err := ProcessBatch(rows, types.Platform7K)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !batch.Summary[0].Loss.Equal(decimal.RequireFromString("35")) {
			t.Errorf("loss = %s, want 35", batch.Summary[0].Loss)
		}
	})

	t.Run("negative net with wagered column present stays negative", func(t *testing.T) {
		// Wagered resolved but won missing: the net path is used and the
		// inversion does not apply. The aggregate is non-positive and drops.
		rows := []types.RawRow{
			{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 100.0, "GGR": -20.0},
		}
		batch, err := ProcessBatch(rows, types.Platform7K)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch.Summary) != 0 {
			t.Fatalf("entry count = %d, want 0", len(batch.Summary))
		}
	})
}

// TestProcessBatchSkipsUnresolvableRows proves missing date or game
// columns drop the row without failing the batch
func TestProcessBatchSkipsUnresolvableRows(t *testing.T) {
	rows := []types.RawRow{
		{"Tipo de Jogo": "Roleta", "Valor Apostado": 200.0, "Valor Ganho": 50.0},      // no date
		{"Data": "15/01/2024", "Valor Apostado": 200.0, "Valor Ganho": 50.0},          // no game
		{"Data": "15/01/2024", "Tipo de Jogo": "Mines", "Valor Apostado": 200.0, "Valor Ganho": 50.0}, // excluded
		{"Data": "15/01/2024", "Tipo de Jogo": "Roleta", "Valor Apostado": 200.0, "Valor Ganho": 50.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 1 {
		t.Fatalf("entry count = %d, want 1", len(batch.Summary))
	}
	if !batch.Summary[0].Loss.Equal(decimal.RequireFromString("150")) {
		t.Errorf("loss = %s, want 150", batch.Summary[0].Loss)
	}
}

// TestProcessBatchDropsZeroCashbackAggregates proves aggregates below the
// payout floor never reach the report
func TestProcessBatchDropsZeroCashbackAggregates(t *testing.T) {
	rows := []types.RawRow{
		// Weekly loss 40: 1% = 0.40, below the 0.50 floor on 7K.
		{"Data": "15/01/2024", "Jogo": "Roleta", "Valor Apostado": 100.0, "Valor Ganho": 60.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 0 {
		t.Fatalf("entry count = %d, want 0", len(batch.Summary))
	}
	if !batch.TotalCashback.IsZero() {
		t.Errorf("total = %s, want 0", batch.TotalCashback)
	}
}

// TestProcessBatchTotalsInvariant proves the report totals equal the sum
// of the entries, overall and per category
func TestProcessBatchTotalsInvariant(t *testing.T) {
	rows := []types.RawRow{
		{"Data": "15/01/2024", "Jogo": "Roleta ao Vivo", "Valor Apostado": 2000.0, "Valor Ganho": 500.0},
		{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 900.0, "Valor Ganho": 200.0},
		{"Data": "16/01/2024", "Jogo": "Apostas Esportivas", "Valor Apostado": 700.0, "Valor Ganho": 100.0},
		{"Data": "17/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 500.0, "Valor Ganho": 450.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) == 0 {
		t.Fatal("expected entries")
	}

	sum := decimal.Zero
	byMode := map[types.Category]decimal.Decimal{}
	for _, entry := range batch.Summary {
		sum = sum.Add(entry.Cashback)
		byMode[entry.Mode] = byMode[entry.Mode].Add(entry.Cashback)
		if !entry.Cashback.IsPositive() {
			t.Errorf("entry %s/%s has non-positive cashback", entry.Date, entry.Mode)
		}
	}
	if !batch.TotalCashback.Equal(sum) {
		t.Errorf("total = %s, entries sum to %s", batch.TotalCashback, sum)
	}
	for mode, want := range byMode {
		if !batch.DetailsByMode[mode].Equal(want) {
			t.Errorf("detailsByMode[%s] = %s, want %s", mode, batch.DetailsByMode[mode], want)
		}
	}
}

// TestProcessBatchSortedByDate proves report order is ascending by
// calendar date regardless of input or category order
func TestProcessBatchSortedByDate(t *testing.T) {
	rows := []types.RawRow{
		{"Data": "20/02/2024", "Jogo": "Fortune Rabbit", "GGR": 500.0},
		{"Data": "03/01/2024", "Jogo": "Fortune Rabbit", "GGR": 500.0},
		{"Data": "15/01/2024", "Jogo": "Fortune Rabbit", "GGR": 500.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"03/01/2024", "15/01/2024", "20/02/2024"}
	if len(batch.Summary) != len(want) {
		t.Fatalf("entry count = %d, want %d", len(batch.Summary), len(want))
	}
	for i, entry := range batch.Summary {
		if entry.Date != want[i] {
			t.Errorf("entry %d date = %s, want %s", i, entry.Date, want[i])
		}
	}
}

// TestProcessBatchIdempotent proves two runs over the same input render
// byte-identical reports
func TestProcessBatchIdempotent(t *testing.T) {
	rows := []types.RawRow{
		{"Data": "15/01/2024", "Jogo": "Roleta ao Vivo", "Valor Apostado": 2000.0, "Valor Ganho": 500.0},
		{"Data": "16/01/2024", "Jogo": "Fortune Rabbit", "Valor Apostado": 900.0, "Valor Ganho": 200.0},
		{"Data": "17/01/2024", "Jogo": "Aviator", "GGR": -120.0},
		{"Data": "21/01/2024", "Jogo": "Blackjack ao vivo", "Valor Apostado": 3000.0, "Valor Ganho": 100.0},
	}

	render := func() []byte {
		batch, err := ProcessBatch(rows, types.PlatformCassino)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var buf bytes.Buffer
		formatter, _ := report.ForFormat(report.FormatJSON, true)
		if err := formatter.Render(&buf, batch); err != nil {
			t.Fatalf("render: %v", err)
		}
		return buf.Bytes()
	}

	first := render()
	for i := 0; i < 5; i++ {
		if !bytes.Equal(render(), first) {
			t.Fatalf("run %d produced a different report", i)
		}
	}
}

// TestProcessBatchUnknownPlatform proves the pipeline rejects platforms
// with no rule configuration
func TestProcessBatchUnknownPlatform(t *testing.T) {
	_, err := ProcessBatch([]types.RawRow{}, types.Platform("Acme"))
	if err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED, got %v", err)
	}
}

// TestProcessBatchSerialDates proves spreadsheet serial dates normalize
// before bucketing
func TestProcessBatchSerialDates(t *testing.T) {
	rows := []types.RawRow{
		// Serial 45308 is Wednesday 17/01/2024.
		{"Data": 45308.0, "Jogo": "Roleta ao Vivo", "Valor Apostado": 500.0, "Valor Ganho": 100.0},
	}

	batch, err := ProcessBatch(rows, types.Platform7K)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Summary) != 1 {
		t.Fatalf("entry count = %d, want 1", len(batch.Summary))
	}
	if batch.Summary[0].Date != "15/01/2024" {
		t.Errorf("bucket date = %s, want Monday 15/01/2024", batch.Summary[0].Date)
	}
}
