package cart

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
)

var (
	tote   = catalog.Product{ID: 1, Name: "Tote", PriceCents: 12900, InStock: true}
	runner = catalog.Product{ID: 2, Name: "Runner", PriceCents: 8900, InStock: true}
)

func newTestLedger() *Ledger {
	return NewLedger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLedger_AddNewLine(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.Add(tote))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, tote.ID, lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestLedger_AddMergesExistingLine(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.Add(tote))
	require.NoError(t, l.Add(tote))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, l.Count())
}

func TestLedger_AddWithQuantityNewLine(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddWithQuantity(tote, 3))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestLedger_AddWithQuantityExistingLineIncrementsByOne(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddWithQuantity(tote, 3))
	require.NoError(t, l.AddWithQuantity(tote, 5))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestLedger_AddRejectsInvalidQuantity(t *testing.T) {
	l := newTestLedger()

	err := l.AddWithQuantity(tote, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	err = l.AddWithQuantity(tote, MaxQuantityPerLine+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	assert.Empty(t, l.Lines())
}

func TestLedger_AddRejectsAtLineCap(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddWithQuantity(tote, MaxQuantityPerLine))

	err := l.Add(tote)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, MaxQuantityPerLine, l.Count())
}

func TestLedger_RemoveIsIdempotent(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.Add(tote))
	require.NoError(t, l.Add(runner))

	l.Remove(tote.ID)
	require.Len(t, l.Lines(), 1)

	l.Remove(tote.ID)
	l.Remove(99)
	assert.Len(t, l.Lines(), 1)
	assert.Equal(t, runner.ID, l.Lines()[0].Product.ID)
}

func TestLedger_Clear(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.Add(tote))
	require.NoError(t, l.Add(runner))

	l.Clear()
	assert.Empty(t, l.Lines())
	assert.Zero(t, l.Count())
	assert.Zero(t, l.TotalCents())
}

func TestLedger_TotalAndCount(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddWithQuantity(tote, 2))
	require.NoError(t, l.Add(runner))

	assert.Equal(t, int64(2*12900+8900), l.TotalCents())
	assert.Equal(t, 3, l.Count())
}

func TestLedger_LinesReturnsCopy(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.Add(tote))

	lines := l.Lines()
	lines[0].Quantity = 50
	assert.Equal(t, 1, l.Lines()[0].Quantity)
}
