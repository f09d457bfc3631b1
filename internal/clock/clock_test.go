package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UsesStoreZone(t *testing.T) {
	c, err := New("America/Argentina/Buenos_Aires", time.Sunday)
	require.NoError(t, err)
	utc := time.Date(2026, 3, 10, 2, 30, 15, 0, time.UTC)
	c.now = func() time.Time { return utc }

	// Buenos Aires has no DST: UTC-3 all year.
	assert.Equal(t, "2026-03-09 23:30:15", c.Timestamp())
}

func TestNew_UnknownZone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons", time.Sunday)
	assert.Error(t, err)
}

func TestPeriodos(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	// Wednesday
	c := Fixed(time.Date(2026, 10, 14, 18, 5, 0, 0, loc), time.Sunday)

	assert.Equal(t, Periodo{Desde: "2026-10-14 00:00:00", Hasta: "2026-10-15 00:00:00"}, c.Hoy())
	assert.Equal(t, Periodo{Desde: "2026-10-11 00:00:00", Hasta: "2026-10-18 00:00:00"}, c.Semana())
	assert.Equal(t, Periodo{Desde: "2026-10-01 00:00:00", Hasta: "2026-11-01 00:00:00"}, c.Mes())
}

func TestSemana_MondayStart(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	// Sunday belongs to the week that started the previous Monday
	c := Fixed(time.Date(2026, 10, 18, 9, 0, 0, 0, loc), time.Monday)

	assert.Equal(t, Periodo{Desde: "2026-10-12 00:00:00", Hasta: "2026-10-19 00:00:00"}, c.Semana())
}

func TestHoy_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	// Sao Paulo observed DST in 2018; clocks jumped at midnight on Nov 4.
	c := Fixed(time.Date(2018, 11, 4, 12, 0, 0, 0, loc), time.Sunday)

	p := c.Hoy()
	assert.Equal(t, "2018-11-05 00:00:00", p.Hasta)
}

func TestDia_FollowsStoreZone(t *testing.T) {
	c, err := New("America/Argentina/Buenos_Aires", time.Sunday)
	require.NoError(t, err)
	// 01:30 UTC is still the previous evening in Buenos Aires
	c.now = func() time.Time { return time.Date(2026, 10, 15, 1, 30, 0, 0, time.UTC) }
	assert.Equal(t, "2026-10-14", c.Dia())
}
