package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/ads/house"
	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/domain"
)

type staticRepo []domain.Doa

func (r staticRepo) FetchAll(context.Context) ([]domain.Doa, error) { return r, nil }

func loadedController(t *testing.T, n int) *doalist.Controller {
	t.Helper()
	var records []domain.Doa
	for i := 1; i <= n; i++ {
		records = append(records, domain.Doa{ID: i, Title: fmt.Sprintf("Doa %d", i)})
	}
	c := doalist.NewController(nil, nil, nil)
	require.NoError(t, c.Fetch(context.Background(), staticRepo(records)))
	return c
}

func TestPageBar(t *testing.T) {
	tests := []struct {
		page, total int
		want        string
	}{
		{1, 1, ""},
		{1, 5, "[1] 2 3 ... ›"},
		{3, 5, "‹ 2 [3] 4 ... ›"},
		{5, 5, "‹ 3 4 [5]"},
		{2, 2, "‹ 1 [2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pageBar(tt.page, tt.total), "page %d of %d", tt.page, tt.total)
	}
}

func TestWriteList(t *testing.T) {
	c := loadedController(t, 13)
	c.SetPage(2)
	c.ToggleFavorite(8)

	var buf bytes.Buffer
	writeList(&buf, c)
	out := buf.String()

	assert.Contains(t, out, "♥     8  Doa 8")
	assert.Contains(t, out, "      7  Doa 7")
	assert.NotContains(t, out, "Doa 13")
	assert.Contains(t, out, "‹ 1 [2] 3 ›")
}

func TestWriteList_Empty(t *testing.T) {
	c := loadedController(t, 3)
	c.SetQuery("Doz 1")

	var buf bytes.Buffer
	writeList(&buf, c)

	assert.Contains(t, buf.String(), doalist.MsgListEmpty)
	assert.Contains(t, buf.String(), "Mungkin maksud Anda:")
}

func TestWriteDoa(t *testing.T) {
	var buf bytes.Buffer
	err := writeDoa(&buf, &domain.Doa{ID: 1, Title: "Doa Tidur", Body: "bismika", Translation: "Dengan nama-Mu"})
	require.NoError(t, err)
	assert.Equal(t, "Doa Tidur\n─────────\n\nbismika\n\nDengan nama-Mu\n", buf.String())

	err = writeDoa(&buf, nil)
	assert.EqualError(t, err, doalist.MsgDetailNotFound)
}

func TestWriteAdState(t *testing.T) {
	var buf bytes.Buffer
	writeAdState(&buf, ads.PlatformWeb, ads.State{Kind: ads.StateWebFallback})
	assert.Contains(t, buf.String(), "web_fallback")
	assert.Contains(t, buf.String(), ads.TextWebFallback)

	buf.Reset()
	writeAdState(&buf, ads.PlatformAndroid, ads.State{
		Kind:   ads.StateFailed,
		Size:   ads.SizeBanner,
		Reason: errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "BANNER (320x50)")
	assert.Contains(t, buf.String(), "Reason:   boom")
	assert.Contains(t, buf.String(), ads.TextUnavailable)
}

type unitBanner struct{}

func (unitBanner) Load(context.Context)     {}
func (unitBanner) Events() <-chan ads.Event { return nil }
func (unitBanner) Open()                    {}
func (unitBanner) Close()                   {}
func (unitBanner) Content() string          { return "Sedekah subuh" }
func (unitBanner) UnitID() string           { return house.TestUnitID }

func TestWriteAdState_Displayed(t *testing.T) {
	var buf bytes.Buffer
	writeAdState(&buf, ads.PlatformAndroid, ads.State{
		Kind:   ads.StateDisplayed,
		Size:   ads.SizeLeaderboard,
		Banner: unitBanner{},
	})

	assert.Contains(t, buf.String(), "Unit:     "+house.TestUnitID)
	assert.Contains(t, buf.String(), "[Iklan] Sedekah subuh")
}
