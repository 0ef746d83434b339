package doalist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetail_LoadSelectsRecord(t *testing.T) {
	d := NewDetail(nil, nil, nil)

	require.NoError(t, d.Load(context.Background(), fakeRepo{records: sample}, 12))
	require.NotNil(t, d.Current())
	assert.Equal(t, 12, d.Current().ID)
	assert.Empty(t, d.Message())
	assert.False(t, d.Loading())
}

func TestDetail_MissingIDFallsBackToFirst(t *testing.T) {
	d := NewDetail(nil, nil, nil)

	require.NoError(t, d.Load(context.Background(), fakeRepo{records: sample}, 404))
	require.NotNil(t, d.Current())
	assert.Equal(t, 10, d.Current().ID)
}

func TestDetail_EmptyCollectionIsNotFound(t *testing.T) {
	d := NewDetail(nil, nil, nil)

	require.NoError(t, d.Load(context.Background(), fakeRepo{}, 1))
	assert.Nil(t, d.Current())
	assert.Equal(t, MsgDetailNotFound, d.Message())
}

func TestDetail_LoadFailure(t *testing.T) {
	d := NewDetail(nil, nil, nil)

	err := d.Load(context.Background(), fakeRepo{err: errors.New("boom")}, 1)
	require.Error(t, err)
	assert.Equal(t, MsgDetailLoadFailed, d.Message())
	assert.False(t, d.Loading())
}

func TestDetail_StaleLoadIgnored(t *testing.T) {
	d := NewDetail(nil, nil, nil)

	first := d.BeginLoad()
	second := d.BeginLoad()

	assert.True(t, d.ApplyLoad(second, 13, sample, nil))
	assert.False(t, d.ApplyLoad(first, 10, sample, nil))
	assert.Equal(t, 13, d.Current().ID)
}

func TestDetail_NextPreviousWrap(t *testing.T) {
	tests := []struct {
		name  string
		start int
		step  func(*Detail)
		want  string
	}{
		{name: "next from middle", start: 11, step: (*Detail).Next, want: "/doa/12"},
		{name: "next wraps to first", start: 13, step: (*Detail).Next, want: "/doa/10"},
		{name: "previous from middle", start: 12, step: (*Detail).Previous, want: "/doa/11"},
		{name: "previous wraps to last", start: 10, step: (*Detail).Previous, want: "/doa/13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &recordingNav{}
			d := NewDetail(nil, nav, nil)
			require.NoError(t, d.Load(context.Background(), fakeRepo{records: sample}, tt.start))

			tt.step(d)
			assert.Equal(t, []string{tt.want}, nav.paths)
		})
	}
}

func TestDetail_SingleRecordNavigatesToItself(t *testing.T) {
	nav := &recordingNav{}
	d := NewDetail(nil, nav, nil)
	require.NoError(t, d.Load(context.Background(), fakeRepo{records: sample[:1]}, 10))

	d.Next()
	d.Previous()
	assert.Equal(t, []string{"/doa/10", "/doa/10"}, nav.paths)
}

func TestDetail_NoRecordDoesNotNavigate(t *testing.T) {
	nav := &recordingNav{}
	d := NewDetail(nil, nav, nil)
	require.NoError(t, d.Load(context.Background(), fakeRepo{}, 1))

	d.Next()
	d.Previous()
	assert.Empty(t, nav.paths)
}

func TestDetail_BackAndHome(t *testing.T) {
	nav := &recordingNav{}
	d := NewDetail(nil, nav, nil)

	d.Back()
	d.Home()
	assert.Equal(t, 1, nav.backs)
	assert.Equal(t, []string{"/"}, nav.paths)
}

func TestDetail_SharesFavoritesWithList(t *testing.T) {
	favorites := NewFavorites()
	list := NewController(favorites, nil, nil)
	require.NoError(t, list.Fetch(context.Background(), fakeRepo{records: sample}))

	d := NewDetail(favorites, nil, nil)
	require.NoError(t, d.Load(context.Background(), fakeRepo{records: sample}, 11))

	assert.True(t, d.ToggleFavorite())
	assert.True(t, d.IsFavorite())
	assert.True(t, list.IsFavorite(11))

	list.ShowFavorites()
	assert.Equal(t, []int{11}, ids(list.Visible()))

	assert.False(t, d.ToggleFavorite())
	assert.False(t, list.IsFavorite(11))
}
