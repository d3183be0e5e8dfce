package tv_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mediateca/mediateca/internal/tv"
	"github.com/mediateca/mediateca/internal/tv/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const channelDoc = `[
	{"name": "Canal Uno", "logo": "https://logos.example/uno.png", "country": "ES",
	 "streams": "http://tv.example/uno/master.m3u8"},
	{"name": "Chaine Une", "logo": "https://logos.example/une.png", "country": "FR",
	 "streams": ["http://tv.example/une/main.m3u8"]},
	{"name": "Canal Dos", "logo": "https://logos.example/dos.png", "country": "ES",
	 "streams": "http://tv.example/dos/master.m3u8"}
]`

func TestSource_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return([]byte(channelDoc), nil)

	source := tv.NewSource(fetcher, testLogger())
	require.NoError(t, source.Refresh(context.Background()))

	assert.Len(t, source.List(""), 3)
	assert.Len(t, source.List("ES"), 2)
	assert.Len(t, source.List("FR"), 1)
	assert.Empty(t, source.List("DE"))
}

func TestSource_Countries(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return([]byte(channelDoc), nil)

	source := tv.NewSource(fetcher, testLogger())
	require.NoError(t, source.Refresh(context.Background()))

	assert.Equal(t, []string{"ES", "FR"}, source.Countries())
}

func TestSource_RefreshFailureKeepsPreviousList(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := mocks.NewMockFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any()).Return([]byte(channelDoc), nil),
		fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("origin down")),
	)

	source := tv.NewSource(fetcher, testLogger())
	require.NoError(t, source.Refresh(context.Background()))
	require.Error(t, source.Refresh(context.Background()))

	// Previous list stays in service.
	assert.Len(t, source.List(""), 3)
}

func TestSource_EmptyBeforeFirstRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := tv.NewSource(mocks.NewMockFetcher(ctrl), testLogger())
	assert.Empty(t, source.List(""))
	assert.Empty(t, source.Countries())
}
