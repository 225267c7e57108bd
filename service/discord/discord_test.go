package discord

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
)

var mockCtx = ctx.Background()

type mockMessenger struct {
	mock.Mock
}

func (m *mockMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	ret := m.Called(channelID, embed)
	return nil, ret.Error(0)
}

type discordSuite struct {
	suite.Suite
	messenger *mockMessenger
}

func TestDiscordSuite(t *testing.T) {
	suite.Run(t, new(discordSuite))
}

func (s *discordSuite) SetupTest() {
	s.messenger = &mockMessenger{}
}

func (s *discordSuite) TearDownTest() {
	s.messenger.AssertExpectations(s.T())
}

func (s *discordSuite) TestNotifySettled() {
	im := newSink(Config{ChannelId: "chan"}, s.messenger)
	itemId := domain.ItemId(3)
	e := activity.Event{
		Type:    activity.EventAuctionSettled,
		ItemId:  &itemId,
		Account: "0xABC",
		Amount:  domain.NewAmount(42),
		Time:    time.Now(),
	}

	s.messenger.On("ChannelMessageSendEmbed", "chan", mock.MatchedBy(func(m *discordgo.MessageEmbed) bool {
		return m.Title == "Item sold!" && m.Fields[1].Value == "0xabc" && m.Fields[2].Value == "42"
	})).Return(nil).Once()
	s.NoError(im.Notify(mockCtx, e))
}

func (s *discordSuite) TestNotifyFiltered() {
	im := newSink(Config{ChannelId: "chan", Types: []activity.EventType{activity.EventAuctionSettled}}, s.messenger)
	s.NoError(im.Notify(mockCtx, activity.Event{Type: activity.EventBidPlaced}))
	s.NoError(im.Notify(mockCtx, activity.Event{Type: activity.EventFundsWithdrawn}))
}

func (s *discordSuite) TestNotifyError() {
	im := newSink(Config{ChannelId: "chan"}, s.messenger)
	errDiscord := errors.New("rate limited")
	s.messenger.On("ChannelMessageSendEmbed", "chan", mock.Anything).Return(errDiscord).Once()
	s.Equal(errDiscord, im.Notify(mockCtx, activity.Event{Type: activity.EventBidPlaced}))
}
