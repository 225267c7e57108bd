package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/activity"
)

type Config struct {
	BotKey    string
	ChannelId string
	// Types limits the events posted; empty posts every event
	Types []activity.EventType
}

type messenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type sink struct {
	channelId string
	types     map[activity.EventType]bool
	discord   messenger
}

// NewSink returns an activity sink posting events to a discord channel.
func NewSink(config Config) (activity.Sink, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return newSink(config, discord), nil
}

func newSink(config Config, discord messenger) *sink {
	types := map[activity.EventType]bool{}
	for _, t := range config.Types {
		types[t] = true
	}
	return &sink{
		channelId: config.ChannelId,
		types:     types,
		discord:   discord,
	}
}

func (s *sink) Notify(c ctx.Ctx, e activity.Event) error {
	if len(s.types) > 0 && !s.types[e.Type] {
		return nil
	}

	msg := embed(e)
	if msg == nil {
		return nil
	}
	if _, err := s.discord.ChannelMessageSendEmbed(s.channelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func embed(e activity.Event) *discordgo.MessageEmbed {
	item := "-"
	if e.ItemId != nil {
		item = e.ItemId.String()
	}

	switch e.Type {
	case activity.EventAuctionCreated:
		fields := []*discordgo.MessageEmbedField{
			{Name: "Item", Value: item},
			{Name: "Starting price", Value: e.Amount.String()},
		}
		if e.EndTime != nil {
			fields = append(fields, &discordgo.MessageEmbedField{Name: "Ends", Value: e.EndTime.UTC().Format("2006-01-02 15:04:05 MST")})
		}
		return &discordgo.MessageEmbed{Title: "Auction opened!", Fields: fields}
	case activity.EventBidPlaced:
		return &discordgo.MessageEmbed{
			Title: "New highest bid",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Item", Value: item},
				{Name: "Bidder", Value: e.Account.ToLowerStr()},
				{Name: "Amount", Value: e.Amount.String()},
			},
		}
	case activity.EventAuctionSettled:
		if e.Destroyed {
			return &discordgo.MessageEmbed{
				Title:       "Auction ended without bids",
				Description: fmt.Sprintf("Item %s was destroyed", item),
			}
		}
		return &discordgo.MessageEmbed{
			Title: "Item sold!",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Item", Value: item},
				{Name: "Winner", Value: e.Account.ToLowerStr()},
				{Name: "Price", Value: e.Amount.String()},
			},
		}
	default:
		// refunds, withdrawals and mints stay off the channel
		return nil
	}
}
