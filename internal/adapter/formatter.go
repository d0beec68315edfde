package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
)

// HelpEntry is one visible command in the help listing.
type HelpEntry struct {
	Name        string
	Description string
}

// Formatter renders API payloads into chat-sized response lines.
type Formatter struct {
	prefix string
}

func NewFormatter(prefix string) *Formatter {
	return &Formatter{prefix: prefix}
}

func (f *Formatter) FormatHelp(entries []HelpEntry) string {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	resp := NewResponse()
	resp.AddHeader("Commands")
	for _, entry := range entries {
		line := f.prefix + entry.Name
		if entry.Description != "" {
			line += ": " + entry.Description
		}
		resp.AddSection(line)
	}
	return resp.Build()
}

func (f *Formatter) FormatProfile(profile *kirka.Profile) string {
	resp := NewResponse()
	resp.AddHeader(fmt.Sprintf("%s (#%s)", profile.Name, profile.ShortID))
	resp.AddSection(fmt.Sprintf("Level %d, XP %s", profile.Level, profile.XPProgress()))
	resp.AddSection(fmt.Sprintf("K/D %.2f", profile.KDRatio()))
	resp.AddSection(fmt.Sprintf("Winrate %.1f%%", profile.WinRate()*100))
	resp.AddSection(fmt.Sprintf("Headshot rate %.1f%%", profile.HeadshotRate()*100))
	resp.AddSection(fmt.Sprintf("Score/game %.0f", profile.ScorePerGame()))
	if profile.Clan != "" {
		resp.AddSection("Clan " + profile.Clan)
	}
	resp.AddSection("Joined " + profile.JoinDate())
	return resp.Build()
}

func (f *Formatter) FormatClan(clan *kirka.Clan) string {
	resp := NewResponse()
	resp.AddHeader(clan.Name)
	if clan.Description != "" {
		resp.AddSection(clan.Description)
	}
	resp.AddSection(fmt.Sprintf("%d members", len(clan.Members)))
	if clan.DiscordLink != "" {
		resp.AddSection("Discord: " + clan.DiscordLink)
	}
	return resp.Build()
}

func (f *Formatter) FormatPrice(skinName string, price int64) string {
	if price == 0 {
		return fmt.Sprintf("No price found for '%s'", skinName)
	}
	return fmt.Sprintf("%s: %d", skinName, price)
}

// FormatPlayerCounts renders per-region player totals in a stable order.
func (f *Formatter) FormatPlayerCounts(counts map[string]int) string {
	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	total := 0
	parts := make([]string, 0, len(regions))
	for _, region := range regions {
		total += counts[region]
		parts = append(parts, fmt.Sprintf("%s %d", strings.ToUpper(region), counts[region]))
	}

	resp := NewResponse()
	resp.AddHeader(fmt.Sprintf("%d players online", total))
	resp.AddSection(strings.Join(parts, ", "))
	return resp.Build()
}

func (f *Formatter) FormatLobbies(region string, lobbies []kirka.Lobby) string {
	total := 0
	for _, lobby := range lobbies {
		total += lobby.Clients
	}
	return fmt.Sprintf("%s: %d lobbies, %d players", strings.ToUpper(region), len(lobbies), total)
}
