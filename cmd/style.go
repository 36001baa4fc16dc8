package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-hands/batch"
	"github.com/luca-patrignani/poker-hands/domain/poker"
)

func prettyCard(c poker.Card) string {
	var suit string
	switch c.Suit {
	case poker.Clubs:
		suit = pterm.Black("♣")
	case poker.Diamonds:
		suit = pterm.LightRed("♦")
	case poker.Hearts:
		suit = pterm.LightRed("♥")
	case poker.Spades:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.Rank.String() + suit
}

func prettyHand(h poker.Hand) string {
	cards := h.Cards()
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = prettyCard(c)
	}
	return strings.Join(out, " - ")
}

func handBox(title string, h poker.Hand, description string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	key := poker.RankingKey(h)
	keyCodes := make([]string, len(key))
	for i, r := range key {
		keyCodes[i] = r.String()
	}
	info := pterm.Sprintfln("%s\nCategory: %s\nKey: %s",
		pterm.BgGreen.Sprint(prettyHand(h)),
		pterm.LightCyan(poker.Classify(h).String()),
		strings.Join(keyCodes, " "),
	)
	if description != "" {
		info += pterm.Sprintfln("Reference: %s", description)
	}
	return pbox.WithTitle(pterm.LightYellow("|"+title+"|")).WithTitleTopCenter().Sprintln(info)
}

func outcomeLine(outcome int) string {
	switch {
	case outcome > 0:
		return pterm.LightGreen("Player 1 wins")
	case outcome < 0:
		return pterm.LightRed("Player 2 wins")
	}
	return pterm.LightYellow("Tie")
}

func summaryBox(res batch.Result, crossCheck bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Deals: %d\nWins: %d\nTies: %d\nLosses: %d\nNot lost: %s",
		res.Deals, res.Wins, res.Ties, res.Losses, pterm.LightGreen(res.Count()))
	if res.DefaultedSuits > 0 {
		info += pterm.Sprintfln("Suits read as diamonds: %s", pterm.LightRed(res.DefaultedSuits))
	}
	if crossCheck {
		info += pterm.Sprintfln("Reference disagreements: %d (unchecked %d)", res.Disagreements, res.Unchecked)
	}
	return pbox.WithTitle(pterm.LightYellow("|SUMMARY|")).WithTitleTopCenter().Sprintln(info)
}
