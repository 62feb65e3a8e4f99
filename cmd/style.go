package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/acgowda/games/domain/card"
	"github.com/acgowda/games/domain/poker"
	"github.com/acgowda/games/domain/table"
)

func prettyCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " - ")
}

func getHandPanel(s table.Seat) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprintf(" %s ", prettyCards(s.Hand))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan(s.Name)).WithTitleTopLeft().Sprintf("%s\n%s", hand, card.Format(s.Hand, " "))}
}

func printSeats(seats []table.Seat) {
	var panels []pterm.Panel
	for _, s := range seats {
		panels = append(panels, getHandPanel(s))
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
}

func getWinnerPanel(results []table.Result, winners []int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	infoString := ""
	for _, r := range results {
		infoString += pterm.Sprintfln("%s: %s", r.Name, r.Hand.Describe())
	}
	infoString += "\n"
	if len(winners) == 1 {
		w := results[winners[0]]
		infoString += pterm.Sprintfln("%s wins with %s", pterm.LightCyan(w.Name), w.Hand.Category())
	} else {
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = pterm.LightCyan(results[w].Name)
		}
		infoString += pterm.Sprintfln("Split pot between %s", strings.Join(names, ", "))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(infoString)}
}

func getEvalPanel(title string, h poker.Hand, reference string) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s\n%s", prettyCards(h.Cards()), h.Describe())
	if reference != "" {
		body += pterm.Sprintfln("standard rules: %s", reference)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(body)}
}
