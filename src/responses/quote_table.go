package responses

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Quotes []*Quote

func (quotes Quotes) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Symbol", "Last", "Bid", "Ask", "Chg %", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	for _, q := range quotes {
		if q == nil {
			continue
		}

		volume := Value(q.Volume)
		if n, err := strconv.ParseInt(volume, 10, 64); err == nil {
			volume = p.Sprintf("%d", n)
		}

		table.Append([]string{Value(q.Symbol), Value(q.Last), Value(q.Bid), Value(q.Ask), Value(q.PercentChange), volume})
	}

	table.Render()
	return display.String()
}
