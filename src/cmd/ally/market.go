package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/ally-invest/src/ally"
	"github.com/jiaming2012/ally-invest/src/responses"
)

func parseDateFlag(cmd *cobra.Command, name string) time.Time {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		log.Fatalf("error getting %s: %v", name, err)
	}

	if value == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		log.Fatalf("invalid %s %q, expected YYYY-MM-DD: %v", name, value, err)
	}

	return t
}

func printQuotes(cmd *cobra.Command, quotes []*responses.Quote, prefix string) {
	outDir, err := cmd.Flags().GetString("outDir")
	if err != nil {
		log.Fatalf("error getting outDir: %v", err)
	}

	if outDir != "" {
		printOrExport(cmd, quotes, prefix)
		return
	}

	fmt.Print(responses.Quotes(quotes).String())

	// no numeric pchg means nothing to summarize
	summary, err := responses.SummarizeChange(quotes)
	if err == nil {
		fmt.Printf("\n%d quotes, change %% mean %.2f median %.2f min %.2f max %.2f\n",
			summary.Count, summary.Mean, summary.Median, summary.Min, summary.Max)
	}
}

func addMarketCommands(root *cobra.Command) {
	quotesCmd := &cobra.Command{
		Use:   "quotes SYMBOL...",
		Short: "Quote stocks or options",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fields, err := cmd.Flags().GetStringSlice("fields")
			if err != nil {
				log.Fatalf("error getting fields: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			quotes, err := client.FetchQuotes(cmd.Context(), args, fields...)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printQuotes(cmd, quotes, "quotes")
		},
	}
	quotesCmd.Flags().StringSlice("fields", nil, "only return these fields, e.g. last,bid,ask")

	toplistCmd := &cobra.Command{
		Use:   "toplist TYPE",
		Short: "Rank securities, e.g. topgainers or toppctlosers",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exchange, err := cmd.Flags().GetString("exchange")
			if err != nil {
				log.Fatalf("error getting exchange: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			quotes, err := client.Toplists(cmd.Context(), ally.ToplistType(args[0]), ally.Exchange(exchange))
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printQuotes(cmd, quotes, args[0])
		},
	}
	toplistCmd.Flags().String("exchange", "", "A, N, Q, U or V")

	timesalesCmd := &cobra.Command{
		Use:   "timesales SYMBOL...",
		Short: "Print time and sales",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			interval, err := cmd.Flags().GetString("interval")
			if err != nil {
				log.Fatalf("error getting interval: %v", err)
			}

			req := ally.TimeSalesRequest{
				Symbols:   args,
				Interval:  interval,
				StartDate: parseDateFlag(cmd, "start"),
				EndDate:   parseDateFlag(cmd, "end"),
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			quotes, err := client.TimeSales(cmd.Context(), req)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, quotes, "timesales")
		},
	}
	timesalesCmd.Flags().String("interval", "", "tick, 1min or 5min")

	newsCmd := &cobra.Command{
		Use:   "news SYMBOL...",
		Short: "Search news headlines",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			maxHits, err := cmd.Flags().GetInt("max-hits")
			if err != nil {
				log.Fatalf("error getting max-hits: %v", err)
			}

			req := ally.NewsSearchRequest{
				Symbols:   args,
				MaxHits:   maxHits,
				StartDate: parseDateFlag(cmd, "start"),
				EndDate:   parseDateFlag(cmd, "end"),
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			articles, err := client.NewsSearch(cmd.Context(), req)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, articles, "news")
		},
	}
	newsCmd.Flags().Int("max-hits", 0, "limit the number of headlines")

	for _, c := range []*cobra.Command{newsCmd, timesalesCmd} {
		c.Flags().String("start", "", "start date, YYYY-MM-DD")
		c.Flags().String("end", "", "end date, YYYY-MM-DD")
	}

	articleCmd := &cobra.Command{
		Use:   "article ID",
		Short: "Print one news article",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			article, err := client.NewsArticle(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			fmt.Printf("%s\n%s\n\n%s\n", responses.Value(article.Headline), responses.Value(article.Date), responses.Value(article.Story))
		},
	}

	clockCmd := &cobra.Command{
		Use:   "clock",
		Short: "Print the market status",
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			clock, err := client.Clock(cmd.Context())
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			fmt.Printf("%s: %s\n", responses.Value(clock.CurrentStatus), responses.Value(clock.Message))
		},
	}

	strikesCmd := &cobra.Command{
		Use:   "strikes SYMBOL",
		Short: "List option strike prices of an underlying",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			strikes, err := client.OptionsStrikes(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			for _, s := range strikes {
				fmt.Println(s)
			}
		},
	}

	expirationsCmd := &cobra.Command{
		Use:   "expirations SYMBOL",
		Short: "List option expiration dates of an underlying",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			dates, err := client.OptionsExpirations(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			for _, d := range dates {
				fmt.Println(d)
			}
		},
	}

	chainCmd := &cobra.Command{
		Use:   "chain SYMBOL [QUERY]",
		Short: `Search an option chain, e.g. chain F "xdate-eq:20240621 AND put_call-eq:call"`,
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			var query string
			if len(args) > 1 {
				query = args[1]
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			quotes, err := client.OptionsSearch(cmd.Context(), args[0], query)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printQuotes(cmd, quotes, "chain")
		},
	}

	for _, c := range []*cobra.Command{quotesCmd, toplistCmd, timesalesCmd, newsCmd, chainCmd} {
		c.Flags().String("outDir", "", "write a CSV file to this directory instead of printing")
	}

	root.AddCommand(quotesCmd, toplistCmd, timesalesCmd, newsCmd, articleCmd, clockCmd, strikesCmd, expirationsCmd, chainCmd)
}
