package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/ally-invest/src/cmd/ally/run"
	"github.com/jiaming2012/ally-invest/src/responses"
)

func addWatchlistCommands(root *cobra.Command) {
	watchlistsCmd := &cobra.Command{
		Use:   "watchlists [ID]",
		Short: "List watchlists, or the symbols of one",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			if len(args) == 0 {
				lists, err := client.Watchlists(cmd.Context())
				if err != nil {
					log.Errorf("Error: %v", err)
					return
				}

				for _, l := range lists {
					fmt.Println(responses.Value(l.ID))
				}
				return
			}

			list, err := client.Watchlist(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			fmt.Printf("%s: %s\n", responses.Value(list.ID), strings.Join(list.Symbols, ", "))
		},
	}

	createCmd := &cobra.Command{
		Use:   "watchlist-create ID [SYMBOL...]",
		Short: "Create a watchlist",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			lists, err := client.CreateWatchlist(cmd.Context(), args[0], args[1:])
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			if err := run.PrintJSON(os.Stdout, lists); err != nil {
				log.Errorf("failed to print: %v", err)
			}
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "watchlist-delete ID",
		Short: "Delete a watchlist",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			if err := client.DeleteWatchlist(cmd.Context(), args[0]); err != nil {
				log.Errorf("Error: %v", err)
			}
		},
	}

	addCmd := &cobra.Command{
		Use:   "watchlist-add ID SYMBOL...",
		Short: "Add symbols to a watchlist",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			if err := client.AddWatchlistSymbols(cmd.Context(), args[0], args[1:]); err != nil {
				log.Errorf("Error: %v", err)
			}
		},
	}

	removeCmd := &cobra.Command{
		Use:   "watchlist-remove ID SYMBOL...",
		Short: "Remove symbols from a watchlist",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			if err := client.DeleteWatchlistSymbols(cmd.Context(), args[0], args[1:]); err != nil {
				log.Errorf("Error: %v", err)
			}
		},
	}

	root.AddCommand(watchlistsCmd, createCmd, deleteCmd, addCmd, removeCmd)
}
