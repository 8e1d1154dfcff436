package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/ally-invest/src/ally"
	"github.com/jiaming2012/ally-invest/src/cmd/ally/run"
	"github.com/jiaming2012/ally-invest/src/responses"
)

// printOrExport writes rows as JSON, or to a CSV file when --outDir is set.
func printOrExport[T any](cmd *cobra.Command, rows []T, prefix string) {
	outDir, err := cmd.Flags().GetString("outDir")
	if err != nil {
		log.Fatalf("error getting outDir: %v", err)
	}

	if outDir == "" {
		if err := run.PrintJSON(os.Stdout, rows); err != nil {
			log.Errorf("failed to print: %v", err)
		}
		return
	}

	csvPath, err := run.ExportToCsv(outDir, rows, prefix, time.Now())
	if err != nil {
		log.Errorf("Failed to export to CSV: %v", err)
		return
	}

	fmt.Println("CSV file written to: ", csvPath)
}

func printPayload(p *responses.Payload, err error) {
	if err != nil {
		log.Errorf("Error: %v", err)
		return
	}

	if err := run.PrintPayload(os.Stdout, p); err != nil {
		log.Errorf("failed to print: %v", err)
	}
}

func addAccountCommands(root *cobra.Command) {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the member profile",
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			printPayload(client.MemberProfile(cmd.Context()))
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the API status",
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			printPayload(client.Status(cmd.Context()))
		},
	}

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print a summary of every account",
		Run: func(cmd *cobra.Command, args []string) {
			client, shutdown := setup(cmd)
			defer shutdown()

			printPayload(client.Accounts(cmd.Context()))
		},
	}

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Print the balances of one account, or of every account with --all",
		Run: func(cmd *cobra.Command, args []string) {
			account, err := cmd.Flags().GetString("account")
			if err != nil {
				log.Fatalf("error getting account: %v", err)
			}

			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				log.Fatalf("error getting all: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			if all {
				balances, err := client.FetchAccountsBalances(cmd.Context())
				if err != nil {
					log.Errorf("Error: %v", err)
					return
				}

				rows := make([]*responses.AccountBalance, 0, len(balances))
				for _, b := range balances {
					rows = append(rows, b)
				}

				printOrExport(cmd, rows, "balances")
				return
			}

			balance, err := client.FetchAccountBalance(cmd.Context(), account)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, []*responses.AccountBalance{balance}, "balances")
		},
	}
	balancesCmd.Flags().Bool("all", false, "every account of the member")

	holdingsCmd := &cobra.Command{
		Use:   "holdings",
		Short: "Print the holdings of an account",
		Run: func(cmd *cobra.Command, args []string) {
			account, err := cmd.Flags().GetString("account")
			if err != nil {
				log.Fatalf("error getting account: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			holdings, err := client.FetchHoldings(cmd.Context(), account)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, holdings, "holdings")
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Print the transaction history of an account",
		Run: func(cmd *cobra.Command, args []string) {
			account, err := cmd.Flags().GetString("account")
			if err != nil {
				log.Fatalf("error getting account: %v", err)
			}

			rng, err := cmd.Flags().GetString("range")
			if err != nil {
				log.Fatalf("error getting range: %v", err)
			}

			kind, err := cmd.Flags().GetString("transactions")
			if err != nil {
				log.Fatalf("error getting transactions: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			history, err := client.FetchHistory(cmd.Context(), account, ally.HistoryRequest{
				Range:        ally.HistoryRange(rng),
				Transactions: ally.TransactionType(kind),
			})
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, history, "history")
		},
	}
	historyCmd.Flags().String("range", "", "all, today, current_week, current_month or last_month")
	historyCmd.Flags().String("transactions", "", "all, bookkeeping or trade")

	for _, c := range []*cobra.Command{balancesCmd, holdingsCmd, historyCmd} {
		c.Flags().String("account", "", "account id (default $ALLY_ACCOUNT_ID)")
		c.Flags().String("outDir", "", "write a CSV file to this directory instead of printing")
	}

	root.AddCommand(profileCmd, statusCmd, accountsCmd, balancesCmd, holdingsCmd, historyCmd)
}
