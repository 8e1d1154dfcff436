package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/ally-invest/src/cmd/ally/run"
	"github.com/jiaming2012/ally-invest/src/orders"
	"github.com/jiaming2012/ally-invest/src/utils"
)

func addOrderCommands(root *cobra.Command) {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Print the order status of an account",
		Run: func(cmd *cobra.Command, args []string) {
			account, err := cmd.Flags().GetString("account")
			if err != nil {
				log.Fatalf("error getting account: %v", err)
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			list, err := client.FetchOrders(cmd.Context(), account)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			printOrExport(cmd, list, "orders")
		},
	}
	ordersCmd.Flags().String("account", "", "account id (default $ALLY_ACCOUNT_ID)")
	ordersCmd.Flags().String("outDir", "", "write a CSV file to this directory instead of printing")

	placeCmd := &cobra.Command{
		Use:   "place-order --file order.yaml",
		Short: "Place, replace or cancel an order described in YAML",
		Run: func(cmd *cobra.Command, args []string) {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				log.Fatalf("error getting file: %v", err)
			}

			preview, err := cmd.Flags().GetBool("preview")
			if err != nil {
				log.Fatalf("error getting preview: %v", err)
			}

			cancel, err := cmd.Flags().GetBool("cancel")
			if err != nil {
				log.Fatalf("error getting cancel: %v", err)
			}

			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				log.Fatalf("error getting dry-run: %v", err)
			}

			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				log.Fatalf("error getting yes: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				log.Fatalf("failed to open order file: %v", err)
			}
			defer file.Close()

			orderFile, err := orders.ReadOrderFile(file)
			if err != nil {
				log.Fatalf("failed to read order file: %v", err)
			}
			orderFile.Cancel = orderFile.Cancel || cancel

			doc, err := orderFile.Document()
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			if dryRun {
				os.Stdout.WriteString(doc.String() + "\n")
				return
			}

			if !preview && !yes {
				fmt.Fprintln(os.Stderr, doc.String())

				ok, err := utils.Confirm(os.Stdin, os.Stderr, "Send this order?")
				if err != nil {
					log.Fatalf("failed to confirm: %v", err)
				}

				if !ok {
					log.Info("order not sent")
					return
				}
			}

			client, shutdown := setup(cmd)
			defer shutdown()

			result, err := client.SubmitFIXML(cmd.Context(), orderFile.Account(), doc, preview)
			if err != nil {
				log.Errorf("Error: %v", err)
				return
			}

			if err := run.PrintJSON(os.Stdout, result); err != nil {
				log.Errorf("failed to print: %v", err)
			}
		},
	}
	placeCmd.Flags().String("file", "", "YAML order file with either an order or legs")
	placeCmd.Flags().Bool("preview", false, "estimate commission and margin without placing")
	placeCmd.Flags().Bool("cancel", false, "cancel the order named by orig_id")
	placeCmd.Flags().Bool("dry-run", false, "print the FIXML document and exit")
	placeCmd.Flags().Bool("yes", false, "send without asking for confirmation")
	if err := placeCmd.MarkFlagRequired("file"); err != nil {
		log.Fatalf("failed to mark file as required: %v", err)
	}

	root.AddCommand(ordersCmd, placeCmd)
}
