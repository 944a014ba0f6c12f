package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"delivery_payments/internal/app"
	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase"
	"delivery_payments/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	var methodFlag string

	rootCmd := &cobra.Command{
		Use:     "reconcile",
		Short:   "Operational tooling for payment transactions",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVarP(&methodFlag, "method", "m", string(entities.PaymentMethodWebpay), "payment method (webpay, mercadopago)")

	method := func() (entities.PaymentMethod, error) {
		m, ok := entities.ParsePaymentMethod(methodFlag)
		if !ok {
			return "", fmt.Errorf("unknown payment method %q", methodFlag)
		}
		return m, nil
	}

	rootCmd.AddCommand(unlinkedCmd(method))
	rootCmd.AddCommand(resolveCmd(method))
	rootCmd.AddCommand(retryOrdersCmd(method))
	rootCmd.AddCommand(linkCmd(method))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withUseCase wires the engine the same way the API does, without serving HTTP.
func withUseCase(ctx context.Context, fn func(uc usecase.IPaymentTransactionUseCase) error) error {
	cfg := appconfig.Load()
	logger.Init("delivery-payments-reconcile", cfg.Server.IsDevelopment())
	logger.SetLevel(cfg.Server.LogLevel)

	a, err := app.Build(ctx, cfg, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a.UseCase)
}

func unlinkedCmd(method func() (entities.PaymentMethod, error)) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "unlinked",
		Short: "List authorized transactions that still have no order",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := method()
			if err != nil {
				return err
			}
			return withUseCase(cmd.Context(), func(uc usecase.IPaymentTransactionUseCase) error {
				list, err := uc.ListUnlinkedAuthorized(cmd.Context(), m, limit)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(list)
				}
				return printTransactions(cmd, list)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "Maximum results")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}

func resolveCmd(method func() (entities.PaymentMethod, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [token-or-payment-id]",
		Short: "Reconcile one transaction against its gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := method()
			if err != nil {
				return err
			}
			return withUseCase(cmd.Context(), func(uc usecase.IPaymentTransactionUseCase) error {
				res, err := uc.ResolveStatus(cmd.Context(), m, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tsource=%s strategy=%s order_created=%t\n",
					res.Transaction.Token, res.Transaction.Status, res.Source, res.Strategy, res.Transaction.OrderCreated)
				return nil
			})
		},
	}
}

func retryOrdersCmd(method func() (entities.PaymentMethod, error)) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "retry-orders",
		Short: "Retry order creation for authorized transactions without an order",
		Long: `Walks the unlinked authorized transactions and re-runs the commit path,
which creates the order from the stored payload when the gateway creates orders
automatically (webpay). Transactions of other gateways are only listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := method()
			if err != nil {
				return err
			}
			return withUseCase(cmd.Context(), func(uc usecase.IPaymentTransactionUseCase) error {
				list, err := uc.ListUnlinkedAuthorized(cmd.Context(), m, limit)
				if err != nil {
					return err
				}
				linked := 0
				for _, tx := range list {
					saved, err := uc.Commit(cmd.Context(), m, tx.Token)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s\tfailed: %v\n", tx.Token, err)
						continue
					}
					if saved.IsLinked() {
						linked++
						fmt.Fprintf(cmd.OutOrStdout(), "%s\tlinked order_id=%s\n", saved.Token, *saved.OrderID)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\tstill unlinked\n", saved.Token)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d transactions linked\n", linked, len(list))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "Maximum transactions to process")
	return cmd
}

func linkCmd(method func() (entities.PaymentMethod, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "link [token] [order-id]",
		Short: "Attach an order created out of band",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := method()
			if err != nil {
				return err
			}
			return withUseCase(cmd.Context(), func(uc usecase.IPaymentTransactionUseCase) error {
				tx, err := uc.LinkOrder(cmd.Context(), m, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tlinked order_id=%s\n", tx.Token, *tx.OrderID)
				return nil
			})
		},
	}
}

func printTransactions(cmd *cobra.Command, list []entities.PaymentTransaction) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tBUY ORDER\tAMOUNT\tSTATUS\tCREATED")
	for _, tx := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", tx.Token, tx.BuyOrder, tx.Amount.String(), tx.Status, tx.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "\n%d transactions\n", len(list))
	return w.Flush()
}
