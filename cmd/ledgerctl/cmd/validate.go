package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/ledger_posting_app/internal/core/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
	"github.com/SscSPs/ledger_posting_app/internal/repositories/chartfile"
	"github.com/SscSPs/ledger_posting_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var chartPath, voucherPath, tolerance string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a voucher file against a chart of accounts",
		Long: `Runs the balance validator over a voucher JSON file (the body accepted by
POST /api/v1/vouchers) using accounts from a YAML chart file. Nothing is written.

Example:
  ledgerctl validate --chart chart.yaml --voucher voucher.json --tolerance 0.01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tol, err := resolveTolerance(tolerance)
			if err != nil {
				return err
			}
			chart, err := chartfile.Load(chartPath)
			if err != nil {
				return err
			}
			body, err := os.ReadFile(voucherPath)
			if err != nil {
				return fmt.Errorf("failed to read voucher file: %w", err)
			}

			ok, err := validateVoucher(cmd.Context(), chart, body, tol, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				return errValidationFailed
			}
			return nil
		},
	}

	c.Flags().StringVar(&chartPath, "chart", "", "YAML chart of accounts")
	c.Flags().StringVar(&voucherPath, "voucher", "", "voucher JSON file")
	c.Flags().StringVar(&tolerance, "tolerance", "", "balance tolerance (default BALANCE_TOLERANCE or 0.01)")
	_ = c.MarkFlagRequired("chart")
	_ = c.MarkFlagRequired("voucher")
	return c
}

func resolveTolerance(flag string) (decimal.Decimal, error) {
	if flag == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return decimal.Decimal{}, err
		}
		return cfg.BalanceTolerance, nil
	}
	tol, err := decimal.NewFromString(flag)
	if err != nil || !tol.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("invalid tolerance %q", flag)
	}
	return tol, nil
}

// validateVoucher prints a report for the voucher and reports whether it passed.
// The returned error covers unreadable input, not validation failures.
func validateVoucher(ctx context.Context, chart *chartfile.Chart, body []byte, tolerance decimal.Decimal, out io.Writer) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var req dto.PostVoucherRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return false, fmt.Errorf("invalid voucher JSON: %w", err)
	}
	v, err := dto.NewValidator()
	if err != nil {
		return false, err
	}
	if err := v.Struct(req); err != nil {
		return false, fmt.Errorf("invalid voucher: %w", err)
	}

	lines := req.ToDomainLines()
	result, err := services.NewBalanceValidator(chart, tolerance).Validate(ctx, req.TenantID, lines)
	if err != nil {
		return false, err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tACCOUNT\tNAME\tDEBIT\tCREDIT\tEFFECT")
	for _, line := range lines {
		name, effect := "?", "?"
		if acc, ok := result.Accounts[line.AccountCode]; ok {
			name = acc.Name
			effect = accounting.FormatWithPrecision(accounting.CalculateSignedAmount(line, acc.AccountType), 2)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			line.LineNumber, line.AccountCode, name,
			accounting.FormatWithPrecision(line.DebitAmount, 2),
			accounting.FormatWithPrecision(line.CreditAmount, 2),
			effect)
	}
	if err := w.Flush(); err != nil {
		return false, err
	}

	fmt.Fprintf(out, "total debit %s, total credit %s\n",
		accounting.FormatWithPrecision(result.TotalDebit, 2),
		accounting.FormatWithPrecision(result.TotalCredit, 2))

	if result.OK() {
		fmt.Fprintln(out, "OK")
		return true, nil
	}
	for _, msg := range result.Messages() {
		fmt.Fprintln(out, "ERROR", msg)
	}
	return false, nil
}
