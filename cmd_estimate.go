package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/umalmyha/crmconsole/internal/api"
	"github.com/umalmyha/crmconsole/internal/config"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/segment"
)

type estimateOpts struct {
	rules     string
	mode      string
	customers string
	compare   bool
}

func estimateCommand() *cobra.Command {
	var opts estimateOpts

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "estimate audience size of segment rules",
		Long: "Compiles segment rules and counts matching customers locally. Customers are read from file " +
			"or fetched from backend. With --compare backend preview is printed as well.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Build()
			if err != nil {
				return err
			}
			client := api.NewClient(api.Config{BaseURL: cfg.APICfg.BaseURL, Timeout: cfg.APICfg.RequestTimeout}, api.StaticToken(cfg.APICfg.Token))
			return estimate(cmd.Context(), cmd.OutOrStdout(), client, opts)
		},
	}

	cmd.Flags().StringVar(&opts.rules, "rules", "", "JSON file with rules, either a list or a segment object")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "rule logic AND or OR, overrides the one from rules file")
	cmd.Flags().StringVar(&opts.customers, "customers", "", "JSON file with customers, live list is fetched if omitted")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "print backend preview along with local estimate")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}

type estimateBackend interface {
	ListCustomers(context.Context, model.CustomerFilter) ([]model.Customer, error)
	PreviewSegment(context.Context, []model.Rule, model.RuleLogic) (int, error)
}

func estimate(ctx context.Context, out io.Writer, backend estimateBackend, opts estimateOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rules, logic, err := readRules(opts.rules)
	if err != nil {
		return err
	}
	if opts.mode != "" {
		logic = opts.mode
	}

	rs, err := segment.Compile(rules, logic)
	if err != nil {
		return fmt.Errorf("rules are invalid:\n%w", err)
	}

	var customers []model.Customer
	if opts.customers != "" {
		customers, err = readCustomers(opts.customers)
	} else {
		customers, err = backend.ListCustomers(ctx, model.CustomerFilter{})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Rules: %s\n", rs)
	fmt.Fprintf(out, "Estimated audience size: %d of %d customers\n", segment.EstimateSize(rs, customers), len(customers))

	if opts.compare {
		size, err := backend.PreviewSegment(ctx, rs.Wire(), rs.Logic)
		if err != nil {
			return fmt.Errorf("failed to get backend preview - %w", err)
		}
		fmt.Fprintf(out, "Backend preview: %d customers\n", size)
	}
	return nil
}

// readRules accepts bare list of rules or segment object with rules and logic
func readRules(path string) ([]model.Rule, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read rules - %w", err)
	}

	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var rules []model.Rule
		if err := json.Unmarshal(b, &rules); err != nil {
			return nil, "", fmt.Errorf("failed to parse rules - %w", err)
		}
		return rules, "", nil
	}

	var seg model.Segment
	if err := json.Unmarshal(b, &seg); err != nil {
		return nil, "", fmt.Errorf("failed to parse segment - %w", err)
	}
	return seg.Rules, string(seg.RuleLogic), nil
}

// readCustomers accepts bare list of customers or {"customers": [...]} envelope
func readCustomers(path string) ([]model.Customer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customers - %w", err)
	}

	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var customers []model.Customer
		if err := json.Unmarshal(b, &customers); err != nil {
			return nil, fmt.Errorf("failed to parse customers - %w", err)
		}
		return customers, nil
	}

	var envelope struct {
		Customers []model.Customer `json:"customers"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse customers - %w", err)
	}
	return envelope.Customers, nil
}
