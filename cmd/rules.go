package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Sena-ops/reducerguard/internal/config"
	"github.com/Sena-ops/reducerguard/internal/rules"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type ruleRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Severity  string `json:"severity"`
	Threshold int    `json:"threshold"`
	Weight    int    `json:"weight"`
	PerMatch  bool   `json:"per_match"`
	Enabled   bool   `json:"enabled"`
}

func newRulesCmd(g *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Lista as regras com os valores efetivos da configuração",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".", g.configPath)
			if err != nil {
				return configError(err)
			}
			set, err := rules.Defaults().Apply(cfg.Rules)
			if err != nil {
				return configError(err)
			}

			rows := make([]ruleRow, 0, set.Len())
			for _, r := range set.Rules() {
				rows = append(rows, ruleRow{
					ID:        r.ID,
					Name:      r.Name,
					Severity:  string(r.Severity),
					Threshold: r.Threshold,
					Weight:    r.Weight,
					PerMatch:  r.PerMatch,
					Enabled:   r.Enabled,
				})
			}

			if jsonOutput {
				encoded, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("gerar JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("ID", "Nome", "Severidade", "Limite", "Peso", "Por ocorrência", "Ativa")
			data := make([][]string, 0, len(rows))
			for _, r := range rows {
				data = append(data, []string{
					r.ID, r.Name, r.Severity,
					strconv.Itoa(r.Threshold),
					fmt.Sprintf("%+d", r.Weight),
					yesNo(r.PerMatch),
					yesNo(r.Enabled),
				})
			}
			if err := table.Bulk(data); err != nil {
				return fmt.Errorf("montar tabela: %w", err)
			}
			return table.Render()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Saída JSON")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}
