package cmd

import (
	"github.com/Sena-ops/reducerguard/internal/config"
	"github.com/Sena-ops/reducerguard/internal/logging"
	"github.com/Sena-ops/reducerguard/internal/report"
	"github.com/Sena-ops/reducerguard/internal/scanner"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	jsonOutput bool
	output     string
	strict     bool
	threshold  int
	detailed   bool
	effortOnly bool
	workers    int
}

func newToolCmd(t scanner.Tool, g *globalFlags) *cobra.Command {
	f := &scanFlags{}

	cmd := &cobra.Command{
		Use:   t.Name + " [caminho]",
		Short: t.Short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runTool(cmd, t, g, f, path)
		},
	}

	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Saída JSON (atalho para --output json)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "Formato da saída (text, json, markdown, sarif)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Falha com qualquer finding HIGH ou CRITICAL")
	cmd.Flags().IntVar(&f.threshold, "threshold", 75, "Pontuação mínima; quando informada, falha abaixo dela")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "Lista todas as linhas de cada finding")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Leituras de arquivo em paralelo (padrão da configuração)")
	if t.Recommend {
		cmd.Flags().BoolVar(&f.effortOnly, "effort-only", false, "Imprime apenas a estimativa total de esforço")
	}
	return cmd
}

func runTool(cmd *cobra.Command, t scanner.Tool, g *globalFlags, f *scanFlags, path string) error {
	format, err := report.ParseFormat(f.output)
	if err != nil {
		return configError(err)
	}
	if f.jsonOutput {
		format = report.FormatJSON
	}

	cfg, err := config.Load(path, g.configPath)
	if err != nil {
		return configError(err)
	}
	gate, err := applyFlags(cmd, cfg, f)
	if err != nil {
		return configError(err)
	}

	logging.Logger.Debugw("Executando ferramenta", "ferramenta", t.Name, "caminho", path, "formato", format)

	out, err := scanner.Run(cmd.Context(), scanner.Options{
		Root:     path,
		Tool:     t,
		Config:   cfg,
		Detailed: f.detailed,
	})
	if err != nil {
		if isConfigError(err) {
			return configError(err)
		}
		return err
	}

	view := report.View{
		Result:     out.Result,
		Gate:       gate,
		Plan:       out.Plan,
		Complexity: t.Complexity,
		Detailed:   f.detailed,
		EffortOnly: f.effortOnly,
	}
	if err := report.Write(cmd.OutOrStdout(), format, view, Version); err != nil {
		return err
	}

	if code := gate.ExitCode(out.Result); code != report.ExitPass {
		return &exitError{code: code}
	}
	return nil
}

// applyFlags sobrepõe as flags da CLI à configuração carregada. --threshold
// só passa a reprovar a execução quando é informado explicitamente.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *scanFlags) (report.Gate, error) {
	gate := report.Gate{Strict: f.strict, Threshold: cfg.PassThreshold}

	if cmd.Flags().Changed("workers") && f.workers > 0 {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("threshold") {
		cfg.PassThreshold = f.threshold
		if cfg.CriticalThreshold > cfg.PassThreshold {
			cfg.CriticalThreshold = cfg.PassThreshold
		}
		if err := cfg.Validate(); err != nil {
			return gate, err
		}
		gate.EnforceThreshold = true
		gate.Threshold = f.threshold
	}
	return gate, nil
}
