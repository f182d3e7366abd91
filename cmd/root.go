package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Sena-ops/reducerguard/internal/config"
	"github.com/Sena-ops/reducerguard/internal/logging"
	"github.com/Sena-ops/reducerguard/internal/report"
	"github.com/Sena-ops/reducerguard/internal/scanner"
	"github.com/Sena-ops/reducerguard/internal/selector"
	"github.com/spf13/cobra"
)

// Version é sobrescrito no build via -ldflags.
var Version = "dev"

// globalFlags são as flags persistentes compartilhadas pelos subcomandos.
type globalFlags struct {
	configPath string
	debug      bool
}

// exitError carrega um código de saída para fora do RunE. err nil significa
// que o relatório já foi impresso e não há mensagem extra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "reducerguard",
		Short:         "reducerguard - Scanner de composição de features State/Reducer em Swift",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.InitLogger(g.debug); err != nil {
				return fmt.Errorf("iniciar logger: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Arquivo de configuração (yaml ou json)")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Habilita logs em nível debug")

	for _, t := range scanner.Tools() {
		rootCmd.AddCommand(newToolCmd(t, g))
	}
	rootCmd.AddCommand(newRulesCmd(g))
	return rootCmd
}

// Execute roda a CLI e devolve o código de saída do processo.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetContext(ctx)
	return run(rootCmd)
}

func run(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	logging.Sync()
	return exitCode(err, rootCmd.ErrOrStderr())
}

// exitCode mapeia o erro do comando para 0, 1 ou 2. Tudo que não é
// reprovação de gate é erro de configuração ou de uso.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return report.ExitPass
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, "Erro:", ee.err)
		}
		return ee.code
	}

	fmt.Fprintln(stderr, "Erro:", err)
	return report.ExitConfigError
}

// configError embrulha erros que abortam antes do scan.
func configError(err error) error {
	return &exitError{code: report.ExitConfigError, err: err}
}

func isConfigError(err error) bool {
	return errors.Is(err, config.ErrInvalid) ||
		errors.Is(err, selector.ErrInvalidRoot) ||
		errors.Is(err, selector.ErrInvalidPattern) ||
		errors.Is(err, report.ErrUnknownFormat)
}
