package logging

import (
	"go.uber.org/zap"
)

// Logger começa como no-op para que pacotes e testes possam logar sem InitLogger.
var Logger = zap.NewNop().Sugar()

// InitLogger configura o logger global. A saída vai sempre para stderr,
// deixando stdout livre para os relatórios.
func InitLogger(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()
	return nil
}

// Sync descarrega buffers pendentes; erros de sync em stderr são ignorados.
func Sync() {
	_ = Logger.Sync()
}
