package reconcile

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/match"
	"github.com/TFMV/reconcile/internal/normalize"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile - company name reconciliation engine",
	Long: `Reconcile matches noisy free-text company names against a reference
customer database, producing a best-guess match, a confidence score and a
traffic-light classification for manual review.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err = buildLogger(cfg)
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger constructs the zap logger from the logging configuration
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Logging.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zapCfg.Level = level
	}
	return zapCfg.Build()
}

// buildService loads the reference pool and wires up the matching service
func buildService(referencePath string) (*match.Service, error) {
	if referencePath == "" {
		referencePath = cfg.Reference.Path
	}
	if referencePath == "" {
		return nil, fmt.Errorf("no reference file configured: set --reference or reference.path")
	}

	entries, err := loadReference(referencePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference file: %w", err)
	}

	normalizer := normalize.NewNormalizer(cfg)
	pool := match.NewPool(entries, normalizer)
	if pool.Len() == 0 {
		logger.Warn("reference pool is empty", zap.String("path", referencePath))
	} else {
		logger.Info("reference pool loaded",
			zap.String("path", referencePath),
			zap.Int("entries", pool.Len()))
	}

	return match.NewService(cfg, pool, logger), nil
}
