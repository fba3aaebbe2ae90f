package cli

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/adapters/driven/config/file"
	"github.com/daetec/vendas-cli/internal/adapters/driven/storage/sqlite"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
	"github.com/daetec/vendas-cli/internal/core/services"
	"github.com/daetec/vendas-cli/internal/logger"
)

var (
	verbose bool
	dataDir string

	// Wired in initRuntime; tests inject their own implementations.
	servicesWired   bool
	sellerService   driving.SellerService
	productService  driving.ProductService
	saleService     driving.SaleService
	reportService   driving.ReportService
	settingsService driving.SettingsService

	configStore driven.AppConfigStore
	store       *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "vendas",
	Short: "Desktop point of sale for a single retail counter",
	Long: `vendas manages sellers, a product catalog and multi-item sales with
split payments, all stored in a local SQLite database.

Run a subcommand to register data or produce the sales report.`,
	SilenceUsage:     true,
	PersistentPreRun: initRuntime,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "database directory (default ~/.vendas/data)")
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

// initRuntime opens the config file and the database and wires the
// services. A store that fails to open is logged and absorbed: the
// process stays up and each command reports the unavailable store
// instead of crashing at startup.
func initRuntime(_ *cobra.Command, _ []string) {
	if servicesWired {
		return
	}

	cfg, err := file.NewConfigStore("")
	if err == nil {
		configStore = cfg
	}

	logVerbose := verbose
	if configStore != nil && configStore.GetBool(file.KeyVerbose) {
		logVerbose = true
	}
	logger.Init(logVerbose)

	dir := dataDir
	if dir == "" && configStore != nil {
		dir = configStore.GetString(file.KeyDatabaseDir)
	}

	st, err := sqlite.NewStore(dir)
	if err != nil {
		logger.L().Error("opening store failed", zap.String("dir", dir), zap.Error(err))
		return
	}
	store = st

	log := logger.L()
	sellerService = services.NewSellerService(st.SellerStore(), log)
	productService = services.NewProductService(st.ProductStore(), log)
	saleService = services.NewSaleService(st.SaleStore(), log)
	reportService = services.NewReportService(st.SaleStore(), log)
	settingsService = services.NewSettingsService(st.SettingStore(), log)
	servicesWired = true

	logger.L().Debug("store opened", zap.String("path", st.Path()))
}
