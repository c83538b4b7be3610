package main

import (
	"fmt"
	"net"
	"os"

	"github.com/ad-tools/revenue-console/pkg/events"
	eventskafka "github.com/ad-tools/revenue-console/pkg/events/kafka"
	"github.com/ad-tools/revenue-console/pkg/handlers/reports"
	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/server"
	"github.com/ad-tools/revenue-console/pkg/services/auth"
	"github.com/ad-tools/revenue-console/pkg/services/config"
	"github.com/ad-tools/revenue-console/pkg/services/report"
	"github.com/ad-tools/revenue-console/pkg/store/postgres"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/advertiser"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/ledger"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/partner"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/payment"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the revenue reporting server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "revenue-console.yaml",
		"Path to the service config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dsn := cfg.Store.DSN
	if env := os.Getenv("STORE_DSN"); env != "" {
		dsn = env
	}

	db, err := postgres.NewDB(postgres.Settings{
		DSN:          dsn,
		MaxOpenConns: cfg.Store.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}

	ledgerStore, err := ledger.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create ledger store: %w", err)
	}
	paymentStore, err := payment.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create payment store: %w", err)
	}
	partnerStore, err := partner.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create partner store: %w", err)
	}
	advertiserStore, err := advertiser.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create advertiser store: %w", err)
	}

	registry := report.NewRegistry()
	builders := []report.Builder{
		report.NewTransactionsBuilder(ledgerStore, cfg.Report.RowLimit),
		report.NewPaymentsBuilder(paymentStore, cfg.Report.RowLimit),
		report.NewPartnersBuilder(partnerStore),
		report.NewAdvertisersBuilder(advertiserStore),
		report.NewOverviewBuilder(ledgerStore),
		report.NewProjectionsBuilder(ledgerStore),
	}
	for _, b := range builders {
		if err := registry.Register(b); err != nil {
			return fmt.Errorf("failed to register %s builder: %w", b.Type(), err)
		}
	}

	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := eventskafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("export audit events enabled")
	}

	tokens := make(map[string]domain.Identity, len(cfg.Auth.Tokens))
	for token, identity := range cfg.Auth.Tokens {
		tokens[token] = domain.Identity{
			UserID: identity.UserID,
			Role:   domain.Role(identity.Role),
		}
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Reports:  reports.NewHandler(registry, publisher),
			Verifier: auth.NewStaticVerifier(tokens),
		},
	})

	return api.Start()
}
