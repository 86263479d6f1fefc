package di

import (
	"context"
	"fmt"

	"github.com/temanskyM/scheduler-manager/aws_s3"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/repositories"
	"github.com/temanskyM/scheduler-manager/services"
	"github.com/temanskyM/scheduler-manager/settings"
	"github.com/temanskyM/scheduler-manager/stack"
	"go.uber.org/zap"
)

// SideChannels are the optional services a stored record is announced
// to. A nil field disables that channel.
type SideChannels struct {
	Nats     *stack.NatsClient
	Index    *db.SearchIndex
	Uploader *aws_s3.AWSS3
	PDFFont  string
}

// Container holds the shared dependencies of one process.
type Container struct {
	Logger    *zap.Logger
	Store     db.Store
	Nats      *stack.NatsClient
	Entry     *services.EntryService
	Records   *services.RecordsService
	Search    *services.SearchService
	Export    *services.ExportService
	Scheduler *services.SchedulerService
	Responder *services.RecordsResponder

	closers []func(ctx context.Context) error
}

// Build wires the services over store. Nil side channels are left as nil
// interfaces so the services can tell they are disabled.
func Build(store db.Store, channels SideChannels, logger *zap.Logger) *Container {
	var publisher services.Publisher
	var indexer services.Indexer
	var searcher services.Searcher

	entryOpts := []services.EntryOption{}
	exportOpts := []services.ExportOption{}
	if channels.Nats != nil {
		publisher = channels.Nats
		entryOpts = append(entryOpts, services.WithPublisher(publisher))
	}
	if channels.Index != nil {
		indexer = channels.Index
		searcher = channels.Index
		entryOpts = append(entryOpts, services.WithIndexer(indexer))
	}
	if channels.Uploader != nil {
		exportOpts = append(exportOpts, services.WithUploader(channels.Uploader))
	}
	if channels.PDFFont != "" {
		exportOpts = append(exportOpts, services.WithPDFFont(channels.PDFFont))
	}

	repo := repositories.NewRecordRepository(store)
	records := services.NewRecordsService(repo, publisher, indexer, logger)
	return &Container{
		Logger:    logger,
		Store:     store,
		Nats:      channels.Nats,
		Entry:     services.NewEntryService(store, logger, entryOpts...),
		Records:   records,
		Search:    services.NewSearchService(searcher),
		Export:    services.NewExportService(repo, exportOpts...),
		Scheduler: services.NewSchedulerService(),
		Responder: services.NewRecordsResponder(records, logger),
	}
}

// New connects to MongoDB and to every side channel configured in s.
func New(ctx context.Context, s *settings.Settings, logger *zap.Logger) (*Container, error) {
	closers := []func(ctx context.Context) error{}
	closeAll := func() {
		for _, closer := range closers {
			_ = closer(context.Background())
		}
	}

	conn, err := db.NewConnection(ctx, s.MongoURI(), s.MONGO_DB, logger)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}
	closers = append(closers, conn.Disconnect)

	channels := SideChannels{PDFFont: s.PDF_FONT}
	if s.NATS_HOST != "" {
		nats, err := stack.NewNats(s.NATS_HOST)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("nats: %w", err)
		}
		channels.Nats = nats
		closers = append(closers, func(ctx context.Context) error {
			nats.Close()
			return nil
		})
	} else {
		logger.Info("NATS_HOST not set, record events disabled")
	}
	if s.ELS_HOST != "" {
		es, err := db.NewConnectionEs(db.ElasticConfig{
			Host:     s.ELS_HOST,
			Port:     s.ELS_PORT,
			Username: s.ELS_USERNAME,
			Password: s.ELS_PASSWORD,
			TLS:      s.IsProd(),
		})
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("elasticsearch: %w", err)
		}
		channels.Index = db.NewSearchIndex(es)
	} else {
		logger.Info("ELS_HOST not set, search disabled")
	}
	if s.AWS_BUCKET != "" {
		uploader, err := aws_s3.NewAWSS3(s.AWS_REGION, s.AWS_BUCKET)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("s3: %w", err)
		}
		channels.Uploader = uploader
	}

	container := Build(db.NewMongoStore(conn), channels, logger)
	container.closers = closers
	return container, nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			c.Logger.Warn("close dependency", zap.Error(err))
		}
	}
}
