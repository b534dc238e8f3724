package commands

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/theoremus-urban-solutions/sftraintimes/arrivals"
	"github.com/theoremus-urban-solutions/sftraintimes/config"
	"github.com/theoremus-urban-solutions/sftraintimes/dialog"
	"github.com/theoremus-urban-solutions/sftraintimes/fiveeleven"
	"github.com/theoremus-urban-solutions/sftraintimes/gtfsrt"
	"github.com/theoremus-urban-solutions/sftraintimes/skill"
	"github.com/theoremus-urban-solutions/sftraintimes/store"
)

func newUserStore(ctx context.Context, cfg config.StoreConfig) (store.UserStore, error) {
	switch cfg.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.Path), nil
	case "dynamodb":
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		table := cfg.Table
		if table == "" {
			table = store.TableName(cfg.Stage)
		}
		return store.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), table), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

func newFiveElevenClient(cfg config.TransitConfig) *fiveeleven.Client {
	return fiveeleven.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Agency, cfg.Timeout())
}

func newVisitSource(cfg config.TransitConfig, fallback *fiveeleven.Client) (arrivals.VisitSource, error) {
	switch cfg.VisitProvider {
	case "fiveeleven":
		return fallback, nil
	case "gtfsrt":
		return gtfsrt.NewVisitSource(gtfsrt.NewClient(cfg.Timeout(), nil), cfg.TripUpdatesURL), nil
	}
	return nil, fmt.Errorf("unknown visit provider %q", cfg.VisitProvider)
}

func newHandler(ctx context.Context, cfg config.AppConfig) (*skill.Handler, error) {
	users, err := newUserStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	patterns := newFiveElevenClient(cfg.Transit)
	visits, err := newVisitSource(cfg.Transit, patterns)
	if err != nil {
		return nil, err
	}
	if cfg.Transit.APIKey == "" {
		logger.Warn("no 511 API key configured; set FIVE_ELEVEN_API_KEY")
	}
	return skill.NewHandler(users, patterns, visits, skill.Options{
		Dialog: dialog.Options{StrictStopResolution: cfg.Setup.StrictStopResolution},
		Log:    logger,
	}), nil
}
