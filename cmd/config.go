package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stonewall-sec/auditscope/internal/utils"
	"github.com/stonewall-sec/auditscope/pkg/aggregate"
	"github.com/stonewall-sec/auditscope/pkg/catalog"
	"github.com/stonewall-sec/auditscope/pkg/listing"
)

// locationFromConfig reads the remote listing location from viper.
func locationFromConfig() listing.Location {
	return listing.Location{
		APIURL: viper.GetString("remote.api_url"),
		Host:   viper.GetString("remote.host"),
		Owner:  viper.GetString("remote.owner"),
		Repo:   viper.GetString("remote.repo"),
		Branch: viper.GetString("remote.branch"),
		Path:   viper.GetString("remote.path"),
	}
}

// buildCatalog loads the curated records and wires an aggregator for the
// configured remote. reg may be nil when metrics are not exposed.
func buildCatalog(reg prometheus.Registerer) ([]catalog.AuditRecord, *aggregate.Aggregator, error) {
	curated, err := catalog.LoadCurated(viper.GetString("catalog.file"))
	if err != nil {
		return nil, nil, err
	}

	loc := locationFromConfig()
	if err := loc.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid remote config: %w", err)
	}

	lister, err := listing.New(viper.GetString("remote.backend"))
	if err != nil {
		return nil, nil, err
	}

	var metrics *aggregate.Metrics
	if reg != nil {
		metrics = aggregate.NewMetrics(reg)
	}

	agg := aggregate.New(aggregate.Config{
		Lister:    lister,
		Location:  loc,
		Extension: viper.GetString("remote.extension"),
		Log:       utils.Log,
		Metrics:   metrics,
	})
	return curated, agg, nil
}
