// Package plugin implements the backend datasource: it answers alert
// list queries and health checks for one configured Alertmanager.
package plugin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/httpclient"
	"github.com/grafana/grafana-plugin-sdk-go/backend/instancemgmt"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/grafana/grafana-plugin-sdk-go/data"

	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/alertmanager"
	"github.com/renzsickle/grafana-prometheus-alertmanager-datasource/pkg/table"
)

// Datasource handles queries for one datasource instance. Instances
// are created and disposed by the SDK instance manager as settings
// change.
type Datasource struct {
	client *alertmanager.Client
	logger log.Logger
}

var (
	_ backend.QueryDataHandler      = (*Datasource)(nil)
	_ backend.CheckHealthHandler    = (*Datasource)(nil)
	_ instancemgmt.InstanceDisposer = (*Datasource)(nil)
)

// NewDatasource builds an instance from its saved settings. The HTTP
// client options carry the configured auth and TLS settings.
func NewDatasource(ctx context.Context, settings backend.DataSourceInstanceSettings) (instancemgmt.Instance, error) {
	opts, err := settings.HTTPClientOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading http client options: %w", err)
	}
	client, err := httpclient.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}
	return &Datasource{
		client: alertmanager.NewClient(client, settings.URL),
		logger: log.DefaultLogger,
	}, nil
}

// Dispose implements instancemgmt.InstanceDisposer. The instance holds
// no resources beyond its HTTP client.
func (d *Datasource) Dispose() {}

// QueryData answers every query in the request independently, keyed by
// RefID.
func (d *Datasource) QueryData(ctx context.Context, req *backend.QueryDataRequest) (*backend.QueryDataResponse, error) {
	resp := backend.NewQueryDataResponse()
	for _, q := range req.Queries {
		resp.Responses[q.RefID] = d.query(ctx, q)
	}
	return resp, nil
}

func (d *Datasource) query(ctx context.Context, q backend.DataQuery) backend.DataResponse {
	filter := alertmanager.Filter{Active: true}
	if err := json.Unmarshal(q.JSON, &filter); err != nil {
		return backend.ErrDataResponse(backend.StatusBadRequest, fmt.Sprintf("unmarshaling query: %v", err))
	}

	alerts, err := d.client.Alerts(ctx, filter.QueryParams())
	if err != nil {
		return backend.ErrDataResponse(backend.StatusInternal, err.Error())
	}

	frame, err := frameFromTable(table.Transform(q.RefID, alerts))
	if err != nil {
		d.logger.Error("Failed to build frame", "refId", q.RefID, "error", err)
		return backend.ErrDataResponse(backend.StatusInternal, fmt.Sprintf("building frame: %v", err))
	}
	return backend.DataResponse{Frames: data.Frames{frame}}
}

// CheckHealth backs the "Save & test" button: it probes the status
// endpoint with the configured credentials.
func (d *Datasource) CheckHealth(ctx context.Context, req *backend.CheckHealthRequest) (*backend.CheckHealthResult, error) {
	if err := d.client.Status(ctx); err != nil {
		return &backend.CheckHealthResult{
			Status:  backend.HealthStatusError,
			Message: err.Error(),
		}, nil
	}
	return &backend.CheckHealthResult{
		Status:  backend.HealthStatusOk,
		Message: "Data source is working",
	}, nil
}
