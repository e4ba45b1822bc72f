package tracing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/leadflow/leadflow/config"
	"github.com/leadflow/leadflow/pkg/logger"
)

// Provider owns the exporters registered by InitTracing. Shutdown flushes
// them and stops the Prometheus endpoint when one was started.
type Provider struct {
	log         logger.Logger
	flushers    []func()
	metricsSrv  *http.Server
	traceExport string
	metricsExp  []string
}

// InitTracing configures sampling, the trace exporter and the metrics
// exporters. A disabled configuration returns a no-op provider.
func InitTracing(cfg *config.TracingConfig, log logger.Logger) (*Provider, error) {
	p := &Provider{log: log}
	if !cfg.Enabled {
		return p, nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := p.initTraceExporter(cfg); err != nil {
		return nil, err
	}
	if err := p.initMetricsExporters(cfg); err != nil {
		return nil, err
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return nil, fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return nil, fmt.Errorf("failed to register database views: %w", err)
	}
	if err := view.Register(MembershipChangeView); err != nil {
		return nil, fmt.Errorf("failed to register membership view: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   p.traceExport,
		"metrics_exporter": strings.Join(p.metricsExp, ","),
	}).Info("OpenCensus initialized")
	return p, nil
}

func (p *Provider) initTraceExporter(cfg *config.TracingConfig) error {
	var exporter trace.Exporter
	var err error

	switch cfg.TraceExporter {
	case "none", "":
		return nil
	case "jaeger":
		if cfg.JaegerEndpoint == "" {
			return errors.New("jaeger endpoint is required for the jaeger exporter")
		}
		var je *jaeger.Exporter
		je, err = jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: cfg.JaegerEndpoint,
			Process:           jaeger.Process{ServiceName: cfg.ServiceName},
		})
		if je != nil {
			p.flushers = append(p.flushers, je.Flush)
		}
		exporter = je
	case "zipkin":
		if cfg.ZipkinEndpoint == "" {
			return errors.New("zipkin endpoint is required for the zipkin exporter")
		}
		exporter = zipkin.NewExporter(zipkinhttp.NewReporter(cfg.ZipkinEndpoint), nil)
	case "stackdriver":
		if cfg.StackdriverProjectID == "" {
			return errors.New("stackdriver project id is required for the stackdriver exporter")
		}
		var se *stackdriver.Exporter
		se, err = stackdriver.NewExporter(stackdriver.Options{ProjectID: cfg.StackdriverProjectID})
		if se != nil {
			p.flushers = append(p.flushers, se.Flush)
		}
		exporter = se
	case "datadog":
		var de *datadog.Exporter
		de, err = newDatadogExporter(cfg, p.log)
		if de != nil {
			p.flushers = append(p.flushers, de.Stop)
		}
		exporter = de
	case "xray":
		if cfg.XRayRegion == "" {
			return errors.New("aws region is required for the xray exporter")
		}
		var xe *aws.Exporter
		xe, err = aws.NewExporter(aws.WithRegion(cfg.XRayRegion), aws.WithVersion("latest"))
		if xe != nil {
			p.flushers = append(p.flushers, xe.Flush)
		}
		exporter = xe
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	if err != nil {
		return fmt.Errorf("failed to create %s exporter: %w", cfg.TraceExporter, err)
	}
	trace.RegisterExporter(exporter)
	p.traceExport = cfg.TraceExporter
	return nil
}

func (p *Provider) initMetricsExporters(cfg *config.TracingConfig) error {
	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}

		var err error
		switch name {
		case "prometheus":
			err = p.initPrometheus(cfg)
		case "stackdriver":
			err = p.initStackdriverMetrics(cfg)
		case "datadog":
			var de *datadog.Exporter
			de, err = newDatadogExporter(cfg, p.log)
			if err == nil {
				view.RegisterExporter(de)
			}
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", name, err)
		}
		p.metricsExp = append(p.metricsExp, name)
	}
	return nil
}

func newDatadogExporter(cfg *config.TracingConfig, log logger.Logger) (*datadog.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, errors.New("datadog agent address is required for the datadog exporter")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.Warn(fmt.Sprintf("Datadog exporter error: %v", err))
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{"api_key": cfg.DatadogAPIKey}
	}
	return datadog.NewExporter(options)
}

func (p *Provider) initPrometheus(cfg *config.TracingConfig) error {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			p.log.Warn(fmt.Sprintf("Prometheus exporter error: %v", err))
		},
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(pe)

	if cfg.PrometheusPort <= 0 {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", pe)
	p.metricsSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.PrometheusPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		p.log.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
		if err := p.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.log.Error(fmt.Sprintf("Prometheus metrics server failed: %v", err))
		}
	}()
	return nil
}

func (p *Provider) initStackdriverMetrics(cfg *config.TracingConfig) error {
	if cfg.StackdriverProjectID == "" {
		return errors.New("stackdriver project id is required for stackdriver metrics")
	}
	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			p.log.Warn(fmt.Sprintf("Stackdriver metrics exporter error: %v", err))
		},
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(se)
	p.flushers = append(p.flushers, se.Flush)
	return nil
}

// Shutdown flushes pending spans and stops the metrics server
func (p *Provider) Shutdown(ctx context.Context) error {
	for _, flush := range p.flushers {
		flush()
	}
	if p.metricsSrv != nil {
		return p.metricsSrv.Shutdown(ctx)
	}
	return nil
}
