package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"schema-serializer/internal/logging"
	"schema-serializer/internal/mapping"
	"schema-serializer/metrics"
	"schema-serializer/serializer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// app holds the state shared by every subcommand of one invocation.
type app struct {
	schemaFile string
	logLevel   string
	debug      bool
	metrics    bool

	registry  *prometheus.Registry
	collector *metrics.Collector
	restore   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "schemactl",
		Short: "Serialize and validate data with declarative schemas",
		Long: `schemactl works with schemas declared in a YAML file.

Examples:
  schemactl check -f schemas.yaml
  schemactl describe -f schemas.yaml User
  schemactl serialize -f schemas.yaml User user.json
  schemactl validate -f schemas.yaml User < input.json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.schemaFile, "schemas", "f", "schemas.yaml", "schema file path")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.debug, "debug", false, "dump intermediate values to stderr")
	flags.BoolVar(&a.metrics, "metrics", false, "print collected metrics to stderr on exit")

	root.AddCommand(
		newCheckCmd(a),
		newDescribeCmd(a),
		newSerializeCmd(a),
		newValidateCmd(a),
	)

	for _, sub := range root.Commands() {
		if sub.RunE != nil {
			sub.RunE = a.withTeardown(sub.RunE)
		}
	}

	return root
}

// withTeardown runs teardown after fn whether or not fn failed.
func (a *app) withTeardown(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.CombineErrors(err, a.teardown(cmd.ErrOrStderr()))
		}()

		return fn(cmd, args)
	}
}

func (a *app) setup(*cobra.Command, []string) error {
	logger, err := logging.New(a.logLevel)
	if err != nil {
		return err
	}

	a.restore = serializer.SetLogger(logger)

	if a.metrics {
		a.registry = prometheus.NewRegistry()
		a.collector = metrics.NewWithRegistry(a.registry)
	}

	return nil
}

func (a *app) teardown(w io.Writer) error {
	if a.restore != nil {
		_ = logging.L().Sync()
		a.restore()
		a.restore = nil
	}

	if a.registry == nil {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	return writeMetrics(w, families)
}

func writeMetrics(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}

// schemas builds the schema file, attaching the metrics collector when
// enabled.
func (a *app) schemas() (*mapping.Schemas, error) {
	var extra []serializer.Option
	if a.collector != nil {
		extra = append(extra, serializer.WithObserver(a.collector))
	}

	return mapping.BuildFile(a.schemaFile, mapping.DefaultRegistry(), extra...)
}

func (a *app) schema(name string) (*serializer.Schema, error) {
	all, err := a.schemas()
	if err != nil {
		return nil, err
	}

	return a.lookup(all, name)
}

func (a *app) lookup(all *mapping.Schemas, name string) (*serializer.Schema, error) {
	s, ok := all.Get(name)
	if !ok {
		return nil, errors.WithHintf(errors.Newf("schema %q not found in %s", name, a.schemaFile),
			"known schemas: %v", all.Names())
	}

	return s, nil
}

func (a *app) dump(cmd *cobra.Command, label string, v any) {
	if !a.debug {
		return
	}

	w := cmd.ErrOrStderr()
	_, _ = io.WriteString(w, "--- "+label+"\n")
	spew.Fdump(w, v)
}

// readInput decodes JSON from the named file, or from stdin when the name
// is empty or "-".
func readInput(cmd *cobra.Command, args []string) (any, error) {
	var r io.Reader = cmd.InOrStdin()

	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()

		r = f
	}

	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(err, "decode input")
	}

	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "encode output")
}
